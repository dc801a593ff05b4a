package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	htgotts "github.com/hegedustibor/htgo-tts"
)

// DefaultSpeechText is spoken when the summary has no speakable content.
const DefaultSpeechText = "The analysis report is ready."

// SpeakableText strips everything outside printable ASCII and collapses
// runs of whitespace. An empty result falls back to DefaultSpeechText.
func SpeakableText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 0x20 && r < 0x7f {
			b.WriteRune(r)
		} else if r == '\n' || r == '\t' {
			b.WriteRune(' ')
		}
	}
	cleaned := strings.Join(strings.Fields(b.String()), " ")
	if cleaned == "" {
		return DefaultSpeechText
	}
	return cleaned
}

// Speech synthesizes the text to MP3 bytes. The intermediate file lives
// in a uuid-scoped temp directory that is removed before returning.
func Speech(text, language string) ([]byte, error) {
	dir := filepath.Join(os.TempDir(), "insightagent-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("speech temp dir failed: %w", err)
	}
	defer os.RemoveAll(dir)

	speech := htgotts.Speech{Folder: dir, Language: language}
	fileName, err := speech.CreateSpeechFile(SpeakableText(text), uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("speech file read failed: %w", err)
	}
	return data, nil
}
