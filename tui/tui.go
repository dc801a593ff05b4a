package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"insightagent/ai"
	"insightagent/config"
	"insightagent/dataset"
	"insightagent/pipeline"
)

// Start loads the file, walks the user through role and tone and runs
// the analysis. Artifacts are written next to the working directory and
// the narrative printed styled to stdout.
func Start(cfg config.Config, provider ai.Provider, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	ds, err := dataset.Load(filepath.Base(path), f, cfg.MaxRows)
	f.Close()
	if err != nil {
		return fmt.Errorf("could not read dataset: %w", err)
	}

	app := NewApp(cfg, provider, ds, filepath.Base(path))
	p := tea.NewProgram(app)
	model, err := p.Run()
	if err != nil {
		return err
	}

	final := model.(*App)
	if final.Err != nil {
		return final.Err
	}
	if final.Result == nil {
		return nil
	}
	return printResult(path, final.Result)
}

// printResult writes the artifacts and prints the narrative.
func printResult(path string, result *pipeline.Result) error {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if len(result.PDF) > 0 {
		pdfPath := base + "_report.pdf"
		if err := os.WriteFile(pdfPath, result.PDF, 0o644); err != nil {
			return fmt.Errorf("failed to write pdf: %w", err)
		}
		fmt.Println(StyleSuccess.Render("wrote " + pdfPath))
	} else if result.PDFWarning != "" {
		fmt.Println(StyleWarning.Render(result.PDFWarning))
	}
	if len(result.AudioMP3) > 0 {
		mp3Path := base + "_summary.mp3"
		if err := os.WriteFile(mp3Path, result.AudioMP3, 0o644); err != nil {
			return fmt.Errorf("failed to write audio: %w", err)
		}
		fmt.Println(StyleSuccess.Render("wrote " + mp3Path))
	} else if result.AudioNote != "" {
		fmt.Println(StyleWarning.Render(result.AudioNote))
	}

	fmt.Println()
	for _, sec := range result.Document.Sections() {
		fmt.Println(StyleTitle.Render(sec.Title))
		if sec.Paragraph != "" {
			fmt.Println(StyleNormal.Render(sec.Paragraph))
		}
		for _, item := range sec.Bullets {
			fmt.Println(StyleNormal.Render("  • " + item))
		}
		fmt.Println()
	}
	return nil
}
