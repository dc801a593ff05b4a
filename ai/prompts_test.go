package ai

import (
	"strings"
	"testing"
)

func TestBuildPromptSubstitution(t *testing.T) {
	prompt := BuildPrompt("Formal", "CEO", "numerical columns: [sales]")

	if !strings.Contains(prompt, "specified CEO with a Formal tone") {
		t.Fatalf("persona not substituted:\n%s", prompt)
	}
	if !strings.Contains(prompt, "numerical columns: [sales]") {
		t.Fatalf("summary not embedded verbatim:\n%s", prompt)
	}
	if strings.Contains(prompt, "{role}") || strings.Contains(prompt, "{summary}") {
		t.Fatalf("unsubstituted placeholder left in prompt:\n%s", prompt)
	}
}

func TestBuildPromptCollapsesDoubledBraces(t *testing.T) {
	prompt := BuildPrompt("Casual", "Student", "value {{alpha}} here")

	if !strings.Contains(prompt, "value {alpha} here") {
		t.Fatalf("doubled braces not collapsed:\n%s", prompt)
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("doubled braces survived:\n%s", prompt)
	}
	// JSON skeleton braces survive as literals
	if !strings.Contains(prompt, `"executive_summary"`) {
		t.Fatalf("JSON contract skeleton lost:\n%s", prompt)
	}
}

func TestBuildPromptNamesContract(t *testing.T) {
	prompt := BuildPrompt("Formal", "Doctor", "summary")
	for _, key := range requiredKeys {
		if !strings.Contains(prompt, key) {
			t.Fatalf("prompt missing contract key %q", key)
		}
	}
	if !strings.Contains(prompt, "exactly 5 plot specifications") {
		t.Fatalf("plot count constraint missing")
	}
}

func TestValidRoleAndTone(t *testing.T) {
	if !ValidRole("CEO") || ValidRole("Astronaut") {
		t.Fatalf("role validation wrong")
	}
	if !ValidTone("Friendly") || ValidTone("Sarcastic") {
		t.Fatalf("tone validation wrong")
	}
	if len(Roles) != 8 || len(Tones) != 5 {
		t.Fatalf("pick lists changed size: %d roles, %d tones", len(Roles), len(Tones))
	}
}
