package ai

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestPlaceholderReturnsValidReport(t *testing.T) {
	prompt := BuildPrompt("Formal", "CEO",
		"numerical columns: [sales, visits]\ncategorical columns: [region]\n")

	p := NewPlaceholder()
	raw, err := p.Analyze(context.Background(), prompt)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	rep, err := ParseReport(raw)
	if err != nil {
		t.Fatalf("placeholder output violates the contract: %v", err)
	}
	if len(rep.PlotCodes) != 5 {
		t.Fatalf("got %d plot codes, want 5", len(rep.PlotCodes))
	}
	// charts should reference real columns pulled from the summary
	if !strings.Contains(rep.PlotCodes[0], "sales") {
		t.Fatalf("first histogram should bind sales, got %q", rep.PlotCodes[0])
	}
	if !strings.Contains(rep.PlotCodes[2], "region") {
		t.Fatalf("first bar chart should bind region, got %q", rep.PlotCodes[2])
	}
	if rep.RegressionSuggestion.TargetVariable != "sales" {
		t.Fatalf("got regression target %q", rep.RegressionSuggestion.TargetVariable)
	}
}

func TestPlaceholderHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := NewPlaceholder().Analyze(ctx, "prompt"); err == nil {
		t.Fatalf("expected context error")
	}
}
