package ai

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

// Placeholder is a mock provider for development and tests. It returns a
// contract-valid report without any network call, picking columns out of
// the embedded summary so the charts render against real data.
type Placeholder struct{}

var _ Provider = (*Placeholder)(nil)

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) Name() string {
	return "placeholder"
}

var (
	numericListRe     = regexp.MustCompile(`numerical columns: \[([^\]]*)\]`)
	categoricalListRe = regexp.MustCompile(`categorical columns: \[([^\]]*)\]`)
)

func (p *Placeholder) Analyze(ctx context.Context, prompt string) (string, error) {
	// Simulate network latency
	select {
	case <-time.After(200 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	numeric := matchList(numericListRe, prompt)
	categorical := matchList(categoricalListRe, prompt)

	pick := func(list []string, i int) string {
		if len(list) == 0 {
			return "value"
		}
		return list[i%len(list)]
	}

	rep := Report{
		ExecutiveSummary: "This is a placeholder analysis generated without a model call. " +
			"The dataset was summarized successfully; configure a real AI provider " +
			"(gemini, openai, anthropic, ollama) to get an actual narrative.",
		KeyInsights: []string{
			"Placeholder insight: the dataset loaded and was typed correctly.",
			"Placeholder insight: charts below are rendered from real column data.",
		},
		DataQualityIssues: []string{
			"Placeholder: data quality was not assessed (no model configured).",
		},
		Recommendations: []string{
			"Set AI_PROVIDER and the matching API key to run a real analysis.",
		},
		PlotCodes: []string{
			"fig = px.histogram(df, x='" + pick(numeric, 0) + "')",
			"fig = px.histogram(df, x='" + pick(numeric, 1) + "')",
			"fig = px.bar(df, x='" + pick(categorical, 0) + "')",
			"fig = px.bar(df, x='" + pick(categorical, 1) + "')",
			"fig = px.box(df, x='" + pick(categorical, 0) + "', y='" + pick(numeric, 0) + "')",
		},
		RegressionSuggestion: RegressionSuggestion{
			TargetVariable:  pick(numeric, 0),
			FeatureVariable: pick(numeric, 1),
		},
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	return "```json\n" + string(out) + "\n```", nil
}

func matchList(re *regexp.Regexp, text string) []string {
	m := re.FindStringSubmatch(text)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return nil
	}
	parts := strings.Split(m[1], ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
