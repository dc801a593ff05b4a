// report.go defines the structured analysis report and the parser that
// decodes the model's raw response into it.
//
// The model returns one JSON object (possibly wrapped in markdown code
// fences or surrounding narrative). This file:
//   - Defines the Report struct matching the required output contract
//   - Extracts and parses the JSON object out of the raw response
//   - Rejects responses missing any required key (fatal for the request)
//
// No partial report is ever accepted.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Report is the decoded model output for one analysis request.
type Report struct {
	// ExecutiveSummary is the narrative summary in the user's tone.
	ExecutiveSummary string `json:"executive_summary"`

	// KeyInsights, DataQualityIssues and Recommendations are ordered
	// lists of text; never nil after parsing (possibly empty).
	KeyInsights       []string `json:"key_insights"`
	DataQualityIssues []string `json:"data_quality_issues"`
	Recommendations   []string `json:"recommendations"`

	// PlotCodes are the model-authored chart specifications, opaque
	// instruction strings parsed structurally by the chart package.
	PlotCodes []string `json:"plot_codes"`

	// RegressionSuggestion names a target and feature column. Nothing
	// guarantees they exist in the dataset; the chart engine checks.
	RegressionSuggestion RegressionSuggestion `json:"regression_suggestion"`
}

// RegressionSuggestion is the model's pick for a simple linear regression.
type RegressionSuggestion struct {
	TargetVariable  string `json:"target_variable"`
	FeatureVariable string `json:"feature_variable"`
}

// requiredKeys is the exact key set of the model's output contract.
var requiredKeys = []string{
	"executive_summary",
	"key_insights",
	"data_quality_issues",
	"recommendations",
	"plot_codes",
	"regression_suggestion",
}

// ParseReport extracts the Report from the model's raw response text.
// Malformed JSON or a missing required key is an error; the caller
// treats it as fatal for the current request, no retry.
func ParseReport(response string) (*Report, error) {
	jsonStr := extractJSON(response)
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON object found in model response")
	}

	// Key presence is checked against the raw object so a silently
	// dropped field can't slip through as a zero value.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse report JSON: %w", err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("model response is missing required key %q", key)
		}
	}

	var rep Report
	if err := json.Unmarshal([]byte(jsonStr), &rep); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	// List fields are non-null arrays by contract.
	if rep.KeyInsights == nil {
		rep.KeyInsights = []string{}
	}
	if rep.DataQualityIssues == nil {
		rep.DataQualityIssues = []string{}
	}
	if rep.Recommendations == nil {
		rep.Recommendations = []string{}
	}
	if rep.PlotCodes == nil {
		rep.PlotCodes = []string{}
	}

	return &rep, nil
}

// extractJSON finds the first {...} JSON object in the text,
// handling markdown code fences and surrounding narrative.
func extractJSON(text string) string {
	// Try to extract from a markdown code fence
	if idx := strings.Index(text, "```json"); idx >= 0 {
		start := idx + len("```json")
		end := strings.Index(text[start:], "```")
		if end >= 0 {
			return strings.TrimSpace(text[start : start+end])
		}
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		start := idx + len("```")
		end := strings.Index(text[start:], "```")
		if end >= 0 {
			candidate := strings.TrimSpace(text[start : start+end])
			if strings.HasPrefix(candidate, "{") {
				return candidate
			}
		}
	}

	// Fall back to the outermost brace pair.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(text[start : end+1])
	}
	return ""
}
