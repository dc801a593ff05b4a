// prompts.go builds the instruction sent to the model for one analysis
// request. The template uses named placeholders ({role}, {tone},
// {summary}); literal braces inside the substituted summary arrive
// doubled and are collapsed after substitution.
package ai

import "strings"

// Roles and Tones are the persona pick lists offered to the user.
var (
	Roles = []string{"CEO", "Investor", "Sales Manager", "Employee", "Teacher", "Student", "Patient", "Doctor"}
	Tones = []string{"Formal", "Casual", "Conversational", "Friendly", "Professional"}
)

const systemPromptAnalyst = `You are a proactive data analyst acting as a consultant. You are given a Smart Summary (textual fingerprint) of a tabular dataset and must return a single structured JSON report. Never add text before or after the JSON object.`

const analysisTemplate = `Instructions:
Act as a consultant for the specified {role} with a {tone} tone.
You are a Proactive Data Analyst. You will be given a Smart Summary of a dataset.

Here is the SMART SUMMARY / FINGERPRINT OF THE DATASET:
{summary}

Your job:
1. Interpret the provided summary.
2. Provide true and logical insights, recommendations, and predictions based on the summary and the user's role.
3. Return your response as a single, clean JSON object. Do NOT add any text before or after the JSON.
4. Generate exactly 5 plot specifications as code-like strings. You MUST pick:
   - The 2 most important numerical columns for 2 separate histogram plots.
   - The 2 most important categorical columns (with low unique value counts) for 2 separate bar charts.
   - The 1 most important numerical/categorical pair for 1 box plot.
   - Use only column names that appear in the summary. Do not hallucinate columns.
   - Use numerical columns only for histograms.
   - Use categorical columns only for bar charts.
5. Suggest a simple linear regression: the most important target variable and its best feature variable, both numeric, both from the summary.

Your JSON output MUST follow this exact structure:

{
  "executive_summary": "A 2-3 paragraph summary written in the user's selected tone...",
  "key_insights": [
    "Insight 1 text...",
    "Insight 2 text...",
    "Insight 3 text..."
  ],
  "data_quality_issues": [
    "Data quality issue 1 text...",
    "Data quality issue 2 text..."
  ],
  "recommendations": [
    "Recommendation 1 text for the user's role...",
    "Recommendation 2 text for the user's role..."
  ],
  "plot_codes": [
    "fig = px.histogram(df, x='column_a')",
    "fig = px.bar(df, x='column_b')",
    "fig = px.box(df, x='column_b', y='column_a')"
  ],
  "regression_suggestion": {
    "target_variable": "",
    "feature_variable": ""
  }
}

USE THE GIVEN SUMMARY AND DO YOUR BEST.`

// BuildPrompt composes the full analysis instruction for one request.
// The summary is embedded verbatim (its braces pre-doubled by the
// extractor); doubled braces collapse to literals after substitution.
func BuildPrompt(tone, role, summary string) string {
	// The JSON skeleton's own braces must survive substitution too.
	tpl := strings.ReplaceAll(analysisTemplate, "{", "{{")
	tpl = strings.ReplaceAll(tpl, "}", "}}")
	tpl = strings.ReplaceAll(tpl, "{{role}}", role)
	tpl = strings.ReplaceAll(tpl, "{{tone}}", tone)
	tpl = strings.ReplaceAll(tpl, "{{summary}}", summary)

	tpl = strings.ReplaceAll(tpl, "{{", "{")
	tpl = strings.ReplaceAll(tpl, "}}", "}")
	return tpl
}

// ValidRole reports whether the role is one of the offered personas.
func ValidRole(role string) bool { return contains(Roles, role) }

// ValidTone reports whether the tone is one of the offered tones.
func ValidTone(tone string) bool { return contains(Tones, tone) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
