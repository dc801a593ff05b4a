// logger.go provides file-based logging for all model interactions.
//
// Logs are written to ~/.insightagent/logs/ai.log with timestamps.
// Covers: analysis requests, raw responses, and parse outcomes.
package ai

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	logOnce sync.Once
	logFile *os.File
)

// initLog opens (or creates) the log file. Called once lazily.
func initLog() {
	logOnce.Do(func() {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return
		}
		logDir := filepath.Join(homeDir, ".insightagent", "logs")
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return
		}
		logPath := filepath.Join(logDir, "ai.log")
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return
		}
		logFile = f
	})
}

func logWrite(s string) {
	initLog()
	if logFile != nil {
		logFile.WriteString(s) //nolint:errcheck
	}
}

// LogAnalysisRequest logs one analysis request before the model call.
func LogAnalysisRequest(provider string, role string, tone string, prompt string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"\n%s\n"+
			"════════════════════════════════════════════════════════════════\n"+
			"[REQUEST] %s  |  Provider: %s  |  Role: %s  |  Tone: %s\n"+
			"════════════════════════════════════════════════════════════════\n",
		ts, ts, provider, role, tone,
	))
	sb.WriteString(fmt.Sprintf("Prompt:\n%s\n────────────────────────────────────────\n", prompt))
	logWrite(sb.String())
}

// LogAnalysisResponse logs the raw model response and the parse outcome.
func LogAnalysisResponse(rawResponse string, rep *Report, err error) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	errStr := "(none)"
	if err != nil {
		errStr = err.Error()
	}

	var repSummary string
	if rep != nil {
		repSummary = fmt.Sprintf(
			"Insights: %d\nQuality issues: %d\nRecommendations: %d\nPlot specs: %d\nRegression: %s ~ %s",
			len(rep.KeyInsights), len(rep.DataQualityIssues), len(rep.Recommendations),
			len(rep.PlotCodes),
			rep.RegressionSuggestion.TargetVariable, rep.RegressionSuggestion.FeatureVariable,
		)
	} else {
		repSummary = "(nil)"
	}

	entry := fmt.Sprintf(
		"[RESPONSE] %s\n"+
			"────────────────────────────────────────\n"+
			"Error: %s\n"+
			"────────────────────────────────────────\n"+
			"Raw Response:\n%s\n"+
			"────────────────────────────────────────\n"+
			"Parsed Report:\n%s\n"+
			"════════════════════════════════════════════════════════════════\n\n",
		ts, errStr, rawResponse, repSummary,
	)
	logWrite(entry)
}
