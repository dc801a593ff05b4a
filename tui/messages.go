// messages.go defines the Bubble Tea messages used for async
// communication. The pipeline runs in a command so the UI never blocks.
package tui

import (
	"time"

	"insightagent/pipeline"
)

// AnalysisDoneMsg is sent when the pipeline completes.
type AnalysisDoneMsg struct {
	Result *pipeline.Result
	Err    error
}

// TickMsg drives the spinner while the pipeline runs.
type TickMsg time.Time
