// app.go is the Bubble Tea model for terminal analysis mode.
//
// Flow:
//  1. Pick the audience role
//  2. Pick the tone
//  3. Spinner while the pipeline runs
//  4. Quit; the caller prints the narrative and writes the artifacts
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"insightagent/ai"
	"insightagent/config"
	"insightagent/dataset"
	"insightagent/pipeline"
)

type phase int

const (
	phasePickRole phase = iota
	phasePickTone
	phaseRunning
	phaseDone
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// App walks the user through role and tone and runs the pipeline.
type App struct {
	cfg      config.Config
	provider ai.Provider
	ds       *dataset.Dataset
	name     string

	phase  phase
	cursor int
	role   string
	tone   string
	frame  int

	// Result and Err carry the outcome for the caller after Run.
	Result *pipeline.Result
	Err    error
}

func NewApp(cfg config.Config, provider ai.Provider, ds *dataset.Dataset, name string) *App {
	return &App{cfg: cfg, provider: provider, ds: ds, name: name}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case TickMsg:
		if a.phase != phaseRunning {
			return a, nil
		}
		a.frame = (a.frame + 1) % len(spinnerFrames)
		return a, tick()

	case AnalysisDoneMsg:
		a.phase = phaseDone
		a.Result = msg.Result
		a.Err = msg.Err
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if a.phase != phaseRunning {
			a.Err = fmt.Errorf("cancelled")
			return a, tea.Quit
		}
		return a, nil

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(a.currentChoices())-1 {
			a.cursor++
		}

	case "enter":
		switch a.phase {
		case phasePickRole:
			a.role = ai.Roles[a.cursor]
			a.phase = phasePickTone
			a.cursor = 0
		case phasePickTone:
			a.tone = ai.Tones[a.cursor]
			a.phase = phaseRunning
			return a, tea.Batch(a.runAnalysis(), tick())
		}
	}
	return a, nil
}

func (a *App) currentChoices() []string {
	if a.phase == phasePickTone {
		return ai.Tones
	}
	return ai.Roles
}

func (a *App) runAnalysis() tea.Cmd {
	return func() tea.Msg {
		result, err := pipeline.Run(context.Background(), a.cfg, a.provider, a.ds, a.name, a.role, a.tone)
		return AnalysisDoneMsg{Result: result, Err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Insight Agent") + "\n")
	b.WriteString(StyleDimmed.Render(fmt.Sprintf("dataset: %s (%d rows)", a.name, a.ds.Rows())) + "\n\n")

	switch a.phase {
	case phasePickRole:
		b.WriteString(StyleHeader.Render("Who is this report for?") + "\n")
		a.writeChoices(&b, ai.Roles)
	case phasePickTone:
		b.WriteString(StyleHeader.Render("How should it sound?") + "\n")
		a.writeChoices(&b, ai.Tones)
	case phaseRunning:
		b.WriteString(StyleNormal.Render(fmt.Sprintf("%s analyzing with %s...",
			spinnerFrames[a.frame], a.provider.Name())) + "\n")
	case phaseDone:
		if a.Err != nil {
			b.WriteString(StyleError.Render("analysis failed: "+a.Err.Error()) + "\n")
		} else {
			b.WriteString(StyleSuccess.Render("analysis complete") + "\n")
		}
	}

	if a.phase == phasePickRole || a.phase == phasePickTone {
		b.WriteString("\n" + StyleHelpKey.Render("↑/↓") + StyleHelpDesc.Render(" move  ") +
			StyleHelpKey.Render("enter") + StyleHelpDesc.Render(" select  ") +
			StyleHelpKey.Render("q") + StyleHelpDesc.Render(" quit") + "\n")
	}
	return b.String()
}

func (a *App) writeChoices(b *strings.Builder, choices []string) {
	for i, c := range choices {
		if i == a.cursor {
			b.WriteString(StyleItemActive.Render("> "+c) + "\n")
		} else {
			b.WriteString(StyleNormal.Render("  "+c) + "\n")
		}
	}
}
