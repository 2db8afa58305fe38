package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/avani/mathflow/internal/attempt"
	"github.com/avani/mathflow/internal/notify"
	"github.com/avani/mathflow/internal/progress"
	"github.com/avani/mathflow/internal/quiz"
	"github.com/avani/mathflow/internal/tui"
)

// Options wires the UI to its collaborators.
type Options struct {
	Ledger      progress.Ledger
	Synthesizer *quiz.Synthesizer
	Explainer   *quiz.Explainer
	Hub         *notify.Hub
	UserID      string
	StyleHint   quiz.StyleHint
	AttemptCfg  attempt.Config
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model := tui.NewModel(tui.Deps{
		Ledger:      opts.Ledger,
		Synthesizer: opts.Synthesizer,
		Explainer:   opts.Explainer,
		Hub:         opts.Hub,
		UserID:      opts.UserID,
		StyleHint:   opts.StyleHint,
		AttemptCfg:  opts.AttemptCfg,
	})

	p := tea.NewProgram(model)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
