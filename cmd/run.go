package cmd

import (
	"fmt"
	"os"

	"github.com/avani/mathflow/internal/app"
	"github.com/avani/mathflow/internal/attempt"
	"github.com/avani/mathflow/internal/llm"
	"github.com/avani/mathflow/internal/notify"
	"github.com/avani/mathflow/internal/quiz"
	"github.com/avani/mathflow/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	userID, _ := cmd.Flags().GetString("user")
	styleFlag, _ := cmd.Flags().GetString("style")
	hint := quiz.StyleVisual
	if styleFlag == "auditory" {
		hint = quiz.StyleAuditory
	}

	// A missing provider is not fatal: synthesis degrades to the built-in
	// question bank and explanations to the template.
	var provider llm.Provider
	p, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Questions will come from the built-in bank.")
	} else {
		provider = p
	}

	return app.Run(app.Options{
		Ledger:      st.Ledger(),
		Synthesizer: quiz.NewSynthesizer(provider, quiz.DefaultConfig()),
		Explainer:   quiz.NewExplainer(provider, quiz.DefaultExplainConfig()),
		Hub:         notify.NewHub(),
		UserID:      userID,
		StyleHint:   hint,
		AttemptCfg:  attempt.DefaultConfig(),
	})
}
