package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/studiz/internal/app"
	"github.com/abhisek/studiz/internal/history"
	"github.com/abhisek/studiz/internal/llm"
	"github.com/abhisek/studiz/internal/profile"
	"github.com/abhisek/studiz/internal/store"
	"github.com/abhisek/studiz/internal/studygen"
	"github.com/abhisek/studiz/internal/ui/theme"
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

	kv := st.KV()
	opts := app.Options{
		History: history.New(kv),
		Profile: profile.New(kv),
		Theme:   theme.NewService(kv),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMEvents())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generation features will be unavailable.")
	} else {
		opts.Generator = studygen.New(provider, studygen.DefaultConfig())
	}

	return app.Run(opts)
}
