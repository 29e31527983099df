package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/arvindh/recallo/internal/app"
	"github.com/arvindh/recallo/internal/llm"
	"github.com/arvindh/recallo/internal/scoring"
	"github.com/arvindh/recallo/internal/session"
	"github.com/arvindh/recallo/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the scoring stack, and launches the TUI.
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

	scorer, history := buildScoring(ctx, st)

	sessStore := session.NewStore(scorer, history,
		session.WithPersister(st.Sessions()))
	if err := sessStore.Restore(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not restore previous session:", err)
	}

	return app.Run(app.Options{
		Decks:   st.Decks(),
		Session: sessStore,
	})
}

// buildScoring selects the scoring backend. RECALLO_SCORER accepts
// "sidecar" (default) or "llm". With "llm" the verdict comes from a
// configured LLM provider and attempts live in the local database; the
// sidecar keeps its own history.
func buildScoring(ctx context.Context, st *store.Store) (scoring.Scorer, scoring.History) {
	backend := strings.ToLower(os.Getenv("RECALLO_SCORER"))

	if backend == "llm" {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			}
		}
		provider, err := llm.NewProvider(ctx, cfg, st.CallLog())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM scorer not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to the local scoring sidecar.")
		} else {
			attempts := st.Attempts()
			judge := scoring.NewJudge(provider)
			return scoring.WithStore(judge, attempts), attempts
		}
	}

	client := scoring.NewSidecarClient(scoring.DefaultSidecarConfig())
	go func() {
		// Loading the embedding model takes a while; start early so the
		// first answer does not pay for it.
		_ = client.WarmModel(context.Background())
	}()
	return client, client
}
