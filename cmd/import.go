package cmd

import (
	"fmt"
	"os"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a deck from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read deck file: %w", err)
		}

		d, err := deck.Decode(data)
		if err != nil {
			return fmt.Errorf("decode deck: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Decks().CreateDeck(cmd.Context(), d); err != nil {
			return fmt.Errorf("create deck: %w", err)
		}

		fmt.Printf("Imported %q (%d cards) as %s\n", d.Title, len(d.Cards), d.ID)
		return nil
	},
}
