package cmd

import (
	"fmt"

	"github.com/arvindh/recallo/internal/store"
	"github.com/spf13/cobra"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		list, err := st.Decks().Decks(cmd.Context())
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No decks. Import one with: recallo import <file>")
			return nil
		}

		for _, d := range list {
			fmt.Printf("%s  %-30s  %d cards\n", d.ID, d.Title, d.CardCount())
		}
		return nil
	},
}

var decksDeleteCmd = &cobra.Command{
	Use:   "delete <deck-id>",
	Short: "Delete a deck, its cards and their attempt history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Decks().DeleteDeck(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete deck: %w", err)
		}
		fmt.Printf("Deleted deck %s.\n", args[0])
		return nil
	},
}

func init() {
	decksCmd.AddCommand(decksDeleteCmd)
}
