package cmd

import (
	"fmt"
	"os"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/store"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <deck-id>",
	Short: "Export a deck to JSON",
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

		d, err := st.Decks().DeckByID(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load deck: %w", err)
		}

		data, err := deck.Encode(d)
		if err != nil {
			return fmt.Errorf("encode deck: %w", err)
		}

		if exportOut == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return fmt.Errorf("write deck file: %w", err)
		}
		fmt.Printf("Exported %q to %s\n", d.Title, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to file instead of stdout")
}
