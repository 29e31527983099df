package cmd

import (
	"fmt"

	"github.com/arvindh/recallo/internal/store"
	"github.com/spf13/cobra"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage cards across decks",
}

var cardsArchiveCmd = &cobra.Command{
	Use:   "archive <card-id>...",
	Short: "Archive cards so they stop appearing in study sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBulkCards(cmd, args, store.BulkArchive)
	},
}

var cardsUnarchiveCmd = &cobra.Command{
	Use:   "unarchive <card-id>...",
	Short: "Bring archived cards back into study sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBulkCards(cmd, args, store.BulkUnarchive)
	},
}

var cardsResetCmd = &cobra.Command{
	Use:   "reset <card-id>...",
	Short: "Clear cards' spaced-repetition schedule so they are due again",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBulkCards(cmd, args, store.BulkResetSchedule)
	},
}

func runBulkCards(cmd *cobra.Command, cardIDs []string, op store.BulkOp) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	n, err := st.Decks().BulkUpdateCards(cmd.Context(), cardIDs, op)
	if err != nil {
		return fmt.Errorf("%s cards: %w", op, err)
	}
	fmt.Printf("Updated %d of %d cards.\n", n, len(cardIDs))
	return nil
}

func init() {
	cardsCmd.AddCommand(cardsArchiveCmd)
	cardsCmd.AddCommand(cardsUnarchiveCmd)
	cardsCmd.AddCommand(cardsResetCmd)
}
