package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/sqlite"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show vault statistics",
	Long: `Show note counts for the in-memory index and the persistent
mirror. A mismatch means the mirror is stale; run "sync" to refresh it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		indexed := GetBuilder().Indexed()
		fmt.Printf("Indexed notes:  %d\n", len(indexed))
		if len(indexed) > 0 {
			fmt.Printf("Oldest note:    %s\n", indexed[0].Date.Format("2006-01-02"))
			fmt.Printf("Newest note:    %s\n", indexed[len(indexed)-1].Date.Format("2006-01-02"))
		}

		mirror := sqlite.NewIndex()
		if err := mirror.Open(GetSource().VaultPath()); err != nil {
			return fmt.Errorf("failed to open note index: %w", err)
		}
		defer mirror.Close()

		count, err := mirror.Count()
		if err != nil {
			return err
		}
		fmt.Printf("Mirrored notes: %d\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
