package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/sqlite"
	"daybook/internal/application/commands"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the vault index into the local database",
	Long: `Rebuild the in-memory index from the vault and mirror every dated
note into the persistent SQLite index used by range queries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mirror := sqlite.NewIndex()
		if err := mirror.Open(GetSource().VaultPath()); err != nil {
			return fmt.Errorf("failed to open note index: %w", err)
		}
		defer mirror.Close()

		result, err := commands.NewSyncCommand(GetBuilder(), mirror).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Indexed %d notes from %d files in %v\n",
			result.Index.NotesIndexed,
			result.Index.FilesListed,
			result.Index.Duration.Round(time.Millisecond))
		fmt.Printf("Mirrored %d notes in %v\n",
			result.Sync.NotesWritten,
			result.Sync.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
