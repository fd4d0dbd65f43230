package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/sqlite"
	"daybook/internal/adapters/watch"
	"daybook/internal/application/commands"
	"daybook/internal/ports"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and rebuild the index on changes",
	Long: `Watch the vault for created, renamed, or removed markdown files
and rebuild the index after each change. With --sync the persistent
index is mirrored as well. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		syncMirror, _ := cmd.Flags().GetBool("sync")

		var mirror ports.NoteIndex
		if syncMirror {
			idx := sqlite.NewIndex()
			if err := idx.Open(GetSource().VaultPath()); err != nil {
				return fmt.Errorf("failed to open note index: %w", err)
			}
			defer idx.Close()
			mirror = idx
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rebuild := func() {
			if mirror != nil {
				result, err := commands.NewSyncCommand(GetBuilder(), mirror).Execute(ctx)
				if err != nil {
					log.Printf("sync failed: %v", err)
					return
				}
				log.Printf("indexed %d notes, mirrored %d in %v",
					result.Index.NotesIndexed,
					result.Sync.NotesWritten,
					result.Index.Duration.Round(time.Millisecond))
				return
			}
			stats, err := commands.NewRebuildCommand(GetBuilder()).Execute(ctx)
			if err != nil {
				log.Printf("rebuild failed: %v", err)
				return
			}
			log.Printf("indexed %d notes from %d files in %v",
				stats.NotesIndexed, stats.FilesListed,
				stats.Duration.Round(time.Millisecond))
		}

		watcher, err := watch.New(GetSource().VaultPath(), rebuild)
		if err != nil {
			return fmt.Errorf("failed to watch vault: %w", err)
		}

		log.Printf("watching %s", GetSource().VaultPath())
		rebuild()
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().Bool("sync", false, "mirror the persistent index after each rebuild")
	rootCmd.AddCommand(watchCmd)
}
