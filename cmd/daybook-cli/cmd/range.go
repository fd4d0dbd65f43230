package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/sqlite"
	"daybook/internal/application"
)

var rangeCmd = &cobra.Command{
	Use:   "range <from> <to>",
	Short: "List notes between two dates",
	Long: `List every daily note between two dates inclusive, oldest first.
Reads the persistent index; run "sync" first to refresh it.

Examples:
  daybook-cli range 2025-03-01 2025-03-31
  daybook-cli range 2025-01-01 today`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := application.ParseDay(args[0])
		if err != nil {
			return err
		}
		to, err := application.ParseDay(args[1])
		if err != nil {
			return err
		}
		if to.Before(from) {
			from, to = to, from
		}

		mirror := sqlite.NewIndex()
		if err := mirror.Open(GetSource().VaultPath()); err != nil {
			return fmt.Errorf("failed to open note index: %w", err)
		}
		defer mirror.Close()

		notes, err := mirror.NotesBetween(from, to)
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Printf("No notes between %s and %s\n",
				from.Format("2006-01-02"), to.Format("2006-01-02"))
			return nil
		}

		for _, note := range notes {
			fmt.Printf("%s  %s\n", note.Date.Format("2006-01-02"), note.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}
