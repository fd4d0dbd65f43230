package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/application"
	"daybook/internal/application/commands"
)

var findCmd = &cobra.Command{
	Use:   "find <date>",
	Short: "Resolve the daily note for a date",
	Long: `Resolve the vault path of the daily note for a date.

Examples:
  daybook-cli find 2025-03-07
  daybook-cli find today`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := application.ParseDay(args[0])
		if err != nil {
			return err
		}

		ref, err := commands.NewFindNoteCommand(GetBuilder(), date).Execute(context.Background())
		if errors.Is(err, application.ErrNotFound) {
			fmt.Printf("No note for %s\n", date.Format("2006-01-02"))
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(ref.ID)
		return nil
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Resolve today's daily note",
	RunE: func(cmd *cobra.Command, args []string) error {
		createMissing, _ := cmd.Flags().GetBool("create")
		ctx := context.Background()

		date, err := application.ParseDay("today")
		if err != nil {
			return err
		}

		ref, err := commands.NewFindNoteCommand(GetBuilder(), date).Execute(ctx)
		if errors.Is(err, application.ErrNotFound) {
			if !createMissing {
				fmt.Printf("No note for %s\n", date.Format("2006-01-02"))
				return nil
			}
			result, err := commands.NewCreateNoteCommand(GetSource(), GetBuilder(), date).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Note.ID)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(ref.ID)
		return nil
	},
}

func init() {
	todayCmd.Flags().Bool("create", false, "create today's note if it does not exist")
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(todayCmd)
}
