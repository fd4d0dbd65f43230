package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/application"
	"daybook/internal/application/commands"
)

var createCmd = &cobra.Command{
	Use:   "create [date]",
	Short: "Create a daily note",
	Long: `Create the daily note for a date, including its year and month
directories. The date defaults to today. Creating an existing note is
a no-op.

Examples:
  daybook-cli create
  daybook-cli create 2025-03-07
  daybook-cli create tomorrow`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := "today"
		if len(args) == 1 {
			arg = args[0]
		}
		date, err := application.ParseDay(arg)
		if err != nil {
			return err
		}

		create := commands.NewCreateNoteCommand(GetSource(), GetBuilder(), date)
		if err := create.Validate(); err != nil {
			return err
		}
		result, err := create.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
