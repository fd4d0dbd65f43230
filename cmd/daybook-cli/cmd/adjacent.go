package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/application"
	"daybook/internal/application/commands"
	"daybook/internal/index"
)

var prevCmd = &cobra.Command{
	Use:   "prev [date]",
	Short: "Find the newest note before a date",
	Long: `Find the newest daily note strictly before a date.
The date defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdjacent(args, index.Previous)
	},
}

var nextCmd = &cobra.Command{
	Use:   "next [date]",
	Short: "Find the oldest note after a date",
	Long: `Find the oldest daily note strictly after a date.
The date defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdjacent(args, index.Next)
	},
}

func runAdjacent(args []string, dir index.Adjacency) error {
	arg := "today"
	if len(args) == 1 {
		arg = args[0]
	}
	date, err := application.ParseDay(arg)
	if err != nil {
		return err
	}

	ref, err := commands.NewAdjacentNoteCommand(GetBuilder(), date, dir).Execute(context.Background())
	if errors.Is(err, application.ErrNotFound) {
		if dir == index.Previous {
			fmt.Printf("No note before %s\n", date.Format("2006-01-02"))
		} else {
			fmt.Printf("No note after %s\n", date.Format("2006-01-02"))
		}
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(ref.ID)
	return nil
}

func init() {
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(nextCmd)
}
