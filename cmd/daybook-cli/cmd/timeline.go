package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daybook/internal/application"
	"daybook/internal/application/commands"
	"daybook/internal/domain"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the vault timeline",
	Long: `Print every daily note oldest first, with gap markers summarizing
runs of missing days between consecutive notes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		activeArg, _ := cmd.Flags().GetString("active")

		var active time.Time
		if activeArg != "" {
			parsed, err := application.ParseDay(activeArg)
			if err != nil {
				return err
			}
			active = parsed
		}
		current := domain.DayOf(time.Now().UTC())

		items, err := commands.NewTimelineCommand(GetBuilder(), active, current).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No dated notes in the vault")
			return nil
		}

		for _, item := range items {
			printNavItem(item)
		}
		return nil
	},
}

func printNavItem(item domain.NavItem) {
	if item.Kind == domain.NavGap {
		noun := "days"
		if item.GapDays == 1 {
			noun = "day"
		}
		fmt.Printf("           ·· %d missing %s\n", item.GapDays, noun)
		return
	}

	marker := " "
	switch {
	case item.IsActive:
		marker = "*"
	case item.IsCurrent:
		marker = ">"
	}
	fmt.Printf("%s%s  %s\n", marker, item.Date.Format("2006-01-02"), item.Note.ID)
}

func init() {
	timelineCmd.Flags().String("active", "", "date to mark as active in the output")
	rootCmd.AddCommand(timelineCmd)
}
