package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"daybook/internal/adapters/filesystem"
	"daybook/internal/config"
	"daybook/internal/index"
)

var (
	vaultPath string
	source    *filesystem.Source
	builder   *index.Builder
)

var rootCmd = &cobra.Command{
	Use:   "daybook-cli",
	Short: "CLI for navigating daily note vaults",
	Long: `daybook-cli indexes a vault of daily markdown notes laid out as
<year>/<month>. <name>/<day> <name>.md (e.g. 2025/12. Dec/29 Mon.md)
and answers temporal-navigation queries against it.

It provides commands to resolve the note for a date, step to the
previous or next note, print a gap-collapsed timeline, create missing
notes, and keep a persistent index in sync.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		source = filesystem.NewSource(vaultPath)
		builder = index.NewBuilder(source)
		if _, err := builder.Rebuild(); err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}

// GetSource returns the initialized note source
func GetSource() *filesystem.Source {
	return source
}

// GetBuilder returns the initialized index builder
func GetBuilder() *index.Builder {
	return builder
}
