package config

import "os"

const DefaultVaultPath = "~/Documents/notes"

// VaultPath returns the vault path from the DAYBOOK_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("DAYBOOK_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}
