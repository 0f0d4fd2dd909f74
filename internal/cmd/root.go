package cmd

import (
	"github.com/opskit/cassdiag/version"
	"github.com/spf13/cobra"
)

// defaultDataPath is where Cassandra data directories live on the hosts this
// tool was written for. Every command accepts an override.
const defaultDataPath = "/mnt/cassandra"

// timeLayout renders modification times with whole-second precision in the
// operator's local time.
const timeLayout = "2006-01-02 15:04:05"

// NewRootCmd creates and returns the root cobra command for the cassdiag CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cassdiag",
		Short: "cassdiag - Read-only diagnostics for Cassandra data directories",
		Long: `cassdiag inspects the on-disk data directory of a Cassandra node without
connecting to the node itself. All commands are strictly read-only and safe
to run while the node is live and compacting.

Use subcommands to perform different operations:
  - oldest: Find the oldest SSTable data file across all keyspaces
  - count: Count SSTable data files per keyspace
  - seed: Generate a synthetic data directory for testing`,
		Version: version.GetFullVersion(),
	}

	groupDiagnostics := "diagnostics"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupDiagnostics,
		Title: "Diagnostic Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	oldestCmd := NewOldestCmd()
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()

	oldestCmd.GroupID = groupDiagnostics
	countCmd.GroupID = groupDiagnostics
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(oldestCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
