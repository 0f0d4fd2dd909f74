package cmd

import (
	"fmt"

	"github.com/opskit/cassdiag/sstable"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the cassdiag CLI.
// It tallies SSTable data files per keyspace.
func NewCountCmd() *cobra.Command {
	var (
		path          string
		target        string
		exclude       []string
		includeSystem bool
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count SSTable data files per keyspace",
		Long: `Count SSTable data files and bytes per keyspace in a data directory.

Uses the same traversal and exclusion rules as the oldest command, so the
numbers describe exactly the set of files that scan would consider.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				path = args[0]
			}
			if includeSystem {
				exclude = nil
			}
			runCount(path, target, exclude)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", defaultDataPath, "Path to the Cassandra data directory")
	cmd.Flags().StringVarP(&target, "target", "t", sstable.DataFileName, "Data file name to count")
	cmd.Flags().StringSliceVar(&exclude, "exclude", sstable.DefaultExcludedKeyspaces, "Keyspaces to exclude from the count")
	cmd.Flags().BoolVar(&includeSystem, "include-system", false, "Count system keyspaces as well")

	return cmd
}

func runCount(path, target string, exclude []string) {
	summary, err := sstable.CountDataFiles(path, target, exclude)
	if err != nil {
		failScan(path, err)
	}

	if summary.DataFiles == 0 {
		fmt.Printf("No %s files were found under %s\n", target, path)
		return
	}

	for _, kc := range summary.Keyspaces {
		fmt.Printf("  %-32s %6d files  %12d bytes\n", kc.Keyspace, kc.DataFiles, kc.Bytes)
	}
	fmt.Printf("Total: %d data files, %d bytes across %d keyspaces\n",
		summary.DataFiles, summary.Bytes, len(summary.Keyspaces))
}
