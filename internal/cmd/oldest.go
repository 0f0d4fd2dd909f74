package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/opskit/cassdiag/sstable"
	"github.com/spf13/cobra"
)

// NewOldestCmd creates and returns the oldest subcommand for the cassdiag CLI.
// It locates the single oldest SSTable data file across all keyspaces.
func NewOldestCmd() *cobra.Command {
	var (
		path          string
		target        string
		exclude       []string
		includeSystem bool
	)

	cmd := &cobra.Command{
		Use:   "oldest [PATH]",
		Short: "Find the oldest SSTable data file across all keyspaces",
		Long: `Find the single oldest SSTable data file in a Cassandra data directory.

The scan walks every keyspace and table directory under the data directory,
including snapshots and backups at any depth, and reports the data file with
the oldest modification time. System keyspaces are excluded by default since
their SSTables churn constantly.

The oldest data file on a node is a quick proxy for how long ago the oldest
unreclaimed data was written, which is useful when chasing disks that never
shrink despite TTLs and tombstone GC.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				path = args[0]
			}
			if includeSystem {
				exclude = nil
			}
			runOldest(path, target, exclude)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", defaultDataPath, "Path to the Cassandra data directory")
	cmd.Flags().StringVarP(&target, "target", "t", sstable.DataFileName, "Data file name to search for")
	cmd.Flags().StringSliceVar(&exclude, "exclude", sstable.DefaultExcludedKeyspaces, "Keyspaces to exclude from the scan")
	cmd.Flags().BoolVar(&includeSystem, "include-system", false, "Scan system keyspaces as well")

	return cmd
}

func runOldest(path, target string, exclude []string) {
	fmt.Printf("Scanning for the oldest %s file under: %s\n\n", target, path)

	oldest, err := sstable.FindOldest(path, target, exclude)
	if err != nil {
		failScan(path, err)
	}

	if oldest == nil {
		if len(exclude) > 0 {
			fmt.Printf("No %s files were found under %s (excluded keyspaces: %s)\n",
				target, path, strings.Join(exclude, ", "))
		} else {
			fmt.Printf("No %s files were found under %s\n", target, path)
		}
		return
	}

	fmt.Println("--- Oldest SSTable Found Across All Keyspaces ---")
	fmt.Printf("Path: %s\n", oldest.Path)
	fmt.Printf("Modification Time: %s\n", oldest.Modified.Local().Format(timeLayout))
}

// failScan reports a scan failure and exits non-zero. A partial scan could
// silently miss the true answer, so nothing is printed beyond the error.
func failScan(path string, err error) {
	switch {
	case errors.Is(err, sstable.ErrRootNotFound):
		log.Fatalf("Cassandra data directory not found at %s", path)
	case errors.Is(err, sstable.ErrRootNotDirectory):
		log.Fatalf("Path %s is not a directory", path)
	case errors.Is(err, sstable.ErrPermissionDenied):
		log.Fatalf("Permission denied: could not scan directory. Details: %v", err)
	default:
		log.Fatalf("An unexpected error occurred: %v", err)
	}
}
