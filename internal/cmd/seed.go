package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the cassdiag CLI.
// It generates a synthetic Cassandra data directory for testing.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath    string
		keyspaceCount int
		tableCount    int
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic data directory for testing",
		Long: `Generate a synthetic Cassandra data directory for testing cassdiag.

Creates keyspace directories containing table directories named in the
Cassandra style (name-<32 hex digit table id>), each holding a set of
SSTable component files with randomized modification times spread over the
past year. Some tables also get a snapshots subdirectory to exercise the
unbounded-depth part of the scan.

The standard system keyspaces are always created with files older than
anything else in the tree, so the default exclusion behavior of the oldest
and count commands is observable against seeded data.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, keyspaceCount, tableCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&keyspaceCount, "keyspaces", "k", 4, "Number of application keyspaces to generate")
	cmd.Flags().IntVarP(&tableCount, "tables", "n", 8, "Number of tables per keyspace")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// sstableComponents are the component files written for every generated
// table. Only one of them matters to the scan commands; the rest make the
// tree look like the real thing.
var sstableComponents = []string{
	"Data.db",
	"Index.db",
	"Summary.db",
	"Statistics.db",
	"Filter.db",
	"TOC.txt",
}

var keyspaceNamePool = []string{
	"inventory", "billing", "sensor_data", "sessions",
	"messaging", "audit_log", "profiles", "metrics",
}

var tableNamePool = []string{
	"events", "readings", "users", "orders",
	"payments", "devices", "queue", "snapshots_meta",
}

// tableDirName builds a Cassandra-style table directory name: the table name
// followed by a hyphen and the table id as 32 hex digits.
func tableDirName(name string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return name + "-" + id
}

func randomOffset(max int64) int64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(max))
	return n.Int64()
}

func runSeed(outputPath string, keyspaceCount, tableCount int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d keyspaces with %d tables each in %s\n", keyspaceCount, tableCount, outputPath)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Application data spans the year after baseTime; system keyspaces get
	// files from the month before it so they are strictly older.
	baseTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	filesCreated := 0
	for i, name := range []string{"system", "system_schema", "system_auth"} {
		ts := baseTime.AddDate(0, 0, -30+i)
		n, err := seedKeyspace(filepath.Join(outputPath, name), 2, func() time.Time { return ts })
		if err != nil {
			log.Fatalf("Failed to seed system keyspace %s: %v", name, err)
		}
		filesCreated += n
	}

	for i := 0; i < keyspaceCount; i++ {
		name := fmt.Sprintf("%s_%02d", keyspaceNamePool[i%len(keyspaceNamePool)], i)
		n, err := seedKeyspace(filepath.Join(outputPath, name), tableCount, func() time.Time {
			return baseTime.
				AddDate(0, 0, int(randomOffset(365))).
				Add(time.Duration(randomOffset(24)) * time.Hour).
				Add(time.Duration(randomOffset(3600)) * time.Second)
		})
		if err != nil {
			log.Fatalf("Failed to seed keyspace %s: %v", name, err)
		}
		filesCreated += n
		if verbose {
			fmt.Printf("Seeded keyspace %s (%d files so far)\n", name, filesCreated)
		}
	}

	fmt.Printf("Successfully created %d files\n", filesCreated)
}

// seedKeyspace creates tableCount table directories under ksPath, each with a
// full set of SSTable component files stamped with a time from nextTime. A
// third of the tables also get a snapshot subdirectory.
func seedKeyspace(ksPath string, tableCount int, nextTime func() time.Time) (int, error) {
	filesCreated := 0
	for i := 0; i < tableCount; i++ {
		tablePath := filepath.Join(ksPath, tableDirName(tableNamePool[i%len(tableNamePool)]))
		n, err := writeComponents(tablePath, nextTime())
		if err != nil {
			return filesCreated, err
		}
		filesCreated += n

		if i%3 == 0 {
			snapPath := filepath.Join(tablePath, "snapshots", uuid.New().String())
			n, err := writeComponents(snapPath, nextTime())
			if err != nil {
				return filesCreated, err
			}
			filesCreated += n
		}
	}
	return filesCreated, nil
}

func writeComponents(dir string, ts time.Time) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	content := uuid.New().String() + "\n"
	for _, component := range sstableComponents {
		path := filepath.Join(dir, component)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return 0, err
		}
		if err := os.Chtimes(path, ts, ts); err != nil {
			return 0, err
		}
	}
	return len(sstableComponents), nil
}
