package cmd

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/opskit/cassdiag/sstable"
)

func TestTableDirName_Format(t *testing.T) {
	name := tableDirName("events")

	if !strings.HasPrefix(name, "events-") {
		t.Errorf("Expected 'events-' prefix, got %q", name)
	}

	id := strings.TrimPrefix(name, "events-")
	if len(id) != 32 {
		t.Errorf("Table id should be 32 hex digits, got %d: %q", len(id), id)
	}
	for _, c := range id {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("Table id contains non-hex character %q: %q", c, id)
			break
		}
	}
}

func TestSeedKeyspace_CreatesScannableTree(t *testing.T) {
	root := t.TempDir()

	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := seedKeyspace(filepath.Join(root, "billing_00"), 3, func() time.Time { return ts })
	if err != nil {
		t.Fatalf("seedKeyspace failed: %v", err)
	}

	// 3 tables plus one snapshot directory, each holding the full
	// component set.
	want := 4 * len(sstableComponents)
	if created != want {
		t.Errorf("created = %d, want %d", created, want)
	}

	summary, err := sstable.CountDataFiles(root, sstable.DataFileName, nil)
	if err != nil {
		t.Fatalf("CountDataFiles failed: %v", err)
	}
	if summary.DataFiles != 4 {
		t.Errorf("Seeded tree holds %d data files, want 4", summary.DataFiles)
	}

	oldest, err := sstable.FindOldest(root, sstable.DataFileName, nil)
	if err != nil {
		t.Fatalf("FindOldest failed: %v", err)
	}
	if oldest == nil {
		t.Fatal("Expected a candidate in the seeded tree")
	}
	if !oldest.Modified.Equal(ts) {
		t.Errorf("Modified = %v, want %v", oldest.Modified, ts)
	}
}
