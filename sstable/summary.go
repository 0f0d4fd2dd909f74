package sstable

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

type (
	// KeyspaceCount tallies the data files found under one keyspace.
	KeyspaceCount struct {
		Keyspace  string `json:"keyspace"`
		DataFiles int    `json:"data_files"`
		Bytes     int64  `json:"bytes"`
	}
	// Summary aggregates per-keyspace tallies for a whole data directory.
	Summary struct {
		Keyspaces []KeyspaceCount `json:"keyspaces"`
		DataFiles int             `json:"data_files"`
		Bytes     int64           `json:"bytes"`
	}
)

// CountDataFiles walks the data directory rooted at root and tallies files
// named target per keyspace, skipping every keyspace named in excluded. It
// uses the same traversal and failure policy as FindOldest: vanished files
// are skipped, unlistable directories abort the scan.
//
// Keyspaces in the returned Summary are sorted by name. Keyspaces with no
// matching files are omitted.
func CountDataFiles(root, target string, excluded []string) (Summary, error) {
	var s Summary
	root, err := absRoot(root)
	if err != nil {
		return s, err
	}

	perKeyspace := make(map[string]*KeyspaceCount)
	err = forEachTable(root, excludeSet(excluded), func(keyspace, tablePath string) error {
		return filepath.WalkDir(tablePath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return wrapListError(path, err)
			}
			if d.IsDir() || d.Name() != target {
				return nil
			}
			info, err := os.Stat(path)
			if err != nil {
				return nil
			}
			kc := perKeyspace[keyspace]
			if kc == nil {
				kc = &KeyspaceCount{Keyspace: keyspace}
				perKeyspace[keyspace] = kc
			}
			kc.DataFiles++
			kc.Bytes += info.Size()
			return nil
		})
	})
	if err != nil {
		return s, err
	}

	for _, kc := range perKeyspace {
		s.Keyspaces = append(s.Keyspaces, *kc)
		s.DataFiles += kc.DataFiles
		s.Bytes += kc.Bytes
	}
	sort.Slice(s.Keyspaces, func(i, j int) bool {
		return s.Keyspaces[i].Keyspace < s.Keyspaces[j].Keyspace
	})
	return s, nil
}
