package sstable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DataFileName is the SSTable component file holding the row data. It is the
// file the diagnostic commands look for by default.
const DataFileName = "Data.db"

// DefaultExcludedKeyspaces lists the keyspaces Cassandra manages internally.
// Their SSTables churn constantly and are almost never what an operator is
// asking about, so the scan commands skip them unless told otherwise.
var DefaultExcludedKeyspaces = []string{
	"system",
	"system_schema",
	"system_auth",
	"system_distributed",
	"system_traces",
	"system_views",
}

// Candidate is a discovered data file together with its modification time.
type Candidate struct {
	Path     string    // absolute path of the data file
	Modified time.Time // modification time as reported by the filesystem
}

// FindOldest walks the data directory rooted at root and returns the single
// data file named target with the oldest modification time, skipping every
// keyspace named in excluded. It returns nil when no matching file exists.
//
// Ties on modification time go to the first file encountered; directory
// listings are sorted, so repeated runs over a static tree report the same
// file.
//
// A file that disappears between listing and stat is skipped and the scan
// continues. A directory that cannot be listed aborts the scan: the returned
// error matches ErrPermissionDenied for permission failures and wraps the
// cause for anything else.
func FindOldest(root, target string, excluded []string) (*Candidate, error) {
	root, err := absRoot(root)
	if err != nil {
		return nil, err
	}

	var oldest *Candidate
	err = forEachTable(root, excludeSet(excluded), func(_, tablePath string) error {
		return filepath.WalkDir(tablePath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return wrapListError(path, err)
			}
			if d.IsDir() || d.Name() != target {
				return nil
			}
			info, err := os.Stat(path)
			if err != nil {
				// The file vanished between listing and stat, or its
				// metadata is unreadable. A node compacting or rotating
				// SSTables does this routinely; skip it.
				return nil
			}
			if oldest == nil || info.ModTime().Before(oldest.Modified) {
				oldest = &Candidate{Path: path, Modified: info.ModTime()}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return oldest, nil
}

// absRoot resolves root to an absolute path and verifies it is an existing
// directory.
func absRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return "", errors.Join(ErrRootNotFound, fmt.Errorf("data directory %s does not exist", abs))
	}
	if err != nil {
		return "", wrapListError(abs, err)
	}
	if !info.IsDir() {
		return "", errors.Join(ErrRootNotDirectory, fmt.Errorf("%s is not a directory", abs))
	}
	return abs, nil
}

func excludeSet(excluded []string) map[string]bool {
	set := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		set[name] = true
	}
	return set
}

// forEachTable lists the keyspace directories under root, skipping those in
// the exclusion set, and calls fn once per table directory. Stray regular
// files at either level are ignored. Any error from fn aborts the iteration.
func forEachTable(root string, skip map[string]bool, fn func(keyspace, tablePath string) error) error {
	keyspaces, err := os.ReadDir(root)
	if err != nil {
		return wrapListError(root, err)
	}
	for _, ks := range keyspaces {
		if !ks.IsDir() || skip[ks.Name()] {
			continue
		}
		ksPath := filepath.Join(root, ks.Name())
		tables, err := os.ReadDir(ksPath)
		if err != nil {
			return wrapListError(ksPath, err)
		}
		for _, table := range tables {
			if !table.IsDir() {
				continue
			}
			if err := fn(ks.Name(), filepath.Join(ksPath, table.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

func wrapListError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return errors.Join(ErrPermissionDenied, fmt.Errorf("listing %s: %w", path, err))
	}
	return fmt.Errorf("scanning %s: %w", path, err)
}
