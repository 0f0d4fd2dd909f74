// Package sstable provides read-only scanning over Cassandra data directories.
package sstable

import "errors"

// Sentinel errors for package sstable.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Configuration errors
	ErrRootNotFound     = errors.New("data directory not found")
	ErrRootNotDirectory = errors.New("data directory path is not a directory")

	// Scan errors
	ErrPermissionDenied = errors.New("permission denied while listing directory")
)
