// Package sstable provides read-only scanning over Cassandra-style data
// directories.
//
// A Cassandra data directory is a three-level hierarchy: the root holds one
// directory per keyspace, each keyspace holds one directory per table
// (usually suffixed with the table's UUID), and a table directory holds the
// SSTable component files at arbitrary depth (snapshots and backups nest
// further subdirectories).
//
// Key Components:
//
// Oldest-file scan:
//   - FindOldest walks the hierarchy and reduces over modification times
//     with a running minimum, so the whole tree is never held in memory
//   - Keyspaces named in the exclusion set are skipped with their entire
//     subtree; DefaultExcludedKeyspaces covers Cassandra's system keyspaces
//
// Counting:
//   - CountDataFiles tallies data files and bytes per keyspace using the
//     same traversal and exclusion rules
//
// Failure Policy:
//   - A file that vanishes between listing and stat is skipped silently;
//     a live node compacting or rotating SSTables does this routinely
//   - A directory that cannot be listed aborts the whole scan, since a
//     partial answer could be mistaken for the true one. Permission
//     failures are distinguishable via ErrPermissionDenied
//
// All operations are strictly read-only and single-threaded.
package sstable
