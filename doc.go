// Package main provides the cassdiag command-line interface.
//
// cassdiag is a read-only diagnostic tool for Cassandra-style data
// directories. It walks the on-disk keyspace/table hierarchy without
// talking to the node itself, which makes it safe to run against a live
// cluster member while compaction is going on.
//
// The main binary supports multiple subcommands:
//   - oldest: Find the oldest SSTable data file across all keyspaces
//   - count: Count SSTable data files per keyspace
//   - seed: Generate a synthetic data directory for testing
package main
