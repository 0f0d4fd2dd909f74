// Package cmd provides the command-line interface implementation for cassdiag.
//
// This package contains all the subcommand implementations for the cassdiag
// CLI tool. It uses the Cobra library for command structure and Fang for
// styled execution.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - oldest: Oldest-SSTable scan across all keyspaces
//   - count: Per-keyspace data file counting
//   - seed: Synthetic data directory generation for testing
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The scanning commands are thin
// glue over the sstable package, which holds the traversal logic.
package cmd
