// Package cmd implements the sshexec command-line interface.
//
// The package wires the cobra root command that drives a batch run (connect
// once, execute every command from a plain-text file in order, summarize) and
// the verify subcommand used to sanity-check a commands file and the SSH
// connection without executing anything.
//
// New contributors should start with rootCmd.go for the main flow,
// runBatch.go for the sequential execution loop and its fatal/non-fatal
// fault split, and dialSSH.go for how authentication and host key
// verification are assembled.
package cmd
