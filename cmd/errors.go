package cmd

import "errors"

// Sentinel errors shared across the command surface. Per-command faults are
// never represented as these; they are captured into executionResult records.
var (
	// errCommandsFailed signals that the batch ran but not every command
	// succeeded. Execute translates it into exit code 1 without re-printing.
	errCommandsFailed = errors.New("some commands failed")

	// errNoAuthMethod means neither a password nor a key was available.
	errNoAuthMethod = errors.New("no authentication method provided (password or key)")

	// errConnectionLost marks a mid-run transport failure that aborts the
	// remaining command sequence.
	errConnectionLost = errors.New("ssh connection lost")
)
