package cmd

// faultExitStatus is the sentinel exit status recorded when a command could
// not be executed at all (channel fault), as opposed to a command that ran
// and returned a non-zero status.
const faultExitStatus = -1

// executionResult records the outcome of a single command. It is appended to
// the batch result list and never mutated afterwards.
type executionResult struct {
	Position   int
	Command    string
	ExitStatus int
	Stdout     []byte
	Stderr     []byte
}

// succeeded reports whether the command ran and exited zero.
func (r executionResult) succeeded() bool { return r.ExitStatus == 0 }
