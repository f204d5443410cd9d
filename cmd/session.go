package cmd

// session is a minimal interface for running one command and closing.
// Run returns the captured stdout and stderr streams separately.
type session interface {
	Run(cmd string) (stdout, stderr []byte, err error)
	Close() error
}
