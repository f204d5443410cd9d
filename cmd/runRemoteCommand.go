package cmd

import (
	"errors"

	"golang.org/x/crypto/ssh"
)

// runRemoteCommand executes a single command over a fresh session and returns
// the captured streams plus the remote exit status. A non-zero remote exit is
// a normal outcome (nil error); any returned error is a channel or transport
// fault that prevented the command from completing.
func runRemoteCommand(client sessionClient, cmd string) (stdout, stderr []byte, exitStatus int, err error) {
	sess, err := client.NewSession()
	if err != nil {
		return nil, nil, faultExitStatus, err
	}
	defer func() { _ = sess.Close() }()

	stdout, stderr, err = sess.Run(cmd)
	if err == nil {
		return stdout, stderr, 0, nil
	}
	var ee *ssh.ExitError
	if errors.As(err, &ee) {
		// The command ran; its status is data, not an error.
		return stdout, stderr, ee.ExitStatus(), nil
	}
	return stdout, stderr, faultExitStatus, err
}
