package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptPassword interactively reads a password from the terminal without
// echo. It is only called when no password and no key were provided.
func promptPassword(user, host string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no password or key provided and stdin is not a terminal")
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s@%s password: ", user, host)
	b, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
