package cmd

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// loadSigner loads a private key with optional passphrase
func loadSigner(path, passphrase string) (ssh.Signer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(b, []byte(passphrase))
	}
	// Try without passphrase first
	s, err := ssh.ParsePrivateKey(b)
	if err == nil {
		return s, nil
	}
	if _, ok := err.(*ssh.PassphraseMissingError); ok {
		return nil, fmt.Errorf("private key is encrypted; provide --passphrase or SSHEXEC_PASSPHRASE")
	}
	return nil, err
}
