package cmd

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// dialSSH establishes the SSH client connection. Authentication methods are
// assembled in priority order: private key (when key auth is selected),
// password, then the SSH agent when SSH_AUTH_SOCK is present. Host keys are
// verified against known_hosts unless strict verification is disabled.
func dialSSH(params connectionParameters) (*ssh.Client, error) {
	auths := []ssh.AuthMethod{}

	if params.KeyPath != "" {
		signer, err := loadSigner(params.KeyPath, params.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("load key: %w", err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	if params.Password != "" {
		auths = append(auths, ssh.Password(params.Password))
	}

	// Try SSH agent if available
	if a := os.Getenv("SSH_AUTH_SOCK"); a != "" {
		if conn, err := net.Dial("unix", a); err == nil {
			ag := agent.NewClient(conn)
			auths = append(auths, ssh.PublicKeysCallback(ag.Signers))
		}
	}

	if len(auths) == 0 {
		return nil, errNoAuthMethod
	}

	var hostKeyCB ssh.HostKeyCallback
	if params.StrictHost {
		// Use the known_hosts file if present; else fail closed
		if _, err := os.Stat(params.KnownHosts); err == nil {
			cb, err := knownhosts.New(params.KnownHosts)
			if err != nil {
				return nil, fmt.Errorf("known_hosts: %w", err)
			}
			hostKeyCB = cb
		} else {
			return nil, fmt.Errorf("known_hosts file not found at %s and strict-host-key is enabled", params.KnownHosts)
		}
	} else {
		hostKeyCB = ssh.InsecureIgnoreHostKey()
	}

	cfg := &ssh.ClientConfig{
		User:            params.User,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         params.ConnTimeout,
	}

	target := params.address()

	// Use explicit net.Dialer for connection timeout
	d := net.Dialer{Timeout: params.ConnTimeout}
	conn, err := d.Dial("tcp", target)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, target, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}
