package cmd

import (
	"errors"
	"net"
	"strconv"
	"time"
)

// connectionParameters carries everything needed to open the SSH transport.
// Exactly one credential form is active: an empty password together with a
// non-empty key path selects key authentication.
type connectionParameters struct {
	Host        string
	Port        int
	User        string
	Password    string
	KeyPath     string
	Passphrase  string
	KnownHosts  string
	StrictHost  bool
	ConnTimeout time.Duration
}

// address renders host:port for dialing, defaulting the port to 22.
func (p connectionParameters) address() string {
	port := p.Port
	if port == 0 {
		port = 22
	}
	return net.JoinHostPort(p.Host, strconv.Itoa(port))
}

// useKeyAuth reports whether key-based authentication is selected.
func (p connectionParameters) useKeyAuth() bool {
	return p.Password == "" && p.KeyPath != ""
}

// validate enforces the minimum parameter set before any dial attempt.
func (p connectionParameters) validate() error {
	if p.Host == "" {
		return errors.New("host is required")
	}
	if p.User == "" {
		return errors.New("user is required for SSH authentication")
	}
	return nil
}
