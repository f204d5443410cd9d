// Package sshserv provides a minimal in-process SSH server used by the
// end-to-end tests. It accepts any user with no authentication and emulates
// exec sessions with a tiny fixed command set.
package sshserv

import (
	"crypto/rand"
	"crypto/rsa"
	"net"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// Start launches the test SSH server on listenAddr (use 127.0.0.1:0 for an
// ephemeral port). For every exec request the emulated command set is:
//
//	echo <text>    write <text>\n to stdout, exit 0
//	stderr <text>  write <text>\n to stderr, exit 0
//	fail           write "failure\n" to stderr, exit 1
//	drop           close the whole connection without an exit status
//	anything else  write "command not found\n" to stderr, exit 127
//
// Returns the bound address and a stop function that closes the listener and
// waits for shutdown.
func Start(listenAddr string) (string, func(), error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return "", nil, err
	}

	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		priv, _ := rsa.GenerateKey(rand.Reader, 2048)
		signer, _ := ssh.NewSignerFromKey(priv)
		cfg := &ssh.ServerConfig{NoClientAuth: true}
		cfg.AddHostKey(signer)

		for {
			_ = ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
			conn, err := ln.Accept()
			select {
			case <-stopCh:
				if conn != nil {
					_ = conn.Close()
				}
				return
			default:
			}
			if err != nil {
				if ne, ok := err.(net.Error); ok && ne.Timeout() {
					continue
				}
				continue
			}
			go handleConn(conn, cfg)
		}
	}()

	stop := func() {
		close(stopCh)
		_ = ln.Close()
		<-done
	}
	return ln.Addr().String(), stop, nil
}

func handleConn(raw net.Conn, cfg *ssh.ServerConfig) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, chReqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go handleSession(sc, c, chReqs)
	}
}

// execPayload matches the wire format of an "exec" channel request.
type execPayload struct {
	Command string
}

// exitPayload matches the wire format of an "exit-status" channel request.
type exitPayload struct {
	Status uint32
}

func handleSession(sc *ssh.ServerConn, ch ssh.Channel, in <-chan *ssh.Request) {
	for req := range in {
		switch req.Type {
		case "exec":
			var p execPayload
			_ = ssh.Unmarshal(req.Payload, &p)
			_ = req.Reply(true, nil)
			runEmulated(sc, ch, p.Command)
			return
		case "env":
			_ = req.Reply(true, nil)
		default:
			_ = req.Reply(false, nil)
		}
	}
	_ = ch.Close()
}

func runEmulated(sc *ssh.ServerConn, ch ssh.Channel, command string) {
	status := uint32(0)
	switch {
	case strings.HasPrefix(command, "echo "):
		_, _ = ch.Write([]byte(strings.TrimPrefix(command, "echo ") + "\n"))
	case strings.HasPrefix(command, "stderr "):
		_, _ = ch.Stderr().Write([]byte(strings.TrimPrefix(command, "stderr ") + "\n"))
	case command == "fail":
		_, _ = ch.Stderr().Write([]byte("failure\n"))
		status = 1
	case command == "drop":
		// Simulate a dying transport: tear down the connection so the client
		// never receives an exit status.
		_ = sc.Close()
		return
	default:
		_, _ = ch.Stderr().Write([]byte("command not found\n"))
		status = 127
	}
	_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(exitPayload{Status: status}))
	_ = ch.Close()
}
