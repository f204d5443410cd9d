package cmd

import (
	"errors"
	"io"
	"net"
	"strings"
)

// isConnectionLost distinguishes a dead transport from a fault confined to a
// single command's channel. The former aborts the batch; the latter is
// recorded and execution continues. The checks cover what x/crypto/ssh
// surfaces when the underlying connection goes away mid-session.
func isConnectionLost(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errConnectionLost) || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "use of closed network connection") ||
		strings.Contains(msg, "connection reset by peer") ||
		strings.Contains(msg, "broken pipe")
}
