package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A nil underlying client must fail session creation rather than panic; the
// dial stub used across tests returns nil clients on purpose.
func TestSSHClientWrapper_NilClient(t *testing.T) {
	w := sshClientWrapper{}
	_, err := w.NewSession()
	require.Error(t, err)
	require.NoError(t, w.Close())
}
