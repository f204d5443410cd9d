package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectionParameters_Address(t *testing.T) {
	p := connectionParameters{Host: "example.com"}
	require.Equal(t, "example.com:22", p.address())

	p.Port = 2022
	require.Equal(t, "example.com:2022", p.address())

	// IPv6 hosts are bracketed
	p = connectionParameters{Host: "::1", Port: 22}
	require.Equal(t, "[::1]:22", p.address())
}

// TestConnectionParameters_UseKeyAuth verifies the credential selection rule:
// empty password plus a key path means key authentication.
func TestConnectionParameters_UseKeyAuth(t *testing.T) {
	require.True(t, connectionParameters{KeyPath: "/k"}.useKeyAuth())
	require.False(t, connectionParameters{Password: "pw", KeyPath: "/k"}.useKeyAuth())
	require.False(t, connectionParameters{Password: "pw"}.useKeyAuth())
	require.False(t, connectionParameters{}.useKeyAuth())
}

func TestConnectionParameters_Validate(t *testing.T) {
	require.Error(t, connectionParameters{User: "u"}.validate())
	require.Error(t, connectionParameters{Host: "h"}.validate())
	require.NoError(t, connectionParameters{Host: "h", User: "u"}.validate())
}
