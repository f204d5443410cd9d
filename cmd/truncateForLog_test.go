package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateForLog(t *testing.T) {
	require.Equal(t, "short", truncateForLog([]byte("  short \n")))
	require.Equal(t, "", truncateForLog(nil))

	long := strings.Repeat("x", logExcerptLimit+50)
	got := truncateForLog([]byte(long))
	require.Equal(t, logExcerptLimit+len("...(truncated)"), len(got))
	require.True(t, strings.HasSuffix(got, "...(truncated)"))
}
