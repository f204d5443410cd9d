package cmd

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	srv "sshexec/tools/sshserv"
)

// TestEndToEnd_MixedResults runs the CLI against the local test SSH server
// with one succeeding, one failing, and one stderr-producing command, then
// checks the YAML report and the overall verdict.
func TestEndToEnd_MixedResults(t *testing.T) {
	addr, stop, err := srv.Start("127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping e2e: cannot start test ssh server: %v", err)
	}
	defer stop()
	time.Sleep(100 * time.Millisecond)

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	resetConfig()

	tmp := t.TempDir()
	outPath := filepath.Join(tmp, "report.yaml")
	commandsPath := writeTemp(t, tmp, "commands.txt", `
# mixed batch
echo hello
fail
stderr warn
`)

	rootCmd.SetArgs([]string{
		"--host", host,
		"--port", port,
		"--user", "tester",
		"--password", "pw",
		"--commands", commandsPath,
		"--out", outPath,
		"--interval", "0",
		"--strict-host-key=false",
	})

	err = rootCmd.Execute()
	require.ErrorIs(t, err, errCommandsFailed)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var rep yamlReport
	require.NoError(t, yaml.Unmarshal(b, &rep))

	require.Equal(t, 3, rep.Summary.Attempted)
	require.Equal(t, 2, rep.Summary.Succeeded)
	require.False(t, rep.Summary.AllSucceeded)
	require.Empty(t, rep.Summary.Fatal)

	require.Len(t, rep.Results, 3)
	require.Equal(t, "echo hello", rep.Results[0].Command)
	require.Equal(t, "hello\n", rep.Results[0].Stdout)
	require.Equal(t, 0, rep.Results[0].ExitStatus)
	require.Equal(t, 1, rep.Results[1].ExitStatus)
	require.Equal(t, "failure\n", rep.Results[1].Stderr)
	require.Equal(t, 0, rep.Results[2].ExitStatus)
	require.Equal(t, "warn\n", rep.Results[2].Stderr)
}

// TestEndToEnd_ConnectionDrop verifies the fatal-abort path: when the server
// tears down the connection mid-batch, only the commands before the drop
// appear in the results and the remaining ones are never attempted.
func TestEndToEnd_ConnectionDrop(t *testing.T) {
	addr, stop, err := srv.Start("127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping e2e: cannot start test ssh server: %v", err)
	}
	defer stop()
	time.Sleep(100 * time.Millisecond)

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	resetConfig()

	tmp := t.TempDir()
	outPath := filepath.Join(tmp, "report.yaml")
	commandsPath := writeTemp(t, tmp, "commands.txt", "echo one\ndrop\necho never\n")

	rootCmd.SetArgs([]string{
		"--host", host,
		"--port", port,
		"--user", "tester",
		"--password", "pw",
		"--commands", commandsPath,
		"--out", outPath,
		"--interval", "0",
		"--strict-host-key=false",
	})

	err = rootCmd.Execute()
	require.Error(t, err)
	require.ErrorIs(t, err, errConnectionLost)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var rep yamlReport
	require.NoError(t, yaml.Unmarshal(b, &rep))

	require.Equal(t, 1, rep.Summary.Attempted)
	require.Equal(t, 1, rep.Summary.Succeeded)
	require.False(t, rep.Summary.AllSucceeded)
	require.NotEmpty(t, rep.Summary.Fatal)
	require.Len(t, rep.Results, 1)
	require.Equal(t, "echo one", rep.Results[0].Command)
}
