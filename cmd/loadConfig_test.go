package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Success(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "config.json", `{
  "hostname": "10.0.0.5",
  "username": "deploy",
  "password": "secret",
  "key_filename": "",
  "port": 2222,
  "commands_file": "batch.txt"
}`)
	params, commandsFile, err := loadConfig(p)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.5", params.Host)
	require.Equal(t, "deploy", params.User)
	require.Equal(t, "secret", params.Password)
	require.Equal(t, 2222, params.Port)
	require.Equal(t, "batch.txt", commandsFile)
}

// TestLoadConfig_Defaults verifies port and commands_file defaults when the
// record omits them.
func TestLoadConfig_Defaults(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "config.json", `{"hostname": "h", "username": "u"}`)
	params, commandsFile, err := loadConfig(p)
	require.NoError(t, err)
	require.Equal(t, 22, params.Port)
	require.Equal(t, "commands.txt", commandsFile)
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "config.json", `{"hostname": "", "username": "u"}`)
	_, _, err := loadConfig(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "hostname and username are required")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
