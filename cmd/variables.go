package cmd

import "time"

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// Global configuration populated by flags, environment variables, and/or
	// the --config file. Declared here so they are visible across subcommands.
	cfgConfigFile   string
	cfgCommandsFile string
	cfgHost         string
	cfgPort         int
	cfgUser         string
	cfgPassword     string
	cfgKeyPath      string
	cfgPassphrase   string
	cfgOutPath      string
	cfgKnownHosts   string
	cfgStrictHost   bool
	cfgConnTimeout  time.Duration
	cfgInterval     time.Duration
	cfgVerbose      bool
)

// Allow tests to stub dialing, command execution, and password prompting
var (
	dialSSHFunc          = dialSSH
	runRemoteCommandFunc = runRemoteCommand
	promptPasswordFunc   = promptPassword
)
