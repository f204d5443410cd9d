package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd executes the primary workflow: resolve connection parameters from
// flags, environment, positional arguments, or a config file; load the
// commands file; open exactly one SSH connection; run every command in order;
// and print the summary. The process exits non-zero unless every command
// succeeded.
var rootCmd = &cobra.Command{
	Use:   "sshexec [host user commands-file [password] [key] [port]]",
	Short: "Run shell commands from a file on a remote host over SSH",
	Long: "Connects to a remote host over SSH, executes the commands listed in a plain-text file " +
		"sequentially over the single connection, and reports per-command success and an overall summary.",
	Version:       Version,
	Args:          cobra.MaximumNArgs(6),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, commandsFile, err := resolveRunInputs(args)
		if err != nil {
			return err
		}

		commands, err := loadCommands(commandsFile)
		if err != nil {
			return err
		}
		if len(commands) == 0 {
			return errors.New("no commands to execute")
		}

		// Password auth with nothing supplied: ask the operator.
		if params.Password == "" && params.KeyPath == "" {
			pw, err := promptPasswordFunc(params.User, params.Host)
			if err != nil {
				return err
			}
			params.Password = pw
		}

		log := newLogger(cfgVerbose)
		defer func() { _ = log.Sync() }()

		log.Info("connecting",
			zap.String("target", params.address()),
			zap.String("user", params.User),
			zap.Bool("key_auth", params.useKeyAuth()))

		client, err := dialSSHFunc(params)
		if err != nil {
			return fmt.Errorf("ssh connection failed: %w", err)
		}
		wrapped := sshClientWrapper{c: client}
		defer func() { _ = wrapped.Close() }()

		log.Info("connection established", zap.String("target", params.address()))

		results, allSucceeded, fatal := runBatch(wrapped, commands, cfgInterval, log)

		if cfgOutPath != "" {
			if err := writeReportFile(cfgOutPath, params, results, allSucceeded, fatal); err != nil {
				return err
			}
		}

		_, _ = fmt.Fprintf(os.Stdout, "Execution complete: %d/%d commands successful\n",
			countSucceeded(results), len(results))

		if fatal != nil {
			return fmt.Errorf("%w: %v", errConnectionLost, fatal)
		}
		if !allSucceeded {
			return errCommandsFailed
		}
		return nil
	},
}

// resolveRunInputs merges the configuration sources into final connection
// parameters and a commands file path. Precedence: positional arguments,
// then flags/environment, then the --config record.
func resolveRunInputs(args []string) (connectionParameters, string, error) {
	params := connectionParameters{
		Host:        cfgHost,
		Port:        cfgPort,
		User:        cfgUser,
		Password:    cfgPassword,
		KeyPath:     cfgKeyPath,
		Passphrase:  cfgPassphrase,
		KnownHosts:  cfgKnownHosts,
		StrictHost:  cfgStrictHost,
		ConnTimeout: cfgConnTimeout,
	}
	commandsFile := cfgCommandsFile

	if cfgConfigFile != "" {
		fileParams, fileCommands, err := loadConfig(cfgConfigFile)
		if err != nil {
			return connectionParameters{}, "", err
		}
		if params.Host == "" {
			params.Host = fileParams.Host
		}
		if params.Port == 0 || params.Port == 22 {
			params.Port = fileParams.Port
		}
		if params.User == "" {
			params.User = fileParams.User
		}
		if params.Password == "" {
			params.Password = fileParams.Password
		}
		if params.KeyPath == "" {
			params.KeyPath = fileParams.KeyPath
		}
		if commandsFile == "" {
			commandsFile = fileCommands
		}
	}

	// Positional compatibility form: host user commands-file [password] [key] [port]
	if len(args) > 0 {
		if len(args) < 3 {
			return connectionParameters{}, "", errors.New("positional form requires host, user, and commands-file")
		}
		params.Host = args[0]
		params.User = args[1]
		commandsFile = args[2]
		if len(args) > 3 {
			params.Password = args[3]
		}
		if len(args) > 4 {
			params.KeyPath = args[4]
		}
		if len(args) > 5 {
			port, err := strconv.Atoi(args[5])
			if err != nil {
				return connectionParameters{}, "", fmt.Errorf("invalid port %q: %w", args[5], err)
			}
			params.Port = port
		}
	}

	if err := params.validate(); err != nil {
		return connectionParameters{}, "", err
	}
	if commandsFile == "" {
		return connectionParameters{}, "", errors.New("commands file is required (--commands, --config, or positional)")
	}
	return params, commandsFile, nil
}

// writeReportFile creates the output file (and parent directories) and emits
// the structured YAML result report.
func writeReportFile(path string, params connectionParameters, results []executionResult, allSucceeded bool, fatal error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fatalMsg := ""
	if fatal != nil {
		fatalMsg = fatal.Error()
	}
	if err := writeYAMLReport(f, newYAMLReport(params, results, allSucceeded, fatalMsg)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
