package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verifyCmd validates the commands file without executing anything, and when
// connection parameters are provided it also probes the SSH connection by
// opening and closing a session.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate a commands file and optionally probe the SSH connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		commandsFile := cfgCommandsFile
		if commandsFile == "" && cfgConfigFile != "" {
			_, fileCommands, err := loadConfig(cfgConfigFile)
			if err != nil {
				return err
			}
			commandsFile = fileCommands
		}
		if commandsFile == "" {
			return errors.New("--commands is required (path to commands file)")
		}

		commands, err := loadCommands(commandsFile)
		if err != nil {
			return fmt.Errorf("invalid commands file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Commands file OK (%d commands)\n", len(commands))

		// Connection probe only when a host was given.
		if cfgHost == "" {
			return nil
		}
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
		if err := params.validate(); err != nil {
			return err
		}
		client, err := dialSSHFunc(params)
		if err != nil {
			return fmt.Errorf("ssh connection failed: %w", err)
		}
		wrapped := sshClientWrapper{c: client}
		defer func() { _ = wrapped.Close() }()

		sess, err := wrapped.NewSession()
		if err != nil {
			return fmt.Errorf("ssh connection failed: %w", err)
		}
		_ = sess.Close()

		_, _ = fmt.Fprintln(os.Stdout, "Connection OK")
		return nil
	},
}
