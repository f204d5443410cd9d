package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's persistent flags, binds them to
// environment variables via Viper, and registers the subcommands. This keeps
// a consistent configuration surface across run/verify and makes environment
// overrides predictable for operators.
func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgConfigFile, "config", "c", "", "Path to config file (hostname, username, password, key_filename, port, commands_file)")
	rootCmd.PersistentFlags().StringVarP(&cfgCommandsFile, "commands", "f", "", "Path to plain-text commands file (one command per line, # comments)")
	rootCmd.PersistentFlags().StringVarP(&cfgHost, "host", "H", "", "Remote host (FQDN or IP)")
	rootCmd.PersistentFlags().IntVarP(&cfgPort, "port", "p", 22, "SSH port")
	rootCmd.PersistentFlags().StringVarP(&cfgUser, "user", "u", "", "SSH username")
	rootCmd.PersistentFlags().StringVar(&cfgPassword, "password", "", "SSH password (or set SSHEXEC_PASSWORD); prompted when empty and no key given")
	rootCmd.PersistentFlags().StringVar(&cfgKeyPath, "key", "", "Path to SSH private key (PEM, OpenSSH)")
	rootCmd.PersistentFlags().StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set SSHEXEC_PASSPHRASE)")
	rootCmd.PersistentFlags().StringVarP(&cfgOutPath, "out", "o", "", "Path to optional YAML result report")
	rootCmd.PersistentFlags().StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	rootCmd.PersistentFlags().BoolVar(&cfgStrictHost, "strict-host-key", true, "Require host key verification (disable to accept any host key)")
	rootCmd.PersistentFlags().DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "Connection timeout")
	rootCmd.PersistentFlags().DurationVar(&cfgInterval, "interval", 500*time.Millisecond, "Pause between commands. 0 disables")
	rootCmd.PersistentFlags().BoolVarP(&cfgVerbose, "verbose", "v", false, "Enable debug logging")

	// Bind env with Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("commands", rootCmd.PersistentFlags().Lookup("commands"))
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("key", rootCmd.PersistentFlags().Lookup("key"))
	_ = viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))
	_ = viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	_ = viper.BindPFlag("known-hosts", rootCmd.PersistentFlags().Lookup("known-hosts"))
	_ = viper.BindPFlag("strict-host-key", rootCmd.PersistentFlags().Lookup("strict-host-key"))
	_ = viper.BindPFlag("conn-timeout", rootCmd.PersistentFlags().Lookup("conn-timeout"))
	_ = viper.BindPFlag("interval", rootCmd.PersistentFlags().Lookup("interval"))

	viper.SetEnvPrefix("SSHEXEC")
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("config"); v != "" {
			cfgConfigFile = v
		}
		if v := viper.GetString("commands"); v != "" {
			cfgCommandsFile = v
		}
		if v := viper.GetString("host"); v != "" {
			cfgHost = v
		}
		if v := viper.GetInt("port"); v != 0 {
			cfgPort = v
		}
		if v := viper.GetString("user"); v != "" {
			cfgUser = v
		}
		if v := viper.GetString("password"); v != "" {
			cfgPassword = v
		}
		if v := viper.GetString("key"); v != "" {
			cfgKeyPath = v
		}
		if v := viper.GetString("passphrase"); v != "" {
			cfgPassphrase = v
		}
		if v := viper.GetString("out"); v != "" {
			cfgOutPath = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		if v := viper.GetString("interval"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgInterval = d
			}
		}
		// Booleans
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
	})

	rootCmd.AddCommand(verifyCmd)
}
