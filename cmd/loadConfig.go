package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// loadConfig reads a structured connection record from a config file
// (JSON or anything viper understands) with the fields hostname, username,
// password, key_filename, port, and commands_file. It returns the parsed
// parameters and the commands file path. A dedicated viper instance is used
// so the file never bleeds into the flag/env configuration.
func loadConfig(path string) (connectionParameters, string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("port", 22)
	v.SetDefault("commands_file", "commands.txt")

	if err := v.ReadInConfig(); err != nil {
		return connectionParameters{}, "", fmt.Errorf("config file: %w", err)
	}

	params := connectionParameters{
		Host:     v.GetString("hostname"),
		Port:     v.GetInt("port"),
		User:     v.GetString("username"),
		Password: v.GetString("password"),
		KeyPath:  v.GetString("key_filename"),
	}
	if params.Host == "" || params.User == "" {
		return connectionParameters{}, "", errors.New("config file: hostname and username are required")
	}
	return params, v.GetString("commands_file"), nil
}
