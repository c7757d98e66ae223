// Package commands provides the command-line interface for the undsm tool.
//
// A single root command converts one file in either direction:
//   - pack: encrypt and base64 encode
//   - unpack: sanitize, base64 decode and decrypt
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/Yazawazi/undsm-peaky/internal/config"
)

// loadConfigFile merges the file named by --config into the global viper instance.
// It runs after the root command has bound flags and environment variables.
func loadConfigFile(_ *cobra.Command, _ []string) error {
	path := viper.GetString("config")
	if path == "" {
		return nil
	}

	return config.Load(viper.GetViper(), path)
}

// preRun returns a PreRunE handler that unmarshals the merged configuration into cfg
// and validates it.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		return cobraext.Validate(cfg, cfg)
	}
}
