package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/Yazawazi/undsm-peaky/internal/config"
	"github.com/Yazawazi/undsm-peaky/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// Flags, UNDSM_* environment variables and the optional config file are merged
// through the global viper instance.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version, loadConfigFile)

	root.Use = "undsm [flags] --pack|--unpack --input FILE"
	root.Short = "Pack and unpack obfuscated .dsm files"
	root.Long = `Converts a file between plaintext and the packed .dsm text format.
Packing encrypts with AES-256-CBC under a fixed key and encodes the result as base64.
Unpacking ignores any non-base64 characters, decodes and decrypts.`
	root.Args = cobra.NoArgs

	root.Flags().BoolP("unpack", "u", false, "Unpack a .dsm file")
	root.Flags().BoolP("pack", "p", false, "Pack a file to .dsm")
	root.Flags().BoolP("force", "f", false, "Force writing to output file")
	root.Flags().StringP("input", "i", "", "Input file")
	root.Flags().StringP("output", "o", "", "Output file, defaults to <input-stem>-<pack|unpack>.txt next to the input")

	root.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.Flags().Bool("stats", false, "Print a summary after the conversion")
	root.Flags().BoolP("preserve-timestamps", "t", false, "Copy the input's modification time to the output")
	root.Flags().StringP("config", "c", "", "Path to a JSONC file with default flag values")
	root.Flags().BoolP("show", "s", false, "Show the configuration and exit")

	root.MarkFlagsMutuallyExclusive("pack", "unpack")
	root.MarkFlagsOneRequired("pack", "unpack")

	root.PreRunE = preRun(cfg)
	root.RunE = func(_ *cobra.Command, _ []string) error {
		return logic.Run(cfg)
	}

	return root
}
