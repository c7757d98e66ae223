package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
)

// Load reads a JSONC file and merges its values into v.
// Flags set on the command line keep precedence over the file.
func Load(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}

	v.SetConfigType("json")

	if err := v.ReadConfig(bytes.NewReader(jsonc.ToJSONInPlace(data))); err != nil {
		return fmt.Errorf("parsing config file %q: %w", path, err)
	}

	return nil
}
