// Package config holds the runtime configuration of undsm.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

// Mode selects the direction of the conversion.
type Mode string

const (
	// ModePack converts plaintext into the packed text format.
	ModePack Mode = "pack"
	// ModeUnpack converts the packed text format back into plaintext.
	ModeUnpack Mode = "unpack"
)

// Config holds the application's configuration parameters.
type Config struct {
	// Show the configuration and exit
	Show bool

	// Config is an optional JSONC file supplying defaults
	Config string

	// Pack or Unpack, exactly one of them
	Pack   bool `label:"--pack"   validate:"exclusive=Unpack,required_without=Unpack"`
	Unpack bool `label:"--unpack" validate:"required_without=Pack"`

	// Input is the file to convert
	Input string `label:"--input" validate:"required"`

	// Output is the destination, derived from Input when empty
	Output string

	// Force overwriting an existing output
	Force bool

	// Quiet suppresses progress output
	Quiet bool

	// Stats prints a summary after the conversion
	Stats bool

	// PreserveTimestamps copies the input's modification time to the output
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`
}

// Mode returns the selected conversion direction.
func (c *Config) Mode() Mode {
	if c.Unpack {
		return ModeUnpack
	}

	return ModePack
}

// Display returns the value of the Show field.
func (c *Config) Display() bool {
	return c.Show
}

// Validate checks config against the struct tags.
// Every violated rule is reported, each wrapping validator.ErrValidation.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}
