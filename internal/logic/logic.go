// Package logic runs a single pack or unpack conversion.
package logic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Yazawazi/undsm-peaky/internal/codec"
	"github.com/Yazawazi/undsm-peaky/internal/config"
	"github.com/Yazawazi/undsm-peaky/internal/fileutil"
)

// Run is the main logic of the application.
// Every check happens before the output is touched, and the output is only
// written once the whole conversion succeeded in memory.
func Run(cfg *config.Config) error {
	start := time.Now()

	cdc, err := codec.NewDefault()
	if err != nil {
		return fmt.Errorf("creating codec: %w", err)
	}

	if err := checkInput(cfg.Input); err != nil {
		return err
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = OutputPath(cfg.Input, cfg.Mode())
	}

	if err := checkOutput(outPath, cfg.Force); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Printf("%s %s to %s\n", verb(cfg.Mode()), cfg.Input, outPath) //nolint:forbidigo
	}

	data, err := os.ReadFile(filepath.Clean(cfg.Input))
	if err != nil {
		return fmt.Errorf("%w: reading input: %w", ErrIO, err)
	}

	converted, err := convert(cdc, cfg.Mode(), data)
	if err != nil {
		return err
	}

	size, err := fileutil.WriteAtomic(cfg.Input, outPath, converted, cfg.PreserveTimestamps)
	if err != nil {
		return fmt.Errorf("%w: writing output: %w", ErrIO, err)
	}

	if cfg.Stats {
		printStats(cfg.Mode(), int64(len(data)), size, time.Since(start))
	}

	return nil
}

// convert applies the conversion selected by mode.
func convert(cdc *codec.Codec, mode config.Mode, data []byte) ([]byte, error) {
	if mode == config.ModePack {
		return []byte(cdc.Pack(data)), nil
	}

	plain, err := cdc.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpacking: %w", err)
	}

	return plain, nil
}

// OutputPath derives the default output path: <stem>-<mode>.txt next to the input,
// where stem is the base name without its final extension.
func OutputPath(input string, mode config.Mode) string {
	base := filepath.Base(input)

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}

	return filepath.Join(filepath.Dir(input), stem+"-"+string(mode)+".txt")
}

// checkInput ensures the input exists and is a regular file.
func checkInput(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrInputNotFound, path)
	}

	if err != nil {
		return fmt.Errorf("%w: stat input: %w", ErrIO, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %q", ErrInputNotRegularFile, path)
	}

	return nil
}

// checkOutput refuses an existing output unless force is set.
func checkOutput(path string, force bool) error {
	_, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: stat output: %w", ErrIO, err)
	}

	if !force {
		return fmt.Errorf("%w: %q", ErrOutputExists, path)
	}

	return nil
}

func verb(mode config.Mode) string {
	if mode == config.ModeUnpack {
		return "Unpacking"
	}

	return "Packing"
}

func printStats(mode config.Mode, inputSize, outputSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Mode:      %s\n", mode)
	//nolint:gosec // sizes are always non-negative
	fmt.Fprintf(os.Stderr, "  Input:     %s\n", humanize.IBytes(uint64(max(0, inputSize))))
	//nolint:gosec // sizes are always non-negative
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", humanize.IBytes(uint64(max(0, outputSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
