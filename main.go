// Command undsm packs and unpacks obfuscated .dsm files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/Yazawazi/undsm-peaky/internal/commands"
	"github.com/Yazawazi/undsm-peaky/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown"

func main() {
	cfg := &config.Config{}

	err := commands.NewRootCommand(cfg, version).Execute()

	switch {
	case err == nil, errors.Is(err, cobraext.ErrExitGracefully):
		return
	default:
		fmt.Fprintf(os.Stderr, "undsm: %v\n", err)

		os.Exit(1)
	}
}
