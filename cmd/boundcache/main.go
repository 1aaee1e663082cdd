package main

import (
	"fmt"
	"os"

	"github.com/emmaagwu/boundcache/internal/cli"
)

// Build-time variables (set via ldflags).
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
