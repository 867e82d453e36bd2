package main

import (
	"fmt"
	"os"

	"github.com/hexcrypt/hexcrypt/internal/commands"
	"github.com/hexcrypt/hexcrypt/internal/config"
)

// version is overridden at build time.
var version = "dev"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
