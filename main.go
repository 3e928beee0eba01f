package main

import (
	"flag"
	"os"

	"github.com/ekinoz/happy/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", "", "color theme: classic, neon, mono")
	cfgPath := flag.String("config", "", "path to a config file (default: .happythings.yaml)")
	flag.Parse()

	// Hand the remaining args to the CLI runner; no args opens the list.
	os.Exit(cli.Run(flag.Args(), cli.Options{
		Theme:      *theme,
		ConfigPath: *cfgPath,
	}))
}
