package main

import (
	"flag"
	"os"

	"github.com/lmeert/tick/internal/cli"
)

func main() {
	// Root flags (apply to the whole program)
	theme := flag.String("theme", "classic", "color theme: classic, neon or mono")
	debug := flag.Bool("debug", false, "write the UI event log to tick-debug.log")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	os.Exit(cli.Run(flag.Args(), cli.Options{
		Theme: *theme,
		Debug: *debug,
	}))
}
