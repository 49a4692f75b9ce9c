package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" help:"Path to HCL config file" default:"hexfall.hcl" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error); overrides the config file"`
	NoColor  bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Simulate   SimulateCmd      `cmd:"" help:"Play many games with a built-in strategy and report statistics"`
	Replay     ReplayCmd        `cmd:"" help:"Play one seeded game and print every move"`
	Catalog    CatalogCmd       `cmd:"" help:"Show every piece type and its orientations"`
	ShowConfig ConfigCmd        `cmd:"config" help:"Print the effective configuration as JSON"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hexfall"),
		kong.Description("Rules engine and simulator for a hexagonal piece placement puzzle"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
