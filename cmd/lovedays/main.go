package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lovedays/internal/cli"
	"github.com/lovedays/internal/client"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Server base URL." env:"LOVEDAYS_SERVER_URL" default:"http://localhost:8080"`

	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive counter." default:"1"`
	Stats cli.StatsCmd `cmd:"" help:"Print the relationship summary."`
	Quote cli.QuoteCmd `cmd:"" help:"Print the quote of the day."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lovedays"),
		kong.Description("Terminal companion for the love day counter"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &cli.Context{
		API: client.New(CLI.Server),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
