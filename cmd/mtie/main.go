package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hnakamur/mtietool"
	flag "github.com/spf13/pflag"
)

const globalUsage = `Usage: %s [options]
       %s <subcommand> [options]

Calculates MTIE from a series of TIE input data.

The TIE input data is expected to be in text format, with one number
per line. Lines starting with "#" or "//" are comments. It is assumed
that the input data was sampled at a uniform rate. The MTIE
calculation is unaware of the sampling rate of the data, or the units
of the TIE measurement.

The MTIE is printed to standard output, with each line containing an
interval and the MTIE for that interval.

subcommands:
  compute             Calculate MTIE from TIE input data (the default).
  generate            Generate a synthetic TIE series.
  plot                Render MTIE results as an HTML chart.
  serve               Serve MTIE calculations over HTTP.
  version             Show version.

Run %s <subcommand> -h to show help for subcommand.
`

func main() {
	os.Exit(run())
}

var cmdName = filepath.Base(os.Args[0])

var (
	version string
	commit  string
	date    string
)

type command interface {
	Parse(fs *flag.FlagSet, args []string) error
	Execute() error
}

func run() int {
	args := os.Args[1:]
	sub := "compute"
	if len(args) > 0 {
		switch args[0] {
		case "compute", "generate", "plot", "serve", "version":
			sub = args[0]
			args = args[1:]
		case "-V", "--version":
			return runShowVersion()
		case "help", "-h", "--help":
			fmt.Printf(globalUsage, cmdName, cmdName, cmdName)
			return 0
		}
	}

	var err error
	switch sub {
	case "compute":
		err = runCommand(&mtietool.ComputeCommand{}, "compute", args)
	case "generate":
		err = runCommand(&mtietool.GenerateCommand{}, "generate", args)
	case "plot":
		err = runCommand(&mtietool.PlotCommand{}, "plot", args)
	case "serve":
		err = runCommand(&mtietool.ServerCommand{}, "serve", args)
	case "version":
		return runShowVersion()
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		var roerr *mtietool.RequiredOptionError
		if errors.As(err, &roerr) {
			fmt.Fprintf(os.Stderr, "\n")
			roerr.Usage()
		}
		return 1
	}
	return 0
}

func runCommand(c command, name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [options]\n\noptions:\n", cmdName, name)
		fs.PrintDefaults()
	}
	if err := c.Parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return c.Execute()
}

func runShowVersion() int {
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Commit:  %s\n", commit)
	fmt.Printf("Date:    %s\n", date)
	return 0
}
