// Command envlog writes one log line from a shell script using the same
// environment rules as the library.
//
//	envlog [-dotenv FILE] [-level LEVEL] PREFIX [ARGS...]
//
// Without -level the severity is inferred from PREFIX.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/willibrandon/envlog"
	"github.com/willibrandon/envlog/configuration"
	"github.com/willibrandon/envlog/core"
	"github.com/willibrandon/envlog/sinks"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("envlog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dotenv := fs.String("dotenv", "", "load variables from this .env file first")
	levelName := fs.String("level", "", "write at this severity instead of inferring it (error, warn, info, debug)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: envlog [-dotenv FILE] [-level LEVEL] PREFIX [ARGS...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	if *dotenv != "" {
		if err := configuration.LoadDotEnv(*dotenv); err != nil {
			fmt.Fprintf(stderr, "envlog: %v\n", err)
			return 2
		}
	}

	logger := envlog.New(
		envlog.WithEnvironment(configuration.FromProcess()),
		envlog.WithSink(newConsole(stdout, stderr)),
	)

	prefix := fs.Arg(0)
	rest := make([]any, 0, fs.NArg()-1)
	for _, a := range fs.Args()[1:] {
		rest = append(rest, a)
	}

	if *levelName == "" {
		logger.Log(prefix, rest...)
		return 0
	}

	level, err := core.ParseSeverity(*levelName)
	if err != nil {
		fmt.Fprintf(stderr, "envlog: %v\n", err)
		return 2
	}
	logger.Write(level, prefix, rest...)
	return 0
}

func newConsole(stdout, stderr io.Writer) *sinks.ConsoleSink {
	if stdout == os.Stdout && stderr == os.Stderr {
		return sinks.NewConsoleSink()
	}
	return sinks.NewConsoleSinkWithWriters(stdout, stderr)
}
