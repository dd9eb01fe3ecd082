package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// renderFlags holds all flags for a render.
type renderFlags struct {
	config     string
	output     string
	layout     string
	layoutsDir string
	highlight  bool
	quiet      bool
	verbose    bool
	version    bool
	help       bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("pagegen", flag.ContinueOnError)
	f := &renderFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.layout, "layout", "l", "", "layout name (overrides front matter)")
	fs.StringVar(&f.layoutsDir, "layouts-dir", "", "custom layouts directory")
	fs.BoolVar(&f.highlight, "highlight", false, "syntax-highlight fenced code blocks")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show usage")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
