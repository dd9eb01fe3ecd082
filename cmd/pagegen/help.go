package main

import (
	"fmt"
	"io"
)

// printUsage writes the CLI usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `pagegen - render a Markdown document with front matter into an HTML page

Usage:
  pagegen [flags] <input.md>

Flags:
  -o, --output path        output file or directory (default: beside input)
  -l, --layout name        layout name (overrides front matter)
      --layouts-dir path   custom layouts directory
      --highlight          syntax-highlight fenced code blocks
  -c, --config name        config file name or path
  -q, --quiet              only show errors
  -v, --verbose            show detailed timing
      --version            print version and exit
  -h, --help               show this help

The input may start with a front matter block ("---" YAML or "+++" TOML).
Its "layout" key selects the layout; the built-in "default" layout is used
otherwise. The rendered body replaces the layout's {{ content }} slot.

Examples:
  pagegen post.md
  pagegen -o public/ --layouts-dir _layouts post.md
  pagegen -l minimal --highlight notes.md
`)
}
