package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	pagegen "github.com/jcoffin/pagegen"
	"github.com/jcoffin/pagegen/internal/config"
	"github.com/jcoffin/pagegen/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file given")
	ErrReadInput        = errors.New("failed to read input file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// defaultConfigName is searched when no --config flag is given.
const defaultConfigName = "pagegen"

// run renders one document: read, render, write.
func run(flags *renderFlags, args []string, stdout, stderr io.Writer) error {
	if flags.help {
		printUsage(stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(stdout, "pagegen %s\n", Version)
		return nil
	}

	if len(args) != 1 {
		printUsage(stderr)
		return ErrNoInput
	}
	inputPath := args[0]

	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	mergeFlags(cfg, flags)

	source, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	loader, err := pagegen.NewLayoutLoader(cfg.LayoutsDir)
	if err != nil {
		return err
	}

	opts := []pagegen.Option{pagegen.WithLayoutLoader(loader)}
	if cfg.Layout != "" {
		opts = append(opts, pagegen.WithDefaultLayout(cfg.Layout))
	}
	svc := pagegen.New(opts...)

	start := time.Now()
	page, err := svc.Render(context.Background(), pagegen.Input{
		Source:    string(source),
		Layout:    flags.layout,
		Highlight: cfg.Highlight,
	})
	if err != nil {
		return err
	}
	if flags.verbose {
		fmt.Fprintf(stderr, "Rendered in %s\n", time.Since(start).Round(time.Millisecond))
	}

	outputPath := resolveOutputPath(inputPath, flags.output, cfg.OutputDir)
	if err := fileutil.WriteFileAtomic(outputPath, page.HTML); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", outputPath)
	}
	return nil
}

// loadConfig loads an explicit config, or the default one if present.
// A missing default config is not an error; a missing explicit one is.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath != "" {
		return config.LoadConfig(nameOrPath)
	}
	cfg, err := config.LoadConfig(defaultConfigName)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies flag overrides on top of the loaded config.
func mergeFlags(cfg *config.Config, flags *renderFlags) {
	if flags.layoutsDir != "" {
		cfg.LayoutsDir = flags.layoutsDir
	}
	if flags.highlight {
		cfg.Highlight = true
	}
}

// validateMarkdownExtension checks that the file has a .md or .markdown
// extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// resolveOutputPath determines where the rendered page is written.
// Precedence: explicit file, explicit directory, configured output
// directory, then beside the input with an .html extension.
func resolveOutputPath(inputPath, output, outputDir string) string {
	htmlName := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".html"

	if output != "" {
		if fileutil.DirExists(output) {
			return filepath.Join(output, htmlName)
		}
		return output
	}
	if outputDir != "" {
		return filepath.Join(outputDir, htmlName)
	}
	return filepath.Join(filepath.Dir(inputPath), htmlName)
}
