// Package config loads the optional pagegen configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcoffin/pagegen/internal/fileutil"
	"github.com/jcoffin/pagegen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxLayoutNameLength = 100  // Layout names are filenames
	MaxPathLength       = 4096 // Directory paths
)

// Config holds configuration for page rendering.
type Config struct {
	Layout     string `yaml:"layout"`     // Default layout name (empty = "default")
	LayoutsDir string `yaml:"layoutsDir"` // Custom layouts directory (empty = embedded only)
	OutputDir  string `yaml:"outputDir"`  // Default output directory (empty = same as source)
	Highlight  bool   `yaml:"highlight"`  // Syntax-highlight fenced code blocks
}

// DefaultConfig returns a neutral configuration: embedded default layout,
// no highlighting, output beside the source file.
func DefaultConfig() *Config {
	return &Config{
		Layout:     "",
		LayoutsDir: "",
		OutputDir:  "",
		Highlight:  false,
	}
}

// Validate checks field lengths and layout name shape.
func (c *Config) Validate() error {
	if err := validateFieldLength("layout", c.Layout, MaxLayoutNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("layoutsDir", c.LayoutsDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("outputDir", c.OutputDir, MaxPathLength); err != nil {
		return err
	}
	if c.Layout != "" && strings.ContainsAny(c.Layout, "/\\.") {
		return fmt.Errorf("layout: invalid name %q", c.Layout)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions .yaml then .yml, in the current directory
// and then ~/.config/pagegen/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "pagegen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
