package assets

import (
	"embed"
	"fmt"
)

//go:embed layouts/*
var layouts embed.FS

// EmbeddedLoader loads layouts from the embedded filesystem.
// Implements LayoutLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadLayout loads a layout from embedded assets by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadLayout(name string) (string, error) {
	if err := ValidateLayoutName(name); err != nil {
		return "", err
	}

	content, err := layouts.ReadFile("layouts/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ LayoutLoader = (*EmbeddedLoader)(nil)
