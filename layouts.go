package pagegen

import "github.com/jcoffin/pagegen/internal/assets"

// LayoutLoader defines the contract for loading layouts.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewLayoutLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type LayoutLoader interface {
	// LoadLayout loads a layout by name (without .html extension).
	// Returns ErrLayoutNotFound if the layout doesn't exist.
	// Returns ErrInvalidLayoutName if the name contains invalid characters.
	LoadLayout(name string) (string, error)
}

// NewLayoutLoader creates a LayoutLoader for the given base path.
// If basePath is empty, returns a loader using only embedded layouts.
// If basePath is set, custom layouts take precedence with fallback to
// embedded, resolved per name.
//
// The basePath directory should contain {name}.html files.
//
// Returns an error if basePath is set but not a valid, readable directory.
func NewLayoutLoader(basePath string) (LayoutLoader, error) {
	return assets.NewLayoutResolver(basePath)
}
