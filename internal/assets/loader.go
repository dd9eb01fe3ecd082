// Package assets loads layout templates by name. Layouts come from the
// embedded defaults or from a directory on disk; a resolver chains the two.
package assets

// DefaultLayoutName is the name of the built-in layout.
const DefaultLayoutName = "default"

// LayoutLoader defines the contract for loading layouts.
// Implementations may load from embedded assets, the filesystem, etc.
type LayoutLoader interface {
	// LoadLayout loads a layout by name (without .html extension).
	// Returns ErrLayoutNotFound if the layout doesn't exist.
	// Returns ErrInvalidLayoutName if the name contains invalid characters.
	LoadLayout(name string) (string, error)
}
