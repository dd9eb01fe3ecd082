package assets

import "errors"

// LayoutResolver combines a custom and the embedded loader with fallback
// logic. When a custom layouts directory is configured, it is tried first;
// layouts missing there fall back to the embedded set.
type LayoutResolver struct {
	custom   LayoutLoader // nil if no custom directory configured
	embedded LayoutLoader
}

// NewLayoutResolver creates a LayoutResolver.
// If customBasePath is empty, only embedded layouts are used.
// Returns error if customBasePath is set but invalid.
func NewLayoutResolver(customBasePath string) (*LayoutResolver, error) {
	resolver := &LayoutResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadLayout loads a layout, trying the custom loader first if configured.
func (r *LayoutResolver) LoadLayout(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadLayout(name)
	}

	content, err := r.custom.LoadLayout(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found", not validation or I/O errors.
	if !errors.Is(err, ErrLayoutNotFound) {
		return "", err
	}

	return r.embedded.LoadLayout(name)
}

// HasCustomLoader returns true if a custom layouts directory is configured.
func (r *LayoutResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ LayoutLoader = (*LayoutResolver)(nil)
