package assets

import "errors"

// Sentinel errors for layout loading.
var (
	ErrLayoutNotFound    = errors.New("layout not found")
	ErrInvalidLayoutName = errors.New("invalid layout name")
	ErrInvalidBasePath   = errors.New("invalid layouts base path")
	ErrAssetRead         = errors.New("failed to read layout")
	ErrPathTraversal     = errors.New("path traversal detected")
)
