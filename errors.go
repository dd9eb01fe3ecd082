package pagegen

import (
	"errors"

	"github.com/jcoffin/pagegen/internal/assets"
	"github.com/jcoffin/pagegen/internal/frontmatter"
	"github.com/jcoffin/pagegen/internal/pipeline"
)

// Sentinel errors for library operations. The front matter, layout, and
// rendering sentinels are aliases of the internal ones so callers can use
// errors.Is against this package alone.
var (
	ErrEmptySource = errors.New("source document cannot be empty")

	// Front matter errors.
	ErrUnterminatedFrontMatter = frontmatter.ErrUnterminated
	ErrMetadataParse           = frontmatter.ErrMetadataParse

	// Rendering errors.
	ErrRender = pipeline.ErrRender

	// Layout errors.
	ErrLayoutNotFound    = assets.ErrLayoutNotFound
	ErrInvalidLayoutName = assets.ErrInvalidLayoutName
	ErrLayoutCycle       = pipeline.ErrLayoutCycle
)
