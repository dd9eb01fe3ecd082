package pagegen

import "github.com/jcoffin/pagegen/internal/assets"

// DefaultLayout is the layout used when neither the input nor the document
// metadata names one.
const DefaultLayout = assets.DefaultLayoutName

// MetadataLayoutKey is the front matter key naming the layout.
const MetadataLayoutKey = "layout"

// Document is a parsed source file: front matter metadata plus raw body.
// Immutable after parse.
type Document struct {
	Metadata map[string]string // key/value pairs from the front matter block
	Body     string            // raw body text, markers excluded
}

// RenderedPage is the output of a render.
type RenderedPage struct {
	HTML     string            // final composed HTML
	Metadata map[string]string // copied from the source Document
}

// Input contains render parameters.
type Input struct {
	Source    string // raw document text (required)
	Layout    string // layout override; takes precedence over metadata (optional)
	Highlight bool   // tokenize fenced code blocks for syntax highlighting
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	defaultLayout string
}

// WithDefaultLayout sets the layout used when a document names none.
// Panics if name is empty (programmer error).
func WithDefaultLayout(name string) Option {
	if name == "" {
		panic("pagegen: WithDefaultLayout name must not be empty")
	}
	return func(s *Service) {
		s.cfg.defaultLayout = name
	}
}

// WithLayoutLoader sets the loader used to resolve layout names.
// Panics if loader is nil (programmer error).
func WithLayoutLoader(loader LayoutLoader) Option {
	if loader == nil {
		panic("pagegen: WithLayoutLoader loader must not be nil")
	}
	return func(s *Service) {
		s.loader = loader
	}
}
