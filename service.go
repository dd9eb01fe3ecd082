package pagegen

import (
	"context"
	"fmt"

	"github.com/jcoffin/pagegen/internal/assets"
	"github.com/jcoffin/pagegen/internal/frontmatter"
	"github.com/jcoffin/pagegen/internal/pipeline"
)

// Service orchestrates the document-to-page pipeline.
type Service struct {
	cfg         serviceConfig
	loader      LayoutLoader
	plain       pipeline.BodyRenderer
	highlighted pipeline.BodyRenderer
	composer    *pipeline.Composer
}

// New creates a Service with default configuration: embedded layouts and
// the "default" layout. Use options to customize behavior.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:         serviceConfig{defaultLayout: DefaultLayout},
		loader:      assets.NewEmbeddedLoader(),
		plain:       pipeline.NewGoldmarkRenderer(false),
		highlighted: pipeline.NewGoldmarkRenderer(true),
	}

	for _, opt := range opts {
		opt(s)
	}

	// The composer is built last so it sees the loader chosen by options.
	s.composer = pipeline.NewComposer(s.loader)

	return s
}

// Parse splits source into metadata and body without rendering.
// A document with no leading marker has empty metadata and the whole
// source as body.
func (s *Service) Parse(source string) (*Document, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	doc, err := frontmatter.Split(source)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}
	return &Document{Metadata: doc.Metadata, Body: doc.Body}, nil
}

// Render runs the full pipeline and returns the composed page.
// The context is used for cancellation.
func (s *Service) Render(ctx context.Context, input Input) (*RenderedPage, error) {
	doc, err := s.Parse(input.Source)
	if err != nil {
		return nil, err
	}

	body := pipeline.Preprocess(doc.Body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	renderer := s.plain
	if input.Highlight {
		renderer = s.highlighted
	}
	fragment, err := renderer.Render(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("rendering body: %w", err)
	}

	layout := s.resolveLayout(input, doc)
	html, err := s.composer.Compose(ctx, fragment, doc.Metadata, layout)
	if err != nil {
		return nil, fmt.Errorf("composing layout: %w", err)
	}

	return &RenderedPage{
		HTML:     html,
		Metadata: copyMetadata(doc.Metadata),
	}, nil
}

// resolveLayout picks the layout name: input override, then document
// metadata, then the service default.
func (s *Service) resolveLayout(input Input, doc *Document) string {
	if input.Layout != "" {
		return input.Layout
	}
	if name := doc.Metadata[MetadataLayoutKey]; name != "" {
		return name
	}
	return s.cfg.defaultLayout
}

// copyMetadata returns a copy so the RenderedPage does not alias the
// Document's map.
func copyMetadata(meta map[string]string) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
