package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender indicates Markdown rendering failed.
var ErrRender = errors.New("markdown rendering failed")

// BodyRenderer abstracts Markdown to HTML conversion.
type BodyRenderer interface {
	Render(ctx context.Context, body string) (string, error)
}

// GoldmarkRenderer converts a Markdown body to an HTML fragment using
// goldmark (pure Go). The fragment carries no document shell; the layout
// composer provides it.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions.
//
// When highlight is true, fenced code blocks are tokenized by chroma and
// wrapped in CSS-classed spans. When false, fence content is copied into
// <pre><code> verbatim (HTML-escaped only), which keeps embedded examples
// byte-for-byte intact.
func NewGoldmarkRenderer(highlight bool) *GoldmarkRenderer {
	exts := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // external stylesheet controls colors
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchor targets for headings
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used; raw HTML in the
			// body is escaped rather than passed through.
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts a Markdown body to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *GoldmarkRenderer) Render(ctx context.Context, body string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(body), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// Compile-time interface check.
var _ BodyRenderer = (*GoldmarkRenderer)(nil)
