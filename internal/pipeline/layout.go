package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/jcoffin/pagegen/internal/assets"
	"github.com/jcoffin/pagegen/internal/frontmatter"
)

// ErrLayoutCycle indicates a layout names itself as an ancestor.
var ErrLayoutCycle = errors.New("layout chain contains a cycle")

// contentSlot matches the placeholder where rendered body content is
// substituted into a layout: {{ content }} (whitespace optional).
var contentSlot = regexp.MustCompile(`\{\{\s*content\s*\}\}`)

// metadataSlot matches metadata placeholders such as {{ title }}.
var metadataSlot = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_-]+)\s*\}\}`)

// bodyClose matches </body> in any case. Matching on the original string
// keeps byte offsets valid even when lowering would change rune widths.
var bodyClose = regexp.MustCompile(`(?i)</body>`)

// Composer merges rendered body content into named layouts.
//
// A layout may itself start with front matter naming a parent layout, in
// which case the composed result is substituted into the parent, and so on
// up the chain.
type Composer struct {
	loader assets.LayoutLoader
}

// NewComposer creates a Composer that resolves layouts through loader.
func NewComposer(loader assets.LayoutLoader) *Composer {
	return &Composer{loader: loader}
}

// Compose substitutes fragment into the layout named name and walks any
// parent chain. Metadata placeholders in the layout ({{ title }} etc.) are
// filled from metadata, HTML-escaped; unknown keys become empty strings.
// Returns assets.ErrLayoutNotFound if a referenced layout does not exist,
// ErrLayoutCycle if the chain repeats a name.
func (c *Composer) Compose(ctx context.Context, fragment string, metadata map[string]string, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content := fragment
	seen := make(map[string]bool)

	for name != "" {
		if seen[name] {
			return "", fmt.Errorf("%w: %q", ErrLayoutCycle, name)
		}
		seen[name] = true

		raw, err := c.loader.LoadLayout(name)
		if err != nil {
			return "", err
		}

		layout, err := frontmatter.Split(raw)
		if err != nil {
			return "", fmt.Errorf("parsing layout %q: %w", name, err)
		}

		// Fill metadata slots on the layout body before inserting content,
		// so placeholders in the document body are never rewritten.
		shell := fillMetadataSlots(layout.Body, metadata)
		content = insertContent(shell, strings.TrimRight(content, " \t\n"))
		name = layout.Metadata["layout"]
	}

	return content, nil
}

// fillMetadataSlots replaces {{ key }} placeholders with HTML-escaped
// metadata values. The {{ content }} slot is left alone for insertContent.
func fillMetadataSlots(layout string, metadata map[string]string) string {
	return metadataSlot.ReplaceAllStringFunc(layout, func(match string) string {
		key := strings.TrimSpace(strings.Trim(match, "{}"))
		if key == "content" {
			return match
		}
		return html.EscapeString(metadata[key])
	})
}

// insertContent places content into layout.
// Tries the {{ content }} slot first, then before </body>, then appends.
func insertContent(layout, content string) string {
	if loc := contentSlot.FindStringIndex(layout); loc != nil {
		return layout[:loc[0]] + content + layout[loc[1]:]
	}

	if loc := bodyClose.FindStringIndex(layout); loc != nil {
		return layout[:loc[0]] + content + layout[loc[0]:]
	}

	// Fallback: append
	return layout + content
}
