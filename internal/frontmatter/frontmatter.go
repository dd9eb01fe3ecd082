// Package frontmatter splits a source document into a leading metadata
// block and a body. The metadata block is delimited by matching marker
// lines at the start of the document: "---" for YAML or "+++" for TOML.
// A document without a leading marker has empty metadata and the whole
// text as body.
package frontmatter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jcoffin/pagegen/internal/yamlutil"
)

// Front matter markers. The closing marker must match the opening one.
const (
	YAMLMarker = "---"
	TOMLMarker = "+++"
)

var (
	// ErrUnterminated indicates an opening marker with no closing marker.
	ErrUnterminated = errors.New("front matter block is not terminated")

	// ErrMetadataParse indicates the metadata block could not be decoded.
	ErrMetadataParse = errors.New("front matter metadata is malformed")
)

// Document is a split source file: metadata key/value pairs plus raw body.
type Document struct {
	Metadata map[string]string
	Body     string
}

// Split separates text into metadata and body.
//
// If the first line is exactly a marker, everything up to the next line
// consisting of the same marker is decoded as metadata and the remainder
// becomes the body. Otherwise the metadata is empty and the body is the
// entire input, unmodified.
func Split(text string) (*Document, error) {
	normalized := normalizeNewlines(text)

	marker := leadingMarker(normalized)
	if marker == "" {
		return &Document{Metadata: map[string]string{}, Body: text}, nil
	}

	nl := strings.IndexByte(normalized, '\n')
	if nl < 0 {
		// The document is a lone opening marker.
		return nil, fmt.Errorf("%w: missing closing %q", ErrUnterminated, marker)
	}
	rest := normalized[nl+1:]

	end := findClosingMarker(rest, marker)
	if end < 0 {
		return nil, fmt.Errorf("%w: missing closing %q", ErrUnterminated, marker)
	}

	meta, err := decodeBlock(marker, rest[:end])
	if err != nil {
		return nil, err
	}

	body := rest[end+len(marker):]
	body = strings.TrimPrefix(body, "\n")

	return &Document{Metadata: meta, Body: body}, nil
}

// Serialize reconstructs a document as YAML front matter followed by the
// body. A document with no metadata serializes to its body alone.
// For well-formed input, Split(Serialize(d)) yields a Document equal to d.
func Serialize(doc *Document) (string, error) {
	if len(doc.Metadata) == 0 {
		return doc.Body, nil
	}

	// Marshal keys in sorted order so serialization is deterministic.
	keys := make([]string, 0, len(doc.Metadata))
	for k := range doc.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(YAMLMarker)
	sb.WriteByte('\n')
	for _, k := range keys {
		line, err := yamlutil.Marshal(map[string]string{k: doc.Metadata[k]})
		if err != nil {
			return "", fmt.Errorf("serializing front matter: %w", err)
		}
		sb.Write(line)
	}
	sb.WriteString(YAMLMarker)
	sb.WriteByte('\n')
	sb.WriteString(doc.Body)
	return sb.String(), nil
}

// leadingMarker returns the marker opening the document, or "" if the
// first line is not a marker.
func leadingMarker(text string) string {
	for _, m := range []string{YAMLMarker, TOMLMarker} {
		if text == m || strings.HasPrefix(text, m+"\n") {
			return m
		}
	}
	return ""
}

// findClosingMarker returns the byte offset in rest of a line consisting
// exactly of marker, or -1 if absent.
func findClosingMarker(rest, marker string) int {
	if isMarkerAt(rest, 0, marker) {
		return 0
	}
	search := 0
	for {
		i := strings.Index(rest[search:], "\n"+marker)
		if i < 0 {
			return -1
		}
		pos := search + i + 1
		if isMarkerAt(rest, pos, marker) {
			return pos
		}
		search = pos
	}
}

// isMarkerAt reports whether rest[pos:] starts with marker as a full line.
func isMarkerAt(rest string, pos int, marker string) bool {
	if !strings.HasPrefix(rest[pos:], marker) {
		return false
	}
	after := pos + len(marker)
	return after == len(rest) || rest[after] == '\n'
}

// decodeBlock parses the metadata block in the format implied by marker
// and flattens the result to string values.
func decodeBlock(marker, block string) (map[string]string, error) {
	meta := map[string]string{}
	if strings.TrimSpace(block) == "" {
		return meta, nil
	}

	raw := map[string]any{}
	switch marker {
	case TOMLMarker:
		if err := toml.Unmarshal([]byte(block), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMetadataParse, err)
		}
	default:
		if err := yamlutil.Unmarshal([]byte(block), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMetadataParse, err)
		}
	}

	for k, v := range raw {
		if s, ok := v.(string); ok {
			meta[k] = s
			continue
		}
		meta[k] = fmt.Sprint(v)
	}
	return meta, nil
}

// normalizeNewlines converts CRLF and bare CR line endings to LF.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
