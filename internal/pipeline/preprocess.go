// Package pipeline contains the rendering stages: body preprocessing,
// Markdown to HTML conversion, and layout composition.
package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Fenced code block delimiter (backticks or tildes)
	fenceDelimiter = regexp.MustCompile("^(```|~~~)")
)

// maxBlankRun is the longest run of consecutive blank lines kept outside
// fenced code blocks.
const maxBlankRun = 2

// Preprocess normalizes body text before Markdown rendering: line endings
// become LF and long blank runs are compressed. Content inside fenced code
// blocks is never touched, so fence content survives byte-for-byte.
func Preprocess(content string) string {
	content = NormalizeLineEndings(content)
	return CompressBlankLines(content)
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines outside fenced code
// blocks to maxBlankRun.
func CompressBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	inFence := false
	blanks := 0

	for _, line := range lines {
		if fenceDelimiter.MatchString(line) {
			inFence = !inFence
			blanks = 0
			result = append(result, line)
			continue
		}

		if inFence {
			result = append(result, line)
			continue
		}

		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > maxBlankRun {
				continue
			}
			result = append(result, line)
			continue
		}

		blanks = 0
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
