package assets

import (
	"fmt"
	"strings"
)

// ValidateLayoutName checks that a layout name is safe for use as a
// filename. Returns ErrInvalidLayoutName if the name is empty or contains
// path separators, dots, or traversal characters.
func ValidateLayoutName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLayoutName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidLayoutName, name)
	}
	return nil
}
