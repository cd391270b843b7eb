// Package render serializes pipeline results as pretty JSON with stable
// field ordering (spec §4.5).
package render

import (
	"encoding/json"
	"io"
)

// JSON writes v to w as two-space-indented JSON. Field order follows the
// struct's declared field order, which is what encoding/json preserves.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
