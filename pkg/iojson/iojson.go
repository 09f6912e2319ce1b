// Package iojson reads and writes the JSON forms of command input and
// output.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write encodes obj to w as indented JSON followed by a newline.
func Write(w io.Writer, obj any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		return fmt.Errorf("encode %T: %w", obj, err)
	}
	return nil
}

// WriteLines encodes each item as one line of compact JSON so the output
// can be consumed record by record (jq -c, grep, while read).
func WriteLines[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
	}
	return nil
}
