package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalJSON serializes the spec to indented JSON bytes with a trailing newline.
// Paths and schema names are emitted in sorted order, so output is stable.
func MarshalJSON(spec *Spec) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, spec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes the spec as indented JSON to w.
func Write(w io.Writer, spec *Spec) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("encode openapi spec: %w", err)
	}
	return nil
}

// WriteJSON writes the spec to filename.
func WriteJSON(spec *Spec, filename string) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
