// Package source decodes raw wire payloads into the plain mappings a schema
// load consumes. Numbers are preserved as json.Number so integer precision
// survives until the field's converter decides the target type.
package source

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// JSONBytes decodes a single JSON object.
func JSONBytes(data []byte) (map[string]any, error) {
	return JSONReader(bytes.NewReader(data))
}

// JSONReader decodes a single JSON object from r.
func JSONReader(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("source: decode json object: %w", err)
	}
	return out, nil
}

// JSONList decodes a JSON array of objects, the shape LoadMany consumes.
func JSONList(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out []any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("source: decode json list: %w", err)
	}
	return out, nil
}

// JSON encodes a dumped mapping back to JSON.
func JSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("source: encode json: %w", err)
	}
	return data, nil
}
