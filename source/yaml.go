package source

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLBytes decodes a single YAML mapping. yaml.v3 keys string-keyed
// mappings as map[string]any all the way down, so the result feeds a load
// directly.
func YAMLBytes(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("source: decode yaml mapping: %w", err)
	}
	return out, nil
}

// YAMLList decodes a YAML sequence of mappings.
func YAMLList(data []byte) ([]any, error) {
	var out []any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("source: decode yaml sequence: %w", err)
	}
	return out, nil
}

// YAML encodes a dumped mapping back to YAML.
func YAML(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("source: encode yaml: %w", err)
	}
	return data, nil
}
