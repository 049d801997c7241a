package rules

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a pack file from disk.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pack file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML pack and validates it. Unknown fields and
// multi-document files are rejected so a typo in a rule pack fails
// loudly instead of silently dropping rules.
func Parse(data []byte) (*Pack, error) {
	var pack Pack
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pack); err != nil {
		return nil, fmt.Errorf("parsing pack: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parsing pack: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parsing pack: %w", err)
	}
	pack.source = data
	if err := pack.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pack: %w", err)
	}
	return &pack, nil
}
