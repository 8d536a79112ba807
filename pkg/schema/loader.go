package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses a FormSchema from a YAML document and validates it. Deployment
// variants (extra fields, reworded labels) are expressed as documents rather
// than code forks.
func Load(r io.Reader) (FormSchema, error) {
	if r == nil {
		return FormSchema{}, fmt.Errorf("schema: missing reader")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return FormSchema{}, fmt.Errorf("schema: read document: %w", err)
	}

	var s FormSchema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return FormSchema{}, fmt.Errorf("schema: parse document: %w", err)
	}
	if err := s.Validate(); err != nil {
		return FormSchema{}, err
	}
	return s, nil
}

// LoadFile loads a schema document from disk.
func LoadFile(path string) (FormSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormSchema{}, fmt.Errorf("schema: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}
