package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osGetwd = os.Getwd

// DefaultTestFile is looked up in the working directory when no test file
// is given.
const DefaultTestFile = "refery.yaml"

// ResolvePath returns path, or the default test file of the working
// directory when path is empty.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	wd, err := osGetwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return filepath.Join(wd, DefaultTestFile), nil
}

// Load reads, parses and validates the test file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading test file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error loading test file %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a test document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document is empty")
		}
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
