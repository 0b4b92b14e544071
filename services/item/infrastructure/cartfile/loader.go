// Package cartfile reads carts described in YAML.
//
//	width: 50
//	detailed: true
//	lines:
//	  - kind: console
//	    extras:
//	      - kind: controller
//	  - kind: television
//	    overrides: {price: 200}
package cartfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	domainsvcs "github.com/ghuser/electrocart/services/item/domain/services"
)

// File is a decoded cart document. Pointer fields are nil when the document
// leaves them out, so callers can fall back to their own defaults.
type File struct {
	Width    *int                  `yaml:"width"`
	Detailed *bool                 `yaml:"detailed"`
	Grouped  *bool                 `yaml:"grouped"`
	Order    string                `yaml:"order"`
	Lines    []domainsvcs.LineSpec `yaml:"lines"`
}

// Load reads and parses the cart at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cart file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a single YAML cart document. Unknown top-level or line keys
// are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("parse cart: %w", err)
	}
	return &f, nil
}
