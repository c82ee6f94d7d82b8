package load

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// A Manifest describes a set of enum definitions to generate, typically
// decoded from an enumc.yml file:
//
//	package: github.com/org/project/internal/enums
//	enums:
//	  - name: LightsView
//	    underlying: uint8
//	    sentinel: true
//	    members: [Isometric, FirstPerson, ThirdPerson, Free]
type Manifest struct {
	// Package is the import path of the generated package.
	Package string `json:"package,omitempty" yaml:"package"`
	// Target is the directory the generated files are written to.
	// Empty means the directory holding the manifest.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Header overrides the default generated-file header comment.
	Header string `json:"header,omitempty" yaml:"header,omitempty"`
	// Features holds the names of the feature flags to enable.
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`
	// Enums holds the enum definitions in declaration order.
	Enums []*Spec `json:"enums,omitempty" yaml:"enums"`
}

// ReadManifest reads and decodes the manifest at the given path.
func ReadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: open manifest: %w", err)
	}
	defer f.Close()
	m, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("load: parse manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes a manifest from the reader. Unknown fields are
// rejected to catch typos in hand-written manifests.
func ParseManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty manifest")
		}
		return nil, err
	}
	for _, s := range m.Enums {
		s.defaults()
	}
	return m, nil
}
