package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

var (
	// FeatureTextCodec provides a feature-flag for text marshaling codecs.
	// Enabled by default, it generates encoding.TextMarshaler and
	// encoding.TextUnmarshaler implementations for every enum.
	FeatureTextCodec = Feature{
		Name:        "codec/text",
		Stage:       Beta,
		Default:     true,
		Description: "Generates MarshalText/UnmarshalText so enums round-trip through JSON, YAML and text-based wire formats by name",
		cleanup: func(c *Config) error {
			return removeCodecFiles(c.Target, CodecText)
		},
	}

	// FeatureSQLCodec provides a feature-flag for database codecs.
	FeatureSQLCodec = Feature{
		Name:        "codec/sql",
		Stage:       Alpha,
		Default:     false,
		Description: "Generates sql.Scanner and driver.Valuer implementations storing enums by name",
		cleanup: func(c *Config) error {
			return removeCodecFiles(c.Target, CodecSQL)
		},
	}

	// FeatureGraphQLCodec provides a feature-flag for GraphQL codecs.
	FeatureGraphQLCodec = Feature{
		Name:        "codec/graphql",
		Stage:       Alpha,
		Default:     false,
		Description: "Generates MarshalGQL/UnmarshalGQL for gqlgen-compatible enum bindings",
		cleanup: func(c *Config) error {
			return removeCodecFiles(c.Target, CodecGraphQL)
		},
	}

	// FeatureSnapshot stores a snapshot of the enum ordinals next to the
	// generated code and fails generation on ordinal-breaking changes.
	FeatureSnapshot = Feature{
		Name:        "snapshot",
		Stage:       Experimental,
		Default:     false,
		Description: "Stores an ordinal snapshot and rejects member reorders or removals that would renumber persisted values",
		cleanup: func(c *Config) error {
			return remove(filepath.Join(c.Target, "internal"), "enumc.snap")
		},
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureTextCodec,
		FeatureSQLCodec,
		FeatureGraphQLCodec,
		FeatureSnapshot,
	}
)

// FeatureByName returns the feature-flag with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development, and actively being tested.
	Experimental

	// Alpha features are features whose initial development was finished,
	// but we expect breaking-changes to their APIs.
	Alpha

	// Beta features are Alpha features that were added to the public
	// documentation, and no breaking-changes are expected for them.
	Beta

	// Stable features are Beta features that were running for a while in
	// production codebases.
	Stable
)

// A Feature of the enumc codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// Templates defines list of templates for extending or overriding the
	// default templates. In order to write the template output to a
	// standalone file, use the GraphTemplates below.
	Templates []*Template

	// GraphTemplates defines optional templates to be executed on the graph
	// and their output will be written to the configured destination.
	GraphTemplates []GraphTemplate

	// cleanup used to cleanup all changes when a feature-flag is removed.
	// e.g. delete files from previous codegen runs.
	cleanup func(*Config) error
}

// removeCodecFiles removes the "*_<codec>.go" files of earlier runs from
// dir. Only files carrying the generated-code header are removed.
func removeCodecFiles(dir, codec string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	suffix := "_" + codec + ".go"
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		buf, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !bytes.HasPrefix(buf, []byte("// Code generated")) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}

// remove file (if exists) and its dir if it's empty.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	infos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return os.Remove(dir)
	}
	return nil
}
