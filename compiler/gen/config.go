package gen

type (
	// Config for the codegen. Instances are built with the functional
	// options in option.go and shared by all types in the graph.
	Config struct {
		// Package is the Go import path of the generated package.
		Package string

		// Target is the directory the generated files are written to.
		Target string

		// Header overrides the default generated-file header comment.
		Header string

		// Driver is the emitter driver used to render the code.
		Driver *Driver

		// Features carries the enabled feature-flags.
		Features []Feature

		// Templates extend the generated output with custom files.
		Templates []*Template

		// Hooks holds an optional list of Hooks to apply on the graph
		// during the code-generation.
		Hooks []Hook

		// Annotations that are injected to the templates and can be
		// accessed by all emitters.
		Annotations Annotations

		// Generator overrides the default file emission entirely.
		Generator Generator
	}

	// Annotations defines code generation metadata accessible by name.
	Annotations map[string]any
)

// defaultHeader is the header comment added at the top of each emitted
// file. Jennifer prepends the comment markers when rendering it.
const defaultHeader = "Code generated by enumc. DO NOT EDIT."

// DefaultConfig returns a Config populated with the defaults: the
// "jennifer" driver, the default header, and the features flagged as
// on-by-default.
func DefaultConfig() *Config {
	return &Config{
		Header:   defaultHeader,
		Driver:   drivers[0],
		Features: defaultFeatures(),
	}
}

// defaultFeatures returns the features enabled by default.
func defaultFeatures() []Feature {
	var fs []Feature
	for _, f := range AllFeatures {
		if f.Default {
			fs = append(fs, f)
		}
	}
	return fs
}

// Output returns the grouped output options of the config.
func (c *Config) Output() struct {
	Target  string
	Package string
	Header  string
} {
	return struct {
		Target  string
		Package string
		Header  string
	}{
		Target:  c.Target,
		Package: c.Package,
		Header:  c.Header,
	}
}

// FeatureEnabled reports if the given feature name is enabled. It errors
// with a ConfigError if the feature name is not known.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	if _, ok := FeatureByName(name); !ok {
		return false, NewConfigError("Features", name, "unknown feature-flag")
	}
	return c.HasFeature(name), nil
}

// HasFeature reports if the given feature name is listed in the config.
func (c *Config) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f.Name == name {
			return true
		}
	}
	return false
}

// header returns the generated-file header comment of the config.
func (c *Config) header() string {
	if c.Header != "" {
		return c.Header
	}
	return defaultHeader
}
