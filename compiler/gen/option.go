package gen

import (
	"errors"
	"maps"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the output package import path.
// For example: "github.com/org/project/enums".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name.
// This is a convenience function for configs built from manifests.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Features", name, "unknown feature-flag")
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithDriver sets the emitter driver.
// The driver controls how enum declarations are rendered to Go source.
func WithDriver(d *Driver) Option {
	return func(c *Config) error {
		if d == nil {
			return NewConfigError("Driver", nil, "driver cannot be nil")
		}
		c.Driver = d
		return nil
	}
}

// WithDriverName sets the emitter driver by name.
// This is a convenience function that resolves a registered driver.
func WithDriverName(name string) Option {
	return func(c *Config) error {
		d, err := NewDriver(name)
		if err != nil {
			return NewConfigError("Driver", name, "unknown emitter driver")
		}
		c.Driver = d
		return nil
	}
}

// WithHooks adds generation hooks.
// Hooks are called before/after code generation.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithTemplates adds custom templates for code generation.
// Templates allow extending or overriding default code generation.
func WithTemplates(templates ...*Template) Option {
	return func(c *Config) error {
		c.Templates = append(c.Templates, templates...)
		return nil
	}
}

// WithAnnotations sets global annotations.
// Annotations are accessible from all templates.
func WithAnnotations(annotations Annotations) Option {
	return func(c *Config) error {
		if c.Annotations == nil {
			c.Annotations = make(Annotations)
		}
		maps.Copy(c.Annotations, annotations)
		return nil
	}
}

// WithGenerator sets a custom code generator.
// This allows using custom drivers or completely custom code generation.
// If not set, defaults to the jennifer file generator.
func WithGenerator(g Generator) Option {
	return func(c *Config) error {
		if g == nil {
			return NewConfigError("Generator", nil, "generator cannot be nil")
		}
		c.Generator = g
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the defaults and applies the
// given options on top of them.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
