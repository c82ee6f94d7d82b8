// Package compiler is the interface between the enum manifests and the
// code generation in compiler/gen. Programs that need to hook into the
// generation pipeline use it instead of the enumc command:
//
//	func main() {
//		if err := compiler.Generate("./enumc.yml", &gen.Config{}); err != nil {
//			log.Fatalln("running enum codegen:", err)
//		}
//	}
package compiler

import (
	"path/filepath"

	"github.com/byBretema/enumc/compiler/gen"
	"github.com/byBretema/enumc/compiler/load"
	"github.com/byBretema/enumc/schema"
)

type (
	// Extension describes a generation extension that attaches hooks,
	// templates, annotations and options to the codegen. Extensions
	// usually embed DefaultExtension and override what they need.
	Extension interface {
		// Hooks to apply on the graph during the code-generation.
		Hooks() []gen.Hook

		// Annotations injected to the gen.Config object, accessible to
		// all emitters and templates under their annotation name.
		Annotations() []schema.Annotation

		// Templates to execute on the graph after the enum files were
		// generated.
		Templates() []*gen.Template

		// Options to evaluate on the gen.Config before execution.
		Options() []Option
	}

	// Option allows configuring the codegen with functional options.
	Option func(*gen.Config) error
)

// DefaultExtension implements the Extension interface with trivial
// implementations, for embedding in user extensions.
type DefaultExtension struct{}

// Hooks of the extension.
func (DefaultExtension) Hooks() []gen.Hook { return nil }

// Annotations of the extension.
func (DefaultExtension) Annotations() []schema.Annotation { return nil }

// Templates of the extension.
func (DefaultExtension) Templates() []*gen.Template { return nil }

// Options of the extension.
func (DefaultExtension) Options() []Option { return nil }

var _ Extension = (*DefaultExtension)(nil)

// LoadGraph loads the manifest at the given path, applies its settings
// on the config, and builds the generation graph. Config values set by
// the caller win over the manifest.
func LoadGraph(manifestPath string, cfg *gen.Config) (*gen.Graph, error) {
	m, err := load.ReadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	return NewGraph(m, cfg, filepath.Dir(manifestPath))
}

// NewGraph builds the generation graph for a decoded manifest. The dir
// argument anchors relative target paths, typically the directory the
// manifest was read from. Watch loops use it together with load.Cache
// to rebuild the graph without re-reading an unchanged manifest.
func NewGraph(m *load.Manifest, cfg *gen.Config, dir string) (*gen.Graph, error) {
	if err := applyManifest(cfg, m, dir); err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, m.Enums...)
}

// Generate runs the codegen on the manifest path. The options are
// evaluated first, so config values they set take precedence over the
// manifest settings.
func Generate(manifestPath string, cfg *gen.Config, options ...Option) error {
	for _, opt := range options {
		if err := opt(cfg); err != nil {
			return err
		}
	}
	graph, err := LoadGraph(manifestPath, cfg)
	if err != nil {
		return err
	}
	return graph.Gen()
}

// Extensions evaluates the given extensions on the config: their hooks
// and templates are appended, their options applied, and their
// annotations merged in by name.
func Extensions(extensions ...Extension) Option {
	return func(cfg *gen.Config) error {
		for _, ex := range extensions {
			cfg.Hooks = append(cfg.Hooks, ex.Hooks()...)
			cfg.Templates = append(cfg.Templates, ex.Templates()...)
			for _, opt := range ex.Options() {
				if err := opt(cfg); err != nil {
					return err
				}
			}
			for _, ant := range ex.Annotations() {
				addAnnotation(cfg, ant)
			}
		}
		return nil
	}
}

// FeatureNames enables the features identified by the given names. An
// unknown name makes the generation fail with a ConfigError.
func FeatureNames(names ...string) Option {
	return Option(gen.WithFeatureNames(names...))
}

// TemplateFiles parses the named files and adds them to the config
// templates, in the order they are listed.
func TemplateFiles(filenames ...string) Option {
	return templateOption(func(t *gen.Template) (*gen.Template, error) {
		return t.ParseFiles(filenames...)
	})
}

// TemplateGlob parses the template definitions from the files matching
// the pattern and adds them to the config templates.
func TemplateGlob(pattern string) Option {
	return templateOption(func(t *gen.Template) (*gen.Template, error) {
		return t.ParseGlob(pattern)
	})
}

func templateOption(next func(t *gen.Template) (*gen.Template, error)) Option {
	return func(cfg *gen.Config) error {
		tmpl, err := next(gen.NewTemplate("external"))
		if err != nil {
			return err
		}
		cfg.Templates = append(cfg.Templates, tmpl)
		return nil
	}
}

// applyManifest fills config fields the caller left unset from the
// manifest. A manifest without a target generates next to itself, and a
// relative manifest target is resolved against the manifest directory.
func applyManifest(cfg *gen.Config, m *load.Manifest, dir string) error {
	if cfg.Package == "" {
		cfg.Package = m.Package
	}
	switch target := m.Target; {
	case cfg.Target != "":
	case target == "":
		cfg.Target = dir
	case filepath.IsAbs(target):
		cfg.Target = target
	default:
		cfg.Target = filepath.Join(dir, target)
	}
	if cfg.Header == "" {
		cfg.Header = m.Header
	}
	for _, name := range m.Features {
		feat, ok := gen.FeatureByName(name)
		if !ok {
			return gen.NewConfigError("Features", name, "unknown feature-flag")
		}
		if !cfg.HasFeature(feat.Name) {
			cfg.Features = append(cfg.Features, feat)
		}
	}
	return nil
}

// addAnnotation stores the annotation on the config under its name,
// merging with an existing annotation of the same name when it knows
// how to merge itself.
func addAnnotation(cfg *gen.Config, ant schema.Annotation) {
	if cfg.Annotations == nil {
		cfg.Annotations = gen.Annotations{}
	}
	curr, ok := cfg.Annotations[ant.Name()]
	if !ok {
		cfg.Annotations[ant.Name()] = ant
		return
	}
	if m, ok := curr.(schema.Merger); ok {
		cfg.Annotations[ant.Name()] = m.Merge(ant)
		return
	}
	cfg.Annotations[ant.Name()] = ant
}
