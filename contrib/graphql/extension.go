package graphql

import (
	"path/filepath"

	"github.com/byBretema/enumc/compiler"
	"github.com/byBretema/enumc/compiler/gen"
	"github.com/byBretema/enumc/compiler/load"
	"github.com/byBretema/enumc/schema"
)

// Extension wires enum generation into a gqlgen project. It enables the
// graphql codec feature and, when a gqlgen.yml path is configured, binds
// every generated enum as the model of its GraphQL type after each
// generation pass.
//
// Usage:
//
//	ex, err := graphql.NewExtension(
//	    graphql.WithSchemaPath("./schema.graphql"),
//	    graphql.WithConfigPath("./gqlgen.yml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = compiler.Generate("./enumc.yml", &gen.Config{}, compiler.Extensions(ex))
//
// Enums declared in the SDL schema are available through Specs. The
// package-level Generate merges them with the manifest automatically.
type Extension struct {
	hooks      []gen.Hook
	templates  []*gen.Template
	configPath string
	schemaPath string
	specs      []*load.Spec
}

// ExtensionOption configures the Extension.
type ExtensionOption func(*Extension) error

// NewExtension creates a GraphQL extension with the given options.
func NewExtension(opts ...ExtensionOption) (*Extension, error) {
	ex := &Extension{}
	for _, opt := range opts {
		if err := opt(ex); err != nil {
			return nil, err
		}
	}
	ex.hooks = append(ex.hooks, ex.bindingHook())
	return ex, nil
}

// Hooks of the extension.
func (e *Extension) Hooks() []gen.Hook {
	return e.hooks
}

// Templates of the extension. Use WithTemplates to add custom ones.
func (e *Extension) Templates() []*gen.Template {
	return e.templates
}

// Annotations marks the generation as GraphQL-aware. Emitters reach the
// mark through GeneratorHelper.AnnotationExists("GraphQL").
func (e *Extension) Annotations() []schema.Annotation {
	return []schema.Annotation{
		Annotation{ConfigPath: e.configPath, SchemaPath: e.schemaPath},
	}
}

// Options returns the compiler options the extension depends on. The
// graphql codec feature provides the MarshalGQL/UnmarshalGQL methods
// gqlgen requires on bound models.
func (e *Extension) Options() []compiler.Option {
	return []compiler.Option{
		compiler.FeatureNames(gen.FeatureGraphQLCodec.Name),
	}
}

// Specs returns the enum specs imported from the SDL schema, ready to
// join a manifest's enum list.
func (e *Extension) Specs() []*load.Spec {
	return e.specs
}

var _ compiler.Extension = (*Extension)(nil)

// bindingHook returns a hook that updates the bound gqlgen.yml after a
// successful generation pass.
func (e *Extension) bindingHook() gen.Hook {
	return func(next gen.Generator) gen.Generator {
		return gen.GenerateFunc(func(g *gen.Graph) error {
			if err := next.Generate(g); err != nil {
				return err
			}
			if e.configPath == "" {
				return nil
			}
			return e.bind(g)
		})
	}
}

// bind loads the gqlgen config, points every enum type at its generated
// Go model, and writes the file back. The config is re-read on every
// pass, so watch loops pick up edits made between runs.
func (e *Extension) bind(g *gen.Graph) error {
	cfg, err := LoadGQLGenConfig(e.configPath)
	if err != nil {
		return err
	}
	if e.schemaPath != "" {
		cfg.AddSchemaPath(e.schemaPath)
	}
	for _, t := range g.Nodes {
		name := TypeName(t.Annotations[TypeAnnotationName], t.Name)
		cfg.SetModel(name, g.Package+"."+t.Name)
	}
	return SaveGQLGenConfig(e.configPath, cfg)
}

// Generate imports the SDL enums, merges them with the manifest enums
// and runs the compiler with the extension installed. Both sources feed
// one graph, so name and identifier collisions between them are caught
// the same way as within a manifest.
func Generate(manifestPath string, cfg *gen.Config, opts ...ExtensionOption) error {
	ex, err := NewExtension(opts...)
	if err != nil {
		return err
	}
	m, err := load.ReadManifest(manifestPath)
	if err != nil {
		return err
	}
	m.Enums = append(m.Enums, ex.Specs()...)
	if err := compiler.Extensions(ex)(cfg); err != nil {
		return err
	}
	graph, err := compiler.NewGraph(m, cfg, filepath.Dir(manifestPath))
	if err != nil {
		return err
	}
	return graph.Gen()
}

// WithConfigPath sets the gqlgen.yml to update with the enum model
// bindings. A missing file is created on the first pass.
func WithConfigPath(path string) ExtensionOption {
	return func(e *Extension) error {
		e.configPath = path
		return nil
	}
}

// WithSchemaPath sets the SDL schema carrying enum definitions. The
// definitions are imported as specs (see Specs), and the path joins the
// schema list of the bound gqlgen.yml.
func WithSchemaPath(path string) ExtensionOption {
	return func(e *Extension) error {
		specs, err := ImportSpecs(path)
		if err != nil {
			return err
		}
		e.schemaPath = path
		e.specs = append(e.specs, specs...)
		return nil
	}
}

// WithTemplates adds custom templates to the generation.
func WithTemplates(templates ...*gen.Template) ExtensionOption {
	return func(e *Extension) error {
		e.templates = append(e.templates, templates...)
		return nil
	}
}
