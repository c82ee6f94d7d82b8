package gen

import (
	"context"
	"fmt"
	"path"

	"github.com/byBretema/enumc/compiler/load"
)

type (
	// Graph holds all the enum types of a codegen run and the shared
	// configuration they were built with.
	Graph struct {
		*Config
		// Nodes are the enum types in the graph, in load order.
		Nodes []*Type
	}

	// Generator is the interface that wraps the Generate method.
	Generator interface {
		// Generate generates the code artifacts for the given graph.
		Generate(*Graph) error
	}

	// GenerateFunc allows the use of ordinary functions as Generators.
	GenerateFunc func(*Graph) error

	// Hook defines the "generate middleware". A common use case is to
	// run additional generation or checks around the default one:
	//
	//	hook := func(next gen.Generator) gen.Generator {
	//		return gen.GenerateFunc(func(g *gen.Graph) error {
	//			// Code before generation.
	//			err := next.Generate(g)
	//			// Code after generation.
	//			return err
	//		})
	//	}
	//
	Hook func(Generator) Generator
)

// Generate calls f(g).
func (f GenerateFunc) Generate(g *Graph) error {
	return f(g)
}

// NewGraph creates a new Graph for the code generation from the given
// enum specs. All enums share one generated package, so the nodes are
// checked for generated-identifier and file collisions.
func NewGraph(c *Config, specs ...*load.Spec) (*Graph, error) {
	g := &Graph{Config: c, Nodes: make([]*Type, 0, len(specs))}
	for _, spec := range specs {
		if err := g.addNode(spec); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// addNode creates the enum type of the given spec and adds it to the graph.
func (g *Graph) addNode(spec *load.Spec) error {
	t, err := NewType(g.Config, spec)
	if err != nil {
		return err
	}
	idents := make(map[string]string)
	for _, n := range g.Nodes {
		switch {
		case n.Name == t.Name:
			return NewSpecError(t.Name, "", "enum redeclared", nil)
		case n.Label() == t.Label():
			return NewSpecError(t.Name, "", fmt.Sprintf("generated file %q conflicts with enum %q", t.FileName(), n.Name), nil)
		}
		for _, id := range n.Idents() {
			idents[id] = n.Name
		}
	}
	for _, id := range t.Idents() {
		if prev, ok := idents[id]; ok {
			return NewSpecError(t.Name, "", fmt.Sprintf("generated identifier %q conflicts with enum %q", id, prev), nil)
		}
	}
	g.Nodes = append(g.Nodes, t)
	return nil
}

// Gen generates the artifacts for the graph.
func (g *Graph) Gen() error {
	var gen Generator = GenerateFunc(generate)
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		gen = g.Hooks[i](gen)
	}
	return gen.Generate(g)
}

// generate is the default Generator implementation. It renders the enum
// files with the configured emitter driver, executes the external
// templates, and maintains the ordinal snapshot when the feature is on.
func generate(g *Graph) error {
	switch {
	case g.Config == nil:
		return ErrMissingConfig
	case g.Target == "":
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if g.Generator != nil {
		return g.Generator.Generate(g)
	}
	// Drift is checked before any file is written, so a rejected run
	// leaves the target untouched.
	if enabled, _ := g.FeatureEnabled(FeatureSnapshot.Name); enabled {
		if err := checkSnapshot(g); err != nil {
			return err
		}
	}
	// Features disabled in this run clean up the artifacts of earlier
	// runs. Running before emission keeps the files this run rewrites.
	for _, feat := range AllFeatures {
		if feat.cleanup == nil || g.HasFeature(feat.Name) {
			continue
		}
		if err := feat.cleanup(g.Config); err != nil {
			return err
		}
	}
	driver := g.driver()
	jgen := NewJenniferGenerator(g, g.Target)
	if g.Package != "" {
		jgen.WithPackage(path.Base(g.Package))
	}
	jgen.WithEmitter(driver.Init(jgen)).WithCodecs(g.enabledCodecs(driver)...)
	if err := jgen.Generate(context.Background()); err != nil {
		return err
	}
	if err := writeTemplates(g); err != nil {
		return err
	}
	if enabled, _ := g.FeatureEnabled(FeatureSnapshot.Name); enabled {
		if err := writeSnapshot(g); err != nil {
			return err
		}
	}
	return nil
}

// enabledCodecs returns the codec names that are enabled by the config
// features and supported by the given driver.
func (g *Graph) enabledCodecs(d *Driver) []string {
	var cs []string
	for _, c := range codecs {
		if g.HasFeature(c.Feature.Name) && d.CodecMode.Support(c.Mode) {
			cs = append(cs, c.Name)
		}
	}
	return cs
}
