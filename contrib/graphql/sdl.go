package graphql

import (
	"fmt"
	"os"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/byBretema/enumc/compiler/load"
)

// ImportSpecs reads a GraphQL schema file and returns an enum spec for
// every enum definition it declares, in declaration order. Imported
// enums carry no sentinel and keep their SDL value names verbatim, so
// the generated name mapping round-trips through the wire format
// unchanged.
func ImportSpecs(path string) ([]*load.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphql: read schema: %w", err)
	}
	return ParseSpecs(&ast.Source{Name: path, Input: string(data)})
}

// ParseSpecs extracts the enum specs from an SDL source. The source does
// not need to be a complete schema; definitions other than enums are
// ignored, and "extend enum" blocks append members to their base enum.
func ParseSpecs(source *ast.Source) ([]*load.Spec, error) {
	doc, err := parser.ParseSchema(source)
	if err != nil {
		return nil, fmt.Errorf("graphql: parse schema %s: %w", source.Name, err)
	}
	var (
		specs  []*load.Spec
		byName = make(map[string]*load.Spec)
	)
	add := func(def *ast.Definition) {
		spec, ok := byName[def.Name]
		if !ok {
			spec = &load.Spec{Name: def.Name, Comment: def.Description}
			byName[def.Name] = spec
			specs = append(specs, spec)
		}
		for _, v := range def.EnumValues {
			spec.Members = append(spec.Members, v.Name)
		}
	}
	for _, def := range doc.Definitions {
		if def.Kind == ast.Enum {
			add(def)
		}
	}
	for _, ext := range doc.Extensions {
		if ext.Kind == ast.Enum {
			add(ext)
		}
	}
	return specs, nil
}
