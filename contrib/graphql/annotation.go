package graphql

import "github.com/byBretema/enumc/schema"

// Annotation names registered by this package.
const (
	// AnnotationName marks a generation as GraphQL-aware.
	AnnotationName = "GraphQL"
	// TypeAnnotationName binds a single enum to a GraphQL type name.
	TypeAnnotationName = "GraphQLType"
)

// Annotation marks a generation as GraphQL-aware and records where the
// gqlgen configuration and schema live. The extension attaches it to the
// global config so emitters can detect the integration through
// AnnotationExists.
type Annotation struct {
	// ConfigPath is the path of the gqlgen.yml the extension maintains.
	ConfigPath string `json:"config_path,omitempty"`
	// SchemaPath is the path of the SDL schema enums were imported from.
	SchemaPath string `json:"schema_path,omitempty"`
}

// Name implements schema.Annotation.
func (Annotation) Name() string {
	return AnnotationName
}

// Type binds an enum to a GraphQL type declared under a different name.
// The binding hook registers the annotated name in gqlgen.yml instead of
// the Go type name. In a manifest:
//
//	annotations:
//	  GraphQLType: ViewMode
type Type string

// Name implements schema.Annotation.
func (Type) Name() string {
	return TypeAnnotationName
}

// TypeName reports the bound GraphQL type name for an enum, falling back
// to the Go type name when no Type annotation is present. Annotations
// decoded from a manifest or a marshaled spec arrive as plain strings.
func TypeName(ant any, fallback string) string {
	switch ant := ant.(type) {
	case Type:
		if ant != "" {
			return string(ant)
		}
	case string:
		if ant != "" {
			return ant
		}
	case map[string]any:
		if name, ok := ant["type_name"].(string); ok && name != "" {
			return name
		}
	}
	return fallback
}

var (
	_ schema.Annotation = (*Annotation)(nil)
	_ schema.Annotation = (*Type)(nil)
)
