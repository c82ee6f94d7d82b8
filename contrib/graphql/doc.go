// Package graphql integrates enum generation with gqlgen.
//
// The package covers both directions of a GraphQL workflow: enums
// declared in a schema.graphql are imported and generated as Go types,
// and every generated enum is registered as a model binding in
// gqlgen.yml so gqlgen reuses the generated type instead of declaring
// its own.
//
// # Usage
//
// Run the extension from a generate.go next to the manifest:
//
//	//go:build ignore
//
//	package main
//
//	import (
//	    "log"
//
//	    "github.com/byBretema/enumc/compiler/gen"
//	    "github.com/byBretema/enumc/contrib/graphql"
//	)
//
//	func main() {
//	    err := graphql.Generate("./enumc.yml", &gen.Config{},
//	        graphql.WithSchemaPath("./schema.graphql"),
//	        graphql.WithConfigPath("./gqlgen.yml"),
//	    )
//	    if err != nil {
//	        log.Fatalf("running enumc codegen: %v", err)
//	    }
//	}
//
// Enums read from the schema keep their value names verbatim, so the
// generated MarshalGQL output always matches the SDL declaration.
//
// # Annotations
//
// An enum served under a different GraphQL name binds through the Type
// annotation in the manifest:
//
//	enums:
//	  - name: LightsView
//	    annotations:
//	      GraphQLType: ViewMode
package graphql
