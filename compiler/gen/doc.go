// Package gen provides code generation for enumc enum definitions.
//
// This package turns loaded enum specs into Go source files: one value
// type per enum with its constants, name table and accessors, plus one
// file per enabled codec.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Enum definition (manifest or schema/enum builders)
//	        ↓
//	   load.Spec (validated, serializable form)
//	        ↓
//	   Graph (Type nodes with resolved members)
//	        ↓
//	   Emitter (driver-selected code emission)
//	        ↓
//	   Generated code ({target}/)
//
// # Key Types
//
// The package provides several key types:
//
//   - Graph: Holds all Type definitions with cross-enum validation
//   - Type: Represents an enum with its underlying type and members
//   - Member: A named member with its ordinal and sentinel flag
//   - Config: Global configuration for code generation
//
// # Interface Hierarchy
//
// The emitter interfaces follow the Interface Segregation Principle:
//
//	MinimalEmitter (basic emitter support)
//	├── Name() string
//	└── EnumEmitter
//	    └── EmitEnum
//
//	FullEmitter (extends MinimalEmitter)
//	├── PackageEmitter
//	│   └── EmitDoc
//	└── CodecEmitter
//	    └── SupportsCodec, EmitCodec
//
// Custom emitters can implement MinimalEmitter for basic support, or
// FullEmitter for package docs and codecs.
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - SpecError: Enum definition errors
//   - ArityError: Member count above the supported ceiling
//   - ConfigError: Configuration errors
//   - GenerationError: Code generation errors
//   - DriftError: Ordinal-breaking changes against a stored snapshot
//
// Example error handling:
//
//	graph, err := gen.NewGraph(config, specs...)
//	if err != nil {
//	    if gen.IsSpecError(err) {
//	        // Handle definition-specific error
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./lights"),
//	)
//	compiler.Generate("./enums.yaml", config)
//
// Additional options available:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./lights"),
//	    gen.WithFeatures(gen.FeatureSQLCodec),    // Enable database codecs
//	    gen.WithHeader("// Custom header"),       // Custom file header
//	)
//
// # Jennifer Emitter
//
// Code emission uses the Jennifer library instead of templates for:
//
//   - Auto-tracking imports (no goimports needed)
//   - Streaming writes to disk (lower memory)
//   - Compile-time type safety
//   - Parallel generation with configurable workers
//
// Templates registered with WithTemplates still run after emission, so
// extensions can attach additional files to the generated package.
//
// # Usage
//
// The recommended way to generate code is through the compiler package:
//
//	import "github.com/byBretema/enumc/compiler"
//
//	err := compiler.Generate("./enums.yaml", config)
//
// Or manually configure the generator:
//
//	import "github.com/byBretema/enumc/compiler/gen"
//
//	graph, err := gen.NewGraph(config, specs...)
//	if err != nil {
//	    return err
//	}
//	err = graph.Gen()
//
// # Generated Output
//
// The generator produces the following structure:
//
//	{target}/
//	├── doc.go              // Package documentation
//	├── {enum}.go           // Type, constants, name table, accessors
//	├── {enum}_text.go      // encoding.TextMarshaler/TextUnmarshaler
//	├── {enum}_sql.go       // sql.Scanner/driver.Valuer
//	├── {enum}_graphql.go   // gqlgen marshaler/unmarshaler
//	└── internal/
//	    └── enumc.snap      // Ordinal snapshot (snapshot feature)
//
// # Features
//
// The generator supports optional features that can be enabled:
//
//   - codec/text: Text codecs, on by default
//   - codec/sql: Database scanner and valuer codecs
//   - codec/graphql: gqlgen enum bindings
//   - snapshot: Ordinal snapshot guarding persisted values
package gen

// The internal/lights fixtures are generated output committed for the
// runtime tests. Regenerate them after changing the emitters.
//go:generate go run ./cmd/lightsgen
