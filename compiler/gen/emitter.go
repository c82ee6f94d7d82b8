package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// =============================================================================
// Interface Segregation: Split emitter capabilities into focused interfaces
// =============================================================================

// EnumEmitter generates per-enum declaration code.
// EmitEnum is called once per enum type in the graph.
type EnumEmitter interface {
	// EmitEnum generates the enum declaration file ({enum}.go): the type,
	// its constants, the name table and the reflection functions.
	EmitEnum(t *Type) *jen.File
}

// PackageEmitter generates package-level code.
// Each method is called once per generation run.
type PackageEmitter interface {
	// EmitDoc generates the package documentation file (doc.go).
	EmitDoc(g *Graph) *jen.File
}

// CodecEmitter generates optional per-enum codec code.
type CodecEmitter interface {
	// SupportsCodec checks if the emitter supports a codec.
	SupportsCodec(codec string) bool
	// EmitCodec generates the codec file ({enum}_{codec}.go).
	// Returns nil if the codec does not apply to the enum.
	EmitCodec(t *Type, codec string) *jen.File
}

// MinimalEmitter requires only enum declaration generation.
// This is the minimum interface an emitter must implement.
type MinimalEmitter interface {
	// Name returns the emitter name (e.g., "go").
	Name() string
	EnumEmitter
}

// FullEmitter defines the complete interface for emitter drivers.
//
// Architecture:
//
//	JenniferGenerator (orchestration: parallel execution, file writing)
//	        |
//	        v
//	MinimalEmitter / FullEmitter (what a driver must implement)
//	        |
//	        v
//	GoEmitter (built-in), CustomEmitter (user-defined)
//
// Methods return *jen.File containing the generated code. The main
// generator orchestrates calling them and writing the files to disk.
// Optional capabilities are detected via type assertion on the emitter,
// so custom emitters can implement MinimalEmitter only.
type FullEmitter interface {
	MinimalEmitter
	PackageEmitter
	CodecEmitter
}

// GeneratorHelper provides helper methods for emitter implementations.
// JenniferGenerator implements this interface, allowing emitters to use
// helper functionality without depending on the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the configured header comment.
	NewFile(pkg string) *jen.File

	// UnderlyingType returns the Jennifer code for the underlying
	// integer type of an enum.
	UnderlyingType(t *Type) jen.Code

	// RuntimePkg returns the import path for the enumc runtime package.
	RuntimePkg() string

	// Graph returns the enum graph.
	Graph() *Graph

	// Pkg returns the output package name.
	Pkg() string

	// CheckEnumEmitted checks if an enum type has already been emitted.
	// Returns true if it was already emitted, false if this is the first time.
	CheckEnumEmitted(name string) bool

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool

	// AnnotationExists checks if a global annotation with the given name exists.
	AnnotationExists(name string) bool
}

// =============================================================================
// Driver registry
// =============================================================================

// A CodecMode defines what codec surfaces an emitter driver supports.
type CodecMode uint

const (
	// Text defines encoding.TextMarshaler and TextUnmarshaler support.
	Text CodecMode = 1 << iota

	// SQL defines sql.Scanner and driver.Valuer support.
	SQL

	// GraphQL defines gqlgen MarshalGQL and UnmarshalGQL support.
	GraphQL
)

// Support reports whether m support the given mode.
func (m CodecMode) Support(mode CodecMode) bool { return m&mode != 0 }

// Codec file suffixes understood by the built-in driver.
const (
	CodecText    = "text"
	CodecSQL     = "sql"
	CodecGraphQL = "graphql"
)

// codecs maps codec names to their modes and feature-flags.
var codecs = []struct {
	Name    string
	Mode    CodecMode
	Feature Feature
}{
	{CodecText, Text, FeatureTextCodec},
	{CodecSQL, SQL, FeatureSQLCodec},
	{CodecGraphQL, GraphQL, FeatureGraphQLCodec},
}

// Driver is an emitter driver type for codegen.
type Driver struct {
	Name      string                               // driver name.
	CodecMode CodecMode                            // codec surfaces support.
	Init      func(GeneratorHelper) MinimalEmitter // emitter constructor.
}

// drivers holds the emitter driver options for enumc.
var drivers = []*Driver{
	{
		Name:      "jennifer",
		CodecMode: Text | SQL | GraphQL,
		Init: func(h GeneratorHelper) MinimalEmitter {
			return NewGoEmitter(h)
		},
	},
}

// NewDriver returns the emitter driver from the given string. It fails if
// the provided string is not a registered driver. This function is here
// in order to remove the validation logic from the enumc command line.
func NewDriver(s string) (*Driver, error) {
	for _, d := range drivers {
		if s == d.Name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("enumc/gen: invalid emitter driver %q", s)
}

// String implements the fmt.Stringer interface for template usage.
func (d *Driver) String() string { return d.Name }

// driver returns the configured emitter driver, defaulting to the first
// registered driver.
func (c *Config) driver() *Driver {
	if c.Driver != nil {
		return c.Driver
	}
	return drivers[0]
}
