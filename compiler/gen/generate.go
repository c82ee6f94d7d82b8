package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/byBretema/enumc/schema/enum"
)

// runtimePkg is the import path of the runtime package the generated
// code depends on.
const runtimePkg = "github.com/byBretema/enumc"

// JenniferGenerator generates code using Jennifer instead of templates.
// This provides better performance by:
// - Auto-tracking imports (no goimports needed)
// - Streaming writes to disk (lower memory)
// - Compile-time type safety
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string

	// Emitter for the enum declaration code.
	// Requires at least MinimalEmitter, but full FullEmitter is supported.
	emitter MinimalEmitter

	// Optional interface implementations detected at runtime
	docGen   PackageEmitter
	codecGen CodecEmitter

	// Codec names rendered for each enum
	codecs []string

	// Track emitted enum types to avoid duplicates
	enumsMu      sync.Mutex
	emittedEnums map[string]bool
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithEmitter() to set an emitter before calling Generate().
//
// Example:
//
//	jgen := gen.NewJenniferGenerator(graph, outDir)
//	jgen.WithEmitter(gen.NewGoEmitter(jgen))
//	jgen.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	return &JenniferGenerator{
		graph:        g,
		workers:      runtime.GOMAXPROCS(0),
		outDir:       outDir,
		pkg:          filepath.Base(outDir),
		emittedEnums: make(map[string]bool),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithEmitter sets a custom emitter.
// The emitter must implement MinimalEmitter at minimum. Additional
// capabilities are detected via PackageEmitter and CodecEmitter.
func (g *JenniferGenerator) WithEmitter(e MinimalEmitter) *JenniferGenerator {
	if e != nil {
		g.emitter = e
		// Detect optional capabilities via type assertion
		if dg, ok := e.(PackageEmitter); ok {
			g.docGen = dg
		}
		if cg, ok := e.(CodecEmitter); ok {
			g.codecGen = cg
		}
	}
	return g
}

// WithCodecs sets the codec names rendered for each enum. Codecs the
// emitter doesn't support are skipped.
func (g *JenniferGenerator) WithCodecs(codecs ...string) *JenniferGenerator {
	g.codecs = codecs
	return g
}

// Generate generates all code with parallel execution and streaming writes.
// It uses the configured emitter for the enum declaration code.
// Returns an error if no emitter has been set via WithEmitter().
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.emitter == nil {
		return NewConfigError("Driver", nil, "no emitter set: call WithEmitter() before Generate()")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return err
	}

	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	// Generate per-enum files in parallel using the emitter interface
	for _, t := range g.graph.Nodes {
		t := t
		if g.CheckEnumEmitted(t.Name) {
			continue
		}

		// Enum declaration
		errg.Go(func() error {
			return g.writeFile(g.emitter.EmitEnum(t), t.FileName())
		})

		// Codec files ({enum}_{codec}.go)
		if g.codecGen == nil {
			continue
		}
		for _, codec := range g.codecs {
			codec := codec
			if !g.codecGen.SupportsCodec(codec) {
				continue
			}
			errg.Go(func() error {
				f := g.codecGen.EmitCodec(t, codec)
				if f == nil {
					return nil
				}
				return g.writeFile(f, t.CodecFile(codec))
			})
		}
	}

	// Generate shared files using the emitter interface
	if g.docGen != nil {
		errg.Go(func() error {
			return g.writeFile(g.docGen.EmitDoc(g.graph), "doc.go")
		})
	}

	return errg.Wait()
}

// =============================================================================
// GeneratorHelper interface implementation
// These exported methods allow emitter implementations to access helper
// functionality.
// =============================================================================

// NewFile creates a new Jennifer file with the configured header comment.
func (g *JenniferGenerator) NewFile(pkg string) *jen.File {
	return g.newFile(pkg)
}

// UnderlyingType returns the Jennifer code for the underlying integer
// type of an enum.
func (g *JenniferGenerator) UnderlyingType(t *Type) jen.Code {
	return g.underlyingType(t)
}

// RuntimePkg returns the import path for the enumc runtime package.
func (g *JenniferGenerator) RuntimePkg() string {
	return runtimePkg
}

// Graph returns the enum graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string {
	return g.pkg
}

// CheckEnumEmitted checks if an enum type has already been emitted.
// Returns true if it was already emitted, false if this is the first time.
// This method is thread-safe.
func (g *JenniferGenerator) CheckEnumEmitted(name string) bool {
	g.enumsMu.Lock()
	defer g.enumsMu.Unlock()
	if g.emittedEnums[name] {
		return true
	}
	g.emittedEnums[name] = true
	return false
}

// FeatureEnabled reports if the given feature name is enabled.
func (g *JenniferGenerator) FeatureEnabled(name string) bool {
	enabled, _ := g.graph.Config.FeatureEnabled(name)
	return enabled
}

// AnnotationExists checks if a global annotation with the given name exists.
func (g *JenniferGenerator) AnnotationExists(name string) bool {
	if g.graph.Config.Annotations == nil {
		return false
	}
	_, exists := g.graph.Config.Annotations[name]
	return exists
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)

// =============================================================================
// Internal helper methods (unexported)
// =============================================================================

// writeFile writes a jennifer file directly to disk (no buffering).
func (g *JenniferGenerator) writeFile(f *jen.File, filename string) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(g.outDir, filename)
	out, err := os.Create(path)
	if err != nil {
		return NewGenerationError("write", filename, "create output file", err)
	}
	defer out.Close()

	// Jennifer renders with correct imports and formatting
	if err := f.Render(out); err != nil {
		return NewGenerationError("render", filename, "render output file", err)
	}
	return nil
}

// newFile creates a new Jennifer file with the header comment.
func (g *JenniferGenerator) newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	header := defaultHeader
	if g.graph != nil && g.graph.Config != nil {
		header = g.graph.header()
	}
	f.HeaderComment(header)
	return f
}

// underlyingType returns the Jennifer code for the underlying integer
// type of an enum.
func (g *JenniferGenerator) underlyingType(t *Type) jen.Code {
	switch t.Underlying {
	case enum.TypeInt:
		return jen.Int()
	case enum.TypeInt8:
		return jen.Int8()
	case enum.TypeInt16:
		return jen.Int16()
	case enum.TypeInt32:
		return jen.Int32()
	case enum.TypeInt64:
		return jen.Int64()
	case enum.TypeUint:
		return jen.Uint()
	case enum.TypeUint8:
		return jen.Uint8()
	case enum.TypeUint16:
		return jen.Uint16()
	case enum.TypeUint32:
		return jen.Uint32()
	case enum.TypeUint64:
		return jen.Uint64()
	default:
		return jen.Int()
	}
}
