package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dave/jennifer/jen"
)

// GoEmitter is the built-in emitter behind the "jennifer" driver. It renders
// plain Go enumeration types with the dave/jennifer builder API.
//
// Generated code structure:
//
//	{target}/
//	├── doc.go              # Package documentation
//	├── {enum}.go           # Type, constants, name table, accessors
//	└── {enum}_{codec}.go   # One file per enabled codec
//
// The generated files depend only on the standard library and on the
// runtime package reported by GeneratorHelper.RuntimePkg.
type GoEmitter struct {
	helper GeneratorHelper
}

// NewGoEmitter creates the built-in Go emitter.
// The helper parameter is usually a *gen.JenniferGenerator.
func NewGoEmitter(helper GeneratorHelper) *GoEmitter {
	return &GoEmitter{helper: helper}
}

// Name returns the emitter name.
func (e *GoEmitter) Name() string {
	return "go"
}

// EmitEnum generates the base file of the enum ({enum}.go).
// Includes: type declaration, member constants, name table, Values,
// Index, String, IsValid, Parse and Names.
func (e *GoEmitter) EmitEnum(t *Type) *jen.File {
	return emitEnum(e.helper, t)
}

// EmitDoc generates the package documentation file (doc.go).
func (e *GoEmitter) EmitDoc(g *Graph) *jen.File {
	return emitDoc(e.helper, g)
}

// SupportsCodec reports if the codec is implemented by the Go emitter.
func (e *GoEmitter) SupportsCodec(codec string) bool {
	switch codec {
	case CodecText, CodecSQL, CodecGraphQL:
		return true
	default:
		return false
	}
}

// EmitCodec generates the codec file of the enum ({enum}_{codec}.go).
// It returns nil for codecs the emitter does not support.
func (e *GoEmitter) EmitCodec(t *Type, codec string) *jen.File {
	switch codec {
	case CodecText:
		return emitTextCodec(e.helper, t)
	case CodecSQL:
		return emitSQLCodec(e.helper, t)
	case CodecGraphQL:
		return emitGraphQLCodec(e.helper, t)
	default:
		return nil
	}
}

// Verify GoEmitter implements the full emitter surface at compile time.
var _ FullEmitter = (*GoEmitter)(nil)

// emitEnum generates the base file of the enum: the type declaration, the
// constant block with the sentinel first, the name table, and the accessor
// functions declared by the public contract.
func emitEnum(h GeneratorHelper, t *Type) *jen.File {
	f := h.NewFile(h.Pkg())
	recv := t.Receiver()

	// Type declaration. The manifest comment, when present, becomes the
	// doc comment of the generated type.
	if t.Comment != "" {
		for _, line := range strings.Split(t.Comment, "\n") {
			f.Comment(line)
		}
	} else {
		f.Commentf("%s is an enumeration backed by %s.", t.Name, t.Underlying)
	}
	f.Type().Id(t.Name).Add(h.UnderlyingType(t))

	// Member constants in declaration order. Ordinals are assigned by
	// iota, so the source order is the wire order.
	f.Commentf("%s members.", t.Name)
	f.Const().DefsFunc(func(defs *jen.Group) {
		for i, code := range expand(t.Members, memberConst(t)) {
			if t.Members[i].Sentinel {
				defs.Commentf("%s is the sentinel member. It is the zero value and the", t.Members[i].ConstName())
				defs.Comment("fallback for out-of-range values and unknown names.")
			}
			defs.Add(code)
		}
	})

	// Name table indexed by ordinal.
	f.Commentf("%s holds the declared name of each member.", t.NamesVar())
	f.Var().Id(t.NamesVar()).Op("=").Index(jen.Op("...")).String().Values(expand(t.Members, nameElem)...)

	// Values function.
	f.Commentf("%s returns all declared values of %s, ordered by index.", t.ValuesFunc(), t.Name)
	f.Func().Id(t.ValuesFunc()).Params().Index().Id(t.Name).Block(
		jen.Return(jen.Index().Id(t.Name).Values(expand(t.Members, valueElem)...)),
	)

	// Index method.
	f.Commentf("Index returns the ordinal of the member as its underlying %s.", t.Underlying)
	f.Func().Params(jen.Id(recv).Id(t.Name)).Id("Index").Params().Add(h.UnderlyingType(t)).Block(
		jen.Return(jen.Add(h.UnderlyingType(t)).Call(jen.Id(recv))),
	)

	// String method. The bounds check keeps the table lookup total.
	f.Commentf("String returns the declared name of the member, or %q for a value", t.FallbackName())
	f.Comment("that is not part of the declaration.")
	f.Func().Params(jen.Id(recv).Id(t.Name)).Id("String").Params().String().BlockFunc(func(body *jen.Group) {
		body.If(inRange(t, recv)).Block(
			jen.Return(jen.Id(t.NamesVar()).Index(jen.Id(recv))),
		)
		body.Return(jen.Lit(t.FallbackName()))
	})

	// IsValid method.
	f.Commentf("IsValid reports whether the value is a declared member of %s.", t.Name)
	f.Func().Params(jen.Id(recv).Id(t.Name)).Id("IsValid").Params().Bool().Block(
		jen.Return(inRange(t, recv)),
	)

	// Parse function. Member names resolve through a switch scanned in
	// declaration order. Enums with a sentinel resolve unknown names to
	// it; enums without one report the failure to the caller.
	if m, ok := t.SentinelMember(); ok {
		f.Commentf("%s returns the %s member named s. Unknown names resolve to the", t.ParseFunc(), t.Name)
		f.Commentf("sentinel %s.", m.ConstName())
		f.Func().Id(t.ParseFunc()).Params(jen.Id("s").String()).Id(t.Name).BlockFunc(func(body *jen.Group) {
			body.Switch(jen.Id("s")).Block(expand(t.Members, resolveCase(t))...)
			body.Return(jen.Id(m.ConstName()))
		})
	} else {
		f.Commentf("%s returns the %s member named s, or an error satisfying", t.ParseFunc(), t.Name)
		f.Comment("errors.Is(err, enumc.ErrUnknownName) when no member has that name.")
		f.Func().Id(t.ParseFunc()).Params(jen.Id("s").String()).Params(jen.Id(t.Name), jen.Error()).BlockFunc(func(body *jen.Group) {
			body.Switch(jen.Id("s")).Block(expand(t.Members, resolveCase(t))...)
			body.Return(jen.Lit(0), jen.Qual(h.RuntimePkg(), "NewUnknownNameError").Call(jen.Lit(t.Name), jen.Id("s")))
		})
	}

	// Names function.
	f.Commentf("%s returns the declared names of %s, ordered by index.", t.NamesFunc(), t.Name)
	f.Func().Id(t.NamesFunc()).Params().Index().String().Block(
		jen.Return(jen.Index().String().Values(expand(t.Members, nameElem)...)),
	)
	return f
}

// emitDoc generates the package documentation file listing the enums of
// the graph.
func emitDoc(h GeneratorHelper, g *Graph) *jen.File {
	f := h.NewFile(h.Pkg())
	f.PackageComment(fmt.Sprintf("Package %s contains the enum types declared in the project manifest.", h.Pkg()))
	f.PackageComment("")
	f.PackageComment("Declared enums:")
	for _, t := range g.Nodes {
		if m, ok := t.SentinelMember(); ok {
			f.PackageComment(fmt.Sprintf("  - %s (%s, sentinel %q)", t.Name, t.Underlying, m.Name))
		} else {
			f.PackageComment(fmt.Sprintf("  - %s (%s)", t.Name, t.Underlying))
		}
	}
	return f
}

// emitTextCodec generates the encoding.TextMarshaler and TextUnmarshaler
// methods ({enum}_text.go). Both directions are strict: marshaling an
// undeclared value and unmarshaling an unknown name report an error.
func emitTextCodec(h GeneratorHelper, t *Type) *jen.File {
	f := h.NewFile(h.Pkg())
	recv := t.Receiver()

	f.Comment("MarshalText implements the encoding.TextMarshaler interface.")
	f.Func().Params(jen.Id(recv).Id(t.Name)).Id("MarshalText").Params().Params(jen.Index().Byte(), jen.Error()).BlockFunc(func(body *jen.Group) {
		body.If(jen.Op("!").Id(recv).Dot("IsValid").Call()).Block(
			jen.Return(jen.Nil(), jen.Qual(h.RuntimePkg(), "NewInvalidValueError").Call(jen.Lit(t.Name), rawValue(t, recv))),
		)
		body.Return(jen.Index().Byte().Call(jen.Id(recv).Dot("String").Call()), jen.Nil())
	})

	names := newLocals(recv)
	data, u, ok := names.get("data"), names.get("u"), names.get("ok")
	f.Comment("UnmarshalText implements the encoding.TextUnmarshaler interface.")
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("UnmarshalText").Params(jen.Id(data).Index().Byte()).Error().BlockFunc(func(body *jen.Group) {
		body.List(jen.Id(u), jen.Id(ok)).Op(":=").Qual(h.RuntimePkg(), "Lookup").Call(jen.Id(t.ValuesFunc()).Call(), jen.String().Call(jen.Id(data)))
		body.If(jen.Op("!").Id(ok)).Block(
			jen.Return(jen.Qual(h.RuntimePkg(), "NewUnknownNameError").Call(jen.Lit(t.Name), jen.String().Call(jen.Id(data)))),
		)
		body.Op("*").Id(recv).Op("=").Id(u)
		body.Return(jen.Nil())
	})
	return f
}

// emitSQLCodec generates the database/sql scanner and valuer methods
// ({enum}_sql.go). Columns are stored by name. NULL scans to the sentinel
// when the enum declares one and is rejected otherwise.
func emitSQLCodec(h GeneratorHelper, t *Type) *jen.File {
	f := h.NewFile(h.Pkg())
	recv := t.Receiver()
	names := newLocals(recv)
	value, str, v := names.get("value"), names.get("str"), names.get("v")
	u, ok := names.get("u"), names.get("ok")

	f.Comment("Scan implements the sql.Scanner interface.")
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("Scan").Params(jen.Id(value).Any()).Error().BlockFunc(func(body *jen.Group) {
		body.Var().Id(str).String()
		body.Switch(jen.Id(v).Op(":=").Id(value).Assert(jen.Type())).BlockFunc(func(sw *jen.Group) {
			sw.Case(jen.String()).Block(
				jen.Id(str).Op("=").Id(v),
			)
			sw.Case(jen.Index().Byte()).Block(
				jen.Id(str).Op("=").String().Call(jen.Id(v)),
			)
			if m, sentinel := t.SentinelMember(); sentinel {
				sw.Case(jen.Nil()).Block(
					jen.Op("*").Id(recv).Op("=").Id(m.ConstName()),
					jen.Return(jen.Nil()),
				)
			}
			sw.Default().Block(
				jen.Return(jen.Qual(h.RuntimePkg(), "NewInvalidValueError").Call(jen.Lit(t.Name), jen.Id(value))),
			)
		})
		body.List(jen.Id(u), jen.Id(ok)).Op(":=").Qual(h.RuntimePkg(), "Lookup").Call(jen.Id(t.ValuesFunc()).Call(), jen.Id(str))
		body.If(jen.Op("!").Id(ok)).Block(
			jen.Return(jen.Qual(h.RuntimePkg(), "NewUnknownNameError").Call(jen.Lit(t.Name), jen.Id(str))),
		)
		body.Op("*").Id(recv).Op("=").Id(u)
		body.Return(jen.Nil())
	})

	f.Comment("Value implements the driver.Valuer interface.")
	f.Func().Params(jen.Id(recv).Id(t.Name)).Id("Value").Params().Params(
		jen.Qual("database/sql/driver", "Value"),
		jen.Error(),
	).BlockFunc(func(body *jen.Group) {
		body.If(jen.Op("!").Id(recv).Dot("IsValid").Call()).Block(
			jen.Return(jen.Nil(), jen.Qual(h.RuntimePkg(), "NewInvalidValueError").Call(jen.Lit(t.Name), rawValue(t, recv))),
		)
		body.Return(jen.Id(recv).Dot("String").Call(), jen.Nil())
	})
	return f
}

// emitGraphQLCodec generates the gqlgen marshaler and unmarshaler methods
// ({enum}_graphql.go). Names travel as GraphQL strings.
func emitGraphQLCodec(h GeneratorHelper, t *Type) *jen.File {
	f := h.NewFile(h.Pkg())
	recv := t.Receiver()
	names := newLocals(recv)
	w, val := names.get("w"), names.get("val")
	str, u, ok := names.get("str"), names.get("u"), names.get("ok")

	f.Comment("MarshalGQL implements the graphql.Marshaler interface.")
	f.Func().Params(jen.Id(recv).Id(t.Name)).Id("MarshalGQL").Params(
		jen.Id(w).Qual("io", "Writer"),
	).Block(
		jen.Qual("io", "WriteString").Call(
			jen.Id(w),
			jen.Qual("strconv", "Quote").Call(jen.Id(recv).Dot("String").Call()),
		),
	)

	f.Comment("UnmarshalGQL implements the graphql.Unmarshaler interface.")
	f.Func().Params(jen.Id(recv).Op("*").Id(t.Name)).Id("UnmarshalGQL").Params(
		jen.Id(val).Any(),
	).Error().BlockFunc(func(body *jen.Group) {
		body.List(jen.Id(str), jen.Id(ok)).Op(":=").Id(val).Assert(jen.String())
		body.If(jen.Op("!").Id(ok)).Block(
			jen.Return(jen.Qual(h.RuntimePkg(), "NewInvalidValueError").Call(jen.Lit(t.Name), jen.Id(val))),
		)
		body.List(jen.Id(u), jen.Id(ok)).Op(":=").Qual(h.RuntimePkg(), "Lookup").Call(jen.Id(t.ValuesFunc()).Call(), jen.Id(str))
		body.If(jen.Op("!").Id(ok)).Block(
			jen.Return(jen.Qual(h.RuntimePkg(), "NewUnknownNameError").Call(jen.Lit(t.Name), jen.Id(str))),
		)
		body.Op("*").Id(recv).Op("=").Id(u)
		body.Return(jen.Nil())
	})
	return f
}

// inRange returns the condition guarding the name-table access. Signed
// underlying types need the extra lower bound.
func inRange(t *Type, recv string) *jen.Statement {
	if t.Signed() {
		return jen.Id(recv).Op(">=").Lit(0).Op("&&").
			Int64().Call(jen.Id(recv)).Op("<").Int64().Call(jen.Len(jen.Id(t.NamesVar())))
	}
	return jen.Uint64().Call(jen.Id(recv)).Op("<").Uint64().Call(jen.Len(jen.Id(t.NamesVar())))
}

// rawValue renders the numeric value of the receiver for error reporting.
// Widening to a fixed 64-bit type keeps the reported value independent of
// the underlying width.
func rawValue(t *Type, recv string) *jen.Statement {
	if t.Signed() {
		return jen.Int64().Call(jen.Id(recv))
	}
	return jen.Uint64().Call(jen.Id(recv))
}

// locals allocates identifier names for one generated function body.
// Names that would shadow the receiver or a previously allocated name
// are extended until they are free.
type locals struct {
	taken []string
}

func newLocals(taken ...string) *locals {
	return &locals{taken: taken}
}

func (l *locals) get(name string) string {
	for slices.Contains(l.taken, name) {
		name += "v"
	}
	l.taken = append(l.taken, name)
	return name
}
