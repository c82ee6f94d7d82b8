package enum

import (
	"fmt"
	"strconv"

	"github.com/byBretema/enumc/schema"
)

//go:generate go run internal/gen.go

// MaxMembers is the maximum number of declared members an enum can carry.
// The ceiling keeps the generated name tables and switch dispatch small
// enough that every operation stays a trivial array or jump-table access.
const MaxMembers = 10

// A Type represents the underlying integer type of an enum.
type Type uint8

// List of underlying types.
const (
	TypeInvalid Type = iota
	TypeInt
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	endTypes
)

var (
	typeNames = [...]string{
		TypeInvalid: "invalid",
		TypeInt:     "int",
		TypeInt8:    "int8",
		TypeInt16:   "int16",
		TypeInt32:   "int32",
		TypeInt64:   "int64",
		TypeUint:    "uint",
		TypeUint8:   "uint8",
		TypeUint16:  "uint16",
		TypeUint32:  "uint32",
		TypeUint64:  "uint64",
	}
	constNames = [...]string{
		TypeInvalid: "TypeInvalid",
		TypeInt:     "TypeInt",
		TypeInt8:    "TypeInt8",
		TypeInt16:   "TypeInt16",
		TypeInt32:   "TypeInt32",
		TypeInt64:   "TypeInt64",
		TypeUint:    "TypeUint",
		TypeUint8:   "TypeUint8",
		TypeUint16:  "TypeUint16",
		TypeUint32:  "TypeUint32",
		TypeUint64:  "TypeUint64",
	}
)

// String returns the Go name of the underlying type (e.g. "uint8").
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// ConstName returns the constant name of the type. It's used by the
// enum codegen tooling.
func (t Type) ConstName() string {
	if t < endTypes {
		return constNames[t]
	}
	return constNames[TypeInvalid]
}

// Valid reports if the given type is a valid underlying type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Signed reports if the underlying type is a signed integer.
func (t Type) Signed() bool {
	return t >= TypeInt && t <= TypeInt64
}

// Bits returns the size of the underlying type in bits, or 0 for an
// invalid type. TypeInt and TypeUint report the platform word size.
func (t Type) Bits() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 8
	case TypeInt16, TypeUint16:
		return 16
	case TypeInt32, TypeUint32:
		return 32
	case TypeInt64, TypeUint64:
		return 64
	case TypeInt, TypeUint:
		return strconv.IntSize
	default:
		return 0
	}
}

// ParseType returns the Type named by the Go type name (e.g. "uint8").
func ParseType(s string) (Type, error) {
	for t := TypeInt; t < endTypes; t++ {
		if typeNames[t] == s {
			return t, nil
		}
	}
	return TypeInvalid, fmt.Errorf("enum: unknown underlying type %q", s)
}

// A Descriptor for enum configuration.
type Descriptor struct {
	Name         string              // enum type name.
	Underlying   Type                // underlying integer type.
	Sentinel     bool                // implicit zero member absorbing failed lookups.
	SentinelName string              // sentinel member name ("None" when empty).
	Members      []string            // declared members in declaration order.
	Comment      string              // doc comment of the generated type.
	Annotations  []schema.Annotation // annotations for codegen extensions.
	Err          error               // first builder misuse, surfaced at load time.
}

// Builder is the configurator for enum definitions. Instantiate it with
// one of the typed constructors in this package (Int, Uint8, ...), which
// pin the underlying integer type of the generated values.
type Builder struct {
	desc *Descriptor
}

// Values appends the given members to the enum in declaration order.
// The declared position of a member is its ordinal in the generated
// type. Declaring more than MaxMembers members marks the definition
// as erroneous.
func (b *Builder) Values(members ...string) *Builder {
	b.desc.Members = append(b.desc.Members, members...)
	if len(b.desc.Members) > MaxMembers {
		b.err(fmt.Errorf("enum %q: %d members exceed the limit of %d", b.desc.Name, len(b.desc.Members), MaxMembers))
	}
	return b
}

// WithSentinel places an implicit zero member before the declared
// members. The sentinel absorbs failed name lookups and names values
// outside the declared range.
func (b *Builder) WithSentinel() *Builder {
	b.desc.Sentinel = true
	return b
}

// SentinelName renames the implicit sentinel member (default "None").
// It implies WithSentinel.
func (b *Builder) SentinelName(name string) *Builder {
	b.desc.Sentinel = true
	b.desc.SentinelName = name
	return b
}

// Comment sets the doc comment of the generated type.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// Annotations adds a list of annotations to the enum definition for
// codegen extensions.
func (b *Builder) Annotations(annotations ...schema.Annotation) *Builder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the enum descriptor interface.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}

func (b *Builder) err(err error) {
	if b.desc.Err == nil {
		b.desc.Err = err
	}
}
