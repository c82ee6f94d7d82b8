package gen

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/byBretema/enumc/compiler/load"
	"github.com/byBretema/enumc/schema/enum"
)

// The following types and their exported methods used by the emitters
// to generate the assets.
type (
	// Type represents one enum type in the graph and the information
	// it holds.
	Type struct {
		*Config
		spec *load.Spec
		// Name holds the exported name of the enum type.
		Name string
		// Underlying holds the underlying integer type of the enum.
		Underlying enum.Type
		// Sentinel reports if the enum carries an implicit zero member.
		Sentinel bool
		// Members holds the members of the enum in declaration order.
		// For sentinel enums, the implicit zero member comes first and
		// the declared members are pushed up by one ordinal.
		Members []*Member
		members map[string]*Member
		// Comment holds the doc comment of the enum type.
		Comment string
		// Annotations that were defined for the enum definition.
		// The mapping is from the Annotation.Name() to a JSON decoded object.
		Annotations Annotations
	}

	// Member holds the information of one enum member used by the emitters.
	Member struct {
		typ *Type
		// Name is the declared member name.
		Name string
		// Index is the ordinal of the member within its enum.
		Index int
		// Sentinel reports if this member is the implicit zero member.
		Sentinel bool
	}
)

// fallbackName is the String() result for out-of-range values of enums
// without a sentinel.
const fallbackName = "Unknown"

// NewType creates a new enum type and its members from the given spec.
func NewType(c *Config, spec *load.Spec) (*Type, error) {
	if err := ValidEnumName(spec.Name); err != nil {
		return nil, err
	}
	ut, err := spec.Type()
	if err != nil {
		return nil, NewSpecError(spec.Name, "", "invalid underlying type", err)
	}
	typ := &Type{
		Config:      c,
		spec:        spec,
		Name:        spec.Name,
		Underlying:  ut,
		Sentinel:    spec.Sentinel,
		Comment:     spec.Comment,
		Annotations: spec.Annotations,
		Members:     make([]*Member, 0, len(spec.Members)+1),
		members:     make(map[string]*Member, len(spec.Members)+1),
	}
	if spec.Sentinel {
		name := spec.SentinelName
		if name == "" {
			name = load.DefaultSentinelName
		}
		sm := &Member{typ: typ, Name: name, Sentinel: true}
		if err := typ.checkMember(sm); err != nil {
			return nil, err
		}
		typ.addMember(sm)
	}
	switch n := len(spec.Members); {
	case n == 0:
		return nil, NewSpecError(spec.Name, "", "enum must declare at least one member", nil)
	case n > enum.MaxMembers:
		return nil, NewArityError(spec.Name, n, enum.MaxMembers)
	}
	for _, name := range spec.Members {
		m := &Member{typ: typ, Name: name}
		if err := typ.checkMember(m); err != nil {
			return nil, err
		}
		typ.addMember(m)
	}
	return typ, nil
}

// addMember appends the member and assigns its ordinal.
func (t *Type) addMember(m *Member) {
	m.Index = len(t.Members)
	t.Members = append(t.Members, m)
	t.members[m.Name] = m
}

// checkMember checks a member before it joins the enum.
func (t *Type) checkMember(m *Member) error {
	switch r, _ := utf8.DecodeRuneInString(m.Name); {
	case m.Name == "":
		return NewSpecError(t.Name, "", "member name cannot be empty", nil)
	case !token.IsIdentifier(m.Name):
		return NewSpecError(t.Name, m.Name, "member name is not a valid Go identifier", nil)
	case !unicode.IsUpper(r):
		return NewSpecError(t.Name, m.Name, "member name must be exported", nil)
	}
	if prev := t.members[m.Name]; prev != nil {
		if prev.Sentinel {
			return NewSpecError(t.Name, m.Name, "member conflicts with the sentinel name", nil)
		}
		return NewSpecError(t.Name, m.Name, fmt.Sprintf("member redeclared for enum %q", t.Name), nil)
	}
	return nil
}

// Label returns the label name of the enum (snake_case).
func (t Type) Label() string {
	return snake(t.Name)
}

// Receiver returns the receiver name of the generated enum type. It makes
// sure the receiver name doesn't conflict with import names.
func (t Type) Receiver() string {
	return receiver(t.Name)
}

// FileName returns the name of the generated base file of the enum.
func (t Type) FileName() string {
	return t.Label() + ".go"
}

// CodecFile returns the name of the generated codec file of the enum.
// Codecs are written next to the base file, one file per codec.
func (t Type) CodecFile(codec string) string {
	return fmt.Sprintf("%s_%s.go", t.Label(), codec)
}

// NamesVar returns the name of the generated name-table variable.
func (t Type) NamesVar() string {
	return "_" + t.Name + "Names"
}

// ValuesFunc returns the name of the generated values function.
func (t Type) ValuesFunc() string {
	return t.Name + "Values"
}

// ParseFunc returns the name of the generated parse function.
func (t Type) ParseFunc() string {
	return "Parse" + t.Name
}

// NamesFunc returns the name of the generated names function.
func (t Type) NamesFunc() string {
	return t.Name + "Names"
}

// SentinelMember returns the implicit zero member of the enum, if the
// enum carries one.
func (t Type) SentinelMember() (*Member, bool) {
	if !t.Sentinel || len(t.Members) == 0 {
		return nil, false
	}
	return t.Members[0], true
}

// DeclaredMembers returns the members declared in the definition, without
// the implicit sentinel.
func (t Type) DeclaredMembers() []*Member {
	if t.Sentinel {
		return t.Members[1:]
	}
	return t.Members
}

// MemberByName returns the member with the given name, if it exists.
func (t Type) MemberByName(name string) (*Member, bool) {
	m, ok := t.members[name]
	return m, ok
}

// Count returns the number of members, including the sentinel.
func (t Type) Count() int {
	return len(t.Members)
}

// FallbackName returns the name the generated String method reports for
// out-of-range values: the sentinel name when the enum has one, and
// "Unknown" otherwise.
func (t Type) FallbackName() string {
	if m, ok := t.SentinelMember(); ok {
		return m.Name
	}
	return fallbackName
}

// Signed reports if the underlying type of the enum is signed.
func (t Type) Signed() bool {
	return t.Underlying.Signed()
}

// Idents returns all package-level identifiers declared by the generated
// code of this enum. The graph uses it to reject identifier collisions
// between enums that share the generated package.
func (t Type) Idents() []string {
	ids := []string{t.Name, t.NamesVar(), t.ValuesFunc(), t.ParseFunc(), t.NamesFunc()}
	for _, m := range t.Members {
		ids = append(ids, m.ConstName())
	}
	return ids
}

// ConstName returns the name of the generated constant of the member,
// prefixed by its enum type name.
func (m Member) ConstName() string {
	return m.typ.Name + m.Name
}

// String returns the declared name of the member.
func (m Member) String() string {
	return m.Name
}

// ValidEnumName will determine if a name is going to conflict with any
// pre-defined names or contains unsafe characters.
func ValidEnumName(name string) error {
	// Check for empty name.
	if name == "" {
		return errors.New("enum name cannot be empty")
	}
	// Check for path traversal characters to prevent directory escape attacks.
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("enum name %q contains path separator characters", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("enum name %q contains parent directory reference", name)
	}
	// Check for hidden files (names starting with dot).
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("enum name %q cannot start with a dot", name)
	}
	// Validate that the name is a valid Go identifier.
	if !token.IsIdentifier(name) {
		return fmt.Errorf("enum name %q is not a valid Go identifier", name)
	}
	// The generated type, constants and functions must be exported.
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return fmt.Errorf("enum name %q must be exported", name)
	}
	if types.Universe.Lookup(name) != nil {
		return fmt.Errorf("enum name conflicts with Go predeclared identifier %q", name)
	}
	// Generated files are named after the enum (see Type.FileName).
	if file := snake(name); globalFile[file] {
		return fmt.Errorf("enum file name conflicts with generated file %q", file+".go")
	}
	return nil
}

func names(ids ...string) map[string]bool {
	m := make(map[string]bool)
	for i := range ids {
		m[ids[i]] = true
	}
	return m
}

// globalFile holds base names of files the generator always writes to
// the target package.
var globalFile = names("doc")
