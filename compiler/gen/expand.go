package gen

import "github.com/dave/jennifer/jen"

// A Transform produces the code fragment of one enum member. The four
// canonical transforms below parameterize the member expansion for the
// generated surfaces: constant declarations, value-list elements, name
// literals and name-resolution cases.
type Transform func(*Member) jen.Code

// expand applies fn to every member in declaration order and returns the
// flat fragment list. It is the only member-iteration primitive of the
// emitters, so fragment order always equals ordinal order.
func expand(members []*Member, fn Transform) []jen.Code {
	codes := make([]jen.Code, len(members))
	for i, m := range members {
		codes[i] = fn(m)
	}
	return codes
}

// memberConst returns the transform for the constant declaration of a
// member. The member at ordinal zero anchors the iota block, the rest
// inherit type and value position from it.
func memberConst(t *Type) Transform {
	return func(m *Member) jen.Code {
		if m.Index == 0 {
			return jen.Id(m.ConstName()).Id(t.Name).Op("=").Iota()
		}
		return jen.Id(m.ConstName())
	}
}

// valueElem is the transform for the qualified constant reference of a
// member inside the generated values list.
func valueElem(m *Member) jen.Code {
	return jen.Id(m.ConstName())
}

// nameElem is the transform for the declared name literal of a member.
// The ordinal name table and the names list are both built from it.
func nameElem(m *Member) jen.Code {
	return jen.Lit(m.Name)
}

// resolveCase returns the transform for the name-resolution switch case
// of a member. The return shape follows the sentinel policy: sentinel
// enums return the bare member, the rest pair it with a nil error.
func resolveCase(t *Type) Transform {
	return func(m *Member) jen.Code {
		if t.Sentinel {
			return jen.Case(jen.Lit(m.Name)).Block(
				jen.Return(jen.Id(m.ConstName())),
			)
		}
		return jen.Case(jen.Lit(m.Name)).Block(
			jen.Return(jen.Id(m.ConstName()), jen.Nil()),
		)
	}
}
