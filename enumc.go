// Package enumc provides the runtime support library for enumc-generated
// enumeration types. Generated packages depend only on the standard library
// and on this package: the interface contract below and the error types
// returned by name resolution and the optional codecs.
//
// The code generator itself lives under compiler/ and is driven by the
// enumc command or the compiler/gen API.
package enumc

import "fmt"

// Enum is implemented by every enumc-generated enumeration type.
type Enum interface {
	fmt.Stringer

	// IsValid reports whether the value is one of the declared members
	// (including the sentinel, for enumerations that carry one).
	IsValid() bool
}

// Names returns the canonical name of every value in vs, preserving order.
// Applied to the generated Values() slice it is equivalent to the generated
// Names() function.
func Names[E Enum](vs []E) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.String()
	}
	return names
}

// Lookup scans vs in order for the value whose canonical name equals name.
// The match is exact and case-sensitive. It returns the zero value and
// false when no value matches.
func Lookup[E Enum](vs []E, name string) (E, bool) {
	for _, v := range vs {
		if v.String() == name {
			return v, true
		}
	}
	var zero E
	return zero, false
}
