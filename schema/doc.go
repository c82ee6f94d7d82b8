// Package schema provides the building blocks for defining enumc enumerations.
//
// This package serves as the entry point for enum definition, hosting the
// annotation contracts shared by its subpackages:
//
//   - [enum]: Typed builders for enum definitions
//
// # Quick Start
//
// Define an enumeration with a typed constructor and its member list:
//
//	enum.Uint8("LightsView").
//	    Values("Isometric", "FirstPerson", "ThirdPerson", "Free").
//	    WithSentinel()
//
// The constructor pins the underlying Go integer type of the generated
// values. Members are declared in the order they should be numbered:
//
//	enum.Int("Weekday").
//	    Values("Monday", "Tuesday", "Wednesday", "Thursday", "Friday")
//
// # Sentinel Policy
//
// Enums fall into one of two shapes. With a sentinel, an implicit zero
// member (named "None" unless renamed) is placed before the declared
// members and absorbs every failed lookup:
//
//	enum.Uint8("LightsView").
//	    Values("Isometric", "FirstPerson").
//	    WithSentinel()                     // None, Isometric, FirstPerson
//
// Without a sentinel, the declared members start at zero and lookups
// report absence explicitly through an error return:
//
//	enum.Int("Weekday").
//	    Values("Monday", "Tuesday")        // Monday=0, Tuesday=1
//
// # Annotations
//
// Annotations customize code generation behavior per enum:
//
//	enum.Uint8("LightsView").
//	    Values("Isometric", "FirstPerson").
//	    Annotations(graphql.Type("ViewMode"))
//
// For detailed documentation, see the enum subpackage.
package schema
