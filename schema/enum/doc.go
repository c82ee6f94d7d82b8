// Package enum provides fluent builders for defining enumerations.
//
// Each constructor pins the underlying Go integer type of the generated
// values, while Values declares the members in the order they are
// numbered:
//
//	enum.Uint8("LightsView").
//	    Values("Isometric", "FirstPerson", "ThirdPerson", "Free")
//
// # Underlying Types
//
// The package supports all Go integer types:
//
//	enum.Int("Weekday")
//	enum.Int8("Tiny")
//	enum.Int16("Short")
//	enum.Int32("Rune")
//	enum.Int64("Wide")
//	enum.Uint("Counter")
//	enum.Uint8("LightsView")
//	enum.Uint16("Port")
//	enum.Uint32("Color")
//	enum.Uint64("Mask")
//
// # Sentinel Policy
//
// With a sentinel, an implicit zero member precedes the declared members
// and absorbs every failed lookup. The generated parse operation is then
// total and never errors:
//
//	enum.Uint8("LightsView").
//	    Values("Isometric", "FirstPerson").
//	    WithSentinel()                       // None=0, Isometric=1, FirstPerson=2
//
//	enum.Uint8("Mode").
//	    Values("Read", "Write").
//	    SentinelName("Unset")                // Unset=0, Read=1, Write=2
//
// Without a sentinel, the declared members start at zero and the
// generated parse operation reports absence with an error:
//
//	enum.Int("Weekday").
//	    Values("Monday", "Tuesday")          // Monday=0, Tuesday=1
//
// # Limits
//
// An enum declares at most MaxMembers (10) members. Builder misuse is
// recorded on the Descriptor and surfaced when the definition is loaded,
// so call chains stay fluent:
//
//	d := enum.Uint8("Big").Values(tooMany...).Descriptor()
//	d.Err // non-nil
package enum
