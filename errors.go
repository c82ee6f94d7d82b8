package enumc

import (
	"errors"
	"fmt"
)

// Standard sentinel errors returned by generated code.
var (
	// ErrUnknownName is returned when a name does not resolve to any
	// declared member of an enumeration.
	ErrUnknownName = errors.New("enumc: unknown enum name")

	// ErrInvalidValue is returned when a raw value cannot be interpreted
	// as a member of an enumeration, e.g. a database column of an
	// unsupported type or an out-of-range ordinal.
	ErrInvalidValue = errors.New("enumc: invalid enum value")
)

// UnknownNameError is returned by generated Parse functions of
// enumerations without a sentinel, and by the generated codecs when
// decoding a name that matches no declared member.
type UnknownNameError struct {
	typ  string // enumeration type name
	name string // the name that failed to resolve
}

// Error returns the error string.
func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("enumc: %s: unknown name %q", e.typ, e.name)
}

// Is reports whether the target error matches UnknownNameError.
// This allows errors.Is(err, ErrUnknownName) to return true.
func (e *UnknownNameError) Is(err error) bool {
	return err == ErrUnknownName
}

// Type returns the enumeration type name.
func (e *UnknownNameError) Type() string {
	return e.typ
}

// Name returns the name that failed to resolve.
func (e *UnknownNameError) Name() string {
	return e.name
}

// NewUnknownNameError returns a new UnknownNameError for the given
// enumeration type and unresolved name.
func NewUnknownNameError(typ, name string) *UnknownNameError {
	return &UnknownNameError{typ: typ, name: name}
}

// IsUnknownName returns true if the error is an UnknownNameError.
func IsUnknownName(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownNameError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownName)
}

// InvalidValueError is returned by generated codecs when a raw value
// cannot be interpreted as a member of the enumeration.
type InvalidValueError struct {
	typ   string // enumeration type name
	value any    // the offending raw value
}

// Error returns the error string.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("enumc: %s: invalid value %v (%T)", e.typ, e.value, e.value)
}

// Is reports whether the target error matches InvalidValueError.
// This allows errors.Is(err, ErrInvalidValue) to return true.
func (e *InvalidValueError) Is(err error) bool {
	return err == ErrInvalidValue
}

// Type returns the enumeration type name.
func (e *InvalidValueError) Type() string {
	return e.typ
}

// Value returns the raw value that failed to decode.
func (e *InvalidValueError) Value() any {
	return e.value
}

// NewInvalidValueError returns a new InvalidValueError for the given
// enumeration type and raw value.
func NewInvalidValueError(typ string, value any) *InvalidValueError {
	return &InvalidValueError{typ: typ, value: value}
}

// IsInvalidValue returns true if the error is an InvalidValueError.
func IsInvalidValue(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidValueError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidValue)
}
