package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSpec indicates an enum definition error.
	ErrInvalidSpec = errors.New("enumc: invalid enum spec")
	// ErrArity indicates an enum declaring more members than the limit.
	ErrArity = errors.New("enumc: too many members")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("enumc: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("enumc: code generation failed")
	// ErrSnapshotDrift indicates an ordinal-breaking change against a
	// stored snapshot.
	ErrSnapshotDrift = errors.New("enumc: snapshot drift")
)

// SpecError represents an enum definition error.
type SpecError struct {
	Enum    string // Enum type name
	Member  string // Member name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	var b strings.Builder
	b.WriteString("enumc: spec error")
	if e.Enum != "" {
		b.WriteString(" on enum ")
		b.WriteString(e.Enum)
	}
	if e.Member != "" {
		b.WriteString(" member ")
		b.WriteString(e.Member)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SpecError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SpecError.
func (e *SpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// NewSpecError creates a new SpecError.
func NewSpecError(enumName, memberName, message string, cause error) *SpecError {
	return &SpecError{
		Enum:    enumName,
		Member:  memberName,
		Message: message,
		Cause:   cause,
	}
}

// ArityError reports an enum declaring more members than the limit.
type ArityError struct {
	Enum  string // Enum type name
	Count int    // Declared member count
	Limit int    // Maximum member count
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("enumc: enum %q declares %d members, limit is %d", e.Enum, e.Count, e.Limit)
}

// Is reports whether the target matches the sentinel error for ArityError.
func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// NewArityError creates a new ArityError.
func NewArityError(enumName string, count, limit int) *ArityError {
	return &ArityError{
		Enum:  enumName,
		Count: count,
		Limit: limit,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("enumc: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("enumc: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "enum", "codec", "template", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("enumc: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// DriftError reports an ordinal-breaking change of an enum against the
// stored snapshot. Reordering, removing or renaming members changes the
// numeric value of the members after it, silently corrupting persisted
// data that holds old ordinals.
type DriftError struct {
	Enum    string
	Message string
}

// Error implements the error interface.
func (e *DriftError) Error() string {
	var b strings.Builder
	b.WriteString("enumc: snapshot drift")
	if e.Enum != "" {
		b.WriteString(" on enum ")
		b.WriteString(e.Enum)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for DriftError.
func (e *DriftError) Is(target error) bool {
	return target == ErrSnapshotDrift
}

// NewDriftError creates a new DriftError.
func NewDriftError(enumName, message string) *DriftError {
	return &DriftError{
		Enum:    enumName,
		Message: message,
	}
}

// IsSpecError reports whether the error is a SpecError.
func IsSpecError(err error) bool {
	var specErr *SpecError
	return errors.As(err, &specErr)
}

// IsArityError reports whether the error is an ArityError.
func IsArityError(err error) bool {
	var arityErr *ArityError
	return errors.As(err, &arityErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsDriftError reports whether the error is a DriftError.
func IsDriftError(err error) bool {
	var driftErr *DriftError
	return errors.As(err, &driftErr)
}
