package load

import (
	"encoding/json"
	"fmt"

	"github.com/byBretema/enumc/schema"
	"github.com/byBretema/enumc/schema/enum"
)

// DefaultSentinelName is the name of the implicit zero member of sentinel
// enums when the definition does not rename it.
const DefaultSentinelName = "None"

// Spec represents an enum definition that was loaded from a user manifest
// or marshaled from an enum builder.
type Spec struct {
	Name         string         `json:"name,omitempty" yaml:"name"`
	Underlying   string         `json:"underlying,omitempty" yaml:"underlying,omitempty"`
	Sentinel     bool           `json:"sentinel,omitempty" yaml:"sentinel,omitempty"`
	SentinelName string         `json:"sentinel_name,omitempty" yaml:"sentinel_name,omitempty"`
	Members      []string       `json:"members,omitempty" yaml:"members"`
	Comment      string         `json:"comment,omitempty" yaml:"comment,omitempty"`
	Annotations  map[string]any `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// NewSpec creates a loaded spec from an enum descriptor.
// It returns an error if the descriptor carries a builder error.
func NewSpec(d *enum.Descriptor) (*Spec, error) {
	if d.Err != nil {
		return nil, fmt.Errorf("enum %q: %w", d.Name, d.Err)
	}
	if !d.Underlying.Valid() {
		return nil, fmt.Errorf("enum %q: invalid underlying type", d.Name)
	}
	s := &Spec{
		Name:         d.Name,
		Underlying:   d.Underlying.String(),
		Sentinel:     d.Sentinel,
		SentinelName: d.SentinelName,
		Members:      d.Members,
		Comment:      d.Comment,
		Annotations:  make(map[string]any),
	}
	for _, at := range d.Annotations {
		s.addAnnotation(at)
	}
	s.defaults()
	return s, nil
}

// Type returns the underlying integer type of the spec. An unset
// underlying type defaults to int.
func (s *Spec) Type() (enum.Type, error) {
	if s.Underlying == "" {
		return enum.TypeInt, nil
	}
	return enum.ParseType(s.Underlying)
}

// MarshalSpec encodes an enum definition into a JSON buffer that can be
// decoded into the Spec object declared above.
func MarshalSpec(def interface{ Descriptor() *enum.Descriptor }) ([]byte, error) {
	d, err := safeDescriptor(def)
	if err != nil {
		return nil, err
	}
	s, err := NewSpec(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalSpec decodes the given buffer to a loaded spec.
func UnmarshalSpec(buf []byte) (*Spec, error) {
	s := &Spec{}
	if err := json.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	s.defaults()
	return s, nil
}

// defaults normalizes the zero-value fields after decoding or construction.
// A named sentinel implies the sentinel policy, and a sentinel without a
// name gets DefaultSentinelName.
func (s *Spec) defaults() {
	if s.Underlying == "" {
		s.Underlying = enum.TypeInt.String()
	}
	if s.SentinelName != "" {
		s.Sentinel = true
	}
	if s.Sentinel && s.SentinelName == "" {
		s.SentinelName = DefaultSentinelName
	}
}

func (s *Spec) addAnnotation(an schema.Annotation) {
	curr, ok := s.Annotations[an.Name()]
	if !ok {
		s.Annotations[an.Name()] = an
		return
	}
	if m, ok := curr.(schema.Merger); ok {
		s.Annotations[an.Name()] = m.Merge(an)
	}
}

// safeDescriptor wraps the Descriptor method with recover to ensure no
// panics in marshaling.
func safeDescriptor(def interface{ Descriptor() *enum.Descriptor }) (d *enum.Descriptor, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Descriptor panics: %v", def, v)
			d = nil
		}
	}()
	return def.Descriptor(), nil
}
