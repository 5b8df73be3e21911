package property

import (
	"errors"
	"reflect"
	"strings"
)

const (
	// TypeName is the logical name of the marker type.
	TypeName = "ConfigProperty"
	// MemberName is the name of the single member a marker carries.
	MemberName = "value"
	// TagKey is the struct tag key of the declarative marker form.
	TagKey = "property"
	// tagOptionOptional marks a tagged field that may stay unbound.
	tagOptionOptional = "optional"
)

// errNilProperty is returned when text is decoded into a nil *Property.
var errNilProperty = errors.New("property is nil")

// Marker is the contract of a single-member configuration marker.
type Marker interface {
	// Value returns the name the marker qualifies.
	Value() string
	// AnnotationType returns the identity of the marker type.
	AnnotationType() Type
}

// Type identifies a marker type.
type Type struct {
	// name is the logical marker type name.
	name string
	// member is the name of the single marker member.
	member string
}

// Name returns the logical name of the marker type.
func (t Type) Name() string {
	return t.name
}

// Member returns the name of the single member.
func (t Type) Member() string {
	return t.member
}

// String renders the type as "Name.member".
func (t Type) String() string {
	return t.name + "." + t.member
}

var (
	// markerType is shared by every Property.
	//nolint:gochecknoglobals // Fixed identity of the marker type.
	markerType = Type{
		name:   TypeName,
		member: MemberName,
	}

	// memberHashTerm is 127 * hash("value"), the constant part of HashCode.
	//nolint:gochecknoglobals // Computed once from MemberName.
	memberHashTerm = 127 * StringHash(MemberName)
)

// Property qualifies a configuration value by name.
// The zero value is the marker with an empty name.
type Property struct {
	// name is the qualified configuration property name.
	name string
}

var _ Marker = Property{}

// New returns the marker for the provided name.
// Any name is accepted, including the empty one.
func New(name string) Property {
	return Property{
		name: name,
	}
}

// MarkerType returns the identity shared by all markers.
func MarkerType() Type {
	return markerType
}

// Value returns the stored name.
func (p Property) Value() string {
	return p.name
}

// Equal reports whether other is a Property with the same name.
// Values of any other type never compare equal, even with matching text.
func (p Property) Equal(other any) bool {
	that, ok := other.(Property)
	if !ok {
		return false
	}

	return p.name == that.name
}

// HashCode returns (127 * hash("value")) ^ hash(name).
func (p Property) HashCode() int32 {
	return memberHashTerm ^ StringHash(p.name)
}

// String returns the diagnostic form "ConfigProperty{name}".
func (p Property) String() string {
	return TypeName + "{" + p.name + "}"
}

// AnnotationType returns the marker type identity.
func (p Property) AnnotationType() Type {
	return markerType
}

// MarshalText encodes the marker as its name.
func (p Property) MarshalText() ([]byte, error) {
	return []byte(p.name), nil
}

// UnmarshalText decodes the marker from its name.
func (p *Property) UnmarshalText(text []byte) error {
	if p == nil {
		return errNilProperty
	}

	p.name = string(text)

	return nil
}

// FromTag returns the marker declared by the `property` key of tag.
// The boolean is false when the tag carries no such key.
func FromTag(tag reflect.StructTag) (Property, bool) {
	p, _, ok := ParseTag(tag)

	return p, ok
}

// ParseTag reads the `property` key of tag.
// The value has the form "name[,optional]"; optional is true when the
// bound field may stay unset.
func ParseTag(tag reflect.StructTag) (p Property, optional, ok bool) {
	raw, ok := tag.Lookup(TagKey)
	if !ok {
		return Property{}, false, false
	}

	name, options, _ := strings.Cut(raw, ",")
	for _, option := range strings.Split(options, ",") {
		if strings.TrimSpace(option) == tagOptionOptional {
			optional = true
		}
	}

	return New(name), optional, true
}
