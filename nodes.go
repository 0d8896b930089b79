// Package graphbuild is a declarative builder for GraphQL schemas. Callers
// describe named types, fields, and arguments as a graph of descriptor
// values, referring to types either directly or by name, and the Schema
// resolves the references and compiles the graph once into an executable
// schema. Fields get an argument validation pass before their resolver runs.
package graphbuild

import (
	"github.com/hanpama/graphbuild/schema"
)

// Type is any descriptor usable as a type in the schema graph: a named type,
// a wrapping type, or a Ref name reference.
type Type interface {
	typeNode()
}

// NamedType is a descriptor that can be referenced by name, which is
// everything except the wrapping types and Ref.
type NamedType interface {
	Type
	TypeName() string
}

// Ref is a reference to a type defined elsewhere in the graph. It may carry
// wrapping markers: a trailing "!" wraps with NonNull and a surrounding
// "[...]" wraps with List, nested arbitrarily, e.g. "[User!]!". The
// reference is replaced with the resolved type during schema resolution.
type Ref string

func (Ref) typeNode() {}

// NonNull indicates that null may not be used in place of a value of the
// wrapped type.
type NonNull struct {
	// OfType is the wrapped type. May be a Ref to a type defined elsewhere.
	OfType Type

	compiled *schema.NonNull
}

// NewNonNull wraps the given type in NonNull.
func NewNonNull(t Type) *NonNull { return &NonNull{OfType: t} }

func (*NonNull) typeNode() {}

// List indicates that the value is a list of items of the wrapped type.
// Lists can be nested arbitrarily.
type List struct {
	// OfType is the wrapped type. May be a Ref to a type defined elsewhere.
	OfType Type

	compiled *schema.List
}

// NewList wraps the given type in List.
func NewList(t Type) *List { return &List{OfType: t} }

func (*List) typeNode() {}

// Object is a named collection of fields. It can be used as the type of a
// field, but not of an argument; use InputObject for input.
type Object struct {
	Name        string
	Description string

	// Interfaces this object implements. Entries may be Refs to interfaces
	// defined elsewhere.
	Interfaces []Type

	// Fields maps field names to their descriptors. Use AddField to register
	// a field and fix its name.
	Fields map[string]*Field

	compiled *schema.Object
}

// NewObject creates an object type with the given name.
func NewObject(name string) *Object {
	return &Object{Name: name, Fields: map[string]*Field{}}
}

func (*Object) typeNode() {}

// TypeName implements NamedType.
func (o *Object) TypeName() string { return o.Name }

// AddField registers a field under the given name and returns the field so
// it can be customized further.
func (o *Object) AddField(name string, f *Field) *Field {
	f.name = name
	o.Fields[name] = f
	return f
}

// Implement declares that this object implements the given interface. The
// argument may be an *Interface or a Ref.
func (o *Object) Implement(iface Type) *Object {
	o.Interfaces = append(o.Interfaces, iface)
	return o
}

// Describe sets the description shown in the schema.
func (o *Object) Describe(desc string) *Object {
	o.Description = desc
	return o
}

// Interface is a named collection of fields shared between multiple objects.
// It cannot be used as the type of an argument.
type Interface struct {
	Name        string
	Description string
	Interfaces  []Type
	Fields      map[string]*Field

	compiled *schema.Interface
}

// NewInterface creates an interface type with the given name.
func NewInterface(name string) *Interface {
	return &Interface{Name: name, Fields: map[string]*Field{}}
}

func (*Interface) typeNode() {}

// TypeName implements NamedType.
func (i *Interface) TypeName() string { return i.Name }

// AddField registers a field under the given name and returns the field.
func (i *Interface) AddField(name string, f *Field) *Field {
	f.name = name
	i.Fields[name] = f
	return f
}

// Describe sets the description shown in the schema.
func (i *Interface) Describe(desc string) *Interface {
	i.Description = desc
	return i
}

// Enum is a set of possible values for a field or argument. The values are
// names in the schema; each name may map to a different internal Go value
// seen by resolvers.
type Enum struct {
	Name        string
	Description string

	// Values maps external names to internal values.
	Values map[string]any

	compiled *schema.Enum
}

// NewEnum creates an enum whose names map to themselves as string values.
func NewEnum(name string, values ...string) *Enum {
	vm := make(map[string]any, len(values))
	for _, v := range values {
		vm[v] = v
	}
	return &Enum{Name: name, Values: vm}
}

func (*Enum) typeNode() {}

// TypeName implements NamedType.
func (e *Enum) TypeName() string { return e.Name }

// SetValue maps an external name to an internal Go value and returns the
// enum.
func (e *Enum) SetValue(name string, value any) *Enum {
	e.Values[name] = value
	return e
}

// Describe sets the description shown in the schema.
func (e *Enum) Describe(desc string) *Enum {
	e.Description = desc
	return e
}

// ScalarFunc converts a scalar value between its internal and serialized
// forms.
type ScalarFunc func(value any) (any, error)

// Scalar is a plain value type. The serialization format may not represent
// the internal value directly, so a scalar carries conversion functions in
// both directions; both default to the identity.
type Scalar struct {
	Name        string
	Description string
	SpecifiedBy string

	// Serialize converts an internal value to the output format.
	Serialize ScalarFunc
	// ParseValue converts input to the internal value.
	ParseValue ScalarFunc

	compiled *schema.Scalar
}

// NewScalar creates a scalar type with identity conversion functions.
func NewScalar(name string) *Scalar {
	return &Scalar{Name: name}
}

func (*Scalar) typeNode() {}

// TypeName implements NamedType.
func (s *Scalar) TypeName() string { return s.Name }

// Describe sets the description shown in the schema.
func (s *Scalar) Describe(desc string) *Scalar {
	s.Description = desc
	return s
}

func identity(value any) (any, error) { return value, nil }
