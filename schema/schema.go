// Package schema holds the compiled, executable form of a graph built with
// the graphbuild package. Every type here is pointer-linked: a field's type
// is the compiled type object itself, never a name reference, so cyclic
// graphs are represented directly.
package schema

import "context"

// Type is any compiled type usable in the schema graph.
type Type interface {
	// String renders the type as a GraphQL type expression, e.g. "[User!]!".
	String() string
	isType()
}

// NamedType is a compiled type that can be referenced by name, which is
// everything except the wrapping types.
type NamedType interface {
	Type
	TypeName() string
}

// ResolveFunc produces the value for one field. The executor calls it with
// the parent value and the coerced, validated argument map.
type ResolveFunc func(ctx context.Context, parent any, args map[string]any) (any, error)

// ExtensionsError is implemented by resolver errors that carry structured,
// machine-readable detail. The executor copies the detail into the
// extensions of the reported error instead of discarding it.
type ExtensionsError interface {
	error
	Extensions() map[string]any
}

// Schema is the compiled form handed to the executor. Query and Mutation are
// nil when the corresponding root object declared no fields.
type Schema struct {
	Query       *Object
	Mutation    *Object
	Types       map[string]NamedType // every named type reachable from the roots
	Description string
}

// Object is a named collection of output fields.
type Object struct {
	Name        string
	Description string
	Interfaces  []*Interface
	Fields      map[string]*Field
}

// Interface is a named collection of fields shared between objects.
type Interface struct {
	Name        string
	Description string
	Interfaces  []*Interface
	Fields      map[string]*Field
}

// Field is an output field on an Object or Interface.
type Field struct {
	Name        string
	Description string
	Deprecation string
	Type        Type
	Args        map[string]*InputValue
	Resolve     ResolveFunc
}

// InputValue is an argument to a field or a field of an input object.
// HasDefault distinguishes "no default" from a default of nil.
type InputValue struct {
	Name        string
	Description string
	Deprecation string
	Type        Type
	Default     any
	HasDefault  bool
}

// InputObject is a named collection of input fields.
type InputObject struct {
	Name        string
	Description string
	Fields      map[string]*InputValue
}

// Enum maps external value names to internal Go values.
type Enum struct {
	Name        string
	Description string
	Values      map[string]any
}

// NameOf returns the external name for an internal enum value.
func (e *Enum) NameOf(value any) (string, bool) {
	for name, v := range e.Values {
		if v == value {
			return name, true
		}
	}
	return "", false
}

// Union is a named group of objects. ResolveType maps a runtime value to the
// name of the member object it belongs to.
type Union struct {
	Name        string
	Description string
	Types       []*Object
	ResolveType func(value any) string
}

// Scalar is a plain value type with serialization functions.
type Scalar struct {
	Name        string
	Description string
	SpecifiedBy string
	Serialize   func(value any) (any, error)
	ParseValue  func(value any) (any, error)
}

// NonNull indicates that null may not be used in place of the wrapped type.
type NonNull struct{ OfType Type }

// List indicates a list of values of the wrapped type.
type List struct{ OfType Type }

func (*Object) isType()      {}
func (*Interface) isType()   {}
func (*Union) isType()       {}
func (*Enum) isType()        {}
func (*Scalar) isType()      {}
func (*InputObject) isType() {}
func (*NonNull) isType()     {}
func (*List) isType()        {}

func (o *Object) TypeName() string      { return o.Name }
func (i *Interface) TypeName() string   { return i.Name }
func (u *Union) TypeName() string       { return u.Name }
func (e *Enum) TypeName() string        { return e.Name }
func (s *Scalar) TypeName() string      { return s.Name }
func (o *InputObject) TypeName() string { return o.Name }

func (o *Object) String() string      { return o.Name }
func (i *Interface) String() string   { return i.Name }
func (u *Union) String() string       { return u.Name }
func (e *Enum) String() string        { return e.Name }
func (s *Scalar) String() string      { return s.Name }
func (o *InputObject) String() string { return o.Name }
func (n *NonNull) String() string     { return n.OfType.String() + "!" }
func (l *List) String() string        { return "[" + l.OfType.String() + "]" }

// IsNonNull reports whether the type is wrapped with Non-Null.
func IsNonNull(t Type) bool {
	_, ok := t.(*NonNull)
	return ok
}

// IsList reports whether the type is a list, looking through one Non-Null
// wrapper.
func IsList(t Type) bool {
	if nn, ok := t.(*NonNull); ok {
		t = nn.OfType
	}
	_, ok := t.(*List)
	return ok
}

// Unwrap removes one layer of Non-Null or List wrapping and returns the
// inner type.
func Unwrap(t Type) Type {
	switch w := t.(type) {
	case *NonNull:
		return w.OfType
	case *List:
		return w.OfType
	}
	return t
}

// NamedOf returns the innermost named type for the given type expression.
func NamedOf(t Type) NamedType {
	for {
		switch w := t.(type) {
		case *NonNull:
			t = w.OfType
		case *List:
			t = w.OfType
		default:
			named, _ := t.(NamedType)
			return named
		}
	}
}

// FieldsOf returns the field map of an object or interface type, or nil for
// any other kind.
func FieldsOf(t Type) map[string]*Field {
	switch v := t.(type) {
	case *Object:
		return v.Fields
	case *Interface:
		return v.Fields
	}
	return nil
}

// Implements reports whether the object declares the named interface,
// directly or through an interface it declares.
func (o *Object) Implements(name string) bool {
	return interfacesInclude(o.Interfaces, name)
}

func interfacesInclude(ifaces []*Interface, name string) bool {
	for _, iface := range ifaces {
		if iface.Name == name || interfacesInclude(iface.Interfaces, name) {
			return true
		}
	}
	return false
}
