package graphbuild

import (
	"reflect"

	"github.com/hanpama/graphbuild/schema"
)

// Union is a named group of objects. A field of a union type resolves to a
// value belonging to one of the member objects; ResolveType decides which.
type Union struct {
	Name        string
	Description string

	// Types are the member objects. Entries may be Refs to objects defined
	// elsewhere. Use AddMember instead of appending directly.
	Types []Type

	// ResolveType maps a resolved value to the name of its member object.
	// Defaults to a lookup keyed by the value's Go type, populated by
	// AddMember.
	ResolveType func(value any) string

	goTypes  map[reflect.Type]string
	compiled *schema.Union
}

// NewUnion creates a union type with the given name.
func NewUnion(name string) *Union {
	return &Union{Name: name, goTypes: map[reflect.Type]string{}}
}

func (*Union) typeNode() {}

// TypeName implements NamedType.
func (u *Union) TypeName() string { return u.Name }

// AddMember adds an object to the union and registers the Go type of sample
// as resolving to it. The member may be an *Object or a Ref.
func (u *Union) AddMember(sample any, member Type) *Union {
	u.Types = append(u.Types, member)

	var name string
	switch m := member.(type) {
	case *Object:
		name = m.Name
	case Ref:
		name = stripRefName(string(m))
	}
	u.goTypes[reflect.TypeOf(sample)] = name
	return u
}

// Describe sets the description shown in the schema.
func (u *Union) Describe(desc string) *Union {
	u.Description = desc
	return u
}

func (u *Union) resolveType(value any) string {
	if u.ResolveType != nil {
		return u.ResolveType(value)
	}
	return u.goTypes[reflect.TypeOf(value)]
}
