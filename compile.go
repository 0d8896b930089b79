package graphbuild

import (
	"errors"
	"fmt"

	"github.com/hanpama/graphbuild/schema"
)

// compiler collects errors encountered during a compile pass.
type compiler struct {
	errs []error
}

func (c *compiler) errorf(format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf(format, args...))
}

func (c *compiler) err() error {
	return errors.Join(c.errs...)
}

// compileType converts any resolved type descriptor to its compiled form.
// Refs must have been resolved by the schema traversal before compiling.
func (c *compiler) compileType(t Type) schema.Type {
	switch v := t.(type) {
	case *Object:
		return v.compile(c)
	case *Interface:
		return v.compile(c)
	case *Union:
		return v.compile(c)
	case *Enum:
		return v.compile(c)
	case *Scalar:
		return v.compile(c)
	case *InputObject:
		return v.compile(c)
	case *NonNull:
		return v.compile(c)
	case *List:
		return v.compile(c)
	case Ref:
		c.errorf("unresolved type reference %q", string(v))
	case nil:
		c.errorf("missing type")
	default:
		c.errorf("unsupported type %T", t)
	}
	return nil
}

// Every compile method below caches its result on the descriptor before
// recursing into children. A self-referential type therefore gets the
// in-progress compiled object on re-entry instead of recursing forever, and
// compiling a node twice returns the identical object.

func (o *Object) compile(c *compiler) *schema.Object {
	if o.compiled != nil {
		return o.compiled
	}
	out := &schema.Object{
		Name:        o.Name,
		Description: o.Description,
		Fields:      make(map[string]*schema.Field, len(o.Fields)),
	}
	o.compiled = out

	for _, name := range sortedKeys(o.Fields) {
		out.Fields[name] = o.Fields[name].compile(c)
	}
	for _, t := range o.Interfaces {
		iface, ok := t.(*Interface)
		if !ok {
			c.errorf("object %q implements %v, which is not an interface", o.Name, t)
			continue
		}
		out.Interfaces = append(out.Interfaces, iface.compile(c))
	}
	return out
}

func (i *Interface) compile(c *compiler) *schema.Interface {
	if i.compiled != nil {
		return i.compiled
	}
	out := &schema.Interface{
		Name:        i.Name,
		Description: i.Description,
		Fields:      make(map[string]*schema.Field, len(i.Fields)),
	}
	i.compiled = out

	for _, name := range sortedKeys(i.Fields) {
		out.Fields[name] = i.Fields[name].compile(c)
	}
	for _, t := range i.Interfaces {
		iface, ok := t.(*Interface)
		if !ok {
			c.errorf("interface %q implements %v, which is not an interface", i.Name, t)
			continue
		}
		out.Interfaces = append(out.Interfaces, iface.compile(c))
	}
	return out
}

func (u *Union) compile(c *compiler) *schema.Union {
	if u.compiled != nil {
		return u.compiled
	}
	out := &schema.Union{
		Name:        u.Name,
		Description: u.Description,
		ResolveType: u.resolveType,
	}
	u.compiled = out

	for _, t := range u.Types {
		obj, ok := t.(*Object)
		if !ok {
			c.errorf("union %q member %v is not an object", u.Name, t)
			continue
		}
		out.Types = append(out.Types, obj.compile(c))
	}
	return out
}

func (e *Enum) compile(c *compiler) *schema.Enum {
	if e.compiled != nil {
		return e.compiled
	}
	values := make(map[string]any, len(e.Values))
	for name, v := range e.Values {
		values[name] = v
	}
	out := &schema.Enum{Name: e.Name, Description: e.Description, Values: values}
	e.compiled = out
	return out
}

func (s *Scalar) compile(c *compiler) *schema.Scalar {
	if s.compiled != nil {
		return s.compiled
	}
	serialize := s.Serialize
	if serialize == nil {
		serialize = identity
	}
	parse := s.ParseValue
	if parse == nil {
		parse = identity
	}
	out := &schema.Scalar{
		Name:        s.Name,
		Description: s.Description,
		SpecifiedBy: s.SpecifiedBy,
		Serialize:   serialize,
		ParseValue:  parse,
	}
	s.compiled = out
	return out
}

func (o *InputObject) compile(c *compiler) *schema.InputObject {
	if o.compiled != nil {
		return o.compiled
	}
	out := &schema.InputObject{
		Name:        o.Name,
		Description: o.Description,
		Fields:      make(map[string]*schema.InputValue, len(o.Fields)),
	}
	o.compiled = out

	for _, name := range sortedKeys(o.Fields) {
		out.Fields[name] = o.Fields[name].compile(c, name)
	}
	return out
}

func (f *Field) compile(c *compiler) *schema.Field {
	if f.compiled != nil {
		return f.compiled
	}
	out := &schema.Field{
		Name:        f.name,
		Description: f.Description,
		Deprecation: f.Deprecation,
		Args:        make(map[string]*schema.InputValue, len(f.Args)),
		Resolve:     f.Resolve,
	}
	f.compiled = out

	out.Type = c.compileType(f.Type)
	for _, name := range sortedKeys(f.Args) {
		out.Args[name] = f.Args[name].compile(c, name)
	}
	return out
}

func (a *Argument) compile(c *compiler, name string) *schema.InputValue {
	if a.compiled != nil {
		return a.compiled
	}
	out := &schema.InputValue{
		Name:        name,
		Description: a.Description,
		Deprecation: a.Deprecation,
		Default:     a.Default,
		HasDefault:  a.hasDefault,
	}
	a.compiled = out
	out.Type = c.compileType(a.Type)
	return out
}

func (f *InputField) compile(c *compiler, name string) *schema.InputValue {
	if f.compiled != nil {
		return f.compiled
	}
	out := &schema.InputValue{
		Name:        name,
		Description: f.Description,
		Deprecation: f.Deprecation,
		Default:     f.Default,
		HasDefault:  f.hasDefault,
	}
	f.compiled = out
	out.Type = c.compileType(f.Type)
	return out
}

func (n *NonNull) compile(c *compiler) *schema.NonNull {
	if n.compiled != nil {
		return n.compiled
	}
	out := &schema.NonNull{}
	n.compiled = out
	out.OfType = c.compileType(n.OfType)
	return out
}

func (l *List) compile(c *compiler) *schema.List {
	if l.compiled != nil {
		return l.compiled
	}
	out := &schema.List{}
	l.compiled = out
	out.OfType = c.compileType(l.OfType)
	return out
}

// collectTypes records every named type reachable from t. Descriptors can be
// shared between schemas, and a memoized compile skips nodes compiled for an
// earlier schema, so the type set is gathered from the compiled graph rather
// than during compilation.
func collectTypes(types map[string]schema.NamedType, t schema.Type, seen map[schema.Type]bool) {
	if t == nil || seen[t] {
		return
	}
	seen[t] = true

	if nt, ok := t.(schema.NamedType); ok {
		types[nt.TypeName()] = nt
	}

	switch v := t.(type) {
	case *schema.Object:
		for _, f := range v.Fields {
			collectTypes(types, f.Type, seen)
			for _, arg := range f.Args {
				collectTypes(types, arg.Type, seen)
			}
		}
		for _, iface := range v.Interfaces {
			collectTypes(types, iface, seen)
		}
	case *schema.Interface:
		for _, f := range v.Fields {
			collectTypes(types, f.Type, seen)
			for _, arg := range f.Args {
				collectTypes(types, arg.Type, seen)
			}
		}
		for _, iface := range v.Interfaces {
			collectTypes(types, iface, seen)
		}
	case *schema.Union:
		for _, member := range v.Types {
			collectTypes(types, member, seen)
		}
	case *schema.InputObject:
		for _, f := range v.Fields {
			collectTypes(types, f.Type, seen)
		}
	case *schema.NonNull:
		collectTypes(types, v.OfType, seen)
	case *schema.List:
		collectTypes(types, v.OfType, seen)
	}
}
