package graphbuild

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"unicode"

	"github.com/hanpama/graphbuild/schema"
)

// ResolverFunc produces the value for a field. parent is the value the
// enclosing object resolved to, args is the coerced argument map.
type ResolverFunc func(ctx context.Context, parent any, args map[string]any) (any, error)

// Field is a field on an Object or Interface.
//
// Each field has a resolver to get its value from the parent value. The
// field's arguments are validated before the resolver is called; see
// Resolve.
type Field struct {
	// Type of the value returned by this field's resolver. May be a Ref to
	// a type defined elsewhere.
	Type Type

	// Args maps argument names to their descriptors. Use AddArgument to
	// register an argument.
	Args map[string]*Argument

	// Validators run against the whole argument map after the individual
	// arguments have been validated.
	Validators []DataValidator

	Description string
	Deprecation string

	name     string
	pre      ResolverFunc
	resolver ResolverFunc
	compiled *schema.Field
}

// NewField creates a field of the given type. Without a registered resolver
// the field resolves by looking itself up on the parent value: by key for
// maps, by exported struct field otherwise.
func NewField(t Type) *Field {
	return &Field{Type: t, Args: map[string]*Argument{}}
}

// AddArgument registers an argument under the given name and returns the
// argument so it can be customized further.
func (f *Field) AddArgument(name string, a *Argument) *Argument {
	f.Args[name] = a
	return a
}

// Resolver sets the function that resolves the field's value and returns
// the field. The resolver may return a *ValidationError to produce a
// structured error instead of a value.
func (f *Field) Resolver(fn ResolverFunc) *Field {
	f.resolver = fn
	return f
}

// PreResolver sets a function called at the beginning of the resolve
// process, before the arguments are validated. Useful to check permissions
// or log access; return a *ValidationError to stop with an error.
func (f *Field) PreResolver(fn ResolverFunc) *Field {
	f.pre = fn
	return f
}

// Validate appends data validators applied to the collection of arguments
// and returns the field.
func (f *Field) Validate(v ...DataValidator) *Field {
	f.Validators = append(f.Validators, v...)
	return f
}

// Describe sets the description shown in the schema.
func (f *Field) Describe(desc string) *Field {
	f.Description = desc
	return f
}

// Deprecate marks the field as deprecated with the given reason.
func (f *Field) Deprecate(reason string) *Field {
	f.Deprecation = reason
	return f
}

// ValidateArgs runs the field's argument and data validators over the given
// argument map. The returned error, if any, is a *ValidationError with a
// ByField message.
func (f *Field) ValidateArgs(ctx context.Context, args map[string]any) error {
	items := make(map[string]valueItem, len(f.Args))
	for name, a := range f.Args {
		items[name] = a
	}
	return validateData(ctx, items, f.Validators, args)
}

// Resolve is the full resolver behavior. The pre-resolver runs first if one
// was registered, then ValidateArgs validates the arguments, then the
// resolver produces the value. A *ValidationError raised at any stage is
// converted into a *ResolveError whose Extensions carry the structured
// messages; any other error passes through untouched.
func (f *Field) Resolve(ctx context.Context, parent any, args map[string]any) (any, error) {
	value, err := f.resolve(ctx, parent, args)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, newResolveError(verr)
		}
		return nil, err
	}
	return value, nil
}

func (f *Field) resolve(ctx context.Context, parent any, args map[string]any) (any, error) {
	if f.pre != nil {
		if _, err := f.pre(ctx, parent, args); err != nil {
			return nil, err
		}
	}
	if err := f.ValidateArgs(ctx, args); err != nil {
		return nil, err
	}
	resolver := f.resolver
	if resolver == nil {
		resolver = defaultResolver(f.name)
	}
	return resolver(ctx, parent, args)
}

// Argument is an input argument to a Field resolver.
type Argument struct {
	// Type of the value passed to this argument. May be a Ref to a type
	// defined elsewhere.
	Type Type

	// Default is the value used if input is not provided. By default the
	// argument is simply absent from the argument map, which is not the
	// same as a default of nil.
	Default any

	// Validators run against the input value.
	Validators []ValueValidator

	Description string
	Deprecation string

	hasDefault bool
	compiled   *schema.InputValue
}

// NewArgument creates an argument of the given type.
func NewArgument(t Type) *Argument {
	return &Argument{Type: t}
}

// SetDefault sets the default value used when input is not provided, and
// returns the argument.
func (a *Argument) SetDefault(v any) *Argument {
	a.Default = v
	a.hasDefault = true
	return a
}

// Validate appends value validators and returns the argument.
func (a *Argument) Validate(v ...ValueValidator) *Argument {
	a.Validators = append(a.Validators, v...)
	return a
}

// Describe sets the description shown in the schema.
func (a *Argument) Describe(desc string) *Argument {
	a.Description = desc
	return a
}

// Deprecate marks the argument as deprecated with the given reason.
func (a *Argument) Deprecate(reason string) *Argument {
	a.Deprecation = reason
	return a
}

// ValidateValue validates one input value against this argument's
// validators. data is the whole argument map the value belongs to.
func (a *Argument) ValidateValue(ctx context.Context, value any, data map[string]any) error {
	return validateValue(ctx, a.Type, a.Validators, value, data)
}

// ItemResolver returns a resolver that looks the given key up on a
// map[string]any parent.
func ItemResolver(name string) ResolverFunc {
	return func(ctx context.Context, parent any, args map[string]any) (any, error) {
		m, ok := parent.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot resolve %q: parent is %T, not a map", name, parent)
		}
		return m[name], nil
	}
}

// AttrResolver returns a resolver that reads the exported struct field
// corresponding to the given name from the parent value.
func AttrResolver(name string) ResolverFunc {
	return func(ctx context.Context, parent any, args map[string]any) (any, error) {
		v := reflect.ValueOf(parent)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil, nil
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil, fmt.Errorf("cannot resolve %q: parent is %T, not a struct", name, parent)
		}
		field := v.FieldByName(exportedName(name))
		if !field.IsValid() {
			return nil, fmt.Errorf("cannot resolve %q: no such field on %T", name, parent)
		}
		return field.Interface(), nil
	}
}

// defaultResolver looks the field name up on the parent: by key for maps,
// by exported struct field otherwise.
func defaultResolver(name string) ResolverFunc {
	return func(ctx context.Context, parent any, args map[string]any) (any, error) {
		if parent == nil {
			return nil, nil
		}
		if m, ok := parent.(map[string]any); ok {
			return m[name], nil
		}
		return AttrResolver(name)(ctx, parent, args)
	}
}

func exportedName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
