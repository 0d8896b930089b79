package graphbuild

import (
	"context"

	"github.com/hanpama/graphbuild/schema"
)

// InputObject is a named collection of input fields. It can be used as the
// type of an argument, but not of a field; use Object for output.
type InputObject struct {
	Name        string
	Description string

	// Fields maps input field names to their descriptors. Use AddField to
	// register a field.
	Fields map[string]*InputField

	// Validators run against the whole input map after the individual fields
	// have been validated.
	Validators []DataValidator

	compiled *schema.InputObject
}

// NewInputObject creates an input object type with the given name.
func NewInputObject(name string) *InputObject {
	return &InputObject{Name: name, Fields: map[string]*InputField{}}
}

func (*InputObject) typeNode() {}

// TypeName implements NamedType.
func (o *InputObject) TypeName() string { return o.Name }

// AddField registers an input field under the given name and returns the
// field so it can be customized further.
func (o *InputObject) AddField(name string, f *InputField) *InputField {
	o.Fields[name] = f
	return f
}

// Validate appends data validators applied to the collection of input
// fields and returns the input object.
func (o *InputObject) Validate(v ...DataValidator) *InputObject {
	o.Validators = append(o.Validators, v...)
	return o
}

// Describe sets the description shown in the schema.
func (o *InputObject) Describe(desc string) *InputObject {
	o.Description = desc
	return o
}

// ValidateData runs the input object's field and data validators over the
// given input map. The returned error, if any, is a *ValidationError with a
// ByField message.
func (o *InputObject) ValidateData(ctx context.Context, data map[string]any) error {
	items := make(map[string]valueItem, len(o.Fields))
	for name, f := range o.Fields {
		items[name] = f
	}
	return validateData(ctx, items, o.Validators, data)
}

// InputField is a single field within an InputObject.
type InputField struct {
	// Type of the value passed to this field. May be a Ref to a type
	// defined elsewhere.
	Type Type

	// Default is the value used if input is not provided. hasDefault
	// distinguishes no default from a default of nil; by default the field
	// is simply absent from the input map.
	Default any

	// Validators run against the input value.
	Validators []ValueValidator

	Description string
	Deprecation string

	hasDefault bool
	compiled   *schema.InputValue
}

// NewInputField creates an input field of the given type.
func NewInputField(t Type) *InputField {
	return &InputField{Type: t}
}

// SetDefault sets the default value used when input is not provided, and
// returns the field.
func (f *InputField) SetDefault(v any) *InputField {
	f.Default = v
	f.hasDefault = true
	return f
}

// Validate appends value validators and returns the field.
func (f *InputField) Validate(v ...ValueValidator) *InputField {
	f.Validators = append(f.Validators, v...)
	return f
}

// Describe sets the description shown in the schema.
func (f *InputField) Describe(desc string) *InputField {
	f.Description = desc
	return f
}

// Deprecate marks the field as deprecated with the given reason.
func (f *InputField) Deprecate(reason string) *InputField {
	f.Deprecation = reason
	return f
}

// ValidateValue validates one input value against this field's validators.
// data is the whole input map the value belongs to.
func (f *InputField) ValidateValue(ctx context.Context, value any, data map[string]any) error {
	return validateValue(ctx, f.Type, f.Validators, value, data)
}
