package graphbuild

import (
	"context"
	"fmt"
)

// Message is one error message shape carried by a ValidationError. Exactly
// three shapes exist: Single, Many, and ByField. Consumers must handle all
// three.
type Message interface {
	isMessage()
}

// Single is one error message.
type Single string

// Many is a list of messages. Entries may be nil: a validator group applied
// to each item of a list value reports a Many parallel to the input, where
// a nil entry means the item at that position passed.
type Many []Message

// ByField maps argument or input field names to messages. The empty-string
// key holds top-level messages not attributable to one field.
type ByField map[string]Message

func (Single) isMessage()  {}
func (Many) isMessage()    {}
func (ByField) isMessage() {}

// ValidationError stops validation and adds one or more messages to the
// result. Data validators should use a ByField message, value validators a
// Many; a Single message is a shortcut for a one-element Many.
type ValidationError struct {
	Message Message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", messageValue(e.Message))
}

// NewValidationError creates a ValidationError with a Single message built
// from the format and args.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: Single(fmt.Sprintf(format, args...))}
}

// messageValue converts a Message into plain values (string, []any,
// map[string]any) for use in error extensions.
func messageValue(m Message) any {
	switch v := m.(type) {
	case Single:
		return string(v)
	case Many:
		out := make([]any, len(v))
		for i, entry := range v {
			if entry == nil {
				continue
			}
			out[i] = messageValue(entry)
		}
		return out
	case ByField:
		out := make(map[string]any, len(v))
		for k, entry := range v {
			out[k] = messageValue(entry)
		}
		return out
	}
	return nil
}

// ValueValidator checks a single input value. data is the whole input map
// the value belongs to, for validators that compare sibling inputs.
type ValueValidator interface {
	ValidateValue(ctx context.Context, value any, data map[string]any) error
}

// ValueValidatorFunc adapts a function to the ValueValidator interface.
type ValueValidatorFunc func(ctx context.Context, value any, data map[string]any) error

// ValidateValue implements ValueValidator.
func (f ValueValidatorFunc) ValidateValue(ctx context.Context, value any, data map[string]any) error {
	return f(ctx, value, data)
}

// DataValidator checks a whole collection of named input values: the
// arguments of a field or the fields of an input object.
type DataValidator interface {
	ValidateData(ctx context.Context, data map[string]any) error
}

// DataValidatorFunc adapts a function to the DataValidator interface.
type DataValidatorFunc func(ctx context.Context, data map[string]any) error

// ValidateData implements DataValidator.
func (f DataValidatorFunc) ValidateData(ctx context.Context, data map[string]any) error {
	return f(ctx, data)
}

// Each applies its validators to every item of a list value instead of to
// the value as a whole. Groups can be nested for nested list types: an Each
// inside an Each applies two list layers down. On failure the reported
// message is a Many parallel to the input items.
type Each []ValueValidator

// ValidateValue implements ValueValidator. When an Each group runs inside
// an Argument or InputField validator list, the engine applies it with the
// declared type's list layer; standalone use validates each item without
// type information.
func (e Each) ValidateValue(ctx context.Context, value any, data map[string]any) error {
	return validateValue(ctx, nil, []ValueValidator{e}, value, data)
}
