package graphbuild

import (
	"context"
	"unicode/utf8"
)

// Length validates the length of a string, list, or input object value.
// Strings are measured in runes. Nil bounds are unchecked.
type Length struct {
	Min *int
	Max *int
}

func (l Length) ValidateValue(ctx context.Context, value any, data map[string]any) error {
	var n int
	switch v := value.(type) {
	case string:
		n = utf8.RuneCountInString(v)
	case []any:
		n = len(v)
	case map[string]any:
		n = len(v)
	default:
		return nil
	}

	switch {
	case l.Min != nil && l.Max != nil && *l.Min == *l.Max:
		if n != *l.Min {
			return NewValidationError("Length must be exactly %d, but was %d.", *l.Min, n)
		}
	case l.Min != nil && l.Max != nil:
		if n < *l.Min || n > *l.Max {
			return NewValidationError("Length must be between %d and %d, but was %d.", *l.Min, *l.Max, n)
		}
	case l.Min != nil:
		if n < *l.Min {
			return NewValidationError("Length must be at least %d, but was %d.", *l.Min, n)
		}
	case l.Max != nil:
		if n > *l.Max {
			return NewValidationError("Length must be at most %d, but was %d.", *l.Max, n)
		}
	}
	return nil
}

// NumberRange validates that a numeric value lies within a range. Nil bounds
// are unchecked.
type NumberRange struct {
	Min *float64
	Max *float64
}

func (r NumberRange) ValidateValue(ctx context.Context, value any, data map[string]any) error {
	var n float64
	switch v := value.(type) {
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case float32:
		n = float64(v)
	case float64:
		n = v
	default:
		return nil
	}

	switch {
	case r.Min != nil && r.Max != nil:
		if n < *r.Min || n > *r.Max {
			return NewValidationError("Must be between %v and %v, but was %v.", *r.Min, *r.Max, n)
		}
	case r.Min != nil:
		if n < *r.Min {
			return NewValidationError("Must be at least %v, but was %v.", *r.Min, n)
		}
	case r.Max != nil:
		if n > *r.Max {
			return NewValidationError("Must be at most %v, but was %v.", *r.Max, n)
		}
	}
	return nil
}

// Confirm validates that a value equals the value of another input item in
// the same data, for second-entry fields such as a password confirmation.
type Confirm struct {
	Other string
}

func (c Confirm) ValidateValue(ctx context.Context, value any, data map[string]any) error {
	if value != data[c.Other] {
		return NewValidationError("Must equal the value given in '%s'.", c.Other)
	}
	return nil
}
