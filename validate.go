package graphbuild

import (
	"context"
	"errors"
	"sort"
)

// valueItem is a named member with value validation: an Argument or an
// InputField.
type valueItem interface {
	ValidateValue(ctx context.Context, value any, data map[string]any) error
}

// validateData validates a collection of named input values: first each
// value that is present in the data, depth-first, then the collection-level
// data validators in declared order. The per-item and collection-level
// messages merge into one ByField message; top-level messages not
// attributable to one item collect under the empty-string key.
//
// Errors other than *ValidationError abort validation and propagate as-is.
func validateData(ctx context.Context, items map[string]valueItem, validators []DataValidator, data map[string]any) error {
	errs := map[string]Many{}
	var top Many

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, ok := data[name]
		if !ok {
			continue
		}
		err := items[name].ValidateValue(ctx, value, data)
		if err == nil {
			continue
		}
		verr, ok := asValidationError(err)
		if !ok {
			return err
		}
		errs[name] = asMany(verr.Message)
	}

	for _, v := range validators {
		err := v.ValidateData(ctx, data)
		if err == nil {
			continue
		}
		verr, ok := asValidationError(err)
		if !ok {
			return err
		}
		switch m := verr.Message.(type) {
		case ByField:
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if lst, ok := m[k].(Many); ok {
					errs[k] = append(errs[k], lst...)
				} else {
					errs[k] = append(errs[k], m[k])
				}
			}
		case Many:
			top = append(top, m...)
		case Single:
			top = append(top, m)
		}
	}

	if len(top) > 0 {
		errs[""] = append(errs[""], top...)
	}
	if len(errs) == 0 {
		return nil
	}
	out := make(ByField, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return &ValidationError{Message: out}
}

// validateValue validates one value against its declared type and validator
// list. An Each group in the list unwraps the type to its first list layer
// and applies the group's validators to every item, recursively; the first
// group seen fixes the unwrap depth for every group in the list. The
// returned error, if any, is a *ValidationError with a Many message.
func validateValue(ctx context.Context, t Type, validators []ValueValidator, value any, data map[string]any) error {
	var errs Many

	// Unwrap non-null to get the named type or list.
	if nn, ok := t.(*NonNull); ok {
		t = nn.OfType
	}

	// An input object restarts the data validation process for its own
	// fields; a failure there folds in as one ByField entry.
	if io, ok := t.(*InputObject); ok {
		if fields, ok := value.(map[string]any); ok {
			err := io.ValidateData(ctx, fields)
			if err != nil {
				verr, ok := asValidationError(err)
				if !ok {
					return err
				}
				errs = append(errs, verr.Message)
			}
		}
	}

	var nested Type
	nestedSet := false

	for _, v := range validators {
		group, isGroup := v.(Each)
		if !isGroup {
			err := v.ValidateValue(ctx, value, data)
			if err == nil {
				continue
			}
			verr, ok := asValidationError(err)
			if !ok {
				return err
			}
			if lst, ok := verr.Message.(Many); ok {
				errs = append(errs, lst...)
			} else {
				errs = append(errs, verr.Message)
			}
			continue
		}

		// Unwrap to the next relevant type, either another list or the
		// named item type. Done once; every group at this level shares the
		// same item type.
		if !nestedSet {
			nested = t
			for isWrapping(nested) {
				nested = unwrapOne(nested)
				if _, ok := nested.(*List); ok {
					break
				}
			}
			nestedSet = true
		}

		items, ok := value.([]any)
		if !ok {
			// Group validators only apply to list values.
			continue
		}

		// One entry per item, parallel to the input; nil for items that
		// passed.
		var groupErrs Many
		failed := false
		for _, item := range items {
			err := validateValue(ctx, nested, group, item, data)
			if err == nil {
				groupErrs = append(groupErrs, nil)
				continue
			}
			verr, ok := asValidationError(err)
			if !ok {
				return err
			}
			if lst, ok := verr.Message.(Many); ok {
				groupErrs = append(groupErrs, lst...)
			} else {
				groupErrs = append(groupErrs, verr.Message)
			}
			failed = true
		}
		if failed {
			errs = append(errs, groupErrs)
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Message: errs}
	}
	return nil
}

func asValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}

func asMany(m Message) Many {
	if lst, ok := m.(Many); ok {
		return lst
	}
	return Many{m}
}

func isWrapping(t Type) bool {
	switch t.(type) {
	case *NonNull, *List:
		return true
	}
	return false
}

func unwrapOne(t Type) Type {
	switch w := t.(type) {
	case *NonNull:
		return w.OfType
	case *List:
		return w.OfType
	}
	return t
}
