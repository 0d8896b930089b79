package executor

import (
	"fmt"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hanpama/graphbuild/schema"
)

// coerceVariableValues checks the provided variables against the operation's
// variable definitions, applying defaults and coercing each value to its
// declared type.
func coerceVariableValues(s *schema.Schema, operation *ast.OperationDefinition, variables map[string]any) (map[string]any, error) {
	coerced := make(map[string]any, len(operation.VariableDefinitions))
	for _, varDef := range operation.VariableDefinitions {
		name := varDef.Variable
		t := typeFromAST(s, varDef.Type)
		if t == nil {
			return nil, fmt.Errorf("variable $%s has unknown type %s", name, varDef.Type.String())
		}

		value, ok := variables[name]
		if !ok {
			if varDef.DefaultValue != nil {
				value = astValueToGo(varDef.DefaultValue)
			} else if varDef.Type.NonNull {
				return nil, fmt.Errorf("variable $%s of required type %s was not provided", name, varDef.Type.String())
			} else {
				continue
			}
		}

		cv, err := coerceValue(value, t)
		if err != nil {
			return nil, fmt.Errorf("variable $%s got invalid value: %v", name, err)
		}
		coerced[name] = cv
	}
	return coerced, nil
}

// coerceArgumentValues builds the argument map for one field, coercing the
// provided arguments and filling in declared defaults. A missing required
// argument or failed coercion records a field error and reports not ok.
func coerceArgumentValues(state *executionState, fieldDef *schema.Field, arguments ast.ArgumentList, path Path) (map[string]any, bool) {
	coerced := make(map[string]any, len(fieldDef.Args))
	provided := make(map[string]bool, len(arguments))
	ok := true

	for _, arg := range arguments {
		argDef := fieldDef.Args[arg.Name]
		if argDef == nil {
			continue
		}
		provided[arg.Name] = true
		value := valueFromAST(arg.Value, state.variables)
		cv, err := coerceValue(value, argDef.Type)
		if err != nil {
			state.addError(fmt.Sprintf("Argument %q got invalid value: %v.", arg.Name, err), path)
			ok = false
			continue
		}
		coerced[arg.Name] = cv
	}

	for name, argDef := range fieldDef.Args {
		if provided[name] {
			continue
		}
		if argDef.HasDefault {
			coerced[name] = argDef.Default
		} else if schema.IsNonNull(argDef.Type) {
			state.addError(fmt.Sprintf("Argument %q of required type %s was not provided.", name, argDef.Type), path)
			ok = false
		}
	}

	return coerced, ok
}

// valueFromAST converts an AST value to a runtime value, substituting
// variables.
func valueFromAST(value *ast.Value, variables map[string]any) any {
	if value == nil {
		return nil
	}
	if value.Kind == ast.Variable {
		return variables[value.Raw]
	}
	return astValueToGo(value)
}

func astValueToGo(value *ast.Value) any {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case ast.IntValue:
		n, _ := strconv.Atoi(value.Raw)
		return n
	case ast.FloatValue:
		f, _ := strconv.ParseFloat(value.Raw, 64)
		return f
	case ast.StringValue, ast.BlockValue, ast.EnumValue:
		return value.Raw
	case ast.BooleanValue:
		return value.Raw == "true"
	case ast.NullValue:
		return nil
	case ast.ListValue:
		out := make([]any, len(value.Children))
		for i, c := range value.Children {
			out[i] = astValueToGo(c.Value)
		}
		return out
	case ast.ObjectValue:
		m := make(map[string]any, len(value.Children))
		for _, c := range value.Children {
			m[c.Name] = astValueToGo(c.Value)
		}
		return m
	}
	return nil
}

// typeFromAST resolves an AST type expression against the schema's type set.
// Returns nil when the named type does not exist in the schema.
func typeFromAST(s *schema.Schema, t *ast.Type) schema.Type {
	if t == nil {
		return nil
	}
	var inner schema.Type
	if t.NamedType != "" {
		named := s.Types[t.NamedType]
		if named == nil {
			return nil
		}
		inner = named
	} else {
		elem := typeFromAST(s, t.Elem)
		if elem == nil {
			return nil
		}
		inner = &schema.List{OfType: elem}
	}
	if t.NonNull {
		return &schema.NonNull{OfType: inner}
	}
	return inner
}

// coerceValue coerces one input value to a schema type.
func coerceValue(value any, t schema.Type) (any, error) {
	if nn, ok := t.(*schema.NonNull); ok {
		if value == nil {
			return nil, fmt.Errorf("cannot provide null for non-null type %s", t)
		}
		return coerceValue(value, nn.OfType)
	}
	if value == nil {
		return nil, nil
	}

	switch v := t.(type) {
	case *schema.List:
		items, ok := value.([]any)
		if !ok {
			// A single value coerces to a list of one.
			item, err := coerceValue(value, v.OfType)
			if err != nil {
				return nil, err
			}
			return []any{item}, nil
		}
		out := make([]any, len(items))
		for i, item := range items {
			cv, err := coerceValue(item, v.OfType)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil

	case *schema.Scalar:
		return v.ParseValue(value)

	case *schema.Enum:
		name, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("enum %s cannot represent non-string value %v", v.Name, value)
		}
		internal, ok := v.Values[name]
		if !ok {
			return nil, fmt.Errorf("value %q does not exist in %s enum", name, v.Name)
		}
		return internal, nil

	case *schema.InputObject:
		return coerceInputObject(value, v)
	}

	return nil, fmt.Errorf("type %s cannot be used as input", t)
}

func coerceInputObject(value any, io *schema.InputObject) (any, error) {
	fields, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("input object %s cannot represent non-object value %v", io.Name, value)
	}

	for name := range fields {
		if io.Fields[name] == nil {
			return nil, fmt.Errorf("field %q is not defined by input object %s", name, io.Name)
		}
	}

	coerced := make(map[string]any, len(io.Fields))
	for name, fieldDef := range io.Fields {
		fv, present := fields[name]
		if !present {
			if fieldDef.HasDefault {
				coerced[name] = fieldDef.Default
			} else if schema.IsNonNull(fieldDef.Type) {
				return nil, fmt.Errorf("field %q of required type %s was not provided", name, fieldDef.Type)
			}
			continue
		}
		cv, err := coerceValue(fv, fieldDef.Type)
		if err != nil {
			return nil, err
		}
		coerced[name] = cv
	}
	return coerced, nil
}
