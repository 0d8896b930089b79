// Package executor runs GraphQL operations against a compiled schema. It
// parses the request document, coerces variables and arguments, and walks the
// selection sets calling each field's resolver, following the execution
// section of the GraphQL specification for a single synchronous pass.
package executor

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hanpama/graphbuild/schema"
)

var tracer = otel.Tracer("graphbuild/executor")

// Request is one GraphQL operation to execute. OperationName may be empty
// when the document holds a single operation. Root is passed as the parent
// value to the root resolvers.
type Request struct {
	Query         string
	OperationName string
	Variables     map[string]any
	Root          any
}

// executionState holds the state shared across one execution pass.
type executionState struct {
	schema    *schema.Schema
	document  *ast.QueryDocument
	variables map[string]any
	ctx       context.Context
	errors    []GraphQLError
}

// Execute runs one operation and always returns a result; failures surface
// in the result's error list rather than as a Go error.
func Execute(ctx context.Context, s *schema.Schema, req Request) *ExecutionResult {
	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		return &ExecutionResult{Errors: []GraphQLError{{Message: err.Error()}}}
	}

	operation := doc.Operations.ForName(req.OperationName)
	if operation == nil {
		return &ExecutionResult{Errors: []GraphQLError{{Message: "operation not found"}}}
	}

	ctx, span := tracer.Start(ctx, "graphql.execute", trace.WithAttributes(
		attribute.String("graphql.operation.type", string(operation.Operation)),
		attribute.String("graphql.operation.name", operation.Name),
	))
	defer span.End()

	variables, err := coerceVariableValues(s, operation, req.Variables)
	if err != nil {
		return &ExecutionResult{Errors: []GraphQLError{{Message: err.Error()}}}
	}

	var rootType *schema.Object
	switch operation.Operation {
	case ast.Query:
		rootType = s.Query
	case ast.Mutation:
		rootType = s.Mutation
	default:
		return &ExecutionResult{Errors: []GraphQLError{{Message: fmt.Sprintf("unsupported operation type: %s", operation.Operation)}}}
	}
	if rootType == nil {
		return &ExecutionResult{Errors: []GraphQLError{{Message: fmt.Sprintf("schema does not support %s operations", operation.Operation)}}}
	}

	state := &executionState{
		schema:    s,
		document:  doc,
		variables: variables,
		ctx:       ctx,
	}

	data := executeSelectionSet(state, rootType, operation.SelectionSet, req.Root, Path{})
	span.SetAttributes(attribute.Int("graphql.error_count", len(state.errors)))

	return &ExecutionResult{Data: data, Errors: state.errors}
}

// executeSelectionSet resolves every collected field of one object value. A
// non-null field that completes to null makes the whole set null; at the root
// that nulls the entire data payload.
func executeSelectionSet(state *executionState, objectType *schema.Object, selectionSet ast.SelectionSet, objectValue any, path Path) map[string]any {
	grouped := collectFields(state, objectType, selectionSet)
	result := make(map[string]any, len(grouped.fields))

	for _, cf := range grouped.orderedFields() {
		fieldPath := appendPath(path, cf.ResponseName)

		if cf.Fields[0].Name == "__typename" {
			result[cf.ResponseName] = objectType.Name
			continue
		}

		fieldDef := objectType.Fields[cf.Fields[0].Name]
		if fieldDef == nil {
			state.addError(fmt.Sprintf("Cannot query field %q on type %q.", cf.Fields[0].Name, objectType.Name), fieldPath)
			continue
		}

		value := executeField(state, fieldDef, objectValue, cf.Fields, fieldPath)

		if isNullish(value) {
			if schema.IsNonNull(fieldDef.Type) {
				return nil
			}
			result[cf.ResponseName] = nil
			continue
		}
		result[cf.ResponseName] = value
	}

	return result
}

func executeField(state *executionState, fieldDef *schema.Field, objectValue any, fields []*ast.Field, path Path) any {
	args, ok := coerceArgumentValues(state, fieldDef, fields[0].Arguments, path)
	if !ok {
		return nil
	}

	value, err := fieldDef.Resolve(state.ctx, objectValue, args)
	if err != nil {
		gqlErr := GraphQLError{Message: err.Error(), Path: path}
		var ee schema.ExtensionsError
		if errors.As(err, &ee) {
			gqlErr.Extensions = ee.Extensions()
		}
		state.errors = append(state.errors, gqlErr)
		return nil
	}

	return completeValue(state, fieldDef.Type, fields, value, path)
}

// completeValue converts a resolved value into its response form according
// to the field type. A null produced inside a non-null position records an
// error and propagates the null upward.
func completeValue(state *executionState, t schema.Type, fields []*ast.Field, result any, path Path) any {
	if nn, ok := t.(*schema.NonNull); ok {
		if isNullish(result) {
			if !state.hasErrorAtPath(path) {
				state.addError(fmt.Sprintf("Cannot return null for non-nullable field %s.", pathString(path)), path)
			}
			return nil
		}
		// A null produced deeper in completion already recorded its error.
		return completeValue(state, nn.OfType, fields, result, path)
	}

	if isNullish(result) {
		return nil
	}

	switch v := t.(type) {
	case *schema.List:
		return completeListValue(state, v, fields, result, path)
	case *schema.Scalar:
		serialized, err := v.Serialize(result)
		if err != nil {
			state.addError(err.Error(), path)
			return nil
		}
		return serialized
	case *schema.Enum:
		name, ok := v.NameOf(result)
		if !ok {
			state.addError(fmt.Sprintf("Enum %q cannot represent value %v.", v.Name, result), path)
			return nil
		}
		return name
	case *schema.Object:
		return executeSelectionSet(state, v, mergeSelectionSets(fields), result, path)
	case *schema.Union:
		return completeAbstractValue(state, v.ResolveType(result), v.Name, fields, result, path)
	case *schema.Interface:
		return completeAbstractValue(state, concreteTypeName(result), v.Name, fields, result, path)
	}

	state.addError(fmt.Sprintf("Cannot complete value of unexpected type %s.", t), path)
	return nil
}

func completeListValue(state *executionState, listType *schema.List, fields []*ast.Field, result any, path Path) any {
	items, ok := listItems(result)
	if !ok {
		state.addError(fmt.Sprintf("Expected a list value, got %T.", result), path)
		return nil
	}

	inner := listType.OfType
	completed := make([]any, len(items))
	for i, item := range items {
		v := completeValue(state, inner, fields, item, appendPath(path, i))
		if schema.IsNonNull(inner) && isNullish(v) {
			return nil
		}
		completed[i] = v
	}
	return completed
}

// listItems converts any slice value to []any.
func listItems(result any) ([]any, bool) {
	if direct, ok := result.([]any); ok {
		return direct, true
	}
	rv := reflect.ValueOf(result)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func completeAbstractValue(state *executionState, typeName, abstractName string, fields []*ast.Field, result any, path Path) any {
	if typeName == "" {
		state.addError(fmt.Sprintf("Could not determine the concrete type of abstract type %q for value of type %T.", abstractName, result), path)
		return nil
	}
	objectType, ok := state.schema.Types[typeName].(*schema.Object)
	if !ok {
		state.addError(fmt.Sprintf("Abstract type %q resolved to %q, which is not an object type.", abstractName, typeName), path)
		return nil
	}
	return executeSelectionSet(state, objectType, mergeSelectionSets(fields), result, path)
}

// TypeNamer lets values carry the name of the object type they belong to,
// for resolution of interface-typed fields at runtime.
type TypeNamer interface {
	GraphQLTypeName() string
}

// concreteTypeName determines the object type of a value behind an interface
// field, from a TypeNamer implementation or a "__typename" map entry.
func concreteTypeName(value any) string {
	if tn, ok := value.(TypeNamer); ok {
		return tn.GraphQLTypeName()
	}
	if m, ok := value.(map[string]any); ok {
		if name, ok := m["__typename"].(string); ok {
			return name
		}
	}
	return ""
}

func mergeSelectionSets(fields []*ast.Field) ast.SelectionSet {
	var merged ast.SelectionSet
	for _, f := range fields {
		merged = append(merged, f.SelectionSet...)
	}
	return merged
}

func (state *executionState) addError(message string, path Path) {
	state.errors = append(state.errors, GraphQLError{Message: message, Path: path})
}

func (state *executionState) hasErrorAtPath(path Path) bool {
	for _, err := range state.errors {
		if reflect.DeepEqual(err.Path, path) {
			return true
		}
	}
	return false
}

func appendPath(path Path, elem PathElement) Path {
	out := make(Path, len(path)+1)
	copy(out, path)
	out[len(path)] = elem
	return out
}

func pathString(path Path) string {
	out := ""
	for i, elem := range path {
		switch v := elem.(type) {
		case string:
			if i > 0 {
				out += "."
			}
			out += v
		case int:
			out += fmt.Sprintf("[%d]", v)
		}
	}
	return out
}

// isNullish reports nil interfaces and typed nils.
func isNullish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
