package executor

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hanpama/graphbuild/schema"
)

// collectedFieldMap groups selected fields by response name, preserving the
// order they first appear in the query.
type collectedFieldMap struct {
	fields []collectedField
	index  map[string]int
}

type collectedField struct {
	ResponseName string
	Fields       []*ast.Field
}

func newCollectedFieldMap() *collectedFieldMap {
	return &collectedFieldMap{index: make(map[string]int)}
}

func (cfm *collectedFieldMap) add(responseName string, field *ast.Field) {
	if idx, ok := cfm.index[responseName]; ok {
		cfm.fields[idx].Fields = append(cfm.fields[idx].Fields, field)
		return
	}
	cfm.index[responseName] = len(cfm.fields)
	cfm.fields = append(cfm.fields, collectedField{
		ResponseName: responseName,
		Fields:       []*ast.Field{field},
	})
}

func (cfm *collectedFieldMap) orderedFields() []collectedField {
	return cfm.fields
}

// collectFields flattens a selection set for one object type, expanding
// fragments whose type condition applies and honoring @skip and @include.
func collectFields(state *executionState, objectType *schema.Object, selectionSet ast.SelectionSet) *collectedFieldMap {
	grouped := newCollectedFieldMap()
	visited := make(map[string]bool)
	collectFieldsImpl(state, objectType, selectionSet, grouped, visited)
	return grouped
}

func collectFieldsImpl(state *executionState, objectType *schema.Object, selectionSet ast.SelectionSet, grouped *collectedFieldMap, visited map[string]bool) {
	for _, selection := range selectionSet {
		switch sel := selection.(type) {
		case *ast.Field:
			if !shouldIncludeNode(state, sel.Directives) {
				continue
			}
			responseName := sel.Alias
			if responseName == "" {
				responseName = sel.Name
			}
			grouped.add(responseName, sel)

		case *ast.InlineFragment:
			if !shouldIncludeNode(state, sel.Directives) {
				continue
			}
			if !typeConditionApplies(state, objectType, sel.TypeCondition) {
				continue
			}
			collectFieldsImpl(state, objectType, sel.SelectionSet, grouped, visited)

		case *ast.FragmentSpread:
			if !shouldIncludeNode(state, sel.Directives) {
				continue
			}
			if visited[sel.Name] {
				continue
			}
			visited[sel.Name] = true

			fragment := state.document.Fragments.ForName(sel.Name)
			if fragment == nil {
				continue
			}
			if !typeConditionApplies(state, objectType, fragment.TypeCondition) {
				continue
			}
			collectFieldsImpl(state, objectType, fragment.SelectionSet, grouped, visited)
		}
	}
}

// typeConditionApplies reports whether a fragment with the given type
// condition selects fields of the object type.
func typeConditionApplies(state *executionState, objectType *schema.Object, condition string) bool {
	if condition == "" || condition == objectType.Name {
		return true
	}
	switch t := state.schema.Types[condition].(type) {
	case *schema.Interface:
		return objectType.Implements(condition)
	case *schema.Union:
		for _, member := range t.Types {
			if member == objectType {
				return true
			}
		}
	}
	return false
}

func shouldIncludeNode(state *executionState, directives ast.DirectiveList) bool {
	if skip := directives.ForName("skip"); skip != nil {
		if v, ok := directiveArgument(state, skip, "if").(bool); ok && v {
			return false
		}
	}
	if include := directives.ForName("include"); include != nil {
		if v, ok := directiveArgument(state, include, "if").(bool); ok && !v {
			return false
		}
	}
	return true
}

func directiveArgument(state *executionState, directive *ast.Directive, name string) any {
	for _, arg := range directive.Arguments {
		if arg.Name == name {
			return valueFromAST(arg.Value, state.variables)
		}
	}
	return nil
}
