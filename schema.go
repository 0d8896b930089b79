package graphbuild

import (
	"context"
	"sort"
	"sync"

	"github.com/hanpama/graphbuild/executor"
	"github.com/hanpama/graphbuild/schema"
)

// Schema describes all the types and fields in a GraphQL API. The objects
// and fields form the graph; the remaining types define inputs and outputs.
// The schema and its nodes can be modified freely after definition, until
// Compile produces the executable form.
type Schema struct {
	// Query holds the top-level query fields.
	Query *Object

	// Mutation holds the top-level mutation fields.
	Mutation *Object

	// TypeMap maps names to type definitions. Initially populated with the
	// built-in scalars, it fills in during compilation as the graph is
	// traversed. A nil value records a name that was referenced somewhere
	// in the graph but never defined.
	TypeMap map[string]NamedType

	Description string

	mu       sync.Mutex
	compiled *schema.Schema
}

// NewSchema creates a schema. Types that are only referred to by name in
// the graph can be passed here or added later with AddType. Passed-in types
// may override the provided DateTime and JSON scalars but not the five core
// scalars, which the executor depends on.
func NewSchema(types ...NamedType) *Schema {
	s := &Schema{
		Query:    NewObject("Query"),
		Mutation: NewObject("Mutation"),
		TypeMap:  map[string]NamedType{},
	}
	for _, t := range providedScalars {
		s.TypeMap[t.TypeName()] = t
	}
	for _, t := range types {
		s.TypeMap[t.TypeName()] = t
	}
	for _, t := range coreScalars {
		s.TypeMap[t.TypeName()] = t
	}
	return s
}

// AddType adds a named type to the type map, providing the definition for
// references to it by name elsewhere in the graph.
func (s *Schema) AddType(t NamedType) {
	s.TypeMap[t.TypeName()] = t
}

// resolveNodes discovers every node reachable from the roots and the type
// map, collects named types, and replaces name references with the defined
// type objects. A referenced name with no definition gets a nil entry in
// the type map; the error is raised later, batched, by Compile.
//
// The graph is iterated twice, once to collect all nodes and once to apply
// types, because a type may be defined after a reference to it has already
// been visited.
func (s *Schema) resolveNodes() {
	queue := make([]any, 0, len(s.TypeMap)+2)
	for _, name := range sortedKeys(s.TypeMap) {
		if t := s.TypeMap[name]; t != nil {
			queue = append(queue, t)
		}
	}
	queue = append(queue, s.Query, s.Mutation)

	seen := map[any]bool{}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if n == nil || seen[n] {
			continue
		}
		seen[n] = true

		if ref, ok := n.(Ref); ok {
			name := stripRefName(string(ref))
			if _, defined := s.TypeMap[name]; !defined {
				// Referenced but not (yet) defined.
				s.TypeMap[name] = nil
			}
			continue
		}
		if nt, ok := n.(NamedType); ok {
			s.TypeMap[nt.TypeName()] = nt
		}
		queue = append(queue, childNodes(n)...)
	}

	// The root objects can't be used as types elsewhere.
	delete(s.TypeMap, s.Query.Name)
	delete(s.TypeMap, s.Mutation.Name)

	for n := range seen {
		if _, ok := n.(Ref); ok {
			continue
		}
		applyTypes(n, s.TypeMap)
	}
}

// Compile finalizes the schema into its executable form. The result is
// produced once and returned unchanged on every subsequent call; changes to
// the descriptors after a successful compile have no effect. A root object
// with no fields is omitted from the compiled schema entirely, and types
// never reached from the roots are absent from its type set, except the five
// core scalars which are always present.
//
// Compilation fails with an UndefinedTypeError naming every referenced but
// undefined type, sorted, in one error. A failed compile is not cached, so
// the missing types can be added and Compile called again.
func (s *Schema) Compile() (*schema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.compiled != nil {
		return s.compiled, nil
	}

	s.resolveNodes()

	var undefined []string
	for name, t := range s.TypeMap {
		if t == nil {
			undefined = append(undefined, name)
		}
	}
	if len(undefined) > 0 {
		sort.Strings(undefined)
		return nil, UndefinedTypeError(undefined)
	}

	c := &compiler{}
	out := &schema.Schema{Types: map[string]schema.NamedType{}, Description: s.Description}
	if len(s.Query.Fields) > 0 {
		out.Query = s.Query.compile(c)
	}
	if len(s.Mutation.Fields) > 0 {
		out.Mutation = s.Mutation.compile(c)
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	seen := map[schema.Type]bool{}
	if out.Query != nil {
		collectTypes(out.Types, out.Query, seen)
	}
	if out.Mutation != nil {
		collectTypes(out.Types, out.Mutation, seen)
	}
	// The executor coerces variables against the type set, so the core
	// scalars are available even when no field refers to them.
	for _, sc := range coreScalars {
		if _, ok := out.Types[sc.Name]; !ok {
			out.Types[sc.Name] = sc.compile(c)
		}
	}

	s.compiled = out
	return out, nil
}

// MustCompile is like Compile but panics on failure.
func (s *Schema) MustCompile() *schema.Schema {
	out, err := s.Compile()
	if err != nil {
		panic(err)
	}
	return out
}

// Execute compiles the schema if needed and executes one operation against
// it. The compiled schema is cached, so calling this repeatedly does not
// recompile.
func (s *Schema) Execute(ctx context.Context, req executor.Request) *executor.ExecutionResult {
	compiled, err := s.Compile()
	if err != nil {
		return &executor.ExecutionResult{
			Errors: []executor.GraphQLError{{Message: err.Error()}},
		}
	}
	return executor.Execute(ctx, compiled, req)
}

// Render compiles the schema if needed and formats it as a document in the
// GraphQL schema language.
func (s *Schema) Render() (string, error) {
	compiled, err := s.Compile()
	if err != nil {
		return "", err
	}
	return schema.Render(compiled), nil
}
