package graphbuild

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/graphbuild/executor"
)

func userSchema() *Schema {
	s := NewSchema()

	user := NewObject("User")
	user.AddField("name", NewField(NewNonNull(String)))

	f := s.Query.AddField("user", NewField(user))
	f.AddArgument("name", NewArgument(NewNonNull(String)).Validate(Length{Min: intp(2)}))
	f.Resolver(func(ctx context.Context, parent any, args map[string]any) (any, error) {
		return map[string]any{"name": args["name"]}, nil
	})
	return s
}

func TestSchemaExecute(t *testing.T) {
	s := userSchema()

	ExpectData(t, s, `{ user(name: "ada") { name } }`, nil, map[string]any{
		"user": map[string]any{"name": "ada"},
	})

	ExpectValidationError(t, s, `{ user(name: "a") { name } }`, nil, ByField{
		"name": Many{Single("Length must be at least 2, but was 1.")},
	})

	ExpectErrors(t, s, `{ user(name: "ada") { nope } }`, nil, []string{
		`Cannot query field "nope" on type "User".`,
	})
}

func TestSchemaExecuteCompileError(t *testing.T) {
	s := NewSchema()
	s.Query.AddField("thing", NewField(Ref("Missing")))

	result := s.Execute(context.Background(), executor.Request{Query: `{ thing }`})
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0].Message, `"Missing"`)
}

func TestSchemaRender(t *testing.T) {
	s := userSchema()

	sdl, err := s.Render()
	require.NoError(t, err)
	require.Contains(t, sdl, "type Query {\n  user(name: String!): User\n}")
	require.Contains(t, sdl, "type User {\n  name: String!\n}")
}
