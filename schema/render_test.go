package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	stringType := &Scalar{Name: "String"}
	dateTime := &Scalar{Name: "DateTime", SpecifiedBy: "https://example.com/datetime"}

	node := &Interface{Name: "Node"}
	node.Fields = map[string]*Field{
		"id": {Name: "id", Type: &NonNull{OfType: &Scalar{Name: "ID"}}},
	}

	user := &Object{Name: "User", Interfaces: []*Interface{node}}
	user.Fields = map[string]*Field{
		"id":        {Name: "id", Type: &NonNull{OfType: &Scalar{Name: "ID"}}},
		"name":      {Name: "name", Type: stringType},
		"createdAt": {Name: "createdAt", Type: dateTime},
		"nickname":  {Name: "nickname", Type: stringType, Deprecation: "Use name."},
	}

	role := &Enum{Name: "Role", Values: map[string]any{"ADMIN": "admin", "MEMBER": "member"}}

	filter := &InputObject{Name: "UserFilter", Fields: map[string]*InputValue{
		"role":  {Name: "role", Type: role},
		"limit": {Name: "limit", Type: &Scalar{Name: "Int"}, Default: 10, HasDefault: true},
	}}

	query := &Object{Name: "Query"}
	query.Fields = map[string]*Field{
		"users": {
			Name: "users",
			Type: &NonNull{OfType: &List{OfType: &NonNull{OfType: user}}},
			Args: map[string]*InputValue{
				"filter": {Name: "filter", Type: filter},
			},
		},
	}

	return &Schema{
		Query: query,
		Types: map[string]NamedType{
			"String":     stringType,
			"DateTime":   dateTime,
			"Node":       node,
			"User":       user,
			"Role":       role,
			"UserFilter": filter,
			"Query":      query,
		},
	}
}

func TestRender(t *testing.T) {
	want := `scalar DateTime @specifiedBy(url: "https://example.com/datetime")

interface Node {
  id: ID!
}

type Query {
  users(filter: UserFilter): [User!]!
}

enum Role {
  ADMIN
  MEMBER
}

type User implements Node {
  createdAt: DateTime
  id: ID!
  name: String
  nickname: String @deprecated(reason: "Use name.")
}

input UserFilter {
  limit: Int = 10
  role: Role
}
`
	got := Render(testSchema())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSkipsBuiltinScalars(t *testing.T) {
	s := &Schema{Types: map[string]NamedType{
		"String": &Scalar{Name: "String"},
		"Int":    &Scalar{Name: "Int"},
	}}
	require.Equal(t, "\n", Render(s))
}

func TestTypeString(t *testing.T) {
	user := &Object{Name: "User"}
	require.Equal(t, "User", user.String())
	require.Equal(t, "User!", (&NonNull{OfType: user}).String())
	require.Equal(t, "[User!]!", (&NonNull{OfType: &List{OfType: &NonNull{OfType: user}}}).String())
}

func TestNamedOf(t *testing.T) {
	user := &Object{Name: "User"}
	wrapped := &NonNull{OfType: &List{OfType: &NonNull{OfType: user}}}
	require.Same(t, user, NamedOf(wrapped).(*Object))
}

func TestImplements(t *testing.T) {
	base := &Interface{Name: "Node"}
	timestamped := &Interface{Name: "Timestamped", Interfaces: []*Interface{base}}
	user := &Object{Name: "User", Interfaces: []*Interface{timestamped}}

	require.True(t, user.Implements("Timestamped"))
	require.True(t, user.Implements("Node"))
	require.False(t, user.Implements("Other"))
}

func TestEnumNameOf(t *testing.T) {
	role := &Enum{Name: "Role", Values: map[string]any{"ADMIN": 1, "MEMBER": 2}}

	name, ok := role.NameOf(2)
	require.True(t, ok)
	require.Equal(t, "MEMBER", name)

	_, ok = role.NameOf(3)
	require.False(t, ok)
}
