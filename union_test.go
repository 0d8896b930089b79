package graphbuild

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type unionDog struct{ Name string }

type unionCat struct{ Lives int }

func TestUnionAddMemberStripsRefMarkers(t *testing.T) {
	u := NewUnion("Pet").
		AddMember(unionDog{}, Ref("Dog")).
		AddMember(unionCat{}, Ref("[Cat!]!"))

	require.Equal(t, "Dog", u.resolveType(unionDog{}))
	require.Equal(t, "Cat", u.resolveType(unionCat{}))
}

func TestUnionResolveTypeOverride(t *testing.T) {
	u := NewUnion("Pet").AddMember(unionDog{}, Ref("Dog"))
	u.ResolveType = func(value any) string { return "Cat" }

	require.Equal(t, "Cat", u.resolveType(unionDog{}))
}
