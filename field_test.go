package graphbuild

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveRunsPipelineInOrder(t *testing.T) {
	var steps []string

	f := NewField(String)
	f.AddArgument("name", NewArgument(String).Validate(
		ValueValidatorFunc(func(ctx context.Context, value any, data map[string]any) error {
			steps = append(steps, "validate")
			return nil
		}),
	))
	f.PreResolver(func(ctx context.Context, parent any, args map[string]any) (any, error) {
		steps = append(steps, "pre")
		return nil, nil
	})
	f.Resolver(func(ctx context.Context, parent any, args map[string]any) (any, error) {
		steps = append(steps, "resolve")
		return "ok", nil
	})

	value, err := f.Resolve(context.Background(), nil, map[string]any{"name": "x"})
	require.NoError(t, err)
	require.Equal(t, "ok", value)
	require.Equal(t, []string{"pre", "validate", "resolve"}, steps)
}

func TestResolvePreResolverStopsBeforeValidation(t *testing.T) {
	f := NewField(String)
	f.AddArgument("name", NewArgument(String).Validate(
		ValueValidatorFunc(func(ctx context.Context, value any, data map[string]any) error {
			t.Fatal("validator ran after pre-resolver failed")
			return nil
		}),
	))
	f.PreResolver(func(ctx context.Context, parent any, args map[string]any) (any, error) {
		return nil, NewValidationError("Not allowed.")
	})

	_, err := f.Resolve(context.Background(), nil, map[string]any{"name": "x"})
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, ValidationMessage, rerr.Error())
}

func TestResolveWrapsValidationError(t *testing.T) {
	f := NewField(String)
	f.AddArgument("name", NewArgument(String).Validate(Length{Min: intp(5)}))
	f.Resolver(func(ctx context.Context, parent any, args map[string]any) (any, error) {
		return "unreachable", nil
	})

	_, err := f.Resolve(context.Background(), nil, map[string]any{"name": "abc"})
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, ValidationMessage, rerr.Error())
	require.Equal(t, ByField{
		"name": Many{Single("Length must be at least 5, but was 3.")},
	}, rerr.Fields())
	require.Equal(t, map[string]any{
		"name": []any{"Length must be at least 5, but was 3."},
	}, rerr.Extensions())
}

func TestResolveNormalizesBareMessages(t *testing.T) {
	f := NewField(String)
	f.Resolver(func(ctx context.Context, parent any, args map[string]any) (any, error) {
		return nil, NewValidationError("Nope.")
	})

	_, err := f.Resolve(context.Background(), nil, nil)
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, ByField{"": Many{Single("Nope.")}}, rerr.Fields())
}

func TestResolveOtherErrorsPassThrough(t *testing.T) {
	boom := errors.New("boom")
	f := NewField(String)
	f.Resolver(func(ctx context.Context, parent any, args map[string]any) (any, error) {
		return nil, boom
	})

	_, err := f.Resolve(context.Background(), nil, nil)
	require.Same(t, boom, err)
}

func TestDefaultResolver(t *testing.T) {
	ctx := context.Background()

	f := NewField(String)
	f.name = "title"

	value, err := f.Resolve(ctx, map[string]any{"title": "from map"}, nil)
	require.NoError(t, err)
	require.Equal(t, "from map", value)

	value, err = f.Resolve(ctx, struct{ Title string }{Title: "from struct"}, nil)
	require.NoError(t, err)
	require.Equal(t, "from struct", value)

	value, err = f.Resolve(ctx, nil, nil)
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestItemResolver(t *testing.T) {
	r := ItemResolver("count")

	value, err := r(context.Background(), map[string]any{"count": 3}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, value)

	_, err = r(context.Background(), "not a map", nil)
	require.Error(t, err)
}

func TestAttrResolver(t *testing.T) {
	type post struct {
		Title string
	}
	r := AttrResolver("title")

	value, err := r(context.Background(), &post{Title: "hello"}, nil)
	require.NoError(t, err)
	require.Equal(t, "hello", value)

	var nilPost *post
	value, err = r(context.Background(), nilPost, nil)
	require.NoError(t, err)
	require.Nil(t, value)

	_, err = r(context.Background(), post{}, nil)
	require.NoError(t, err)

	_, err = r(context.Background(), 42, nil)
	require.Error(t, err)
}
