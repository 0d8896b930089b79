package graphbuild

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

var lowercase = ValueValidatorFunc(func(ctx context.Context, value any, data map[string]any) error {
	s, ok := value.(string)
	if ok && s != strings.ToLower(s) {
		return NewValidationError("Must be lowercase.")
	}
	return nil
})

func TestValidateArgsCollectsFieldMessages(t *testing.T) {
	f := NewField(String)
	f.AddArgument("name", NewArgument(String).Validate(Length{Min: intp(2)}))

	err := f.ValidateArgs(context.Background(), map[string]any{"name": "a"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, ByField{
		"name": Many{Single("Length must be at least 2, but was 1.")},
	}, verr.Message)
}

func TestValidateArgsSkipsAbsentValues(t *testing.T) {
	f := NewField(String)
	f.AddArgument("name", NewArgument(String).Validate(Length{Min: intp(2)}))

	require.NoError(t, f.ValidateArgs(context.Background(), map[string]any{}))
}

func TestValidateEachReportsParallelList(t *testing.T) {
	f := NewField(String)
	f.AddArgument("names", NewArgument(NewList(String)).Validate(Each{lowercase}))

	err := f.ValidateArgs(context.Background(), map[string]any{
		"names": []any{"ABC", "abc"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, ByField{
		"names": Many{
			Many{Single("Must be lowercase."), nil},
		},
	}, verr.Message)
}

func TestValidateNestedEach(t *testing.T) {
	f := NewField(String)
	f.AddArgument("matrix", NewArgument(NewList(NewList(String))).Validate(Each{Each{lowercase}}))

	err := f.ValidateArgs(context.Background(), map[string]any{
		"matrix": []any{
			[]any{"ok", "BAD"},
			[]any{"fine"},
		},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, ByField{
		"matrix": Many{
			Many{
				Many{nil, Single("Must be lowercase.")},
				nil,
			},
		},
	}, verr.Message)
}

func TestValidateDataMergesMessages(t *testing.T) {
	f := NewField(String)
	f.AddArgument("username", NewArgument(String).Validate(Length{Min: intp(5)}))
	f.Validate(
		DataValidatorFunc(func(ctx context.Context, data map[string]any) error {
			return &ValidationError{Message: ByField{
				"username": Single("Already taken."),
			}}
		}),
		DataValidatorFunc(func(ctx context.Context, data map[string]any) error {
			return NewValidationError("Registration is closed.")
		}),
	)

	err := f.ValidateArgs(context.Background(), map[string]any{"username": "abc"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, ByField{
		"username": Many{
			Single("Length must be at least 5, but was 3."),
			Single("Already taken."),
		},
		"": Many{Single("Registration is closed.")},
	}, verr.Message)
}

func TestValidateInputObjectRecurses(t *testing.T) {
	profile := NewInputObject("ProfileInput")
	profile.AddField("bio", NewInputField(String).Validate(Length{Max: intp(3)}))

	f := NewField(String)
	f.AddArgument("profile", NewArgument(NewNonNull(profile)))

	err := f.ValidateArgs(context.Background(), map[string]any{
		"profile": map[string]any{"bio": "too long"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, ByField{
		"profile": Many{
			ByField{"bio": Many{Single("Length must be at most 3, but was 8.")}},
		},
	}, verr.Message)
}

func TestValidateOtherErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	f := NewField(String)
	f.AddArgument("name", NewArgument(String).Validate(
		ValueValidatorFunc(func(ctx context.Context, value any, data map[string]any) error {
			return boom
		}),
	))

	err := f.ValidateArgs(context.Background(), map[string]any{"name": "x"})
	require.ErrorIs(t, err, boom)
}
