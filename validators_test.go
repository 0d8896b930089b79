package graphbuild

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, Length{Min: intp(2), Max: intp(4)}.ValidateValue(ctx, "abc", nil))
	require.EqualError(t,
		Length{Min: intp(2), Max: intp(4)}.ValidateValue(ctx, "a", nil),
		"validation failed: Length must be between 2 and 4, but was 1.")
	require.EqualError(t,
		Length{Min: intp(2)}.ValidateValue(ctx, "a", nil),
		"validation failed: Length must be at least 2, but was 1.")
	require.EqualError(t,
		Length{Max: intp(2)}.ValidateValue(ctx, "abc", nil),
		"validation failed: Length must be at most 2, but was 3.")
	require.EqualError(t,
		Length{Min: intp(2), Max: intp(2)}.ValidateValue(ctx, "abc", nil),
		"validation failed: Length must be exactly 2, but was 3.")

	// Strings are measured in runes, not bytes.
	require.NoError(t, Length{Max: intp(2)}.ValidateValue(ctx, "hé", nil))

	// Lists and input maps are measured by element count.
	require.EqualError(t,
		Length{Max: intp(1)}.ValidateValue(ctx, []any{1, 2}, nil),
		"validation failed: Length must be at most 1, but was 2.")
	require.NoError(t, Length{Max: intp(1)}.ValidateValue(ctx, 42, nil))
}

func TestNumberRange(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, NumberRange{Min: floatp(1), Max: floatp(10)}.ValidateValue(ctx, 5, nil))
	require.EqualError(t,
		NumberRange{Min: floatp(1), Max: floatp(10)}.ValidateValue(ctx, 0, nil),
		"validation failed: Must be between 1 and 10, but was 0.")
	require.EqualError(t,
		NumberRange{Min: floatp(1)}.ValidateValue(ctx, 0.5, nil),
		"validation failed: Must be at least 1, but was 0.5.")
	require.EqualError(t,
		NumberRange{Max: floatp(10)}.ValidateValue(ctx, 11, nil),
		"validation failed: Must be at most 10, but was 11.")
	require.NoError(t, NumberRange{Max: floatp(10)}.ValidateValue(ctx, "not a number", nil))
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	data := map[string]any{"password": "secret", "confirm": "secret"}

	require.NoError(t, Confirm{Other: "password"}.ValidateValue(ctx, "secret", data))
	require.EqualError(t,
		Confirm{Other: "password"}.ValidateValue(ctx, "different", data),
		"validation failed: Must equal the value given in 'password'.")
}
