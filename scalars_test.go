package graphbuild

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/graphbuild/schema"
)

func TestIntParsesLeniently(t *testing.T) {
	for _, in := range []any{7, int64(7), float64(7), "7"} {
		got, err := Int.ParseValue(in)
		require.NoError(t, err)
		require.Equal(t, 7, got)
	}

	for _, in := range []any{7.5, "7.5", "abc", true} {
		_, err := Int.ParseValue(in)
		require.Error(t, err)
	}
}

func TestFloatParsesLeniently(t *testing.T) {
	for _, in := range []any{1.5, "1.5"} {
		got, err := Float.ParseValue(in)
		require.NoError(t, err)
		require.Equal(t, 1.5, got)
	}

	got, err := Float.ParseValue(3)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)

	_, err = Float.ParseValue("abc")
	require.Error(t, err)
}

func TestBooleanParsesLeniently(t *testing.T) {
	for _, in := range []any{true, "1", "on", "TRUE"} {
		got, err := Boolean.ParseValue(in)
		require.NoError(t, err)
		require.Equal(t, true, got)
	}
	for _, in := range []any{false, "0", "off", "False"} {
		got, err := Boolean.ParseValue(in)
		require.NoError(t, err)
		require.Equal(t, false, got)
	}

	_, err := Boolean.ParseValue("yes")
	require.Error(t, err)
}

func TestIDConvertsIntegers(t *testing.T) {
	got, err := ID.ParseValue(42)
	require.NoError(t, err)
	require.Equal(t, "42", got)

	got, err = ID.ParseValue("abc-123")
	require.NoError(t, err)
	require.Equal(t, "abc-123", got)

	_, err = ID.ParseValue(1.5)
	require.Error(t, err)
}

func TestDateTimeParsesISO8601(t *testing.T) {
	got, err := DateTime.ParseValue("2024-06-01T12:30:00+09:00")
	require.NoError(t, err)
	want, _ := time.Parse(time.RFC3339, "2024-06-01T12:30:00+09:00")
	require.True(t, got.(time.Time).Equal(want))

	// No offset means UTC.
	got, err = DateTime.ParseValue("2024-06-01T12:30:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC), got)

	got, err = DateTime.ParseValue("2024-06-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = DateTime.ParseValue("not a date")
	require.Error(t, err)
}

func TestDateTimeSerializes(t *testing.T) {
	got, err := DateTime.Serialize(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, "2024-06-01T12:30:00Z", got)
}

func TestJSONPassesThrough(t *testing.T) {
	s := NewSchema()
	s.Query.AddField("config", NewField(JSON))
	compiled := s.MustCompile()

	jsonType := compiled.Types["JSON"].(*schema.Scalar)
	value := map[string]any{"nested": []any{1, "two"}}
	got, err := jsonType.Serialize(value)
	require.NoError(t, err)
	require.Equal(t, value, got)
}
