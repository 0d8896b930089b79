package graphbuild

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// The five core scalars are part of every schema and cannot be replaced.
var (
	// String is the GraphQL String type, UTF-8 text.
	String = &Scalar{
		Name:        "String",
		Description: "Arbitrary text, represented as UTF-8.",
		Serialize:   serializeString,
		ParseValue:  parseString,
	}

	// Int is the GraphQL Int type, a signed 32-bit integer.
	Int = &Scalar{
		Name:        "Int",
		Description: "A signed 32-bit integer.",
		Serialize:   parseInt,
		ParseValue:  parseInt,
	}

	// Float is the GraphQL Float type, a signed double-precision value.
	Float = &Scalar{
		Name:        "Float",
		Description: "A signed double-precision floating-point value.",
		Serialize:   parseFloat,
		ParseValue:  parseFloat,
	}

	// Boolean is the GraphQL Boolean type.
	Boolean = &Scalar{
		Name:        "Boolean",
		Description: "true or false.",
		Serialize:   serializeBoolean,
		ParseValue:  parseBoolean,
	}

	// ID is the GraphQL ID type, an opaque identifier serialized as a
	// string. Integer input is accepted and converted.
	ID = &Scalar{
		Name:        "ID",
		Description: "A unique identifier, serialized as a string.",
		Serialize:   parseID,
		ParseValue:  parseID,
	}
)

// Schemas also provide these scalars by default, but a type with the same
// name passed to NewSchema takes their place.
var (
	// DateTime maps time.Time values to ISO 8601 strings. Input without an
	// offset is interpreted as UTC.
	DateTime = &Scalar{
		Name:        "DateTime",
		Description: "A date and time in ISO 8601 format.",
		Serialize:   serializeDateTime,
		ParseValue:  parseDateTime,
		SpecifiedBy: "https://en.wikipedia.org/wiki/ISO_8601",
	}

	// JSON passes any value through unchanged in both directions.
	JSON = &Scalar{
		Name:        "JSON",
		Description: "An arbitrary JSON value.",
	}
)

var coreScalars = []*Scalar{String, Int, Float, Boolean, ID}

var providedScalars = []*Scalar{DateTime, JSON}

func serializeString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case int, int32, int64, float64:
		return fmt.Sprint(v), nil
	}
	return nil, fmt.Errorf("String cannot represent value %v", value)
}

func parseString(value any) (any, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return nil, fmt.Errorf("String cannot represent a non string value %v", value)
}

func parseInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("Int cannot represent non 32-bit signed integer value %d", v)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("Int cannot represent non-integer value %v", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("Int cannot represent non-integer value %q", v)
		}
		return int(n), nil
	}
	return nil, fmt.Errorf("Int cannot represent value %v", value)
}

func parseFloat(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("Float cannot represent non numeric value %q", v)
		}
		return f, nil
	}
	return nil, fmt.Errorf("Float cannot represent value %v", value)
}

func serializeBoolean(value any) (any, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return nil, fmt.Errorf("Boolean cannot represent value %v", value)
}

func parseBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "1", "on", "true":
			return true, nil
		case "0", "off", "false":
			return false, nil
		}
	}
	return nil, fmt.Errorf("Boolean cannot represent value %v", value)
}

func parseID(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10), nil
		}
	}
	return nil, fmt.Errorf("ID cannot represent value %v", value)
}

func serializeDateTime(value any) (any, error) {
	if t, ok := value.(time.Time); ok {
		return t.Format(time.RFC3339Nano), nil
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return nil, fmt.Errorf("DateTime cannot represent value %v", value)
}

// dateTimeLayouts lists accepted input forms without a zone offset. These
// parse as UTC.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDateTime(value any) (any, error) {
	if t, ok := value.(time.Time); ok {
		return t, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("DateTime cannot represent value %v", value)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("DateTime cannot represent value %q", s)
}
