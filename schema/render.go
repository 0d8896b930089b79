package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// builtinScalars are part of every schema and are not rendered.
var builtinScalars = map[string]bool{
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
	"ID":      true,
}

// Render produces SDL from the Schema. Type names are sorted
// lexicographically so the output is deterministic; fields within a type are
// sorted by name as well.
func Render(s *Schema) string {
	if s == nil {
		return ""
	}
	var b strings.Builder

	typeNames := make([]string, 0, len(s.Types))
	for name, typ := range s.Types {
		if sc, ok := typ.(*Scalar); ok && builtinScalars[sc.Name] {
			continue
		}
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)

	for _, name := range typeNames {
		switch typ := s.Types[name].(type) {
		case *Scalar:
			renderScalar(&b, typ)
		case *Enum:
			renderEnum(&b, typ)
		case *InputObject:
			renderInputObject(&b, typ)
		case *Object:
			renderObject(&b, typ)
		case *Interface:
			renderInterface(&b, typ)
		case *Union:
			renderUnion(&b, typ)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderDescription(b *strings.Builder, desc string) {
	if desc == "" {
		return
	}
	b.WriteString("\"\"\"\n")
	b.WriteString(strings.ReplaceAll(desc, "\"", "\\\""))
	b.WriteString("\n\"\"\"\n")
}

func renderScalar(b *strings.Builder, typ *Scalar) {
	renderDescription(b, typ.Description)
	b.WriteString("scalar ")
	b.WriteString(typ.Name)
	if typ.SpecifiedBy != "" {
		b.WriteString(" @specifiedBy(url: ")
		b.WriteString(strconv.Quote(typ.SpecifiedBy))
		b.WriteString(")")
	}
	b.WriteString("\n\n")
}

func renderEnum(b *strings.Builder, typ *Enum) {
	renderDescription(b, typ.Description)
	b.WriteString("enum ")
	b.WriteString(typ.Name)
	b.WriteString(" {\n")
	names := make([]string, 0, len(typ.Values))
	for name := range typ.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderInputObject(b *strings.Builder, typ *InputObject) {
	renderDescription(b, typ.Description)
	b.WriteString("input ")
	b.WriteString(typ.Name)
	b.WriteString(" {\n")
	for _, name := range sortedNames(typ.Fields) {
		field := typ.Fields[name]
		renderDescription(b, field.Description)
		b.WriteString("  ")
		b.WriteString(field.Name)
		b.WriteString(": ")
		b.WriteString(field.Type.String())
		if field.HasDefault {
			b.WriteString(" = ")
			b.WriteString(renderValue(field.Default))
		}
		renderDeprecation(b, field.Deprecation)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderObject(b *strings.Builder, typ *Object) {
	renderDescription(b, typ.Description)
	b.WriteString("type ")
	b.WriteString(typ.Name)
	renderImplements(b, typ.Interfaces)
	b.WriteString(" {\n")
	renderFields(b, typ.Fields)
	b.WriteString("}\n\n")
}

func renderInterface(b *strings.Builder, typ *Interface) {
	renderDescription(b, typ.Description)
	b.WriteString("interface ")
	b.WriteString(typ.Name)
	renderImplements(b, typ.Interfaces)
	b.WriteString(" {\n")
	renderFields(b, typ.Fields)
	b.WriteString("}\n\n")
}

func renderImplements(b *strings.Builder, ifaces []*Interface) {
	if len(ifaces) == 0 {
		return
	}
	b.WriteString(" implements ")
	for i, iface := range ifaces {
		if i > 0 {
			b.WriteString(" & ")
		}
		b.WriteString(iface.Name)
	}
}

func renderUnion(b *strings.Builder, typ *Union) {
	renderDescription(b, typ.Description)
	b.WriteString("union ")
	b.WriteString(typ.Name)
	b.WriteString(" = ")
	for i, member := range typ.Types {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(member.Name)
	}
	b.WriteString("\n\n")
}

func renderFields(b *strings.Builder, fields map[string]*Field) {
	for _, name := range sortedNames(fields) {
		field := fields[name]
		renderDescription(b, field.Description)
		b.WriteString("  ")
		b.WriteString(field.Name)
		if len(field.Args) > 0 {
			b.WriteString("(")
			for i, argName := range sortedNames(field.Args) {
				arg := field.Args[argName]
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(arg.Name)
				b.WriteString(": ")
				b.WriteString(arg.Type.String())
				if arg.HasDefault {
					b.WriteString(" = ")
					b.WriteString(renderValue(arg.Default))
				}
			}
			b.WriteString(")")
		}
		b.WriteString(": ")
		b.WriteString(field.Type.String())
		renderDeprecation(b, field.Deprecation)
		b.WriteString("\n")
	}
}

func renderDeprecation(b *strings.Builder, reason string) {
	if reason == "" {
		return
	}
	b.WriteString(" @deprecated(reason: ")
	b.WriteString(strconv.Quote(reason))
	b.WriteString(")")
}

// renderValue renders a GraphQL value literal for defaults.
func renderValue(value any) string {
	if value == nil {
		return "null"
	}
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = renderValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + renderValue(v[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
