package graphbuild

import "sort"

// stripRefName removes the wrapping markers from a reference, returning the
// bare type name. Trailing "!" strips before "[...]", and each iteration
// strips exactly one bracket pair.
func stripRefName(name string) string {
	for {
		if n := len(name); n > 0 && name[n-1] == '!' {
			name = name[:n-1]
		} else if n := len(name); n > 1 && name[0] == '[' {
			name = name[1 : n-1]
		} else {
			return name
		}
	}
}

// resolveTypeExpr replaces a Ref with the defined type from the type map,
// re-applying any wrapping markers around it. Non-Ref types and names with
// no definition are returned unchanged (resolution is idempotent; the
// undefined names are reported together at compile time).
func resolveTypeExpr(t Type, types map[string]NamedType) Type {
	ref, ok := t.(Ref)
	if !ok {
		return t
	}

	name := string(ref)
	var wraps []byte
	for {
		if n := len(name); n > 0 && name[n-1] == '!' {
			name = name[:n-1]
			wraps = append(wraps, '!')
		} else if n := len(name); n > 1 && name[0] == '[' {
			name = name[1 : n-1]
			wraps = append(wraps, '[')
		} else {
			break
		}
	}

	var out Type
	if nt := types[name]; nt != nil {
		out = nt
	} else {
		out = Ref(name)
	}

	// Last stripped marker applies innermost.
	for i := len(wraps) - 1; i >= 0; i-- {
		if wraps[i] == '!' {
			out = NewNonNull(out)
		} else {
			out = NewList(out)
		}
	}
	return out
}

// childNodes returns every node the given node references directly, without
// descending further; the schema's breadth-first traversal handles descent.
func childNodes(n any) []any {
	switch v := n.(type) {
	case *Object:
		out := fieldChildren(v.Fields)
		for _, iface := range v.Interfaces {
			out = append(out, iface)
		}
		return out
	case *Interface:
		out := fieldChildren(v.Fields)
		for _, iface := range v.Interfaces {
			out = append(out, iface)
		}
		return out
	case *Union:
		out := make([]any, len(v.Types))
		for i, t := range v.Types {
			out[i] = t
		}
		return out
	case *InputObject:
		out := make([]any, 0, len(v.Fields))
		for _, name := range sortedKeys(v.Fields) {
			out = append(out, v.Fields[name])
		}
		return out
	case *Field:
		out := []any{v.Type}
		for _, name := range sortedKeys(v.Args) {
			out = append(out, v.Args[name])
		}
		return out
	case *Argument:
		return []any{v.Type}
	case *InputField:
		return []any{v.Type}
	case *NonNull:
		return []any{v.OfType}
	case *List:
		return []any{v.OfType}
	case *Enum, *Scalar, Ref:
		return nil
	}
	return nil
}

// applyTypes rewrites any Ref held by the node to the matching entry in the
// type map. Each node only rewrites its own direct references; child nodes
// are visited separately by the schema traversal.
func applyTypes(n any, types map[string]NamedType) {
	switch v := n.(type) {
	case *Object:
		for i := range v.Interfaces {
			v.Interfaces[i] = resolveTypeExpr(v.Interfaces[i], types)
		}
	case *Interface:
		for i := range v.Interfaces {
			v.Interfaces[i] = resolveTypeExpr(v.Interfaces[i], types)
		}
	case *Union:
		for i := range v.Types {
			v.Types[i] = resolveTypeExpr(v.Types[i], types)
		}
	case *Field:
		v.Type = resolveTypeExpr(v.Type, types)
	case *Argument:
		v.Type = resolveTypeExpr(v.Type, types)
	case *InputField:
		v.Type = resolveTypeExpr(v.Type, types)
	case *NonNull:
		v.OfType = resolveTypeExpr(v.OfType, types)
	case *List:
		v.OfType = resolveTypeExpr(v.OfType, types)
	}
}

func fieldChildren(fields map[string]*Field) []any {
	out := make([]any, 0, len(fields))
	for _, name := range sortedKeys(fields) {
		out = append(out, fields[name])
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
