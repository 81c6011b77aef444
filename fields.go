package onecode

import (
	"reflect"
	"strings"
)

// field describes how a struct field is mapped to a dictionary entry.
type field struct {
	name      string
	index     []int
	omitEmpty bool
}

// structFields returns the encodable fields of t, in declaration order.
//
// By default, each struct field name is lowercased.
// The name can be customized with the "onecode" key of the struct field's tag,
// and "-" skips the field, while "-," names it "-". The "omitempty" option skips zero values while encoding.
// Fields of embedded structs are promoted, unless the embedded field is tagged with a name.
// When several fields end up with the same name, the least nested one wins.
func structFields(t reflect.Type) []field {
	fields := collectFields(t, nil)

	depth := make(map[string]int, len(fields))
	for _, f := range fields {
		if d, ok := depth[f.name]; !ok || len(f.index) < d {
			depth[f.name] = len(f.index)
		}
	}

	// drop shadowed fields
	seen := make(map[string]bool, len(fields))
	kept := fields[:0]
	for _, f := range fields {
		if seen[f.name] || len(f.index) != depth[f.name] {
			continue
		}
		seen[f.name] = true
		kept = append(kept, f)
	}

	return kept
}

func collectFields(t reflect.Type, parent []int) []field {
	var fields []field

	l := t.NumField()
	for i := 0; i < l; i++ {
		sf := t.Field(i)

		name, opts, tagged := parseTag(sf)
		if tagged && name == "-" && opts == "" && !strings.HasSuffix(sf.Tag.Get("onecode"), ",") {
			continue
		}

		index := make([]int, len(parent)+1)
		copy(index, parent)
		index[len(parent)] = i

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && name == "" {
			fields = append(fields, collectFields(sf.Type, index)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}

		if name == "" {
			name = strings.ToLower(sf.Name)
		}

		fields = append(fields, field{
			name:      name,
			index:     index,
			omitEmpty: tagged && hasOption(opts, "omitempty"),
		})
	}

	return fields
}

func parseTag(sf reflect.StructField) (name, opts string, ok bool) {
	tag, ok := sf.Tag.Lookup("onecode")
	if !ok {
		return "", "", false
	}

	name, opts, _ = strings.Cut(tag, ",")
	return name, opts, true
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == option {
			return true
		}
	}

	return false
}

func fieldsByName(fields []field) map[string]*field {
	m := make(map[string]*field, len(fields))
	for i := range fields {
		m[fields[i].name] = &fields[i]
	}

	return m
}
