package model

import "sort"

// Reserved schema keys that identify the document rather than a field.
// They are excluded from merge and assessment.
const (
	DocTypeIDKey = "doc_type_id"
	PageCountKey = "page_count"
)

// Schema maps field names to their default empty shape: "" for scalar fields,
// an empty list for multi-valued fields. It defines the field universe for
// one document type and is treated as read-only input.
type Schema map[string]any

// ReservedKey reports whether a key carries document metadata rather than an
// extractable field.
func ReservedKey(key string) bool {
	return key == DocTypeIDKey || key == PageCountKey
}

// FieldNames returns the non-reserved field names in sorted order.
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		if ReservedKey(k) {
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// EmptyValue returns the default empty shape for the given field: an empty
// list when the schema declares the field list-valued, "" otherwise.
func (s Schema) EmptyValue(name string) any {
	if _, isList := s[name].([]any); isList {
		return []any{}
	}
	return ""
}

// Subset returns a new Schema restricted to the given field names, preserving
// each field's declared shape. Names absent from the schema are ignored.
func (s Schema) Subset(names []string) Schema {
	sub := make(Schema, len(names))
	for _, name := range names {
		if v, ok := s[name]; ok {
			sub[name] = v
		}
	}
	return sub
}
