package schema

import "strings"

// MultiValueSeparator joins multi-select choices into a single flat value so
// records stay a flat string mapping.
const MultiValueSeparator = ", "

// Values is the raw field mapping handed from a collection layer to the
// validator: field key to resolved value. Enum sentinel substitution must
// already have happened by the time values reach validation.
type Values map[string]string

// Get returns the trimmed value for key, or "" when absent.
func (v Values) Get(key string) string {
	return strings.TrimSpace(v[key])
}

// Blank reports whether the value for key is empty or whitespace.
func (v Values) Blank(key string) bool {
	return v.Get(key) == ""
}

// List splits a multi-select value back into its individual choices.
func (v Values) List(key string) []string {
	raw := v.Get(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, MultiValueSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinMulti composes a multi-select value from individual choices, dropping
// blanks. The inverse of List.
func JoinMulti(choices []string) string {
	out := make([]string, 0, len(choices))
	for _, choice := range choices {
		if trimmed := strings.TrimSpace(choice); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, MultiValueSeparator)
}

// Clone returns a shallow copy so callers can mutate without aliasing.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}
