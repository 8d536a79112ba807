// Package record turns validated field values into the canonical immutable
// Record: a title, a rendered multi-section description, and the flat field
// mapping persistence sinks consume.
package record

// Field is one resolved entry of a Record, in schema order.
type Field struct {
	Key   string
	Label string
	Value string
}

// Record is the fully rendered output of one form submission. It is created
// once per successful submission and never updated in place; sinks copy it
// into their own target representation.
type Record struct {
	Title       string
	Description string
	Fields      []Field
}

// Lookup returns the value for a field key.
func (r Record) Lookup(key string) (string, bool) {
	for _, field := range r.Fields {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// Value returns the value for key, or "" when absent.
func (r Record) Value(key string) string {
	value, _ := r.Lookup(key)
	return value
}
