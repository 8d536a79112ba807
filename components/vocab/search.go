package vocab

import "strings"

// Filter returns the options containing query (case-insensitive), preserving
// list order. An empty query returns the full list. Meant for prompt UIs
// narrowing long lists such as the generated time slots.
func Filter(options []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return clone(options)
	}

	q := strings.ToLower(query)
	out := make([]string, 0, len(options))
	for _, option := range options {
		if strings.Contains(strings.ToLower(option), q) {
			out = append(out, option)
		}
	}
	return out
}
