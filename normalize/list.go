package normalize

import "strings"

// ParseCSVToArray splits comma-separated text into trimmed, non-empty elements.
// It never returns nil.
func ParseCSVToArray(text string) []string {
	out := []string{}
	for _, item := range strings.Split(text, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ArrayToCSV joins the non-empty elements with ", ".
func ArrayToCSV(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ", ")
}

// CleanList trims every element and drops the empty ones, keeping order.
func CleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
