package textutil

import "strings"

// Truncate shortens a string to maxLen, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// ConstantName turns an offset name into an upper-case identifier. Spaces
// always become underscores; any extra separators given are replaced too.
func ConstantName(name string, separators ...string) string {
	out := strings.ReplaceAll(strings.ToUpper(name), " ", "_")
	for _, sep := range separators {
		out = strings.ReplaceAll(out, sep, "_")
	}
	return out
}
