package strutil

import "strings"

// IDSeparator joins the parts of a combined identifier.
const IDSeparator = ":"

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FirstNonBlank returns the first argument that is not blank, or "".
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// CombinedID joins the non-empty keys with ":" in order.
// Whitespace-only keys are kept; only zero-length keys are dropped.
//
//	CombinedID("tenant", "", "user") // "tenant:user"
func CombinedID(keys ...string) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	}

	var b strings.Builder
	for _, key := range keys {
		if key == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(IDSeparator)
		}
		b.WriteString(key)
	}
	return b.String()
}
