package strutil

import "strings"

// ExtractURLs returns every URL found in s, in order of appearance.
// The boolean is false only for blank input; text without URLs yields an
// empty, non-nil slice.
func ExtractURLs(s string) ([]string, bool) {
	if IsBlank(s) {
		return nil, false
	}

	urls := urlRegex.FindAllString(s, -1)
	if urls == nil {
		urls = []string{}
	}
	return urls, true
}

// DomainFromEmail returns the lowercased part after the last '@'.
// The boolean is false for blank input, input without '@' or an empty domain.
func DomainFromEmail(email string) (string, bool) {
	email = strings.TrimSpace(email)
	i := strings.LastIndexByte(email, '@')
	if i < 0 || i == len(email)-1 {
		return "", false
	}
	return strings.ToLower(email[i+1:]), true
}
