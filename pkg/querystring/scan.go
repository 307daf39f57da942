package querystring

import (
	"net/url"
	"strings"
)

// Each walks the '&' separated segments of a raw query and calls fn with the
// undecoded key and value of every non-empty segment, in order of appearance.
// A segment without '=' yields an empty value. Iteration stops when fn
// returns false.
//
// Key and value are substrings of query; nothing is allocated.
func Each(query string, fn func(key, value string) bool) {
	for query != "" {
		var segment string
		if i := strings.IndexByte(query, '&'); i >= 0 {
			segment, query = query[:i], query[i+1:]
		} else {
			segment, query = query, ""
		}

		if segment == "" {
			continue
		}

		key, value, _ := strings.Cut(segment, "=")
		if !fn(key, value) {
			return
		}
	}
}

// Parameter returns the decoded value of the first query parameter named
// name in rawURL. Names are compared exactly, before decoding.
// A bare key ("?flag") matches with an empty value.
//
// The boolean is false when either argument is empty, when rawURL has no
// query, or when no segment matches.
func Parameter(rawURL, name string) (string, bool) {
	if rawURL == "" || name == "" {
		return "", false
	}

	query, ok := rawQuery(rawURL)
	if !ok {
		return "", false
	}

	var (
		value string
		found bool
	)
	Each(query, func(key, raw string) bool {
		if key != name {
			return true
		}
		value, found = Decode(raw), true
		return false
	})

	return value, found
}

// Parameters returns every parameter of an absolute URL as a map of decoded
// keys to decoded values. The first occurrence of a key wins.
//
// The boolean is false when rawURL does not parse as an absolute URL, has no
// query, or yields no usable keys. It is never true together with an empty map.
func Parameters(rawURL string) (map[string]string, bool) {
	query, ok := absoluteQuery(rawURL)
	if !ok {
		return nil, false
	}

	params := make(map[string]string, strings.Count(query, "&")+1)
	Each(query, func(rawKey, rawValue string) bool {
		key := Decode(rawKey)
		if isBlank(key) {
			return true
		}
		if _, exists := params[key]; !exists {
			params[key] = Decode(rawValue)
		}
		return true
	})

	if len(params) == 0 {
		return nil, false
	}
	return params, true
}

// Keys returns the decoded parameter names of an absolute URL in order of
// first occurrence, using the same rules as Parameters.
// It returns nil when Parameters would report nothing.
func Keys(rawURL string) []string {
	query, ok := absoluteQuery(rawURL)
	if !ok {
		return nil
	}

	var keys []string
	seen := make(map[string]struct{}, strings.Count(query, "&")+1)
	Each(query, func(rawKey, _ string) bool {
		key := Decode(rawKey)
		if isBlank(key) {
			return true
		}
		if _, exists := seen[key]; !exists {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
		return true
	})

	return keys
}

// rawQuery returns the text between the first '?' and an optional '#'.
func rawQuery(rawURL string) (string, bool) {
	i := strings.IndexByte(rawURL, '?')
	if i < 0 || i == len(rawURL)-1 {
		return "", false
	}

	query := rawURL[i+1:]
	if j := strings.IndexByte(query, '#'); j >= 0 {
		query = query[:j]
	}
	return query, query != ""
}

func absoluteQuery(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.RawQuery == "" {
		return "", false
	}
	return u.RawQuery, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
