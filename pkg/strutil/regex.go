package strutil

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// http(s)/ftp URLs and bare www. hosts; trailing punctuation is excluded
	urlRegex = regexp.MustCompile(`(?i)\b(?:(?:https?|ftp)://|www\.)[-a-z0-9+&@#/%?=~_|!:,.;]*[-a-z0-9+&@#/%=~_|]`)
)
