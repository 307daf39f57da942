package querystring

import (
	"net/url"
	"strings"
)

// Decode resolves percent escapes and '+' in a single query token.
// Tokens without either character are returned as is.
// Malformed escapes leave the token unchanged.
func Decode(token string) string {
	if token == "" || !strings.ContainsAny(token, "%+") {
		return token
	}

	decoded, err := url.QueryUnescape(token)
	if err != nil {
		return token
	}
	return decoded
}
