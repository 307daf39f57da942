// Package querystring extracts parameters from URL query strings without
// building intermediate collections.
//
// Two lookups are provided. Parameter scans for a single key and stops at the
// first match, which makes it cheap enough for hot paths such as middleware
// that only cares about one flag. Parameters extracts every key into a map and
// requires the input to be an absolute URL.
//
// # Decoding
//
// Values returned by Parameter, and both keys and values returned by
// Parameters, pass through Decode. Tokens without '%' or '+' are returned
// untouched. Otherwise form decoding applies: '+' becomes a space and %XX
// escapes are resolved. A token with a malformed escape is returned verbatim
// rather than failing the lookup.
//
// # Duplicates
//
// The first occurrence of a key wins in both lookups. Empty segments produced
// by "&&" are skipped, and Parameters never stores a key that is empty or
// whitespace only after decoding.
//
// # Usage
//
//	v, ok := querystring.Parameter("https://x/page?ref=mail&id=42", "id")
//	// v == "42", ok == true
//
//	params, ok := querystring.Parameters("https://x/page?a=1&b=hello+world")
//	// params == map[string]string{"a": "1", "b": "hello world"}
//
// Both functions report absence through the boolean result, never an error.
package querystring
