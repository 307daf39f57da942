// Package b64json converts between Go values and base64 encoded JSON, the
// shape commonly used for opaque cursors, state parameters and cookies.
//
//	cursor, _ := b64json.Encode(Cursor{ID: 42})
//	c, err := b64json.Decode[Cursor](cursor)
//
// Decode distinguishes three failures: blank input (ErrInvalidArgument),
// bad base64 (ErrInvalidBase64) and bad JSON (ErrInvalidJSON). The underlying
// encoding/json error stays reachable through errors.As.
package b64json
