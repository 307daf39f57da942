package b64json

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

// Decode base64 decodes s with the standard padded alphabet and unmarshals the
// JSON payload into a T. A JSON null yields the zero value of T.
func Decode[T any](s string) (T, error) {
	var payload T
	s = strings.TrimSpace(s)
	if s == "" {
		return payload, ErrInvalidArgument
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return payload, errors.Join(ErrInvalidBase64, err)
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		var zero T
		return zero, errors.Join(ErrInvalidJSON, err)
	}

	return payload, nil
}

// Encode marshals payload to JSON and base64 encodes it with the standard
// padded alphabet.
func Encode[T any](payload T) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
