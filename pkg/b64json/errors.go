package b64json

import "errors"

var (
	ErrInvalidArgument = errors.New("base64 input is empty")
	ErrInvalidBase64   = errors.New("invalid base64 input")
	ErrInvalidJSON     = errors.New("invalid JSON payload")
)
