package binder

import "errors"

// Common binding errors
var (
	ErrInvalidArgument = errors.New("query string is empty")
	ErrInvalidTarget   = errors.New("target must be a non-nil pointer to struct")
	ErrInvalidFormat   = errors.New("invalid query value")
	ErrUnsupportedType = errors.New("unsupported field type")
)
