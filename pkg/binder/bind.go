package binder

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/dmitrymomot/strkit/pkg/querystring"
)

// ParseQueryString returns a new T populated from queryString.
// See Bind for the binding rules.
//
// Example:
//
//	type Filter struct {
//	    Param1 string
//	    Param2 int
//	    Param3 bool
//	}
//
//	f, err := binder.ParseQueryString[Filter]("param1=value1")
//	// f == Filter{Param1: "value1"}, err == nil
func ParseQueryString[T any](queryString string) (T, error) {
	var model T
	if err := Bind(queryString, &model); err != nil {
		var zero T
		return zero, err
	}
	return model, nil
}

// Bind decodes queryString and assigns the values to the struct v points to.
//
// Keys match exported fields by name, or by the `query` tag when present,
// ignoring case. Only the first value of a key is used for scalar fields.
// Keys are applied in order of first appearance, so a field that several keys
// fold onto ("id" and "ID") takes the first of them.
func Bind(queryString string, v any) error {
	if strings.TrimSpace(queryString) == "" {
		return ErrInvalidArgument
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	raw := strings.TrimPrefix(queryString, "?")
	values, err := url.ParseQuery(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	fields := fieldsOf(rv.Type())
	bound := make(map[*field]struct{}, len(values))

	for _, key := range keysInOrder(raw, len(values)) {
		f, ok := fields.lookup(key)
		if !ok {
			continue
		}
		if _, done := bound[f]; done {
			continue
		}

		vals := nonEmpty(values[key])
		if len(vals) == 0 {
			continue
		}

		if err := setFieldValue(rv.FieldByIndex(f.index), f.typ, vals); err != nil {
			if errors.Is(err, ErrUnsupportedType) {
				return fmt.Errorf("field %s: %w", f.name, err)
			}
			return fmt.Errorf("%w: field %s: %v", ErrInvalidFormat, f.name, err)
		}
		bound[f] = struct{}{}
	}

	return nil
}

// keysInOrder returns the decoded keys of raw by first appearance.
func keysInOrder(raw string, n int) []string {
	keys := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	querystring.Each(raw, func(rawKey, _ string) bool {
		key := querystring.Decode(rawKey)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
		return true
	})
	return keys
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
