package strtemplate

import (
	"fmt"
	"reflect"
	"strings"
)

// Build replaces each {...} span in template with the next non-nil value,
// left to right. When values run out the remaining placeholders are kept as
// written. Values are rendered with fmt.Sprint; non-nil pointers are
// dereferenced first.
func Build(template string, values ...any) string {
	if len(values) == 0 || strings.IndexByte(template, '{') < 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	next := 0
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}

		closing := strings.IndexByte(rest[open+1:], '}')
		if closing < 0 {
			b.WriteString(rest)
			break
		}
		end := open + 1 + closing

		b.WriteString(rest[:open])

		for next < len(values) && isNil(values[next]) {
			next++
		}
		if next < len(values) {
			b.WriteString(stringify(values[next]))
			next++
		} else {
			b.WriteString(rest[open : end+1])
		}

		rest = rest[end+1:]
	}

	return b.String()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return fmt.Sprint(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}
