package binder

import (
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// tagName is the struct tag that overrides a field's query name.
const tagName = "query"

type field struct {
	name  string
	index []int
	typ   reflect.Type
}

// typeFields maps folded query names to the fields of one struct type.
type typeFields struct {
	byName map[string]*field
}

// fieldCache holds *typeFields keyed by reflect.Type.
var fieldCache sync.Map

// fieldsOf returns the cached lookup table for a struct type, building it on
// first use. Concurrent builders may race; LoadOrStore keeps one result.
func fieldsOf(t reflect.Type) *typeFields {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(*typeFields)
	}

	actual, _ := fieldCache.LoadOrStore(t, buildFields(t))
	return actual.(*typeFields)
}

func buildFields(t reflect.Type) *typeFields {
	tf := &typeFields{byName: make(map[string]*field)}

	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous || crossesPointer(t, sf.Index) {
			continue
		}

		name, skip := parseFieldTag(sf)
		if skip {
			continue
		}

		key := fold(name)
		if _, exists := tf.byName[key]; exists {
			// First declared field wins.
			continue
		}
		tf.byName[key] = &field{name: sf.Name, index: sf.Index, typ: sf.Type}
	}

	return tf
}

func (tf *typeFields) lookup(key string) (*field, bool) {
	f, ok := tf.byName[fold(key)]
	return f, ok
}

// parseFieldTag returns the query name of a field and whether to skip it.
func parseFieldTag(sf reflect.StructField) (name string, skip bool) {
	tag := sf.Tag.Get(tagName)
	if tag == "" {
		return sf.Name, false
	}
	if tag == "-" {
		return "", true
	}

	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		return sf.Name, false
	}
	return name, false
}

// crossesPointer reports whether a promoted field is reached through an
// embedded pointer, which may be nil on a fresh value.
func crossesPointer(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		t = t.Field(i).Type
		if t.Kind() == reflect.Pointer {
			return true
		}
	}
	return false
}

// fold applies Unicode case folding. ASCII input, the common case for query
// keys, is lowered in place of folding and does not allocate when already
// lower case. A Caser is not safe for concurrent use, so the Unicode path
// builds its own.
func fold(s string) string {
	if isASCII(s) {
		return strings.ToLower(s)
	}
	return cases.Fold().String(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
