package binder

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "param1", expected: "param1"},
		{input: "Page_Size", expected: "page_size"},
		{input: "GRÖSSE", expected: "grösse"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, fold(tt.input))
		})
	}
}

func TestLookupDoesNotAllocate(t *testing.T) {
	type model struct {
		Param1 string
	}
	tf := fieldsOf(reflect.TypeOf(model{}))

	allocs := testing.AllocsPerRun(100, func() {
		if _, ok := tf.lookup("param1"); !ok {
			t.Fatal("field not found")
		}
	})
	assert.Zero(t, allocs)
}
