package querystring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strkit/pkg/querystring"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain token is returned as is", input: "value1", expected: "value1"},
		{name: "plus becomes space", input: "hello+world", expected: "hello world"},
		{name: "percent escapes", input: "hello%20world%21", expected: "hello world!"},
		{name: "encoded plus stays plus", input: "a%2Bb", expected: "a+b"},
		{name: "utf-8 escapes", input: "caf%C3%A9", expected: "café"},
		{name: "malformed escape passes through", input: "100%", expected: "100%"},
		{name: "invalid hex passes through", input: "a%zzb+c", expected: "a%zzb+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, querystring.Decode(tt.input))
		})
	}
}
