package strutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strkit/pkg/strutil"
)

func TestCombinedID(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected string
	}{
		{name: "no keys", keys: nil, expected: ""},
		{name: "only empty keys", keys: []string{"", ""}, expected: ""},
		{name: "single key", keys: []string{"tenant"}, expected: "tenant"},
		{name: "single key among empties", keys: []string{"", "tenant", ""}, expected: "tenant"},
		{name: "joins in order", keys: []string{"a", "b", "c"}, expected: "a:b:c"},
		{name: "drops empty entries", keys: []string{"a", "", "c"}, expected: "a:c"},
		{name: "keeps whitespace entries", keys: []string{"a", " ", "c"}, expected: "a: :c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, strutil.CombinedID(tt.keys...))
		})
	}
}

func TestCombinedIDSplitsBack(t *testing.T) {
	inputs := [][]string{
		{"x"},
		{"", "x", "", "y"},
		{"tenant-1", "user-2", "session-3"},
		{" ", "", "\t"},
		{"", "", "", "last"},
	}

	for _, keys := range inputs {
		var want []string
		for _, k := range keys {
			if k != "" {
				want = append(want, k)
			}
		}

		got := strings.Split(strutil.CombinedID(keys...), strutil.IDSeparator)
		assert.Equal(t, want, got, "keys %q", keys)
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, strutil.IsBlank(""))
	assert.True(t, strutil.IsBlank(" \t\n"))
	assert.False(t, strutil.IsBlank(" x "))
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, "b", strutil.FirstNonBlank("", "  ", "b", "c"))
	assert.Equal(t, "", strutil.FirstNonBlank())
	assert.Equal(t, "", strutil.FirstNonBlank(" "))
}
