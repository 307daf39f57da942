package b64json_test

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/b64json"
)

type cursor struct {
	ID    int    `json:"id"`
	Order string `json:"order"`
}

func encodeRaw(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestDecode(t *testing.T) {
	t.Run("decodes object", func(t *testing.T) {
		c, err := b64json.Decode[cursor](encodeRaw(`{"id":42,"order":"desc"}`))

		require.NoError(t, err)
		assert.Equal(t, cursor{ID: 42, Order: "desc"}, c)
	})

	t.Run("decodes into a map", func(t *testing.T) {
		m, err := b64json.Decode[map[string]any](encodeRaw(`{"a":"b"}`))

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "b"}, m)
	})

	t.Run("json null yields zero value", func(t *testing.T) {
		c, err := b64json.Decode[*cursor](encodeRaw(`null`))

		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("blank input", func(t *testing.T) {
		for _, s := range []string{"", "  "} {
			_, err := b64json.Decode[cursor](s)
			assert.ErrorIs(t, err, b64json.ErrInvalidArgument)
		}
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := b64json.Decode[cursor]("not base64!")

		assert.ErrorIs(t, err, b64json.ErrInvalidBase64)
	})

	t.Run("invalid json keeps the decoder error", func(t *testing.T) {
		_, err := b64json.Decode[cursor](encodeRaw(`{"id":"x"}`))

		require.ErrorIs(t, err, b64json.ErrInvalidJSON)
		var typeErr *json.UnmarshalTypeError
		assert.True(t, errors.As(err, &typeErr))
	})

	t.Run("truncated json", func(t *testing.T) {
		_, err := b64json.Decode[cursor](encodeRaw(`{"id":`))

		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})
}

func TestEncodeRoundTrip(t *testing.T) {
	in := cursor{ID: 7, Order: "asc"}

	encoded, err := b64json.Encode(in)
	require.NoError(t, err)

	out, err := b64json.Decode[cursor](encoded)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeUnsupportedValue(t *testing.T) {
	_, err := b64json.Encode(map[string]any{"ch": make(chan int)})

	assert.Error(t, err)
}
