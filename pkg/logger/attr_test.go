package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	assert.Len(t, attr.Value.Group(), 2)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestAttrs(t *testing.T) {
	assert.True(t, logger.RequestID("abc").Equal(slog.String("request_id", "abc")))
	assert.True(t, logger.Operation("query.parameter").Equal(slog.String("operation", "query.parameter")))
	assert.True(t, logger.Method("GET").Equal(slog.String("method", "GET")))
	assert.True(t, logger.Path("/x").Equal(slog.String("path", "/x")))
	assert.True(t, logger.Status(200).Equal(slog.Int("status", 200)))
	assert.True(t, logger.Duration(time.Second).Equal(slog.Duration("duration", time.Second)))
	assert.True(t, logger.Component("api").Equal(slog.String("component", "api")))
}
