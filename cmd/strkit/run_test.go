package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/strkit/pkg/config"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunParam(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		code, out, _ := runCLI(t, "param", "https://x/page?param1=value1&param2=value2", "param1")

		require.Equal(t, exitOK, code)
		var res valueResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, valueResult{Value: "value1", Found: true}, res)
	})

	t.Run("not found", func(t *testing.T) {
		code, out, _ := runCLI(t, "param", "https://x/page", "param1")

		assert.Equal(t, exitNotFound, code)
		assert.Contains(t, out, `"found": false`)
	})

	t.Run("wrong arity", func(t *testing.T) {
		code, _, errOut := runCLI(t, "param", "https://x/page")

		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "usage: strkit param <url> <name>")
	})
}

func TestRunParamsYAML(t *testing.T) {
	code, out, _ := runCLI(t, "-o", "yaml", "params", "https://x/?b=2&a=1")

	require.Equal(t, exitOK, code)
	var res paramsResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, res.Parameters)
	assert.Equal(t, []string{"b", "a"}, res.Keys)
	assert.True(t, res.Found)
}

func TestRunTemplate(t *testing.T) {
	code, out, _ := runCLI(t, "template", "{test} blah {bar}", "3", "", "5")

	require.Equal(t, exitOK, code)
	assert.Contains(t, out, `"result": "3 blah 5"`)
}

func TestRunID(t *testing.T) {
	code, out, _ := runCLI(t, "id", "a", "", "b")

	require.Equal(t, exitOK, code)
	assert.Contains(t, out, `"result": "a:b"`)
}

func TestRunURLs(t *testing.T) {
	code, out, _ := runCLI(t, "urls", "see https://example.com")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "https://example.com")

	code, _, _ = runCLI(t, "urls", "nothing here")
	assert.Equal(t, exitNotFound, code)
}

func TestRunDomain(t *testing.T) {
	code, out, _ := runCLI(t, "domain", "user@Example.com")

	require.Equal(t, exitOK, code)
	assert.Contains(t, out, `"value": "example.com"`)
}

func TestRunB64JSON(t *testing.T) {
	t.Run("decodes", func(t *testing.T) {
		data := base64.StdEncoding.EncodeToString([]byte(`{"a":1}`))
		code, out, _ := runCLI(t, "b64json", data)

		require.Equal(t, exitOK, code)
		var res map[string]map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, float64(1), res["payload"]["a"])
	})

	t.Run("invalid input", func(t *testing.T) {
		code, out, errOut := runCLI(t, "b64json", "***")

		assert.Equal(t, exitError, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "command failed")
	})
}

func TestRunUsage(t *testing.T) {
	t.Run("no command", func(t *testing.T) {
		code, _, errOut := runCLI(t)

		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "usage: strkit")
	})

	t.Run("unknown command", func(t *testing.T) {
		code, _, errOut := runCLI(t, "nope")

		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, `unknown command "nope"`)
	})

	t.Run("unknown output format", func(t *testing.T) {
		code, _, errOut := runCLI(t, "-o", "xml", "id", "a")

		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "unknown output format")
	})

	t.Run("help", func(t *testing.T) {
		code, _, errOut := runCLI(t, "-h")

		assert.Equal(t, exitOK, code)
		assert.Contains(t, errOut, "template <template> [values...]")
	})
}

func TestRunServe(t *testing.T) {
	config.Reset()
	t.Setenv("STRKIT_HTTP_ADDR", "127.0.0.1:0")
	t.Cleanup(config.Reset)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"serve"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), "http server started")
}

func TestRunConfigFromEnv(t *testing.T) {
	config.Reset()
	t.Setenv("STRKIT_OUTPUT", "  ")
	t.Setenv("STRKIT_ENV", "development")
	t.Cleanup(config.Reset)

	code, out, errOut := runCLI(t, "domain", "Jane@Example.COM")

	require.Equal(t, exitOK, code)
	var res valueResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, valueResult{Value: "example.com", Found: true}, res)
	assert.Contains(t, errOut, "command finished")
	assert.Equal(t, 1, strings.Count(errOut, "env=development"))
}
