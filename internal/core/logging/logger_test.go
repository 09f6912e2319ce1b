package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapGlobalLogger(t *testing.T, l zerolog.Logger) {
	t.Helper()
	prev := log.Logger
	log.Logger = l
	t.Cleanup(func() { log.Logger = prev })
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	swapGlobalLogger(t, zerolog.New(&buf))

	l := Component("api")
	l.Info().Msg("request sent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "api", entry["cmp"])
	assert.Equal(t, "request sent", entry["message"])
}

func TestSetup_writes_to_file_with_context(t *testing.T) {
	swapGlobalLogger(t, log.Logger)
	file := filepath.Join(t.TempDir(), "logs", "hrms.log")

	closer, err := Setup("debug", file)
	require.NoError(t, err)

	log.Info().Ctx(WithRequestID(context.Background(), "req-9")).Msg("hello")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "hello", entry["message"])
}

func TestSetup_invalid_level(t *testing.T) {
	swapGlobalLogger(t, log.Logger)

	_, err := Setup("loud", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setup logger")
}
