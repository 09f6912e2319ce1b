package logutils

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "", want: zerolog.InfoLevel},
		{in: "debug", want: zerolog.DebugLevel},
		{in: " WARN ", want: zerolog.WarnLevel},
		{in: "Error", want: zerolog.ErrorLevel},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var out []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	return out
}

func TestNew_appends_json_to_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hrms.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", path)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		logger.Debug().Msg("filtered")
		closer()
	}

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0]["message"])
	assert.Equal(t, "second", lines[1]["message"])
	assert.Contains(t, lines[0], "time")
	assert.NotContains(t, lines[0], "caller")
}

func TestNew_debug_records_caller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hrms.log")

	logger, closer, err := New("debug", path)
	require.NoError(t, err)
	logger.Debug().Msg("here")
	closer()

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0]["caller"], "logger_test.go")
}

func TestNew_invalid_level(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	require.NotNil(t, closer)
	closer()
}
