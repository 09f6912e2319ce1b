package iojson

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_indents(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, map[string]int{"total": 3}))
	assert.Equal(t, "{\n  \"total\": 3\n}\n", out.String())
}

func TestWrite_keeps_html_characters(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, map[string]string{"name": "R&D <ops>"}))
	assert.Contains(t, out.String(), "R&D <ops>")
}

func TestWrite_unsupported_type(t *testing.T) {
	var out bytes.Buffer
	err := Write(&out, map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode map[string]interface {}")
}

func TestWriteLines_one_record_per_line(t *testing.T) {
	var out bytes.Buffer
	items := []map[string]string{{"level": "success"}, {"level": "error"}}
	require.NoError(t, WriteLines(&out, items))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	for i, line := range lines {
		var v map[string]string
		require.NoError(t, json.Unmarshal([]byte(line), &v))
		assert.Equal(t, items[i], v)
	}
}

func TestWriteLines_empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteLines[int](&out, nil))
	assert.Empty(t, out.String())
}

func TestWriteLines_reports_failing_record(t *testing.T) {
	var out bytes.Buffer
	err := WriteLines(&out, []any{1, make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Equal(t, "1\n", out.String())
}
