package joinbench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, Rows(), false))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "DATASET SIZE")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header, separator and one line per row
	require.Len(t, lines, 2+6)

	for _, tc := range []struct {
		line   int
		fields []string
	}{
		{line: 2, fields: []string{"1K", "20", "250", "0.08x", "CPU"}},
		{line: 5, fields: []string{"1M", "18,790", "2,196", "8.56x", "GPU"}},
		{line: 7, fields: []string{"40M", "1,438,730", "132,425", "10.86x", "GPU"}},
	} {
		for _, f := range tc.fields {
			assert.Contains(t, lines[tc.line], f)
		}
	}
}

func Test_WriteTable_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, Rows()[:1], true))
	assert.Contains(t, buf.String(), "\x1b[")
}

type failingWriter struct {
	err    error
	writes int
}

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, w.err
}

func Test_WriteTable_WriteError(t *testing.T) {
	errFull := errors.New("disk full")
	w := &failingWriter{err: errFull}
	err := WriteTable(w, Rows(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errFull)
	assert.ErrorContains(t, err, "write table")
	assert.Equal(t, 1, w.writes)
}
