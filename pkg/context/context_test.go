package context

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, defaultLogger, Logger(ctx))

	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)
	ctx = WithLogger(ctx, logger)
	require.NoError(t, Logger(ctx).Log("msg", "hello"))
	assert.Equal(t, "msg=hello\n", buf.String())
}

func TestOutput(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, os.Stdout, Output(ctx))

	var buf bytes.Buffer
	ctx = WithOutput(ctx, &buf)
	assert.Same(t, &buf, Output(ctx))
}
