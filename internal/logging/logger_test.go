package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithCustomWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx, err := New(context.Background(), nil, Config{Writer: &buf, Level: InfoLevel})
	require.NoError(t, err)

	Get(ctx).Info().Str("file", "report.pdf").Msg("classified")

	output := buf.String()
	assert.Contains(t, output, `"message":"classified"`)
	assert.Contains(t, output, `"file":"report.pdf"`)
	assert.Contains(t, output, `"time"`)
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx, err := New(context.Background(), nil, Config{Writer: &buf, Level: WarnLevel})
	require.NoError(t, err)

	Get(ctx).Info().Msg("too quiet")
	assert.Empty(t, buf.String(), "info should be filtered at warn level")

	Get(ctx).Warn().Msg("loud enough")
	assert.Contains(t, buf.String(), "loud enough")
}

func TestNewRequiresWriterOrFilesystem(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), nil, Config{})
	require.Error(t, err)
}

func TestGetWithoutLoggerIsSafe(t *testing.T) {
	t.Parallel()

	log := Get(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("no-op on a bare context")
}
