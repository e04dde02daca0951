package infrastructure

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jineuihong-coder/iso-findings/internal/config"
)

func TestInitializeLogger_PreservesFirstError(t *testing.T) {
	// A regular file where a directory is needed makes openLogFile fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	bad := config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: filepath.Join(blocker, "app.log"),
	}

	logger, err1 := InitializeLogger(bad)
	require.Error(t, err1)
	assert.Nil(t, logger)
	assert.Contains(t, err1.Error(), "open log file")

	// Later calls report the original cause, not a synthesized message.
	_, err2 := InitializeLogger(config.LoggingConfig{Format: "json", Output: "stdout"})
	require.Error(t, err2)
	assert.Equal(t, err1, err2)
}

func TestTraceHandler_InjectsTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&traceHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	logger.InfoContext(WithTraceID(context.Background(), "trace-123"), "with trace")
	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)

	buf.Reset()
	logger.Info("without trace")
	assert.NotContains(t, buf.String(), "trace_id")
}
