package testutils

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellfn/internal/logging"
	"github.com/aretw0/cellfn/pkg/functions"
	"github.com/aretw0/cellfn/pkg/registry"
)

// NewRegistry returns the built-in registry with a silent logger. Later
// options win, so a test may still pass its own logger.
// It fails the test immediately on error.
func NewRegistry(t *testing.T, opts ...registry.Option) *registry.Registry {
	t.Helper()

	opts = append([]registry.Option{registry.WithLogger(logging.NewNop())}, opts...)
	reg, err := functions.NewRegistry(opts...)
	require.NoError(t, err, "Failed to build function registry")
	return reg
}

// NewLogBuffer returns a debug-level text logger writing into the returned buffer.
func NewLogBuffer() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.New(slog.LevelDebug, "text", &buf), &buf
}
