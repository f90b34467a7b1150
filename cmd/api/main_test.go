package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAPI(ctx context.Context, t *testing.T, args ...string) error {
	t.Helper()
	for _, k := range []string{"PORT", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME"} {
		t.Setenv(k, "")
	}
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func TestAPI_ShutsDownWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := executeAPI(ctx, t, "--addr", "127.0.0.1:0")
	assert.NoError(t, err)
}

func TestAPI_InvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	err := executeAPI(context.Background(), t, "--config", path)
	assert.Error(t, err)
}

func TestAPI_RejectsArgs(t *testing.T) {
	err := executeAPI(context.Background(), t, "extra")
	assert.Error(t, err)
}
