package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemeval/internal/logging"
)

func TestRunWritesTable(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates every board")
	}

	out := filepath.Join(t.TempDir(), "preflop_odds_gen.go")
	var logs bytes.Buffer
	cli := CLI{Output: out, Debug: true}

	logger := logging.SetupStructuredLogger(zerolog.SyncWriter(&logs), true)
	require.NoError(t, run(context.Background(), cli, logger))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := os.ReadFile("../../sdk/analysis/preflop_odds_gen.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(src))

	assert.Contains(t, logs.String(), `"boards":2598960`)
	assert.Contains(t, logs.String(), "wrote preflop table")
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cli := CLI{Workers: 2, Output: filepath.Join(t.TempDir(), "x.go")}
	var logs bytes.Buffer
	err := run(ctx, cli, logging.SetupLogger(&logs, false))
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, cli.Output)
}
