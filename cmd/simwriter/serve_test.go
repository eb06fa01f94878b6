package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServeCommandErrors(t *testing.T) {
	input := writeInput(t, sampleText)

	_, _, err := runApp(t, "serve", input)
	require.ErrorContains(t, err, "expected 2 arguments")

	_, _, err = runApp(t, "serve", "x", input)
	require.ErrorContains(t, err, "invalid order")

	_, _, err = runApp(t, "serve", "2", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorContains(t, err, "failed to open input")

	_, _, err = runApp(t, "--max-length", "0", "serve", "2", input)
	require.ErrorContains(t, err, "invalid max-length 0")

	_, _, err = runApp(t, "serve", "--addr", "127.0.0.1:-1", "2", input)
	require.ErrorContains(t, err, "server failed")
}

func TestServeCommandStopsOnCancel(t *testing.T) {
	input := writeInput(t, sampleText)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type result struct {
		stderr string
		err    error
	}
	done := make(chan result, 1)
	go func() {
		_, stderr, err := runAppContext(ctx, t, "serve", "--addr", "127.0.0.1:0", "2", input)
		done <- result{stderr, err}
	}()

	// Give the listener a moment to come up before asking it to stop.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case res := <-done:
		require.NoError(t, res.err)
		require.Contains(t, res.stderr, "Server stopped.")
	case <-time.After(15 * time.Second):
		t.Fatal("serve did not return after its context was cancelled")
	}
}
