package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/smartcup-service/internal/telemetry"
)

func TestWaitForShutdown(t *testing.T) {
	logger := telemetry.NewLoggerTo(io.Discard, slog.LevelInfo)

	t.Run("signal stops cleanly", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, waitForShutdown(ctx, make(chan error), logger))
	})

	t.Run("server failure is returned", func(t *testing.T) {
		listenErr := errors.New("HTTP server: listen tcp :8080: bind: address already in use")
		errCh := make(chan error, 1)
		errCh <- listenErr

		err := waitForShutdown(context.Background(), errCh, logger)
		assert.ErrorIs(t, err, listenErr)
	})
}
