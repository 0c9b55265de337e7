package utils

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosthogClientWrapper_DisabledWithoutKey(t *testing.T) {
	w := InitializePosthogClient("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() {
		w.Enqueue("42", "api_v1_dashboard", map[string]any{"method": "GET"})
		w.Close()
	})
}
