package slogx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextLogger(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := WithContext(context.Background(), logger)
		require.Same(t, logger, FromContext(ctx))
		require.Same(t, logger, FromContextOr(ctx, nil))
	})

	t.Run("unseeded context falls back", func(t *testing.T) {
		fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
		require.Same(t, slog.Default(), FromContext(context.Background()))
		require.Same(t, fallback, FromContextOr(context.Background(), fallback))
	})
}

func TestRequestID(t *testing.T) {
	t.Run("stored and retrievable", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "op-123")
		require.Equal(t, "op-123", RequestIDFrom(ctx))
	})

	t.Run("absent yields empty", func(t *testing.T) {
		require.Empty(t, RequestIDFrom(context.Background()))
	})
}

func TestTransportRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("reuses the operation ID seeded in the context", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("X-Request-ID")
		}))
		defer srv.Close()

		client := &http.Client{Transport: NewTransport(logger, nil)}
		ctx := WithRequestID(WithContext(context.Background(), logger), "op-456")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		require.Equal(t, "op-456", got)
	})

	t.Run("mints an ID when the context carries none", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("X-Request-ID")
		}))
		defer srv.Close()

		client := &http.Client{Transport: NewTransport(logger, nil)}
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		require.NotEmpty(t, got)
	})
}
