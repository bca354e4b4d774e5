package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/itbsclubs/clubdesk/pkg/idx"
)

// Transport is an http.RoundTripper that logs outgoing requests and stamps
// each one with an X-Request-ID for correlation with backend logs. The ID
// and logger come from the request context when the caller seeded them
// (WithRequestID, WithContext); otherwise both fall back to per-request
// values.
type Transport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// NewTransport wraps base with request logging. A nil base falls back to
// http.DefaultTransport.
func NewTransport(logger *slog.Logger, base http.RoundTripper) *Transport {
	return &Transport{Base: base, Logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	reqID := req.Header.Get("X-Request-ID")
	if reqID == "" {
		if reqID = RequestIDFrom(req.Context()); reqID == "" {
			reqID = idx.New().String()
		}
		// Clone before mutating; RoundTrippers must not modify the request
		req = req.Clone(req.Context())
		req.Header.Set("X-Request-ID", reqID)
	}

	// A context seeded via WithRequestID already tagged its logger with
	// this ID; only tag IDs minted here.
	logger := FromContextOr(req.Context(), t.Logger)
	if RequestIDFrom(req.Context()) != reqID {
		logger = logger.With("req_id", reqID)
	}
	logger = logger.With("method", req.Method, "path", req.URL.Path)

	start := time.Now()
	resp, err := base.RoundTrip(req)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		logger.Warn("http_request_failed", "duration_ms", duration, "error", err)
		return nil, err
	}

	logger.Debug("http_request",
		"status", resp.StatusCode,
		"duration_ms", duration,
	)
	return resp, nil
}
