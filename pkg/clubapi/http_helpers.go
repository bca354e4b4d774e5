package clubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// do performs an HTTP request, waiting on the client-side limiter first.
func (c *SDKClient) do(ctx context.Context, method, path string, body io.Reader, bearer string) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// postJSON performs an unauthenticated JSON POST (login endpoints).
func (c *SDKClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), "")
	if err != nil {
		return err
	}

	return decodeJSON(resp, out)
}

// getJSON performs an unauthenticated JSON GET (public endpoints).
func (c *SDKClient) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// jsonRequest performs an authenticated request with an optional JSON body,
// decoding a JSON response into out when out is non-nil.
func (s *Session) jsonRequest(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	resp, err := s.client.do(ctx, method, path, body, s.Token())
	if err != nil {
		return err
	}

	if out == nil {
		return drainOK(resp)
	}
	return decodeJSON(resp, out)
}

func (s *Session) getJSON(ctx context.Context, path string, out any) error {
	return s.jsonRequest(ctx, http.MethodGet, path, nil, out)
}

func (s *Session) postNoBody(ctx context.Context, path string, out any) error {
	return s.jsonRequest(ctx, http.MethodPost, path, nil, out)
}

// decodeJSON decodes a 2xx JSON response into target, or returns the typed
// error parsed from the body.
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp, bodyBytes)
	}

	if len(bodyBytes) == 0 || target == nil {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// drainOK consumes the body and returns a typed error on non-2xx status.
func drainOK(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
