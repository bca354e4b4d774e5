package clubapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// SDKClient is a client for the ITBS club-management backend.
// It provides the unauthenticated login operations and creates authenticated
// Sessions for everything else.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Limiter throttles outgoing requests client-side so a busy terminal
	// session cannot hammer the backend. Nil disables throttling.
	Limiter *rate.Limiter
}

// NewSDKClient creates a client for the backend at baseURL with a default
// timeout and a lenient request limiter.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Every(time.Minute/100), 20),
	}
}

// Login performs the password login. When the account has two-factor
// authentication enabled the backend answers 409 and this returns a
// *MFARequiredError; complete with LoginTOTP.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.postJSON(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginTOTP completes an MFA-challenged login with a one-time code.
func (c *SDKClient) LoginTOTP(ctx context.Context, mfaToken, code string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.postJSON(ctx, "/auth/login/totp", TOTPLoginRequest{MFAToken: mfaToken, Code: code}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSession creates an authenticated session from an existing bearer token,
// e.g. one restored from the local state store. The expiry is the client's
// local view only; the backend remains authoritative and may still reject
// the token.
func (c *SDKClient) NewSession(token string, expiresAt time.Time) *Session {
	return &Session{
		client:    c,
		token:     token,
		expiresAt: expiresAt,
	}
}
