package clubapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ============================================================================
// APIError - typed backend error
// ============================================================================

// APIError represents a non-2xx response from the club platform backend.
// The backend emits Spring-style error bodies ({"message": ...}, sometimes
// with an "error" code); anything unparseable degrades to the status text.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`

	// Code is the backend error code when one was provided
	Code string `json:"error,omitempty"`

	// Message is the human-readable message from the backend
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("clubapi: %s (%d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("clubapi: %d: %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether err is a backend 401 or 403. Callers must
// treat these the same as a missing credential: force logout and redirect,
// never retry silently.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized ||
		apiErr.StatusCode == http.StatusForbidden
}

// ============================================================================
// MFARequiredError
// ============================================================================

// MFARequiredError is returned from Login when the account has two-factor
// authentication enabled. Complete the login with LoginTOTP using the
// challenge token and a one-time code.
type MFARequiredError struct {
	// MFAToken is the short-lived challenge token to present with the code
	MFAToken string `json:"mfa_token"`

	// Methods lists the available second factors (e.g. ["totp"])
	Methods []string `json:"mfa_methods"`
}

// Error implements the error interface.
func (e *MFARequiredError) Error() string {
	return fmt.Sprintf("clubapi: MFA required: methods=%v", e.Methods)
}

// ============================================================================
// Error parsing
// ============================================================================

// parseErrorResponse turns a non-2xx response body into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	// MFA challenge (409 Conflict)
	if resp.StatusCode == http.StatusConflict {
		var mfaResp struct {
			Error      string   `json:"error"`
			MFAToken   string   `json:"mfa_token"`
			MFAMethods []string `json:"mfa_methods"`
		}
		if err := json.Unmarshal(body, &mfaResp); err == nil && mfaResp.MFAToken != "" {
			return &MFARequiredError{
				MFAToken: mfaResp.MFAToken,
				Methods:  mfaResp.MFAMethods,
			}
		}
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
