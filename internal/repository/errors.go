package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// AuthError covers rejected credentials, failed registration and a failed
// profile lookup. Message is safe to show to the user.
type AuthError struct {
	Op      string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *AuthError) Unwrap() error { return e.Err }

// NetworkError is a transport failure or a non-2xx response on a post call.
// StatusCode is 0 when the request never got a response.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ErrorResponse is the backend's error body.
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// readDetail extracts "detail" from an error body. String details are
// returned as-is, structured ones as compact JSON, and "" when absent.
func readDetail(resp *http.Response) string {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return ""
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || len(errResp.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(errResp.Detail, &s); err == nil {
		return s
	}
	if bytes.Equal(errResp.Detail, []byte("null")) {
		return ""
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, errResp.Detail); err != nil {
		return string(errResp.Detail)
	}
	return compact.String()
}
