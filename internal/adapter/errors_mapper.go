package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Any other status wraps
// [ErrUnexpectedStatus]; 401, 404 and 500 additionally wrap their own
// sentinel.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrNotFound, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrInternalServerError, msg)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), msg)
	}
}

// errorMessage extracts a readable message from the server error shapes
// {"error":"text"} and {"error":{"message":"text"}}. Bodies of any other
// shape are returned trimmed.
func errorMessage(body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return strings.TrimSpace(string(body))
	}

	var text string
	if err := json.Unmarshal(envelope.Error, &text); err == nil {
		return text
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &nested); err == nil && nested.Message != "" {
		return nested.Message
	}

	return strings.TrimSpace(string(envelope.Error))
}
