package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"strings"
)

var (
	// ErrAuthExpired is returned for any 401. The caller must drop the session.
	ErrAuthExpired = errors.New("authentication failed, token may be invalid or expired")
	// ErrForbidden is returned for any 403.
	ErrForbidden = errors.New("you don't have permission to perform this action")
)

// NetworkError wraps a transport failure. It is retryable.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is any other non-2xx answer. Message is the backend's own text when
// one could be extracted.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// IsJSON reports whether a Content-Type header declares a JSON body.
func IsJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(strings.ToLower(contentType), "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// ExtractMessage picks the most specific message from an error body:
// error, then detail, then the serialized errors or non_field_errors, then a
// generic "Server error (status)".
func ExtractMessage(status int, contentType string, body []byte) string {
	generic := fmt.Sprintf("Server error (%d)", status)
	if !IsJSON(contentType) || len(body) == 0 {
		return generic
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return generic
	}
	for _, key := range []string{"error", "detail"} {
		if msg := textValue(fields[key]); msg != "" {
			return msg
		}
	}
	for _, key := range []string{"errors", "non_field_errors"} {
		if raw, ok := fields[key]; ok && !isEmptyJSON(raw) {
			return compactJSON(raw)
		}
	}
	return generic
}

// StatusError converts a non-2xx response into the error taxonomy.
func StatusError(status int, contentType string, body []byte) error {
	switch status {
	case 401:
		return ErrAuthExpired
	case 403:
		return ErrForbidden
	default:
		return &ServerError{Status: status, Message: ExtractMessage(status, contentType, body)}
	}
}

func textValue(raw json.RawMessage) string {
	if isEmptyJSON(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return compactJSON(raw)
}

func isEmptyJSON(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", `""`, "[]", "{}":
		return true
	}
	return false
}

func compactJSON(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return string(raw)
	}
	return string(b)
}
