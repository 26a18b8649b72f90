package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewJSONRequest builds a request with the body JSON-encoded and the
// content type set.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rdr)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t *testing.T, expected int) {
	t.Helper()
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d (body: %s)", r.Code, expected, r.Body.String())
	}
}

// Envelope decodes the response body into a generic envelope map.
func (r *ResponseRecorder) Envelope(t *testing.T) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(r.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v (body: %s)", err, r.Body.String())
	}
	return body
}

// AssertSuccess checks the envelope's success flag.
func (r *ResponseRecorder) AssertSuccess(t *testing.T, want bool) {
	t.Helper()
	body := r.Envelope(t)
	if body["success"] != want {
		t.Errorf("success = %v, want %v (body: %s)", body["success"], want, r.Body.String())
	}
}

// AssertMessage checks the envelope's message field.
func (r *ResponseRecorder) AssertMessage(t *testing.T, want string) {
	t.Helper()
	body := r.Envelope(t)
	if body["message"] != want {
		t.Errorf("message = %v, want %q", body["message"], want)
	}
}

// DecodeData unmarshals the envelope's data field into dst.
func (r *ResponseRecorder) DecodeData(t *testing.T, dst any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if env.Data == nil {
		t.Fatalf("response has no data field (body: %s)", r.Body.String())
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}
