// internal/app/system/httpjson/httpjson.go
//
// Package httpjson writes the uniform response envelope and decodes JSON
// request bodies. Every endpoint responds with
//
//	{ "success": bool, "message": "...", "data": ... }
//
// The Error field exists only for the contact form's historical
// {"success":false,"error":"Please fill in all fields"} shape, which
// clients already depend on.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the uniform JSON response wrapper.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Page is the pagination block returned alongside paged lists:
// current = requested page, total = page count, count = items in this page,
// and the caller adds the overall matching count under its entity name.
type Page struct {
	Current int `json:"current"`
	Total   int `json:"total"`
	Count   int `json:"count"`
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes a 200 envelope with data.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 envelope with a message and data.
func Created(w http.ResponseWriter, message string, data any) {
	write(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Message writes a 200 envelope with a message and optional data.
func Message(w http.ResponseWriter, message string, data any) {
	write(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Message: message})
}

// FailError writes a failure envelope using the legacy "error" key.
func FailError(w http.ResponseWriter, status int, errMsg string) {
	write(w, status, Envelope{Success: false, Error: errMsg})
}

// NotFound writes the standard 404 envelope.
func NotFound(w http.ResponseWriter, message string) {
	Fail(w, http.StatusNotFound, message)
}

// ServerError writes a 500 envelope. The raw error text is included only
// when verbose is set (non-production mode).
func ServerError(w http.ResponseWriter, err error, verbose bool) {
	env := Envelope{Success: false, Message: "Internal server error"}
	if verbose && err != nil {
		env.Error = err.Error()
	}
	write(w, http.StatusInternalServerError, env)
}

// ErrBodyTooLarge is returned by Decode when the request body exceeds the
// configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

// Decode reads a JSON body into dst, enforcing maxBytes and rejecting
// unknown top-level syntax errors with a plain error the handler can map
// to a 400.
func Decode(w http.ResponseWriter, r *http.Request, dst any, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		return err
	}
	return nil
}
