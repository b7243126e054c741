// Package httputil centralizes JSON response writing so every handler emits
// the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	pkgerrors "bodygraph/pkg/errors"
)

// WriteJSON writes a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError translates a coded error into the JSON error envelope. Only
// validation, not-found and unauthorized messages are exposed to callers;
// everything else is reduced to its code.
func WriteError(w http.ResponseWriter, err error) {
	code := pkgerrors.CodeOf(err)
	body := map[string]string{"error": string(code)}

	var coded *pkgerrors.Error
	if errors.As(err, &coded) {
		switch code {
		case pkgerrors.CodeValidation, pkgerrors.CodeNotFound, pkgerrors.CodeUnauthorized:
			body["error_description"] = coded.Message
			if coded.Field != "" {
				body["field"] = coded.Field
			}
		}
	}
	WriteJSON(w, pkgerrors.ToHTTPStatus(code), body)
}

// Decode parses a JSON request body into dst, answering 400 itself on failure.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, pkgerrors.New(pkgerrors.CodeValidation, "malformed JSON body"))
		return false
	}
	return true
}
