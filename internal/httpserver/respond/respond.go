// Package respond writes the response bodies shared by handlers and middlewares.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Text writes a plain text body with the given status.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type serverErrorMessage struct {
	Message string `json:"message"`
}

type productionError struct {
	Error serverErrorMessage `json:"error"`
}

type debugErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Detail  string `json:"detail"`
}

type debugError struct {
	Message string           `json:"message"`
	Error   debugErrorDetail `json:"error"`
}

// ServerError writes a 500. In production the body never carries the error;
// otherwise it exposes the message and the error value for debugging.
func ServerError(w http.ResponseWriter, production bool, err error) {
	if production {
		JSON(w, http.StatusInternalServerError, productionError{
			Error: serverErrorMessage{Message: "server error"},
		})
		return
	}

	JSON(w, http.StatusInternalServerError, debugError{
		Message: err.Error(),
		Error: debugErrorDetail{
			Message: err.Error(),
			Type:    fmt.Sprintf("%T", err),
			Detail:  fmt.Sprintf("%+v", err),
		},
	})
}
