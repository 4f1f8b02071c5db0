package httputil

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code. It marshals
// first so an encoding failure can't leak a partial body after headers.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// ErrorBody is the uniform error envelope: an error string plus optional
// free-form details (diagnostics passed through verbatim on 500s).
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondError writes the error envelope with the given status.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondErrorDetails(w, status, message, "")
}

// RespondErrorDetails writes the error envelope with a details string.
func RespondErrorDetails(w http.ResponseWriter, status int, message, details string) {
	payload, err := json.Marshal(ErrorBody{Error: message, Details: details})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
