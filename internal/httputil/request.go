package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ParseJSON decodes JSON from the request body into the given destination.
// The body is capped at 25MB: document and attachment payloads embed file
// contents as base64 data URIs, so uploads are large by design.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 25<<20)

	decoder := json.NewDecoder(r.Body)
	// Unknown fields are tolerated here and dropped by the typed request
	// structs; partial updates only ever apply their allow-listed fields.

	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
