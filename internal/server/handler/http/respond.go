// Package http provides the JSON HTTP handlers and routing for the
// blog's presentation surface.
package http

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v with the given status. Encoding failures are
// ignored; the status line has already been committed.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
