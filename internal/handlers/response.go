package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON serializes v with the given status code. Encoding failures are
// ignored: headers are already out and the body is handler-built data.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
