package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"
)

// writeError renders the same error body the handlers produce.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)

	response := map[string]any{
		"code":      code,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	_ = json.NewEncoder(w).Encode(response)
}
