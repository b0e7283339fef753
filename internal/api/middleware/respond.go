package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/leggettc18/devmarks/internal/api/types"
)

// writeError answers with the API error envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.APIResponse{
		Success: false,
		Error:   &types.APIError{Code: code, Message: msg},
		Meta:    &types.Meta{RequestID: GetRequestID(r.Context())},
	})
}
