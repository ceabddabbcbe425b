package httpx

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// JSONError writes a minimal error body tagged with the request ID. The
// middleware chain uses it for failures that never reach a handler.
func JSONError(r *http.Request, w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:     message,
		RequestID: RequestIDFrom(r),
	})
}
