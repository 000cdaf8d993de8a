package server

import (
	"encoding/json"
	"net/http"

	"github.com/hmorales/wedplan/internal/result"
)

// envelope is the uniform response shape for all API endpoints.
type envelope struct {
	Success bool          `json:"success"`
	Data    any           `json:"data,omitempty"`
	Error   *result.Error `json:"error,omitempty"`
}

func statusForCode(code result.Code) int {
	switch code {
	case result.CodeValidation:
		return http.StatusBadRequest
	case result.CodeNotFound:
		return http.StatusNotFound
	case result.CodeConflict:
		return http.StatusConflict
	case result.CodePartialImport:
		return http.StatusMultiStatus
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, rerr *result.Error) {
	writeJSON(w, statusForCode(rerr.Code), envelope{Success: false, Error: rerr})
}

// decodeJSON parses the request body into dst, returning a validation error
// on malformed input.
func decodeJSON(r *http.Request, dst any) *result.Error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return result.Validation("Invalid JSON body: "+err.Error(), nil)
	}
	return nil
}
