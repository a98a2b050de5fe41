package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pratama/kisi-kisi-generator/internal/controller"
	"github.com/pratama/kisi-kisi-generator/internal/generation"
)

// errorResponse is the JSON error envelope for all failure responses.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes the JSON error envelope with the given status.
//
//nolint:errcheck // writing the error response; a second failure is not recoverable
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// httpStatus maps an error to the appropriate HTTP status code.
func httpStatus(err error) int {
	var genErr *generation.GenerationError
	switch {
	case errors.Is(err, controller.ErrGenerationInFlight):
		return http.StatusConflict
	case errors.As(err, &genErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
