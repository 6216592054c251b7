package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/model"
	"github.com/erazemk/boxtrack/internal/store"
)

// maxBodyBytes caps request bodies; every request here is a few dozen bytes.
const maxBodyBytes = 1 << 16

type errorResponse struct {
	Error string `json:"error"`
}

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			zap.L().Error("error encoding response", zap.Error(err))
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, errorResponse{Error: message})
}

// storeError maps a store or validation error to its HTTP status. Anything
// unexpected is logged and reported as a 500.
func storeError(w http.ResponseWriter, logger *zap.Logger, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrEmptyLocation), errors.Is(err, model.ErrAwayLocation):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrBoxNotFound):
		jsonError(w, http.StatusNotFound, "box not found")
	default:
		logger.Error(msg, zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a size-limited JSON request body into target.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(target)
}
