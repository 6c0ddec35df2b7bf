package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/white/lead-management/internal/models"
	"github.com/white/lead-management/internal/repositories"
	"github.com/white/lead-management/pkg/logger"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// respondWithJSON writes a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError writes an error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details []models.FieldError `json:"details,omitempty"`
}

// errorMessages are the client-facing texts for one operation
type errorMessages struct {
	NotFound string
	Conflict string
	Internal string
}

// respondWithStoreError classifies err: validation -> 400, duplicate key ->
// 409, not found -> 404, anything else -> 500. Only the last is logged with
// the underlying error; clients never see it.
func respondWithStoreError(w http.ResponseWriter, r *http.Request, err error, msgs errorMessages) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid input or missing required fields.",
			Details: verr.Fields,
		})
	case repositories.IsDuplicateKey(err) && msgs.Conflict != "":
		respondWithError(w, http.StatusConflict, msgs.Conflict)
	case repositories.IsNotFound(err) && msgs.NotFound != "":
		respondWithError(w, http.StatusNotFound, msgs.NotFound)
	default:
		logger.FromContext(r.Context()).Error(msgs.Internal, zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, msgs.Internal)
	}
}

// decodeJSON reads a bounded JSON body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return models.NewValidationError("body", "required", "is required")
		}
		return models.NewValidationError("body", "json", "must be valid JSON")
	}
	return nil
}
