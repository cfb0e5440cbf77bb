package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"filmoteca/internal/models"
)

// Cuerpo de error estándar de la API.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError mapea el tipo de error al status HTTP:
// NotFound→404, Validation→400, el resto (incluye consistencia)→500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case models.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found", Message: err.Error()})
	case models.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Message: err.Error()})
	default:
		log.Printf("error interno: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error", Message: err.Error()})
	}
}
