package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketstore/models"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WriteJSON: %v", err)
	}
}

func WriteValidationErrors(w http.ResponseWriter, status int, verrs models.ValidationErrors) {
	WriteJSON(w, status, map[string]any{
		"status":  "error",
		"message": "Validation failed",
		"errors":  verrs,
	})
}

func WriteNotFound(w http.ResponseWriter, resource string) {
	WriteJSON(w, http.StatusNotFound, map[string]any{
		"status":  "error",
		"message": resource + " not found",
	})
}

func WriteUnauthorized(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthorized."})
}

func WriteErrorResponse(w http.ResponseWriter, err error) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		WriteValidationErrors(w, http.StatusUnprocessableEntity, verrs)
	case errors.Is(err, models.ErrUnauthorized):
		WriteUnauthorized(w)
	case errors.Is(err, models.ErrForbidden):
		WriteJSON(w, http.StatusForbidden, map[string]any{"status": "error", "message": "Forbidden"})
	case errors.Is(err, models.ErrNotFound):
		WriteNotFound(w, "Resource")
	case errors.Is(err, models.ErrBadRequest):
		WriteJSON(w, http.StatusBadRequest, map[string]any{"status": "error", "message": "bad request"})
	default:
		WriteJSON(w, http.StatusInternalServerError, map[string]any{"status": "error", "message": "server error"})
	}
}
