package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"avika/internal/repository"
	"avika/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var provErr *service.ProviderError

	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, service.ErrUnknownItem):
		writeError(w, http.StatusNotFound, "unknown item")
	case errors.Is(err, service.ErrUnknownOption),
		errors.Is(err, service.ErrUnknownStyle):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionComplete),
		errors.Is(err, service.ErrItemCovered),
		errors.Is(err, service.ErrNotComplete):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &provErr):
		writeError(w, http.StatusBadGateway, "language model unavailable")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
