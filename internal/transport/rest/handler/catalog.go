package handler

import (
	"net/http"

	"avika/internal/model"
)

// CatalogHandler serves the questionnaire structure to the UI
type CatalogHandler struct {
	catalog *model.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *model.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Get handles GET /v1/catalog
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}
