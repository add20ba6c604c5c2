package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"avika/internal/service"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	dialogueSvc *service.DialogueService
}

// NewReportHandler creates a new report handler
func NewReportHandler(dialogueSvc *service.DialogueService) *ReportHandler {
	return &ReportHandler{dialogueSvc: dialogueSvc}
}

// Get handles GET /v1/sessions/{id}/report
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	allowPartial := r.URL.Query().Get("partial") == "1"

	report, err := h.dialogueSvc.Report(id, allowPartial)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
