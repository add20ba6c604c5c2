package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"avika/internal/model"
	"avika/internal/service"
)

// SessionHandler handles session lifecycle and conversation endpoints
type SessionHandler struct {
	dialogueSvc *service.DialogueService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(dialogueSvc *service.DialogueService) *SessionHandler {
	return &SessionHandler{dialogueSvc: dialogueSvc}
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.dialogueSvc.StartSession(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	view, err := h.dialogueSvc.Snapshot(sess.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view, err := h.dialogueSvc.Snapshot(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Message handles POST /v1/sessions/{id}/messages
func (h *SessionHandler) Message(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	res, err := h.dialogueSvc.HandleTurn(r.Context(), id, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Reply:    res.Reply,
		Phase:    res.Phase,
		Covered:  res.Covered,
		Progress: res.Progress,
	})
}

// ManualAnswer handles PUT /v1/sessions/{id}/answers/{itemID}
func (h *SessionHandler) ManualAnswer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	itemID := vars["itemID"]

	var req model.ManualAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OptionLabel == "" {
		writeError(w, http.StatusBadRequest, "option label is required")
		return
	}

	progress, err := h.dialogueSvc.ManualAnswer(id, itemID, req.OptionLabel)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// Simulate handles POST /v1/sessions/{id}/simulate
func (h *SessionHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Style == "" {
		req.Style = service.StyleGeneric
	}

	msg, err := h.dialogueSvc.Simulate(r.Context(), id, req.Style)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SimulateResponse{Message: msg})
}

// Delete handles DELETE /v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.dialogueSvc.Abandon(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
