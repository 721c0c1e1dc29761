package http

import (
	"encoding/json"
	"net/http"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/service"

	"github.com/gorilla/mux"
)

// UsageHandler exposes usage sessions over HTTP
type UsageHandler struct {
	usage service.UsageService
}

func NewUsageHandler(usage service.UsageService) *UsageHandler {
	return &UsageHandler{usage: usage}
}

type startSessionRequest struct {
	ToolID  string `json:"tool_id"`
	UsedBy  string `json:"used_by"`
	Project string `json:"project"`
	Notes   string `json:"notes"`
}

func (h *UsageHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	session, err := h.usage.StartSession(r.Context(), req.ToolID, req.UsedBy, req.Project, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *UsageHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	session, err := h.usage.EndSession(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *UsageHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.usage.ListSessions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if sessions == nil {
		sessions = []domain.UsageSession{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *UsageHandler) ListToolSessions(w http.ResponseWriter, r *http.Request) {
	toolID := mux.Vars(r)["id"]
	sessions, err := h.usage.ListSessionsByTool(r.Context(), toolID)
	if err != nil {
		writeError(w, err)
		return
	}
	if sessions == nil {
		sessions = []domain.UsageSession{}
	}
	writeJSON(w, http.StatusOK, sessions)
}
