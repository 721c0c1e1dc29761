package http

import (
	"encoding/json"
	"net/http"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/service"

	"github.com/gorilla/mux"
)

// ToolHandler exposes the tool catalog over HTTP
type ToolHandler struct {
	tools service.ToolService
}

func NewToolHandler(tools service.ToolService) *ToolHandler {
	return &ToolHandler{tools: tools}
}

type addToolRequest struct {
	SerialNumber     string               `json:"serial_number"`
	Name             string               `json:"name"`
	Type             domain.ToolType      `json:"type"`
	Category         string               `json:"category"`
	Description      string               `json:"description"`
	Location         string               `json:"location"`
	Supplier         string               `json:"supplier"`
	AssignedTo       string               `json:"assigned_to"`
	PurchasePrice    float64              `json:"purchase_price"`
	DepreciationRate float64              `json:"depreciation_rate"`
	PurchaseDate     jsonTime             `json:"purchase_date"`
	Condition        domain.ToolCondition `json:"condition"`
}

func (h *ToolHandler) AddTool(w http.ResponseWriter, r *http.Request) {
	var req addToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	tool := &domain.Tool{
		SerialNumber:     req.SerialNumber,
		Name:             req.Name,
		Type:             req.Type,
		Category:         req.Category,
		Description:      req.Description,
		Location:         req.Location,
		Supplier:         req.Supplier,
		AssignedTo:       req.AssignedTo,
		PurchasePrice:    req.PurchasePrice,
		DepreciationRate: req.DepreciationRate,
		PurchaseDate:     req.PurchaseDate.Time,
		Condition:        req.Condition,
	}
	if err := h.tools.AddTool(r.Context(), tool); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

func (h *ToolHandler) GetTool(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tool, err := h.tools.GetTool(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var upd domain.ToolUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	tool, err := h.tools.UpdateTool(r.Context(), id, &upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) DeleteTool(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.tools.DeleteTool(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type sellToolRequest struct {
	SalePrice  float64 `json:"sale_price"`
	SoldTo     string  `json:"sold_to"`
	SoldBy     string  `json:"sold_by"`
	SaleReason string  `json:"sale_reason"`
	SaleNotes  string  `json:"sale_notes"`
}

func (h *ToolHandler) SellTool(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req sellToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	tool, err := h.tools.SellTool(r.Context(), id, req.SalePrice, req.SoldTo, req.SoldBy, req.SaleReason, req.SaleNotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// ListTools serves the filtered views: ?status=active|sold, ?location=,
// ?type=, ?q= (search). Without parameters it returns the whole catalog.
func (h *ToolHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		tools []domain.Tool
		err   error
	)
	switch {
	case q.Has("q"):
		tools, err = h.tools.SearchTools(ctx, q.Get("q"))
	case q.Get("status") == "active":
		tools, err = h.tools.ListActiveTools(ctx)
	case q.Get("status") == "sold":
		tools, err = h.tools.ListSoldTools(ctx)
	case q.Has("location"):
		tools, err = h.tools.ListToolsByLocation(ctx, q.Get("location"))
	case q.Has("type"):
		tools, err = h.tools.ListToolsByType(ctx, domain.ToolType(q.Get("type")))
	default:
		tools, err = h.tools.ListTools(ctx)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if tools == nil {
		tools = []domain.Tool{}
	}
	writeJSON(w, http.StatusOK, tools)
}

type maintenanceRequest struct {
	Date        jsonTime `json:"date"`
	Description string   `json:"description"`
	Cost        float64  `json:"cost"`
	PerformedBy string   `json:"performed_by"`
}

func (h *ToolHandler) AddMaintenance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req maintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	rec := &domain.MaintenanceRecord{
		Date:        req.Date.Time,
		Description: req.Description,
		Cost:        req.Cost,
		PerformedBy: req.PerformedBy,
	}
	if err := h.tools.AddMaintenanceRecord(r.Context(), id, rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *ToolHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.tools.GetToolsSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ToolHandler) Revalue(w http.ResponseWriter, r *http.Request) {
	count, err := h.tools.RevalueAllTools(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"revalued": count})
}
