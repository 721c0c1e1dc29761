package http

import (
	"net/http"

	"equipledger-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all ledger endpoints under /api/v1
func NewRouter(tools service.ToolService, usage service.UsageService, transfer service.TransferService) *mux.Router {
	toolHandler := NewToolHandler(tools)
	usageHandler := NewUsageHandler(usage)
	transferHandler := NewTransferHandler(transfer)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/tools", toolHandler.ListTools).Methods("GET")
	api.HandleFunc("/tools", toolHandler.AddTool).Methods("POST")
	api.HandleFunc("/tools/summary", toolHandler.GetSummary).Methods("GET")
	api.HandleFunc("/tools/revalue", toolHandler.Revalue).Methods("POST")
	api.HandleFunc("/tools/{id}", toolHandler.GetTool).Methods("GET")
	api.HandleFunc("/tools/{id}", toolHandler.UpdateTool).Methods("PATCH")
	api.HandleFunc("/tools/{id}", toolHandler.DeleteTool).Methods("DELETE")
	api.HandleFunc("/tools/{id}/sell", toolHandler.SellTool).Methods("POST")
	api.HandleFunc("/tools/{id}/maintenance", toolHandler.AddMaintenance).Methods("POST")
	api.HandleFunc("/tools/{id}/sessions", usageHandler.ListToolSessions).Methods("GET")

	api.HandleFunc("/sessions", usageHandler.ListSessions).Methods("GET")
	api.HandleFunc("/sessions", usageHandler.StartSession).Methods("POST")
	api.HandleFunc("/sessions/{id}/end", usageHandler.EndSession).Methods("POST")

	api.HandleFunc("/export", transferHandler.Export).Methods("GET")
	api.HandleFunc("/import", transferHandler.Import).Methods("POST")

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return r
}
