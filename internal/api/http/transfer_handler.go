package http

import (
	"io"
	"net/http"

	"equipledger-backend/internal/service"
)

// TransferHandler exposes full-ledger export and import
type TransferHandler struct {
	transfer service.TransferService
}

func NewTransferHandler(transfer service.TransferService) *TransferHandler {
	return &TransferHandler{transfer: transfer}
}

func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	payload, err := h.transfer.ExportJSON(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="equipment-ledger.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read request body"})
		return
	}
	if err := h.transfer.Import(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"imported": true})
}
