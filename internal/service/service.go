package service

import (
	"context"

	"equipledger-backend/internal/domain"
)

type ToolService interface {
	AddTool(ctx context.Context, tool *domain.Tool) error
	GetTool(ctx context.Context, id string) (*domain.Tool, error)
	UpdateTool(ctx context.Context, id string, upd *domain.ToolUpdate) (*domain.Tool, error)
	DeleteTool(ctx context.Context, id string) error
	SellTool(ctx context.Context, id string, salePrice float64, soldTo, soldBy, saleReason, saleNotes string) (*domain.Tool, error)
	ListTools(ctx context.Context) ([]domain.Tool, error)
	ListActiveTools(ctx context.Context) ([]domain.Tool, error)
	ListSoldTools(ctx context.Context) ([]domain.Tool, error)
	ListToolsByLocation(ctx context.Context, location string) ([]domain.Tool, error)
	ListToolsByType(ctx context.Context, toolType domain.ToolType) ([]domain.Tool, error)
	SearchTools(ctx context.Context, query string) ([]domain.Tool, error)
	AddMaintenanceRecord(ctx context.Context, toolID string, rec *domain.MaintenanceRecord) error
	RevalueAllTools(ctx context.Context) (int, error)
	GetToolsSummary(ctx context.Context) (*domain.ToolsSummary, error)
}

type UsageService interface {
	StartSession(ctx context.Context, toolID, usedBy, project, notes string) (*domain.UsageSession, error)
	EndSession(ctx context.Context, sessionID string) (*domain.UsageSession, error)
	ListSessionsByTool(ctx context.Context, toolID string) ([]domain.UsageSession, error)
	ListSessions(ctx context.Context) ([]domain.UsageSession, error)
}

type TransferService interface {
	Export(ctx context.Context) (*domain.ExportBundle, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, payload []byte) error
}
