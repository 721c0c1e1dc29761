package repository

import (
	"context"
	"errors"
	"time"

	"equipledger-backend/internal/domain"
)

// ErrNotFound is returned when an operation references an id absent from
// the backing store. Callers test for it with errors.Is.
var ErrNotFound = errors.New("not found")

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id string) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tool, error)
	ListByActive(ctx context.Context, active bool) ([]domain.Tool, error)
	ListByLocation(ctx context.Context, location string) ([]domain.Tool, error)
	ListByType(ctx context.Context, toolType domain.ToolType) ([]domain.Tool, error)
	Search(ctx context.Context, query string) ([]domain.Tool, error)

	// MarkSold is guarded: it only fires while the tool is still active.
	MarkSold(ctx context.Context, id string, sale *domain.SaleInfo) error
	// UpdateValuation persists a recomputed current value.
	UpdateValuation(ctx context.Context, id string, currentValue float64) error
	// AddUsage increments usage hours and stamps last_used in one statement.
	AddUsage(ctx context.Context, id string, hours float64, usedAt time.Time) error

	AddMaintenanceRecord(ctx context.Context, rec *domain.MaintenanceRecord) error
}

type UsageSessionRepository interface {
	Create(ctx context.Context, session *domain.UsageSession) error
	GetByID(ctx context.Context, id string) (*domain.UsageSession, error)
	// Close is guarded: it only fires while the session is still open.
	Close(ctx context.Context, id string, endTime time.Time, hours float64) error
	ListByTool(ctx context.Context, toolID string) ([]domain.UsageSession, error)
	List(ctx context.Context) ([]domain.UsageSession, error)
}

// TransferRepository replaces both collections wholesale in a single
// transaction. Used by import; there is no merge variant.
type TransferRepository interface {
	ReplaceAll(ctx context.Context, tools []domain.Tool, sessions []domain.UsageSession) error
}
