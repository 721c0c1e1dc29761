package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/logger"
	"equipledger-backend/internal/repository"
	"equipledger-backend/internal/utils"

	"github.com/google/uuid"
)

type toolService struct {
	toolRepo repository.ToolRepository
	now      func() time.Time
}

func NewToolService(toolRepo repository.ToolRepository) ToolService {
	return &toolService{
		toolRepo: toolRepo,
		now:      time.Now,
	}
}

// NewToolServiceWithClock injects the clock, for deterministic tests.
func NewToolServiceWithClock(toolRepo repository.ToolRepository, now func() time.Time) ToolService {
	return &toolService{toolRepo: toolRepo, now: now}
}

func (s *toolService) AddTool(ctx context.Context, tool *domain.Tool) error {
	now := s.now()
	tool.ID = uuid.NewString()
	tool.CurrentValue = tool.PurchasePrice
	tool.IsActive = true
	tool.SaleInfo = nil
	tool.UsageHours = 0
	tool.LastUsed = nil
	tool.CreatedAt = now
	tool.UpdatedAt = now
	return s.toolRepo.Create(ctx, tool)
}

func (s *toolService) GetTool(ctx context.Context, id string) (*domain.Tool, error) {
	return s.toolRepo.GetByID(ctx, id)
}

func (s *toolService) UpdateTool(ctx context.Context, id string, upd *domain.ToolUpdate) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.SerialNumber != nil {
		tool.SerialNumber = *upd.SerialNumber
	}
	if upd.Name != nil {
		tool.Name = *upd.Name
	}
	if upd.Category != nil {
		tool.Category = *upd.Category
	}
	if upd.Description != nil {
		tool.Description = *upd.Description
	}
	if upd.Location != nil {
		tool.Location = *upd.Location
	}
	if upd.Supplier != nil {
		tool.Supplier = *upd.Supplier
	}
	if upd.AssignedTo != nil {
		tool.AssignedTo = *upd.AssignedTo
	}
	if upd.Condition != nil {
		tool.Condition = *upd.Condition
	}
	tool.UpdatedAt = s.now()

	if err := s.toolRepo.Update(ctx, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

func (s *toolService) DeleteTool(ctx context.Context, id string) error {
	// Usage sessions referencing the tool are left in place and orphaned.
	return s.toolRepo.Delete(ctx, id)
}

func (s *toolService) SellTool(ctx context.Context, id string, salePrice float64, soldTo, soldBy, saleReason, saleNotes string) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tool.IsActive {
		return nil, domain.ErrAlreadySold
	}

	sale := &domain.SaleInfo{
		SalePrice:  salePrice,
		SaleDate:   s.now(),
		SoldTo:     soldTo,
		SoldBy:     soldBy,
		SaleReason: saleReason,
		SaleNotes:  saleNotes,
	}
	if err := s.toolRepo.MarkSold(ctx, id, sale); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The guarded update found no active row: sold out from under us.
			return nil, domain.ErrAlreadySold
		}
		return nil, err
	}

	tool.IsActive = false
	tool.SaleInfo = sale
	tool.UpdatedAt = sale.SaleDate
	return tool, nil
}

func (s *toolService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.List(ctx)
}

func (s *toolService) ListActiveTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.ListByActive(ctx, true)
}

func (s *toolService) ListSoldTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.ListByActive(ctx, false)
}

func (s *toolService) ListToolsByLocation(ctx context.Context, location string) ([]domain.Tool, error) {
	return s.toolRepo.ListByLocation(ctx, location)
}

func (s *toolService) ListToolsByType(ctx context.Context, toolType domain.ToolType) ([]domain.Tool, error) {
	return s.toolRepo.ListByType(ctx, toolType)
}

func (s *toolService) SearchTools(ctx context.Context, query string) ([]domain.Tool, error) {
	// An empty query matches everything, sold tools included.
	if strings.TrimSpace(query) == "" {
		return s.toolRepo.List(ctx)
	}
	return s.toolRepo.Search(ctx, query)
}

func (s *toolService) AddMaintenanceRecord(ctx context.Context, toolID string, rec *domain.MaintenanceRecord) error {
	if _, err := s.toolRepo.GetByID(ctx, toolID); err != nil {
		return err
	}
	rec.ID = uuid.NewString()
	rec.ToolID = toolID
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}
	return s.toolRepo.AddMaintenanceRecord(ctx, rec)
}

// RevalueAllTools recomputes and persists the current value of every tool.
// Returns the number of tools revalued.
func (s *toolService) RevalueAllTools(ctx context.Context) (int, error) {
	tools, err := s.toolRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	count := 0
	for i := range tools {
		report := utils.CalculateDepreciation(&tools[i], now)
		if err := s.toolRepo.UpdateValuation(ctx, tools[i].ID, report.CurrentValue); err != nil {
			return count, fmt.Errorf("revalue tool %s: %w", tools[i].ID, err)
		}
		count++
	}
	return count, nil
}

// GetToolsSummary revalues the catalog, then aggregates active tools only.
func (s *toolService) GetToolsSummary(ctx context.Context) (*domain.ToolsSummary, error) {
	if _, err := s.RevalueAllTools(ctx); err != nil {
		return nil, err
	}

	active, err := s.toolRepo.ListByActive(ctx, true)
	if err != nil {
		return nil, err
	}

	summary := &domain.ToolsSummary{
		TotalTools:  len(active),
		ByLocation:  make(map[string]int),
		ByType:      make(map[string]int),
		ByCondition: make(map[string]int),
	}
	for i := range active {
		t := &active[i]
		summary.TotalPurchaseValue += t.PurchasePrice
		summary.TotalCurrentValue += t.CurrentValue
		summary.ByLocation[t.Location]++
		summary.ByType[string(t.Type)]++
		summary.ByCondition[string(t.Condition)]++
		if t.NeedsMaintenance() {
			summary.NeedsMaintenance = append(summary.NeedsMaintenance, *t)
		}
	}
	summary.TotalPurchaseValue = utils.Round2(summary.TotalPurchaseValue)
	summary.TotalCurrentValue = utils.Round2(summary.TotalCurrentValue)
	summary.TotalDepreciation = utils.Round2(summary.TotalPurchaseValue - summary.TotalCurrentValue)

	logger.Debug("Tools summary computed", "total_tools", summary.TotalTools,
		"needs_maintenance", len(summary.NeedsMaintenance))
	return summary, nil
}
