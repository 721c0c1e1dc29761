package service

import (
	"context"
	"testing"
	"time"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestToolService_AddTool(t *testing.T) {
	repo := new(MockToolRepo)
	svc := NewToolServiceWithClock(repo, fixedClock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tool := &domain.Tool{
			Name:             "Impact Wrench",
			Type:             domain.ToolTypeTool,
			PurchasePrice:    450,
			DepreciationRate: 15,
			Condition:        domain.ToolConditionExcellent,
		}
		repo.On("Create", ctx, tool).Return(nil)

		err := svc.AddTool(ctx, tool)
		assert.NoError(t, err)
		assert.NotEmpty(t, tool.ID)
		assert.Equal(t, 450.0, tool.CurrentValue)
		assert.True(t, tool.IsActive)
		assert.Nil(t, tool.SaleInfo)
		assert.Equal(t, 0.0, tool.UsageHours)
		assert.Equal(t, fixedNow, tool.CreatedAt)
		assert.Equal(t, fixedNow, tool.UpdatedAt)
	})
}

func TestToolService_UpdateTool(t *testing.T) {
	repo := new(MockToolRepo)
	svc := NewToolServiceWithClock(repo, fixedClock)
	ctx := context.Background()

	t.Run("MergesOnlyProvidedFields", func(t *testing.T) {
		existing := &domain.Tool{
			ID:        "t1",
			Name:      "Floor Jack",
			Location:  "Garage",
			Condition: domain.ToolConditionGood,
		}
		repo.On("GetByID", ctx, "t1").Return(existing, nil)
		repo.On("Update", ctx, existing).Return(nil)

		location := "Showroom"
		condition := domain.ToolConditionFair
		tool, err := svc.UpdateTool(ctx, "t1", &domain.ToolUpdate{
			Location:  &location,
			Condition: &condition,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Floor Jack", tool.Name)
		assert.Equal(t, "Showroom", tool.Location)
		assert.Equal(t, domain.ToolConditionFair, tool.Condition)
		assert.Equal(t, fixedNow, tool.UpdatedAt)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		_, err := svc.UpdateTool(ctx, "missing", &domain.ToolUpdate{})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestToolService_SellTool(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewToolServiceWithClock(repo, fixedClock)

		active := &domain.Tool{ID: "t1", Name: "Scanner", IsActive: true}
		expectedSale := &domain.SaleInfo{
			SalePrice:  750,
			SaleDate:   fixedNow,
			SoldTo:     "Northside Motors",
			SoldBy:     "Dana",
			SaleReason: "upgrade",
		}
		repo.On("GetByID", ctx, "t1").Return(active, nil)
		repo.On("MarkSold", ctx, "t1", expectedSale).Return(nil)

		tool, err := svc.SellTool(ctx, "t1", 750, "Northside Motors", "Dana", "upgrade", "")
		assert.NoError(t, err)
		assert.False(t, tool.IsActive)
		assert.Equal(t, expectedSale, tool.SaleInfo)
	})

	t.Run("AlreadySold", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewToolServiceWithClock(repo, fixedClock)

		sold := &domain.Tool{ID: "t2", IsActive: false, SaleInfo: &domain.SaleInfo{SalePrice: 100}}
		repo.On("GetByID", ctx, "t2").Return(sold, nil)

		_, err := svc.SellTool(ctx, "t2", 900, "x", "y", "z", "")
		assert.ErrorIs(t, err, domain.ErrAlreadySold)
		repo.AssertNotCalled(t, "MarkSold")
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewToolServiceWithClock(repo, fixedClock)

		repo.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		_, err := svc.SellTool(ctx, "missing", 1, "a", "b", "c", "")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestToolService_SearchTools(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyQueryReturnsEverything", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewToolServiceWithClock(repo, fixedClock)

		all := []domain.Tool{{ID: "a", IsActive: true}, {ID: "b", IsActive: false}}
		repo.On("List", ctx).Return(all, nil)

		tools, err := svc.SearchTools(ctx, "   ")
		assert.NoError(t, err)
		assert.Len(t, tools, 2)
		repo.AssertNotCalled(t, "Search")
	})

	t.Run("QueryDelegatesToRepo", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewToolServiceWithClock(repo, fixedClock)

		repo.On("Search", ctx, "drill").Return([]domain.Tool{{ID: "a", Name: "Drill"}}, nil)

		tools, err := svc.SearchTools(ctx, "drill")
		assert.NoError(t, err)
		assert.Equal(t, "Drill", tools[0].Name)
	})
}

func TestToolService_GetToolsSummary(t *testing.T) {
	repo := new(MockToolRepo)
	svc := NewToolServiceWithClock(repo, fixedClock)
	ctx := context.Background()

	purchase := fixedNow.Add(-8766 * time.Hour) // exactly one year old
	all := []domain.Tool{
		{ID: "a", Type: domain.ToolTypeEquipment, Location: "Garage", Condition: domain.ToolConditionGood,
			PurchasePrice: 1000, DepreciationRate: 20, PurchaseDate: purchase, UsageHours: 600, IsActive: true},
		{ID: "b", Type: domain.ToolTypeTool, Location: "Showroom", Condition: domain.ToolConditionExcellent,
			PurchasePrice: 500, DepreciationRate: 20, PurchaseDate: purchase, UsageHours: 10, IsActive: true},
		{ID: "c", Type: domain.ToolTypeTool, Location: "Garage", Condition: domain.ToolConditionGood,
			PurchasePrice: 300, DepreciationRate: 10, PurchaseDate: purchase, IsActive: false,
			SaleInfo: &domain.SaleInfo{SalePrice: 120}},
	}
	// Revaluation touches every tool, sold ones included.
	repo.On("List", ctx).Return(all, nil)
	repo.On("UpdateValuation", ctx, "a", 800.0).Return(nil)
	repo.On("UpdateValuation", ctx, "b", 400.0).Return(nil)
	repo.On("UpdateValuation", ctx, "c", 270.0).Return(nil)

	active := []domain.Tool{
		func() domain.Tool { t := all[0]; t.CurrentValue = 800; return t }(),
		func() domain.Tool { t := all[1]; t.CurrentValue = 400; return t }(),
	}
	repo.On("ListByActive", ctx, true).Return(active, nil)

	summary, err := svc.GetToolsSummary(ctx)
	assert.NoError(t, err)

	assert.Equal(t, 2, summary.TotalTools)
	assert.Equal(t, 1500.0, summary.TotalPurchaseValue)
	assert.Equal(t, 1200.0, summary.TotalCurrentValue)
	assert.Equal(t, 300.0, summary.TotalDepreciation)
	assert.Equal(t, map[string]int{"Garage": 1, "Showroom": 1}, summary.ByLocation)
	assert.Equal(t, map[string]int{"equipment": 1, "tool": 1}, summary.ByType)
	assert.Equal(t, map[string]int{"good": 1, "excellent": 1}, summary.ByCondition)

	// Equipment past 500 usage hours is flagged; the lightly used tool is not.
	if assert.Len(t, summary.NeedsMaintenance, 1) {
		assert.Equal(t, "a", summary.NeedsMaintenance[0].ID)
	}

	counted := 0
	for _, n := range summary.ByLocation {
		counted += n
	}
	assert.Equal(t, summary.TotalTools, counted)
}

func TestToolService_AddMaintenanceRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewToolServiceWithClock(repo, fixedClock)

		tool := &domain.Tool{ID: "t1", IsActive: true}
		rec := &domain.MaintenanceRecord{Description: "oil change", Cost: 45}
		repo.On("GetByID", ctx, "t1").Return(tool, nil)
		repo.On("AddMaintenanceRecord", ctx, rec).Return(nil)

		err := svc.AddMaintenanceRecord(ctx, "t1", rec)
		assert.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, "t1", rec.ToolID)
		assert.Equal(t, fixedNow, rec.Date)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockToolRepo)
		svc := NewToolServiceWithClock(repo, fixedClock)

		repo.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		err := svc.AddMaintenanceRecord(ctx, "missing", &domain.MaintenanceRecord{})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
