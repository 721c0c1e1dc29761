package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"equipledger-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func transferFixtures() ([]domain.Tool, []domain.UsageSession) {
	purchase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 10, 16, 30, 0, 0, time.UTC)
	tools := []domain.Tool{
		{
			ID: "t1", Name: "Two-Post Lift", Type: domain.ToolTypeEquipment, Location: "Garage",
			PurchasePrice: 5200, CurrentValue: 4600, DepreciationRate: 10, PurchaseDate: purchase,
			UsageHours: 12.5, Condition: domain.ToolConditionGood, IsActive: true,
			CreatedAt: purchase, UpdatedAt: purchase,
			MaintenanceHistory: []domain.MaintenanceRecord{
				{ID: "m1", ToolID: "t1", Date: purchase.AddDate(0, 6, 0), Description: "hydraulic check", Cost: 120, PerformedBy: "Lena"},
			},
		},
		{
			ID: "t2", Name: "Old Scanner", Type: domain.ToolTypeTool,
			PurchasePrice: 800, CurrentValue: 80, DepreciationRate: 50, PurchaseDate: purchase,
			Condition: domain.ToolConditionPoor, IsActive: false,
			SaleInfo:  &domain.SaleInfo{SalePrice: 90, SaleDate: end, SoldTo: "scrapper", SoldBy: "Dana", SaleReason: "obsolete"},
			CreatedAt: purchase, UpdatedAt: end,
		},
	}
	sessions := []domain.UsageSession{
		{ID: "s1", ToolID: "t1", StartTime: end.Add(-2 * time.Hour), EndTime: &end, UsedBy: "Marco", Project: "PDI", Hours: 2.0},
		{ID: "s2", ToolID: "t1", StartTime: end, UsedBy: "Lena", Project: "inspection"},
	}
	return tools, sessions
}

func TestTransferService_Export(t *testing.T) {
	toolRepo := new(MockToolRepo)
	sessionRepo := new(MockSessionRepo)
	transferRepo := new(MockTransferRepo)
	svc := NewTransferServiceWithClock(toolRepo, sessionRepo, transferRepo, fixedClock)
	ctx := context.Background()

	tools, sessions := transferFixtures()
	toolRepo.On("List", ctx).Return(tools, nil)
	sessionRepo.On("List", ctx).Return(sessions, nil)

	bundle, err := svc.Export(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.ExportFormatVersion, bundle.Version)
	assert.Equal(t, fixedNow, bundle.ExportDate)
	assert.Len(t, bundle.Tools, 2)
	assert.Len(t, bundle.UsageSessions, 2)
}

func TestTransferService_RoundTrip(t *testing.T) {
	toolRepo := new(MockToolRepo)
	sessionRepo := new(MockSessionRepo)
	transferRepo := new(MockTransferRepo)
	svc := NewTransferServiceWithClock(toolRepo, sessionRepo, transferRepo, fixedClock)
	ctx := context.Background()

	tools, sessions := transferFixtures()
	toolRepo.On("List", ctx).Return(tools, nil)
	sessionRepo.On("List", ctx).Return(sessions, nil)

	payload, err := svc.ExportJSON(ctx)
	assert.NoError(t, err)

	// The expectation matches on the exact decoded collections, so a
	// lossy round trip fails with an unexpected-call panic.
	transferRepo.On("ReplaceAll", ctx, tools, sessions).Return(nil)

	err = svc.Import(ctx, payload)
	assert.NoError(t, err)
	transferRepo.AssertExpectations(t)
}

func TestTransferService_ImportMalformed(t *testing.T) {
	transferRepo := new(MockTransferRepo)
	svc := NewTransferServiceWithClock(new(MockToolRepo), new(MockSessionRepo), transferRepo, fixedClock)
	ctx := context.Background()

	t.Run("NotJSON", func(t *testing.T) {
		err := svc.Import(ctx, []byte("{not json"))
		assert.ErrorIs(t, err, ErrMalformedPayload)
		transferRepo.AssertNotCalled(t, "ReplaceAll")
	})

	t.Run("WrongShape", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]string{"hello": "world"})
		err := svc.Import(ctx, payload)
		assert.ErrorIs(t, err, ErrMalformedPayload)
		transferRepo.AssertNotCalled(t, "ReplaceAll")
	})
}
