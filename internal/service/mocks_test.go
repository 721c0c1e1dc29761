package service

import (
	"context"
	"time"

	"equipledger-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockToolRepo) List(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListByActive(ctx context.Context, active bool) ([]domain.Tool, error) {
	args := m.Called(ctx, active)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListByLocation(ctx context.Context, location string) ([]domain.Tool, error) {
	args := m.Called(ctx, location)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListByType(ctx context.Context, toolType domain.ToolType) ([]domain.Tool, error) {
	args := m.Called(ctx, toolType)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) Search(ctx context.Context, query string) ([]domain.Tool, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) MarkSold(ctx context.Context, id string, sale *domain.SaleInfo) error {
	args := m.Called(ctx, id, sale)
	return args.Error(0)
}
func (m *MockToolRepo) UpdateValuation(ctx context.Context, id string, currentValue float64) error {
	args := m.Called(ctx, id, currentValue)
	return args.Error(0)
}
func (m *MockToolRepo) AddUsage(ctx context.Context, id string, hours float64, usedAt time.Time) error {
	args := m.Called(ctx, id, hours, usedAt)
	return args.Error(0)
}
func (m *MockToolRepo) AddMaintenanceRecord(ctx context.Context, rec *domain.MaintenanceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// MockSessionRepo
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.UsageSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *MockSessionRepo) GetByID(ctx context.Context, id string) (*domain.UsageSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsageSession), args.Error(1)
}
func (m *MockSessionRepo) Close(ctx context.Context, id string, endTime time.Time, hours float64) error {
	args := m.Called(ctx, id, endTime, hours)
	return args.Error(0)
}
func (m *MockSessionRepo) ListByTool(ctx context.Context, toolID string) ([]domain.UsageSession, error) {
	args := m.Called(ctx, toolID)
	return args.Get(0).([]domain.UsageSession), args.Error(1)
}
func (m *MockSessionRepo) List(ctx context.Context) ([]domain.UsageSession, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UsageSession), args.Error(1)
}

// MockTransferRepo
type MockTransferRepo struct {
	mock.Mock
}

func (m *MockTransferRepo) ReplaceAll(ctx context.Context, tools []domain.Tool, sessions []domain.UsageSession) error {
	args := m.Called(ctx, tools, sessions)
	return args.Error(0)
}
