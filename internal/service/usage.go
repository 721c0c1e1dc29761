package service

import (
	"context"
	"errors"
	"time"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/logger"
	"equipledger-backend/internal/repository"
	"equipledger-backend/internal/utils"

	"github.com/google/uuid"
)

type usageService struct {
	sessionRepo repository.UsageSessionRepository
	toolRepo    repository.ToolRepository
	now         func() time.Time
}

func NewUsageService(sessionRepo repository.UsageSessionRepository, toolRepo repository.ToolRepository) UsageService {
	return &usageService{
		sessionRepo: sessionRepo,
		toolRepo:    toolRepo,
		now:         time.Now,
	}
}

// NewUsageServiceWithClock injects the clock, for deterministic tests.
func NewUsageServiceWithClock(sessionRepo repository.UsageSessionRepository, toolRepo repository.ToolRepository, now func() time.Time) UsageService {
	return &usageService{sessionRepo: sessionRepo, toolRepo: toolRepo, now: now}
}

// StartSession opens a session. The tool id is not required to resolve;
// a dangling reference is permitted and only warned about.
func (s *usageService) StartSession(ctx context.Context, toolID, usedBy, project, notes string) (*domain.UsageSession, error) {
	if _, err := s.toolRepo.GetByID(ctx, toolID); errors.Is(err, repository.ErrNotFound) {
		logger.Warn("Usage session started for unknown tool", "tool_id", toolID, "used_by", usedBy)
	}

	session := &domain.UsageSession{
		ID:        uuid.NewString(),
		ToolID:    toolID,
		StartTime: s.now(),
		UsedBy:    usedBy,
		Project:   project,
		Notes:     notes,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// EndSession closes a session exactly once. A missing or already-closed
// session yields ErrNotFound and leaves the parent tool untouched, so
// usage hours are never double-counted.
func (s *usageService) EndSession(ctx context.Context, sessionID string) (*domain.UsageSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Open() {
		return nil, repository.ErrNotFound
	}

	end := s.now()
	hours := utils.SessionHours(session.StartTime, end)
	if err := s.sessionRepo.Close(ctx, sessionID, end, hours); err != nil {
		return nil, err
	}

	if err := s.toolRepo.AddUsage(ctx, session.ToolID, hours, end); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		// Tool deleted since the session started; the session still closes.
		logger.Warn("Closed session for missing tool", "session_id", sessionID, "tool_id", session.ToolID)
	}

	session.EndTime = &end
	session.Hours = hours
	return session, nil
}

func (s *usageService) ListSessionsByTool(ctx context.Context, toolID string) ([]domain.UsageSession, error) {
	return s.sessionRepo.ListByTool(ctx, toolID)
}

func (s *usageService) ListSessions(ctx context.Context) ([]domain.UsageSession, error) {
	return s.sessionRepo.List(ctx)
}
