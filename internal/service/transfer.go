package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/logger"
	"equipledger-backend/internal/repository"
)

// ErrMalformedPayload rejects an import whose payload is not valid JSON
// or does not carry the expected bundle shape.
var ErrMalformedPayload = errors.New("malformed import payload")

type transferService struct {
	toolRepo     repository.ToolRepository
	sessionRepo  repository.UsageSessionRepository
	transferRepo repository.TransferRepository
	now          func() time.Time
}

func NewTransferService(toolRepo repository.ToolRepository, sessionRepo repository.UsageSessionRepository, transferRepo repository.TransferRepository) TransferService {
	return &transferService{
		toolRepo:     toolRepo,
		sessionRepo:  sessionRepo,
		transferRepo: transferRepo,
		now:          time.Now,
	}
}

// NewTransferServiceWithClock injects the clock, for deterministic tests.
func NewTransferServiceWithClock(toolRepo repository.ToolRepository, sessionRepo repository.UsageSessionRepository, transferRepo repository.TransferRepository, now func() time.Time) TransferService {
	return &transferService{toolRepo: toolRepo, sessionRepo: sessionRepo, transferRepo: transferRepo, now: now}
}

func (s *transferService) Export(ctx context.Context) (*domain.ExportBundle, error) {
	tools, err := s.toolRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ExportBundle{
		Tools:         tools,
		UsageSessions: sessions,
		ExportDate:    s.now(),
		Version:       domain.ExportFormatVersion,
	}, nil
}

func (s *transferService) ExportJSON(ctx context.Context) ([]byte, error) {
	bundle, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(bundle, "", "  ")
}

// Import replaces both collections wholesale; it is a full overwrite,
// never a merge.
func (s *transferService) Import(ctx context.Context, payload []byte) error {
	var bundle domain.ExportBundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		logger.Warn("Import rejected", "error", err)
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if bundle.Tools == nil && bundle.UsageSessions == nil {
		logger.Warn("Import rejected", "reason", "no collections in payload")
		return fmt.Errorf("%w: missing tools and usage_sessions", ErrMalformedPayload)
	}

	if err := s.transferRepo.ReplaceAll(ctx, bundle.Tools, bundle.UsageSessions); err != nil {
		return err
	}
	logger.Info("Ledger imported", "tools", len(bundle.Tools), "usage_sessions", len(bundle.UsageSessions), "version", bundle.Version)
	return nil
}
