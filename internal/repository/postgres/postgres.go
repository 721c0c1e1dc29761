package postgres

import (
	"database/sql"

	"equipledger-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ToolRepository
	repository.UsageSessionRepository
	repository.TransferRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ToolRepository:         NewToolRepository(db),
		UsageSessionRepository: NewUsageSessionRepository(db),
		TransferRepository:     NewTransferRepository(db),
	}
}
