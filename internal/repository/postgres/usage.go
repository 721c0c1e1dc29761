package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/repository"
)

const sessionColumns = `id, tool_id, start_time, end_time, used_by, COALESCE(project, ''), COALESCE(notes, ''), hours`

type usageSessionRepository struct {
	db *sql.DB
}

func NewUsageSessionRepository(db *sql.DB) repository.UsageSessionRepository {
	return &usageSessionRepository{db: db}
}

func (r *usageSessionRepository) Create(ctx context.Context, s *domain.UsageSession) error {
	query := `INSERT INTO usage_sessions (id, tool_id, start_time, end_time, used_by, project, notes, hours)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.ToolID, s.StartTime, s.EndTime, s.UsedBy, s.Project, s.Notes, s.Hours)
	return err
}

func (r *usageSessionRepository) GetByID(ctx context.Context, id string) (*domain.UsageSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM usage_sessions WHERE id = $1`
	s := &domain.UsageSession{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.ToolID, &s.StartTime, &s.EndTime,
		&s.UsedBy, &s.Project, &s.Notes, &s.Hours)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Close stamps the end time and computed hours. The end_time guard makes
// a second close a no-op reported as ErrNotFound, so hours are never
// double-counted on the parent tool.
func (r *usageSessionRepository) Close(ctx context.Context, id string, endTime time.Time, hours float64) error {
	query := `UPDATE usage_sessions SET end_time = $2, hours = $3 WHERE id = $1 AND end_time IS NULL`
	result, err := r.db.ExecContext(ctx, query, id, endTime, hours)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *usageSessionRepository) ListByTool(ctx context.Context, toolID string) ([]domain.UsageSession, error) {
	return r.querySessions(ctx, `SELECT `+sessionColumns+` FROM usage_sessions WHERE tool_id = $1 ORDER BY start_time`, toolID)
}

func (r *usageSessionRepository) List(ctx context.Context) ([]domain.UsageSession, error) {
	return r.querySessions(ctx, `SELECT `+sessionColumns+` FROM usage_sessions ORDER BY start_time`)
}

func (r *usageSessionRepository) querySessions(ctx context.Context, query string, args ...interface{}) ([]domain.UsageSession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.UsageSession
	for rows.Next() {
		var s domain.UsageSession
		if err := rows.Scan(&s.ID, &s.ToolID, &s.StartTime, &s.EndTime, &s.UsedBy, &s.Project, &s.Notes, &s.Hours); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
