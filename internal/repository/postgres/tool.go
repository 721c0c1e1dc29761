package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/repository"

	"github.com/lib/pq"
)

const toolColumns = `id, COALESCE(serial_number, ''), name, type, COALESCE(category, ''), COALESCE(description, ''),
	COALESCE(location, ''), COALESCE(supplier, ''), COALESCE(assigned_to, ''),
	purchase_price, current_value, depreciation_rate, purchase_date, usage_hours, last_used,
	condition, is_active, sale_price, sale_date, sold_to, sold_by, sale_reason, sale_notes,
	created_at, updated_at`

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (id, serial_number, name, type, category, description, location, supplier, assigned_to,
	          purchase_price, current_value, depreciation_rate, purchase_date, usage_hours, last_used, condition, is_active,
	          created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.SerialNumber, t.Name, t.Type, t.Category, t.Description,
		t.Location, t.Supplier, t.AssignedTo, t.PurchasePrice, t.CurrentValue, t.DepreciationRate,
		t.PurchaseDate, t.UsageHours, t.LastUsed, t.Condition, t.IsActive, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *toolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	t, err := scanTool(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadMaintenance(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET serial_number=$1, name=$2, category=$3, description=$4, location=$5,
	          supplier=$6, assigned_to=$7, condition=$8, updated_at=$9 WHERE id=$10`
	result, err := r.db.ExecContext(ctx, query, t.SerialNumber, t.Name, t.Category, t.Description,
		t.Location, t.Supplier, t.AssignedTo, t.Condition, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *toolRepository) Delete(ctx context.Context, id string) error {
	// Usage sessions are deliberately left behind; they reference the
	// tool weakly and a deleted tool orphans them.
	result, err := r.db.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	return r.queryTools(ctx, `SELECT `+toolColumns+` FROM tools ORDER BY created_at`)
}

func (r *toolRepository) ListByActive(ctx context.Context, active bool) ([]domain.Tool, error) {
	return r.queryTools(ctx, `SELECT `+toolColumns+` FROM tools WHERE is_active = $1 ORDER BY created_at`, active)
}

func (r *toolRepository) ListByLocation(ctx context.Context, location string) ([]domain.Tool, error) {
	return r.queryTools(ctx, `SELECT `+toolColumns+` FROM tools WHERE location = $1 ORDER BY created_at`, location)
}

func (r *toolRepository) ListByType(ctx context.Context, toolType domain.ToolType) ([]domain.Tool, error) {
	return r.queryTools(ctx, `SELECT `+toolColumns+` FROM tools WHERE type = $1 ORDER BY created_at`, toolType)
}

func (r *toolRepository) Search(ctx context.Context, query string) ([]domain.Tool, error) {
	sql := `SELECT ` + toolColumns + ` FROM tools
	        WHERE name ILIKE $1 OR category ILIKE $1 OR description ILIKE $1
	           OR supplier ILIKE $1 OR assigned_to ILIKE $1 OR serial_number ILIKE $1
	        ORDER BY created_at`
	return r.queryTools(ctx, sql, "%"+query+"%")
}

func (r *toolRepository) MarkSold(ctx context.Context, id string, sale *domain.SaleInfo) error {
	query := `UPDATE tools SET is_active = false, sale_price = $2, sale_date = $3, sold_to = $4,
	          sold_by = $5, sale_reason = $6, sale_notes = $7, updated_at = $3
	          WHERE id = $1 AND is_active`
	result, err := r.db.ExecContext(ctx, query, id, sale.SalePrice, sale.SaleDate,
		sale.SoldTo, sale.SoldBy, sale.SaleReason, sale.SaleNotes)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *toolRepository) UpdateValuation(ctx context.Context, id string, currentValue float64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tools SET current_value = $2 WHERE id = $1`, id, currentValue)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *toolRepository) AddUsage(ctx context.Context, id string, hours float64, usedAt time.Time) error {
	query := `UPDATE tools SET usage_hours = usage_hours + $2, last_used = $3, updated_at = $3 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, hours, usedAt)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *toolRepository) AddMaintenanceRecord(ctx context.Context, rec *domain.MaintenanceRecord) error {
	query := `INSERT INTO maintenance_records (id, tool_id, date, description, cost, performed_by)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.ToolID, rec.Date, rec.Description, rec.Cost, rec.PerformedBy)
	return err
}

func (r *toolRepository) queryTools(ctx context.Context, query string, args ...interface{}) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadMaintenanceAll(ctx, tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *toolRepository) loadMaintenance(ctx context.Context, t *domain.Tool) error {
	query := `SELECT id, tool_id, date, description, cost, performed_by
	          FROM maintenance_records WHERE tool_id = $1 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, t.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.MaintenanceRecord
		if err := rows.Scan(&rec.ID, &rec.ToolID, &rec.Date, &rec.Description, &rec.Cost, &rec.PerformedBy); err != nil {
			return err
		}
		t.MaintenanceHistory = append(t.MaintenanceHistory, rec)
	}
	return rows.Err()
}

func (r *toolRepository) loadMaintenanceAll(ctx context.Context, tools []domain.Tool) error {
	if len(tools) == 0 {
		return nil
	}
	ids := make([]string, len(tools))
	byID := make(map[string]*domain.Tool, len(tools))
	for i := range tools {
		ids[i] = tools[i].ID
		byID[tools[i].ID] = &tools[i]
	}

	query := `SELECT id, tool_id, date, description, cost, performed_by
	          FROM maintenance_records WHERE tool_id = ANY($1) ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.MaintenanceRecord
		if err := rows.Scan(&rec.ID, &rec.ToolID, &rec.Date, &rec.Description, &rec.Cost, &rec.PerformedBy); err != nil {
			return err
		}
		if t, ok := byID[rec.ToolID]; ok {
			t.MaintenanceHistory = append(t.MaintenanceHistory, rec)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTool(row rowScanner) (*domain.Tool, error) {
	t := &domain.Tool{}
	var salePrice *float64
	var saleDate *time.Time
	var soldTo, soldBy, saleReason, saleNotes *string

	err := row.Scan(&t.ID, &t.SerialNumber, &t.Name, &t.Type, &t.Category, &t.Description,
		&t.Location, &t.Supplier, &t.AssignedTo, &t.PurchasePrice, &t.CurrentValue, &t.DepreciationRate,
		&t.PurchaseDate, &t.UsageHours, &t.LastUsed, &t.Condition, &t.IsActive,
		&salePrice, &saleDate, &soldTo, &soldBy, &saleReason, &saleNotes,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if salePrice != nil && saleDate != nil {
		t.SaleInfo = &domain.SaleInfo{
			SalePrice: *salePrice,
			SaleDate:  *saleDate,
		}
		if soldTo != nil {
			t.SaleInfo.SoldTo = *soldTo
		}
		if soldBy != nil {
			t.SaleInfo.SoldBy = *soldBy
		}
		if saleReason != nil {
			t.SaleInfo.SaleReason = *saleReason
		}
		if saleNotes != nil {
			t.SaleInfo.SaleNotes = *saleNotes
		}
	}
	return t, nil
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
