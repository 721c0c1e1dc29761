package postgres

import (
	"context"
	"database/sql"
	"time"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/repository"
)

type transferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

// ReplaceAll swaps out both collections inside one transaction so a
// failed import never leaves the ledger half-replaced.
func (r *transferRepository) ReplaceAll(ctx context.Context, tools []domain.Tool, sessions []domain.UsageSession) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"maintenance_records", "usage_sessions", "tools"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}

	toolInsert := `INSERT INTO tools (id, serial_number, name, type, category, description, location, supplier, assigned_to,
	               purchase_price, current_value, depreciation_rate, purchase_date, usage_hours, last_used, condition, is_active,
	               sale_price, sale_date, sold_to, sold_by, sale_reason, sale_notes, created_at, updated_at)
	               VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`
	maintInsert := `INSERT INTO maintenance_records (id, tool_id, date, description, cost, performed_by)
	                VALUES ($1, $2, $3, $4, $5, $6)`

	for i := range tools {
		t := &tools[i]
		var salePrice *float64
		var saleDate *time.Time
		var soldTo, soldBy, saleReason, saleNotes *string
		if t.SaleInfo != nil {
			salePrice = &t.SaleInfo.SalePrice
			saleDate = &t.SaleInfo.SaleDate
			soldTo = &t.SaleInfo.SoldTo
			soldBy = &t.SaleInfo.SoldBy
			saleReason = &t.SaleInfo.SaleReason
			saleNotes = &t.SaleInfo.SaleNotes
		}
		if _, err := tx.ExecContext(ctx, toolInsert, t.ID, t.SerialNumber, t.Name, t.Type, t.Category, t.Description,
			t.Location, t.Supplier, t.AssignedTo, t.PurchasePrice, t.CurrentValue, t.DepreciationRate,
			t.PurchaseDate, t.UsageHours, t.LastUsed, t.Condition, t.IsActive,
			salePrice, saleDate, soldTo, soldBy, saleReason, saleNotes,
			t.CreatedAt, t.UpdatedAt); err != nil {
			return err
		}
		for _, rec := range t.MaintenanceHistory {
			if _, err := tx.ExecContext(ctx, maintInsert, rec.ID, rec.ToolID, rec.Date, rec.Description, rec.Cost, rec.PerformedBy); err != nil {
				return err
			}
		}
	}

	sessionInsert := `INSERT INTO usage_sessions (id, tool_id, start_time, end_time, used_by, project, notes, hours)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, s := range sessions {
		if _, err := tx.ExecContext(ctx, sessionInsert, s.ID, s.ToolID, s.StartTime, s.EndTime, s.UsedBy, s.Project, s.Notes, s.Hours); err != nil {
			return err
		}
	}

	return tx.Commit()
}
