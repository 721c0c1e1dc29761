package domain

import "time"

type ToolType string

const (
	ToolTypeTool      ToolType = "tool"
	ToolTypeEquipment ToolType = "equipment"
)

type ToolCondition string

const (
	ToolConditionExcellent   ToolCondition = "excellent"
	ToolConditionGood        ToolCondition = "good"
	ToolConditionFair        ToolCondition = "fair"
	ToolConditionPoor        ToolCondition = "poor"
	ToolConditionNeedsRepair ToolCondition = "needs_repair"
)

// Usage thresholds above which a tool is flagged for maintenance review.
const (
	EquipmentMaintenanceHours = 500
	ToolMaintenanceHours      = 200
)

type Tool struct {
	ID                 string              `json:"id"`
	SerialNumber       string              `json:"serial_number,omitempty"`
	Name               string              `json:"name"`
	Type               ToolType            `json:"type"`
	Category           string              `json:"category"`
	Description        string              `json:"description"`
	Location           string              `json:"location"`
	Supplier           string              `json:"supplier"`
	AssignedTo         string              `json:"assigned_to,omitempty"`
	PurchasePrice      float64             `json:"purchase_price"`
	CurrentValue       float64             `json:"current_value"`
	DepreciationRate   float64             `json:"depreciation_rate"`
	PurchaseDate       time.Time           `json:"purchase_date"`
	UsageHours         float64             `json:"usage_hours"`
	LastUsed           *time.Time          `json:"last_used,omitempty"`
	Condition          ToolCondition       `json:"condition"`
	IsActive           bool                `json:"is_active"`
	SaleInfo           *SaleInfo           `json:"sale_info,omitempty"`
	MaintenanceHistory []MaintenanceRecord `json:"maintenance_history,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// SaleInfo is written once when a tool is sold and never modified afterwards.
type SaleInfo struct {
	SalePrice  float64   `json:"sale_price"`
	SaleDate   time.Time `json:"sale_date"`
	SoldTo     string    `json:"sold_to"`
	SoldBy     string    `json:"sold_by"`
	SaleReason string    `json:"sale_reason"`
	SaleNotes  string    `json:"sale_notes,omitempty"`
}

// MaintenanceRecord is an append-only log entry owned by its parent tool.
type MaintenanceRecord struct {
	ID          string    `json:"id"`
	ToolID      string    `json:"tool_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	PerformedBy string    `json:"performed_by"`
}

// ToolUpdate carries the fields a caller may change on an existing tool.
// Purchase price, depreciation rate and purchase date are fixed at
// creation; usage hours only move through usage sessions.
type ToolUpdate struct {
	SerialNumber *string        `json:"serial_number,omitempty"`
	Name         *string        `json:"name,omitempty"`
	Category     *string        `json:"category,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Location     *string        `json:"location,omitempty"`
	Supplier     *string        `json:"supplier,omitempty"`
	AssignedTo   *string        `json:"assigned_to,omitempty"`
	Condition    *ToolCondition `json:"condition,omitempty"`
}

// DepreciationReport is the result of a straight-line depreciation
// calculation. Currency figures are rounded to 2 decimal places,
// YearsOwned to 1.
type DepreciationReport struct {
	OriginalValue      float64 `json:"original_value"`
	CurrentValue       float64 `json:"current_value"`
	DepreciatedAmount  float64 `json:"depreciated_amount"`
	YearsOwned         float64 `json:"years_owned"`
	AnnualDepreciation float64 `json:"annual_depreciation"`
	DepreciationRate   float64 `json:"depreciation_rate"`
}

// ToolsSummary aggregates the active portion of the catalog.
type ToolsSummary struct {
	TotalTools         int            `json:"total_tools"`
	TotalPurchaseValue float64        `json:"total_purchase_value"`
	TotalCurrentValue  float64        `json:"total_current_value"`
	TotalDepreciation  float64        `json:"total_depreciation"`
	ByLocation         map[string]int `json:"by_location"`
	ByType             map[string]int `json:"by_type"`
	ByCondition        map[string]int `json:"by_condition"`
	NeedsMaintenance   []Tool         `json:"needs_maintenance"`
}

// NeedsMaintenance reports whether a tool should be flagged for a
// maintenance review, based on its condition or accumulated usage.
func (t *Tool) NeedsMaintenance() bool {
	if t.Condition == ToolConditionPoor || t.Condition == ToolConditionNeedsRepair {
		return true
	}
	if t.Type == ToolTypeEquipment && t.UsageHours > EquipmentMaintenanceHours {
		return true
	}
	if t.Type == ToolTypeTool && t.UsageHours > ToolMaintenanceHours {
		return true
	}
	return false
}
