package service

import (
	"context"
	"time"

	"equipledger-backend/internal/domain"
	"equipledger-backend/internal/logger"
)

// Bootstrap seeds the catalog with sample rows when it is empty. It is
// invoked explicitly by the host at startup; nothing seeds lazily.
func Bootstrap(ctx context.Context, tools ToolService) error {
	existing, err := tools.ListTools(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Debug("Bootstrap skipped, catalog not empty", "tools", len(existing))
		return nil
	}

	samples := []domain.Tool{
		{
			Name:             "Two-Post Vehicle Lift",
			Type:             domain.ToolTypeEquipment,
			Category:         "Lifting",
			Description:      "10,000 lb capacity two-post lift, bay 2",
			Location:         "Garage",
			Supplier:         "BendPak",
			SerialNumber:     "BP-10AP-48291",
			PurchasePrice:    5200,
			DepreciationRate: 10,
			PurchaseDate:     time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
			Condition:        domain.ToolConditionGood,
		},
		{
			Name:             "OBD-II Diagnostic Scanner",
			Type:             domain.ToolTypeEquipment,
			Category:         "Diagnostics",
			Description:      "Full-system scan tool with coding support",
			Location:         "Service Desk",
			Supplier:         "Autel",
			SerialNumber:     "AU-MS906-0042",
			PurchasePrice:    1450,
			DepreciationRate: 25,
			PurchaseDate:     time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
			Condition:        domain.ToolConditionExcellent,
		},
		{
			Name:             "Torque Wrench 1/2\"",
			Type:             domain.ToolTypeTool,
			Category:         "Hand Tools",
			Description:      "40-250 Nm click-type",
			Location:         "Garage",
			Supplier:         "Snap-on",
			PurchasePrice:    320,
			DepreciationRate: 15,
			PurchaseDate:     time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC),
			Condition:        domain.ToolConditionGood,
		},
		{
			Name:             "Hydraulic Floor Jack",
			Type:             domain.ToolTypeTool,
			Category:         "Lifting",
			Description:      "3-ton low-profile jack",
			Location:         "Showroom",
			Supplier:         "Arcan",
			PurchasePrice:    240,
			DepreciationRate: 20,
			PurchaseDate:     time.Date(2021, 6, 5, 0, 0, 0, 0, time.UTC),
			Condition:        domain.ToolConditionFair,
		},
	}

	for i := range samples {
		if err := tools.AddTool(ctx, &samples[i]); err != nil {
			return err
		}
	}
	logger.Info("Catalog seeded with sample tools", "count", len(samples))
	return nil
}
