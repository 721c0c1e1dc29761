package jobs

import (
	"context"

	"equipledger-backend/internal/logger"
)

// RevalueDepreciation recomputes the current value of every tool so the
// catalog tracks wall-clock aging between summary requests.
func (jr *JobRunner) RevalueDepreciation() {
	jr.runWithRecovery("RevalueDepreciation", func() {
		ctx := context.Background()

		count, err := jr.services.Tool.RevalueAllTools(ctx)
		if err != nil {
			logger.Error("Failed to revalue tools", "error", err, "revalued", count)
			return
		}
		logger.Info("Revalued tool depreciation", "count", count)
	})
}
