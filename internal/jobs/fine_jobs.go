package jobs

import (
	"context"
	"time"

	"gssb-library-backend/internal/logger"
)

// UpdateFines runs the nightly fee sweep: every active checkout past its due
// date gets the configured fine materialized, everything else is reset to
// zero.
func (jr *JobRunner) UpdateFines() {
	jr.runWithRecovery("UpdateFines", func() {
		ctx := context.Background()

		count, err := jr.services.Checkout.UpdateFees(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to update fines", "error", err)
			return
		}
		logger.Info("Updated fines on active checkouts", "count", count)
	})
}
