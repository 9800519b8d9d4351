package commands

import (
	"context"
	"log/slog"

	"apparel/internal/core/domain/model/kernel"
)

// logNotifyFailure records a realtime publish failure. The mutation is already
// committed, so the error never reaches the caller.
func logNotifyFailure(ctx context.Context, logger *slog.Logger, event string, orderID kernel.UUID, err error) {
	if err == nil {
		return
	}
	logger.WarnContext(ctx, "Realtime notification failed",
		"event", event,
		"order_id", orderID.String(),
		"error", err,
	)
}
