package jobs

import (
	"context"
	"log/slog"

	"apparel/internal/core/application/usecases/queries"
	"apparel/internal/core/domain/model/order"
	"apparel/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// LateOrdersFinder lists the in-progress orders that are behind schedule.
type LateOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetLateOrdersQuery) ([]queries.LateOrder, error)
}

// LateOrderNotifier announces an overdue order to the subscribers of its room.
type LateOrderNotifier interface {
	OrderLate(ctx context.Context, o *order.Order, eta services.Eta) error
}

// LateOrderScanJob periodically projects every in-progress order and publishes
// order.late for each one whose current stage is overdue.
type LateOrderScanJob struct {
	finder   LateOrdersFinder
	notifier LateOrderNotifier
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLateOrderScanJob creates the scan job. schedule is a six field cron expression
// with seconds.
func NewLateOrderScanJob(
	finder LateOrdersFinder,
	notifier LateOrderNotifier,
	schedule string,
	logger *slog.Logger,
) *LateOrderScanJob {
	return &LateOrderScanJob{
		finder:   finder,
		notifier: notifier,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "late_order_scan_job"),
	}
}

// Run performs a single scan and returns the number of late orders found.
func (j *LateOrderScanJob) Run(ctx context.Context) (int, error) {
	late, err := j.finder.Handle(ctx, queries.NewGetLateOrdersQuery())
	if err != nil {
		return 0, err
	}

	for _, lo := range late {
		j.logger.WarnContext(ctx, "Order is late",
			"order_id", lo.Order.ID().String(),
			"status", lo.Order.Status().String(),
			"late_stage", string(lo.Eta.LateStage),
			"days_late", lo.Eta.DaysLate,
		)
		if notifyErr := j.notifier.OrderLate(ctx, lo.Order, lo.Eta); notifyErr != nil {
			j.logger.WarnContext(ctx, "Failed to publish late order",
				"order_id", lo.Order.ID().String(),
				"error", notifyErr,
			)
		}
	}

	return len(late), nil
}

// Start schedules the scan.
func (j *LateOrderScanJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		count, err := j.Run(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Late order scan failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Late order scan finished", "late_orders", count)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Late order scan job started", "schedule", j.schedule)
	return nil
}

// Stop unschedules the scan and waits for a running one to finish.
func (j *LateOrderScanJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Late order scan job stopped")
}
