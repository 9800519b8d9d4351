package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the jobs. Expressions have six fields,
// seconds first.
type Schedules struct {
	LateScan string
	HubStats string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lateOrderScanJob *LateOrderScanJob
	hubStatsJob      *HubStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	finder LateOrdersFinder,
	notifier LateOrderNotifier,
	stats StatsSource,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lateOrderScanJob: NewLateOrderScanJob(finder, notifier, schedules.LateScan, logger),
		hubStatsJob:      NewHubStatsJob(stats, schedules.HubStats, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lateOrderScanJob.Start(); err != nil {
		return fmt.Errorf("failed to start late order scan job: %w", err)
	}

	if err := jm.hubStatsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lateOrderScanJob.Stop()
		return fmt.Errorf("failed to start hub stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.hubStatsJob.Stop()
	jm.lateOrderScanJob.Stop()
}
