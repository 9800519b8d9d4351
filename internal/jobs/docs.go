// Package jobs provides scheduled background tasks for the order scheduler.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LateOrderScanJob - projects every paid or shipping order and publishes order.late
// to the order's room for each one whose current stage is overdue
// 2. HubStatsJob - logs the EventHub room, subscriber and delivery counters
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(lateOrdersHandler, notifier, hub, jobs.Schedules{
//		LateScan: "0 */15 * * * *",
//		HubStats: "0 * * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed scan is logged and retried on the next tick
// - A failed late notification is logged and does not stop the scan
// - Failed job starts will stop any already running jobs
package jobs
