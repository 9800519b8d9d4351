package jobs

import (
	"context"
	"log/slog"

	"apparel/internal/eventhub"

	"github.com/robfig/cron/v3"
)

// StatsSource reports EventHub counters.
type StatsSource interface {
	Stats() eventhub.Stats
}

// HubStatsJob logs the EventHub counters on a schedule.
type HubStatsJob struct {
	source   StatsSource
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewHubStatsJob(source StatsSource, schedule string, logger *slog.Logger) *HubStatsJob {
	return &HubStatsJob{
		source:   source,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "hub_stats_job"),
	}
}

// Run logs one snapshot and returns it.
func (j *HubStatsJob) Run(ctx context.Context) eventhub.Stats {
	stats := j.source.Stats()
	j.logger.InfoContext(ctx, "Event hub stats",
		"rooms", stats.Rooms,
		"subscribers", stats.Subscribers,
		"published", stats.Published,
		"delivered", stats.Delivered,
		"dropped", stats.Dropped,
	)
	return stats
}

func (j *HubStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hub stats job started", "schedule", j.schedule)
	return nil
}

func (j *HubStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Hub stats job stopped")
}
