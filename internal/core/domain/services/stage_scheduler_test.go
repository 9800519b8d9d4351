package services_test

import (
	"testing"
	"time"

	"apparel/internal/core/domain/model/calendar"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d, hour int) time.Time {
	return time.Date(2024, m, d, hour, 0, 0, 0, time.UTC)
}

func profile(t *testing.T, prodMin, prodMax, shipMin, shipMax int, cal calendar.Calendar) leadtime.Profile {
	t.Helper()
	production, err := leadtime.NewRange("production", prodMin, prodMax)
	require.NoError(t, err)
	shipping, err := leadtime.NewRange("shipping", shipMin, shipMax)
	require.NoError(t, err)
	p, err := leadtime.NewProfile(production, shipping, cal)
	require.NoError(t, err)
	return p
}

func TestStageScheduler_Schedule(t *testing.T) {
	scheduler := services.NewStageScheduler()

	t.Run("should project the default profile from a monday anchor", func(t *testing.T) {
		anchor := day(time.January, 1, 0)

		s, err := scheduler.Schedule(leadtime.DefaultProfile(), anchor, nil)

		require.NoError(t, err)
		assert.Equal(t, anchor, s.Anchor)
		assert.Equal(t, anchor, s.InProduction.StartAt)
		assert.Equal(t, day(time.January, 15, 0), s.InProduction.EndAt)
		assert.Equal(t, day(time.January, 15, 0), s.Shipping.StartAt)
		assert.Equal(t, day(time.January, 19, 0), s.Shipping.EndAt)
		assert.Equal(t, day(time.January, 12, 0), s.Delivery.StartAt)
		assert.Equal(t, day(time.January, 19, 0), s.Delivery.EndAt)
	})

	t.Run("should start shipping exactly when production ends", func(t *testing.T) {
		s, err := scheduler.Schedule(leadtime.DefaultProfile(), day(time.March, 7, 15), nil)

		require.NoError(t, err)
		assert.Equal(t, s.InProduction.EndAt, s.Shipping.StartAt)
		assert.Equal(t, s.Shipping.EndAt, s.Delivery.EndAt)
	})

	t.Run("should anchor at payment when present", func(t *testing.T) {
		createdAt := day(time.January, 1, 8)
		paidAt := day(time.January, 5, 10)

		s, err := scheduler.Schedule(leadtime.DefaultProfile(), createdAt, &paidAt)

		require.NoError(t, err)
		assert.Equal(t, paidAt, s.Anchor)
		assert.Equal(t, day(time.January, 19, 10), s.InProduction.EndAt)
	})

	t.Run("should ignore a zero payment timestamp", func(t *testing.T) {
		createdAt := day(time.January, 1, 8)
		zero := time.Time{}

		s, err := scheduler.Schedule(leadtime.DefaultProfile(), createdAt, &zero)

		require.NoError(t, err)
		assert.Equal(t, createdAt, s.Anchor)
	})

	t.Run("should count on the profile calendar", func(t *testing.T) {
		cal, err := calendar.NewCalendar("Europe/Berlin", calendar.NewWeekdays(
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday))
		require.NoError(t, err)

		s, err := scheduler.Schedule(profile(t, 5, 5, 1, 1, cal), day(time.January, 5, 0), nil)

		require.NoError(t, err)
		assert.Equal(t, day(time.January, 11, 0), s.InProduction.EndAt)
		assert.Equal(t, day(time.January, 12, 0), s.Shipping.EndAt)
	})

	t.Run("should collapse to the anchor for zero lead times", func(t *testing.T) {
		anchor := day(time.January, 6, 12)

		s, err := scheduler.Schedule(profile(t, 0, 0, 0, 0, calendar.DefaultCalendar()), anchor, nil)

		require.NoError(t, err)
		assert.Equal(t, services.Window{StartAt: anchor, EndAt: anchor}, s.InProduction)
		assert.Equal(t, services.Window{StartAt: anchor, EndAt: anchor}, s.Delivery)
	})

	t.Run("should fail without a creation timestamp", func(t *testing.T) {
		paidAt := day(time.January, 5, 10)

		_, err := scheduler.Schedule(leadtime.DefaultProfile(), time.Time{}, &paidAt)

		require.ErrorIs(t, err, services.ErrMissingAnchor)
	})

	t.Run("should reject an unconstructed profile", func(t *testing.T) {
		_, err := scheduler.Schedule(leadtime.Profile{}, day(time.January, 1, 0), nil)

		require.ErrorIs(t, err, leadtime.ErrProfileIsNotConstructed)
	})
}
