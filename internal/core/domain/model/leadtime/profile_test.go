package leadtime_test

import (
	"testing"
	"time"

	"apparel/internal/core/domain/model/calendar"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func weekdaysPtr(v calendar.Weekdays) *calendar.Weekdays { return &v }

func TestDefaultProfile(t *testing.T) {
	p := leadtime.DefaultProfile()

	require.NoError(t, p.Validate())
	assert.Equal(t, 7, p.Production().MinDays())
	assert.Equal(t, 10, p.Production().MaxDays())
	assert.Equal(t, 2, p.Shipping().MinDays())
	assert.Equal(t, 4, p.Shipping().MaxDays())
	assert.Equal(t, calendar.MondayToFriday, p.Calendar().WorkingDays())
	assert.Equal(t, "UTC", p.Calendar().Timezone())
}

func TestNewProfile_RequiresConstructedParts(t *testing.T) {
	production, err := leadtime.NewRange("production", 1, 2)
	require.NoError(t, err)

	_, err = leadtime.NewProfile(production, leadtime.Range{}, calendar.DefaultCalendar())
	require.ErrorIs(t, err, leadtime.ErrRangeIsNotConstructed)

	_, err = leadtime.NewProfile(production, production, calendar.Calendar{})
	require.ErrorIs(t, err, calendar.ErrCalendarIsNotConstructed)
}

func TestProfile_Apply(t *testing.T) {
	base := leadtime.DefaultProfile()

	t.Run("empty override keeps every field", func(t *testing.T) {
		got, err := base.Apply(leadtime.Override{})

		require.NoError(t, err)
		assert.True(t, got.IsEqual(base))
	})

	t.Run("only present fields are replaced", func(t *testing.T) {
		got, err := base.Apply(leadtime.Override{
			Production: leadtime.RangePatch{MaxDays: intPtr(15)},
			BusinessCalendar: leadtime.CalendarPatch{
				WorkingDays: weekdaysPtr(calendar.NewWeekdays(time.Monday, time.Tuesday, time.Wednesday)),
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 7, got.Production().MinDays())
		assert.Equal(t, 15, got.Production().MaxDays())
		assert.True(t, got.Shipping().IsEqual(base.Shipping()))
		assert.Equal(t, "UTC", got.Calendar().Timezone())
		assert.Equal(t, 3, got.Calendar().WorkingDays().Len())
	})

	t.Run("merged range is validated", func(t *testing.T) {
		_, err := base.Apply(leadtime.Override{
			Shipping: leadtime.RangePatch{MinDays: intPtr(10), MaxDays: intPtr(5)},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "shipping.minDays", errs.Field(err))
	})

	t.Run("partial bound conflicting with base is rejected", func(t *testing.T) {
		_, err := base.Apply(leadtime.Override{Production: leadtime.RangePatch{MinDays: intPtr(11)}})

		require.Error(t, err)
		assert.Equal(t, "production.minDays", errs.Field(err))
	})

	t.Run("empty working days is rejected", func(t *testing.T) {
		_, err := base.Apply(leadtime.Override{
			BusinessCalendar: leadtime.CalendarPatch{WorkingDays: weekdaysPtr(calendar.NewWeekdays())},
		})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("timezone is replaced", func(t *testing.T) {
		got, err := base.Apply(leadtime.Override{
			BusinessCalendar: leadtime.CalendarPatch{Timezone: strPtr("Europe/Berlin")},
		})

		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", got.Calendar().Timezone())
		assert.Equal(t, calendar.MondayToFriday, got.Calendar().WorkingDays())
	})

	t.Run("base is not modified", func(t *testing.T) {
		_, err := base.Apply(leadtime.Override{Production: leadtime.RangePatch{MinDays: intPtr(1)}})

		require.NoError(t, err)
		assert.Equal(t, 7, base.Production().MinDays())
	})

	t.Run("zero profile cannot be applied to", func(t *testing.T) {
		_, err := leadtime.Profile{}.Apply(leadtime.Override{})
		require.ErrorIs(t, err, leadtime.ErrProfileIsNotConstructed)
	})
}

func TestProfile_ApplyEach(t *testing.T) {
	production, err := leadtime.NewRange("production", 9, 12)
	require.NoError(t, err)
	shipping, err := leadtime.NewRange("shipping", 2, 4)
	require.NoError(t, err)
	base, err := leadtime.NewProfile(production, shipping, calendar.DefaultCalendar())
	require.NoError(t, err)
	mondayToSaturday := calendar.NewWeekdays(
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
	)

	t.Run("conflicting range keeps the base and the rest applies", func(t *testing.T) {
		got, err := base.ApplyEach(leadtime.Override{
			Production:       leadtime.RangePatch{MaxDays: intPtr(8)},
			Shipping:         leadtime.RangePatch{MaxDays: intPtr(6)},
			BusinessCalendar: leadtime.CalendarPatch{WorkingDays: &mondayToSaturday},
		})

		require.Error(t, err)
		assert.Equal(t, "production.minDays", errs.Field(err))
		require.NoError(t, got.Validate())
		assert.True(t, got.Production().IsEqual(production))
		assert.Equal(t, 6, got.Shipping().MaxDays())
		assert.Equal(t, mondayToSaturday, got.Calendar().WorkingDays())
	})

	t.Run("fitting override matches Apply", func(t *testing.T) {
		override := leadtime.Override{Production: leadtime.RangePatch{MaxDays: intPtr(15)}}
		want, err := base.Apply(override)
		require.NoError(t, err)

		got, err := base.ApplyEach(override)

		require.NoError(t, err)
		assert.True(t, want.IsEqual(got))
	})

	t.Run("zero profile cannot be applied to", func(t *testing.T) {
		_, err := leadtime.Profile{}.ApplyEach(leadtime.Override{})
		require.ErrorIs(t, err, leadtime.ErrProfileIsNotConstructed)
	})
}

func TestOverride_Merge(t *testing.T) {
	stored := leadtime.Override{
		Production: leadtime.RangePatch{MinDays: intPtr(3), MaxDays: intPtr(5)},
	}

	merged := stored.Merge(leadtime.Override{
		Production: leadtime.RangePatch{MaxDays: intPtr(8)},
		Shipping:   leadtime.RangePatch{MinDays: intPtr(1)},
	})

	assert.Equal(t, 3, *merged.Production.MinDays)
	assert.Equal(t, 8, *merged.Production.MaxDays)
	assert.Equal(t, 1, *merged.Shipping.MinDays)
	assert.Nil(t, merged.Shipping.MaxDays)
	assert.Nil(t, merged.BusinessCalendar.Timezone)
	assert.Equal(t, 5, *stored.Production.MaxDays)
}

func TestOverride_IsEmpty(t *testing.T) {
	assert.True(t, leadtime.Override{}.IsEmpty())
	assert.False(t, leadtime.Override{Shipping: leadtime.RangePatch{MaxDays: intPtr(2)}}.IsEmpty())
	assert.False(t, leadtime.OverrideFromProfile(leadtime.DefaultProfile()).IsEmpty())
}

func TestOverrideFromProfile_RoundTrip(t *testing.T) {
	base := leadtime.DefaultProfile()
	other, err := base.Apply(leadtime.Override{
		Production: leadtime.RangePatch{MinDays: intPtr(1), MaxDays: intPtr(2)},
		BusinessCalendar: leadtime.CalendarPatch{
			Timezone:    strPtr("Asia/Tokyo"),
			WorkingDays: weekdaysPtr(calendar.NewWeekdays(time.Saturday)),
		},
	})
	require.NoError(t, err)

	restored, err := base.Apply(leadtime.OverrideFromProfile(other))

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(other))
}
