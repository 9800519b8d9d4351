package leadtime_test

import (
	"testing"

	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := leadtime.NewRange("production", 7, 10)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, 7, r.MinDays())
		assert.Equal(t, 10, r.MaxDays())
		assert.Equal(t, "7-10", r.String())
	})

	t.Run("equal bounds are allowed", func(t *testing.T) {
		r, err := leadtime.NewRange("shipping", 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, r.MaxDays())
	})

	t.Run("min greater than max names the min field", func(t *testing.T) {
		_, err := leadtime.NewRange("production", 10, 5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "production.minDays", errs.Field(err))
		assert.Contains(t, err.Error(), "10 is greater than maxDays 5")
	})

	t.Run("negative values are out of range", func(t *testing.T) {
		_, err := leadtime.NewRange("shipping", 1, -2)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, "shipping.maxDays", errs.Field(err))
	})

	t.Run("values above the cap are out of range", func(t *testing.T) {
		_, err := leadtime.NewRange("shipping", 1, leadtime.MaxDays+1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var r leadtime.Range
		assert.Equal(t, leadtime.ErrRangeIsNotConstructed, r.Validate())
	})
}
