package guard_test

import (
	"errors"
	"testing"

	"apparel/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("range not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type window struct {
		days  int
		guard guard.ConstructorGuard
	}
	errWindowNotConstructed := errors.New("window must be created via newWindow")

	newWindow := func(days int) (window, error) {
		if days < 0 {
			return window{}, errors.New("days cannot be negative")
		}
		return window{days: days, guard: guard.NewConstructorGuard()}, nil
	}

	w, err := newWindow(3)
	require.NoError(t, err)
	require.NoError(t, w.guard.Validate(errWindowNotConstructed))

	var zero window
	assert.Equal(t, errWindowNotConstructed, zero.guard.Validate(errWindowNotConstructed))

	_, err = newWindow(-1)
	require.Error(t, err)
}
