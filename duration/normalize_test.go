package duration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

func dur(t *testing.T, negative bool, items ...temporal.DurationItem) temporal.CalendarDuration {
	t.Helper()
	d, err := temporal.NewCalendarDuration(negative, items...)
	require.NoError(t, err)

	return d
}

func item(amount int64, unit temporal.Unit) temporal.DurationItem {
	return temporal.DurationItem{Amount: amount, Unit: unit}
}

func TestNormalizer_Only(t *testing.T) {
	t.Run("Collapse to minutes", func(t *testing.T) {
		d := dur(t, false, item(2, temporal.UnitHours), item(30, temporal.UnitMinutes), item(45, temporal.UnitSeconds))

		got, err := Only(temporal.UnitMinutes).Apply(d)
		require.NoError(t, err)
		require.Equal(t, dur(t, false, item(150, temporal.UnitMinutes)), got)
	})

	t.Run("Sub-unit remainder is lost", func(t *testing.T) {
		d := dur(t, false, item(59, temporal.UnitSeconds))

		got, err := Only(temporal.UnitMinutes).Apply(d)
		require.NoError(t, err)
		require.True(t, got.IsZero())
	})

	t.Run("Non-clock unit rejected", func(t *testing.T) {
		_, err := Only(temporal.UnitDays).Apply(dur(t, false, item(1, temporal.UnitHours)))
		require.ErrorIs(t, err, errs.ErrUnsupportedOperation)
	})
}

func TestNormalizer_Truncate(t *testing.T) {
	t.Run("Drops components finer than the cutoff", func(t *testing.T) {
		d := dur(t, false,
			item(1, temporal.UnitHours),
			item(29, temporal.UnitMinutes),
			item(45, temporal.UnitSeconds),
			item(999, temporal.UnitMillis),
		)

		got, err := Truncate(temporal.UnitMinutes).Apply(d)
		require.NoError(t, err)
		require.Equal(t, dur(t, false, item(1, temporal.UnitHours), item(29, temporal.UnitMinutes)), got)
	})

	t.Run("Calendrical components pass through", func(t *testing.T) {
		d := dur(t, false, item(3, temporal.UnitDays), item(90, temporal.UnitSeconds))

		got, err := Truncate(temporal.UnitMinutes).Apply(d)
		require.NoError(t, err)
		require.Equal(t, dur(t, false, item(3, temporal.UnitDays), item(1, temporal.UnitMinutes)), got)
	})
}

func TestNormalizer_Round(t *testing.T) {
	t.Run("Half-way carries one unit", func(t *testing.T) {
		d := dur(t, false, item(1, temporal.UnitHours), item(30, temporal.UnitMinutes))

		got, err := Round(temporal.UnitHours).Apply(d)
		require.NoError(t, err)
		require.Equal(t, dur(t, false, item(2, temporal.UnitHours)), got)
	})

	t.Run("Below half truncates", func(t *testing.T) {
		d := dur(t, false, item(1, temporal.UnitHours), item(29, temporal.UnitMinutes), item(59, temporal.UnitSeconds))

		got, err := Round(temporal.UnitHours).Apply(d)
		require.NoError(t, err)
		require.Equal(t, dur(t, false, item(1, temporal.UnitHours)), got)
	})

	t.Run("Millisecond threshold is 500", func(t *testing.T) {
		d := dur(t, false, item(2, temporal.UnitSeconds), item(500, temporal.UnitMillis))

		got, err := Round(temporal.UnitSeconds).Apply(d)
		require.NoError(t, err)
		require.Equal(t, dur(t, false, item(3, temporal.UnitSeconds)), got)
	})

	t.Run("Nanoseconds round to themselves", func(t *testing.T) {
		d := dur(t, false, item(123, temporal.UnitNanos))

		got, err := Round(temporal.UnitNanos).Apply(d)
		require.NoError(t, err)
		require.Equal(t, d, got)
	})

	t.Run("Sign is preserved", func(t *testing.T) {
		d := dur(t, true, item(1, temporal.UnitHours), item(45, temporal.UnitMinutes))

		got, err := Round(temporal.UnitHours).Apply(d)
		require.NoError(t, err)
		require.Equal(t, dur(t, true, item(2, temporal.UnitHours)), got)
	})

	t.Run("Carry cascades into a canonical form", func(t *testing.T) {
		// 59 minutes 30 seconds rounds to one full hour
		d := dur(t, false, item(59, temporal.UnitMinutes), item(30, temporal.UnitSeconds))

		got, err := Round(temporal.UnitMinutes).Apply(d)
		require.NoError(t, err)
		require.Equal(t, dur(t, false, item(1, temporal.UnitHours)), got)
	})
}
