package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
)

func TestNewMachineDuration(t *testing.T) {
	t.Run("Nano carry", func(t *testing.T) {
		d := NewMachineDuration(1, 2_500_000_000)
		require.Equal(t, int64(3), d.Seconds)
		require.Equal(t, int32(500_000_000), d.Nanos)
	})

	t.Run("Sign alignment", func(t *testing.T) {
		d := NewMachineDuration(1, -500_000_000)
		require.Equal(t, int64(0), d.Seconds)
		require.Equal(t, int32(500_000_000), d.Nanos)

		d = NewMachineDuration(-2, 500_000_000)
		require.Equal(t, int64(-1), d.Seconds)
		require.Equal(t, int32(-500_000_000), d.Nanos)
		require.True(t, d.IsNegative())
	})
}

func TestNewCalendarDuration(t *testing.T) {
	t.Run("Canonical ordering and zero drop", func(t *testing.T) {
		d, err := NewCalendarDuration(false,
			DurationItem{Amount: 30, Unit: UnitMinutes},
			DurationItem{Amount: 0, Unit: UnitSeconds},
			DurationItem{Amount: 2, Unit: UnitHours},
		)
		require.NoError(t, err)
		require.Len(t, d.Items, 2)
		require.Equal(t, UnitHours, d.Items[0].Unit)
		require.Equal(t, UnitMinutes, d.Items[1].Unit)
	})

	t.Run("Duplicate unit rejected", func(t *testing.T) {
		_, err := NewCalendarDuration(false,
			DurationItem{Amount: 1, Unit: UnitHours},
			DurationItem{Amount: 2, Unit: UnitHours},
		)
		require.ErrorIs(t, err, errs.ErrRangeViolation)
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		_, err := NewCalendarDuration(false, DurationItem{Amount: -1, Unit: UnitDays})
		require.ErrorIs(t, err, errs.ErrRangeViolation)
	})

	t.Run("Zero duration loses its sign", func(t *testing.T) {
		d, err := NewCalendarDuration(true)
		require.NoError(t, err)
		require.True(t, d.IsZero())
		require.False(t, d.Negative)
	})
}

func TestCalendarDuration_String(t *testing.T) {
	d, err := NewCalendarDuration(true,
		DurationItem{Amount: 1, Unit: UnitYears},
		DurationItem{Amount: 2, Unit: UnitMonths},
		DurationItem{Amount: 3, Unit: UnitHours},
	)
	require.NoError(t, err)
	require.Equal(t, "-P1Y2MT3H", d.String())
	require.Equal(t, "PT0S", CalendarDuration{}.String())
}

func TestDayPeriod_Label(t *testing.T) {
	require.Equal(t, "am", TwelveHourDayPeriod.Label(MustTimeOfDay(0, 30, 0, 0)))
	require.Equal(t, "am", TwelveHourDayPeriod.Label(MustTimeOfDay(11, 59, 0, 0)))
	require.Equal(t, "pm", TwelveHourDayPeriod.Label(MustTimeOfDay(12, 0, 0, 0)))
	require.Equal(t, "pm", TwelveHourDayPeriod.Label(MustTimeOfDay(23, 59, 0, 0)))
	// the end-of-day marker folds onto midnight
	require.Equal(t, "am", TwelveHourDayPeriod.Label(EndOfDay))
}

func TestWeekModel_IsWeekend(t *testing.T) {
	t.Run("ISO weekend", func(t *testing.T) {
		require.True(t, ISOWeekModel.IsWeekend(Saturday))
		require.True(t, ISOWeekModel.IsWeekend(Sunday))
		require.False(t, ISOWeekModel.IsWeekend(Friday))
	})

	t.Run("Wrapping weekend", func(t *testing.T) {
		m, err := NewWeekModel(Saturday, 1, Friday, Saturday)
		require.NoError(t, err)
		require.True(t, m.IsWeekend(Friday))
		require.True(t, m.IsWeekend(Saturday))
		require.False(t, m.IsWeekend(Sunday))

		wrap, err := NewWeekModel(Monday, 1, Sunday, Monday)
		require.NoError(t, err)
		require.True(t, wrap.IsWeekend(Sunday))
		require.True(t, wrap.IsWeekend(Monday))
		require.False(t, wrap.IsWeekend(Wednesday))
	})
}
