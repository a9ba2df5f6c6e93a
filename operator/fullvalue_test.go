package operator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/temporal"
)

func TestRoundedToFullHour(t *testing.T) {
	t.Run("Below half rounds down", func(t *testing.T) {
		got, err := RoundedToFullHour.ApplyTime(clock(14, 29, 59, 999))
		require.NoError(t, err)
		require.Equal(t, clock(14, 0, 0, 0), got)
	})

	t.Run("Half rounds up", func(t *testing.T) {
		got, err := RoundedToFullHour.ApplyTime(clock(14, 30, 0, 0))
		require.NoError(t, err)
		require.Equal(t, clock(15, 0, 0, 0), got)
	})

	t.Run("Rounding up from 23:30 yields the end-of-day marker", func(t *testing.T) {
		got, err := RoundedToFullHour.ApplyTime(clock(23, 30, 0, 0))
		require.NoError(t, err)
		require.True(t, got.IsEndOfDay())
	})

	t.Run("End-of-day marker is stable", func(t *testing.T) {
		got, err := RoundedToFullHour.ApplyTime(temporal.EndOfDay)
		require.NoError(t, err)
		require.Equal(t, temporal.EndOfDay, got)
	})
}

func TestRoundedToFullMinute(t *testing.T) {
	got, err := RoundedToFullMinute.ApplyTime(clock(10, 15, 29, 999_999_999))
	require.NoError(t, err)
	require.Equal(t, clock(10, 15, 0, 0), got)

	got, err = RoundedToFullMinute.ApplyTime(clock(10, 15, 30, 0))
	require.NoError(t, err)
	require.Equal(t, clock(10, 16, 0, 0), got)

	// carry through the hour and up to the day boundary
	got, err = RoundedToFullMinute.ApplyTime(clock(23, 59, 30, 0))
	require.NoError(t, err)
	require.True(t, got.IsEndOfDay())
}

func TestNextFullHour(t *testing.T) {
	got, err := NextFullHour.ApplyTime(clock(14, 0, 0, 0))
	require.NoError(t, err)
	require.Equal(t, clock(15, 0, 0, 0), got)

	got, err = NextFullHour.ApplyTime(clock(23, 5, 0, 0))
	require.NoError(t, err)
	require.True(t, got.IsEndOfDay())

	// stepping from the marker normalizes hour 24 to 0 first
	got, err = NextFullHour.ApplyTime(temporal.EndOfDay)
	require.NoError(t, err)
	require.Equal(t, clock(1, 0, 0, 0), got)
}

func TestNextFullMinute(t *testing.T) {
	got, err := NextFullMinute.ApplyTime(clock(10, 59, 59, 1))
	require.NoError(t, err)
	require.Equal(t, clock(11, 0, 0, 0), got)

	got, err = NextFullMinute.ApplyTime(temporal.EndOfDay)
	require.NoError(t, err)
	require.Equal(t, clock(0, 1, 0, 0), got)
}

func TestFullValueOnTimestamp(t *testing.T) {
	t.Run("Hour 24 never leaks into timestamps", func(t *testing.T) {
		got, err := RoundedToFullHour.ApplyTimestamp(stamp(2024, temporal.December, 31, 23, 30, 0, 0))
		require.NoError(t, err)
		require.Equal(t, stamp(2025, temporal.January, 1, 0, 0, 0, 0), got)

		got, err = NextFullHour.ApplyTimestamp(stamp(2024, temporal.February, 28, 23, 10, 0, 0))
		require.NoError(t, err)
		require.Equal(t, stamp(2024, temporal.February, 29, 0, 0, 0, 0), got)
	})

	t.Run("Plain rounding keeps the date", func(t *testing.T) {
		got, err := RoundedToFullMinute.ApplyTimestamp(stamp(2024, temporal.June, 1, 10, 15, 45, 0))
		require.NoError(t, err)
		require.Equal(t, stamp(2024, temporal.June, 1, 10, 16, 0, 0), got)
	})
}
