package operator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/field"
	"github.com/arloliu/tempo/temporal"
)

func TestRound(t *testing.T) {
	t.Run("Nearest picks the closer boundary", func(t *testing.T) {
		got, err := Round(field.MinuteOfHour, RoundNearest, 15).ApplyTime(clock(14, 37, 0, 0))
		require.NoError(t, err)
		require.Equal(t, clock(14, 30, 0, 0), got)

		got, err = Round(field.MinuteOfHour, RoundNearest, 15).ApplyTime(clock(14, 38, 0, 0))
		require.NoError(t, err)
		require.Equal(t, clock(14, 45, 0, 0), got)
	})

	t.Run("Exact halfway rounds up", func(t *testing.T) {
		got, err := Round(field.MinuteOfHour, RoundNearest, 60).ApplyTime(clock(14, 30, 0, 0))
		require.NoError(t, err)
		require.Equal(t, clock(15, 0, 0, 0), got)
	})

	t.Run("Directions", func(t *testing.T) {
		up, err := Round(field.SecondOfMinute, RoundUp, 10).ApplyTime(clock(9, 0, 41, 0))
		require.NoError(t, err)
		require.Equal(t, clock(9, 0, 50, 0), up)

		down, err := Round(field.SecondOfMinute, RoundDown, 10).ApplyTime(clock(9, 0, 49, 0))
		require.NoError(t, err)
		require.Equal(t, clock(9, 0, 40, 0), down)
	})

	t.Run("Idempotence", func(t *testing.T) {
		for _, dir := range []RoundingDirection{RoundUp, RoundDown, RoundNearest} {
			op := Round(field.MinuteOfHour, dir, 15)
			once, err := op.ApplyTime(clock(8, 52, 0, 0))
			require.NoError(t, err)
			twice, err := op.ApplyTime(once)
			require.NoError(t, err)
			require.Equal(t, once, twice, "direction %s", dir)
		}
	})

	t.Run("Boundary beyond the maximum carries upward", func(t *testing.T) {
		got, err := Round(field.SecondOfMinute, RoundUp, 45).ApplyTime(clock(10, 59, 50, 0))
		require.NoError(t, err)
		require.Equal(t, clock(11, 0, 30, 0), got)
	})

	t.Run("Timestamp carry rolls the date", func(t *testing.T) {
		got, err := Round(field.MinuteOfHour, RoundUp, 45).ApplyTimestamp(stamp(2024, temporal.June, 30, 23, 50, 0, 0))
		require.NoError(t, err)
		require.Equal(t, stamp(2024, temporal.July, 1, 0, 30, 0, 0), got)
	})

	t.Run("Date field rounding", func(t *testing.T) {
		got, err := Round(field.DayOfMonth, RoundDown, 10).ApplyDate(date(2024, temporal.May, 27))
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.May, 20), got)
	})
}

func TestProportional(t *testing.T) {
	t.Run("Minimum is exactly zero", func(t *testing.T) {
		got, err := ProportionOf(field.MinuteOfHour).Time(clock(9, 0, 30, 0))
		require.NoError(t, err)
		require.Equal(t, "0", got.String())
	})

	t.Run("Middle of a plain range", func(t *testing.T) {
		got, err := ProportionOf(field.MinuteOfHour).Time(clock(9, 30, 0, 0))
		require.NoError(t, err)
		require.Equal(t, "0.5", got.String())
	})

	t.Run("Maximum is exactly one", func(t *testing.T) {
		got, err := ProportionOf(field.MinuteOfHour).Time(clock(9, 59, 0, 0))
		require.NoError(t, err)
		require.Equal(t, "1", got.String())
	})

	t.Run("Extended hour range", func(t *testing.T) {
		got, err := ProportionOf(field.HourOfDay).Time(clock(12, 0, 0, 0))
		require.NoError(t, err)
		require.Equal(t, "0.5", got.String())

		got, err = ProportionOf(field.HourOfDay).Time(temporal.EndOfDay)
		require.NoError(t, err)
		require.Equal(t, "1", got.String())
	})

	t.Run("Reduced range opts out of the marker handling", func(t *testing.T) {
		got, err := ProportionOf(field.HourOfDay).ReducedRange().Time(clock(12, 0, 0, 0))
		require.NoError(t, err)
		require.Equal(t, "0.48", got.String())
	})

	t.Run("Timestamps are always reduced", func(t *testing.T) {
		got, err := ProportionOf(field.HourOfDay).Timestamp(stamp(2024, temporal.June, 1, 12, 0, 0, 0))
		require.NoError(t, err)
		require.Equal(t, "0.5", got.String())
	})

	t.Run("Repeating fraction trims to 15 digits", func(t *testing.T) {
		// day 15 of leap February: (15-1)/29
		got, err := ProportionOf(field.DayOfMonth).Date(date(2024, temporal.February, 15))
		require.NoError(t, err)
		require.Equal(t, "0.482758620689655", got.String())
	})
}
