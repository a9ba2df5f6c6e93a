package operator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/field"
	"github.com/arloliu/tempo/temporal"
)

func date(y int, m temporal.Month, d int) temporal.Date {
	return temporal.MustDate(y, m, d)
}

func clock(h, m, s, n int) temporal.TimeOfDay {
	return temporal.MustTimeOfDay(h, m, s, n)
}

func stamp(y int, mo temporal.Month, d, h, mi, s, n int) temporal.Timestamp {
	return temporal.MustTimestamp(temporal.MustDate(y, mo, d), temporal.MustTimeOfDay(h, mi, s, n))
}

func TestMinimizeMaximize(t *testing.T) {
	t.Run("Day of month", func(t *testing.T) {
		got, err := Minimize(field.DayOfMonth).ApplyDate(date(2024, temporal.February, 15))
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.February, 1), got)

		got, err = Maximize(field.DayOfMonth).ApplyDate(date(2024, temporal.February, 15))
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.February, 29), got)

		got, err = Maximize(field.DayOfMonth).ApplyDate(date(2023, temporal.February, 15))
		require.NoError(t, err)
		require.Equal(t, date(2023, temporal.February, 28), got)
	})

	t.Run("Minute holds coarser fields fixed", func(t *testing.T) {
		got, err := Minimize(field.MinuteOfHour).ApplyTime(clock(15, 42, 17, 5))
		require.NoError(t, err)
		require.Equal(t, clock(15, 0, 17, 5), got)

		got, err = Maximize(field.MinuteOfHour).ApplyTime(clock(15, 42, 17, 5))
		require.NoError(t, err)
		require.Equal(t, clock(15, 59, 17, 5), got)
	})

	t.Run("Extended hour max needs a clean boundary", func(t *testing.T) {
		got, err := Maximize(field.HourOfDay).ApplyTime(clock(15, 30, 0, 0))
		require.NoError(t, err)
		require.Equal(t, clock(23, 30, 0, 0), got)

		got, err = Maximize(field.HourOfDay).ApplyTime(clock(15, 0, 0, 0))
		require.NoError(t, err)
		require.True(t, got.IsEndOfDay())
	})

	t.Run("Finer fields at the end-of-day marker", func(t *testing.T) {
		// the marker carries zero finer components, so both extremes of
		// minute/second/nano leave 24:00 unchanged
		for _, f := range []*field.Field{field.MinuteOfHour, field.SecondOfMinute, field.NanoOfSecond} {
			got, err := Minimize(f).ApplyTime(temporal.EndOfDay)
			require.NoError(t, err)
			require.True(t, got.IsEndOfDay())

			got, err = Maximize(f).ApplyTime(temporal.EndOfDay)
			require.NoError(t, err)
			require.True(t, got.IsEndOfDay())
		}

		got, err := Maximize(field.HourOfDay).ApplyTime(temporal.EndOfDay)
		require.NoError(t, err)
		require.True(t, got.IsEndOfDay())
	})

	t.Run("Timestamp hour max is 23", func(t *testing.T) {
		got, err := Maximize(field.HourOfDay).ApplyTimestamp(stamp(2024, temporal.June, 1, 9, 0, 0, 0))
		require.NoError(t, err)
		require.Equal(t, stamp(2024, temporal.June, 1, 23, 0, 0, 0), got)
	})

	t.Run("Time field on a plain date unsupported", func(t *testing.T) {
		_, err := Maximize(field.HourOfDay).ApplyDate(date(2024, temporal.June, 1))
		require.ErrorIs(t, err, errs.ErrUnsupportedOperation)
	})
}

func TestIncrementDecrement(t *testing.T) {
	t.Run("Month with day clamp", func(t *testing.T) {
		got, err := Increment(field.MonthOfYear).ApplyDate(date(2024, temporal.January, 31))
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.February, 29), got)

		got, err = Decrement(field.MonthOfYear).ApplyDate(date(2024, temporal.March, 31))
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.February, 29), got)
	})

	t.Run("Year rollover on day increment", func(t *testing.T) {
		got, err := Increment(field.DayOfMonth).ApplyDate(date(2023, temporal.December, 31))
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.January, 1), got)
	})

	t.Run("Quarter stepping", func(t *testing.T) {
		got, err := Increment(field.QuarterOfYear).ApplyDate(date(2024, temporal.November, 15))
		require.NoError(t, err)
		require.Equal(t, date(2025, temporal.February, 15), got)
	})

	t.Run("Cyclic time wraps", func(t *testing.T) {
		got, err := Increment(field.HourOfDay).ApplyTime(clock(23, 10, 0, 0))
		require.NoError(t, err)
		require.Equal(t, clock(0, 10, 0, 0), got)

		got, err = Decrement(field.MinuteOfHour).ApplyTime(temporal.Midnight)
		require.NoError(t, err)
		require.Equal(t, clock(23, 59, 0, 0), got)
	})

	t.Run("Increment from the end-of-day marker", func(t *testing.T) {
		// hour 24 normalizes to 0 before stepping
		got, err := Increment(field.HourOfDay).ApplyTime(temporal.EndOfDay)
		require.NoError(t, err)
		require.Equal(t, clock(1, 0, 0, 0), got)
	})

	t.Run("Timestamp carries the date", func(t *testing.T) {
		got, err := Increment(field.HourOfDay).ApplyTimestamp(stamp(2024, temporal.February, 28, 23, 30, 0, 0))
		require.NoError(t, err)
		require.Equal(t, stamp(2024, temporal.February, 29, 0, 30, 0, 0), got)

		got, err = Decrement(field.SecondOfMinute).ApplyTimestamp(stamp(2024, temporal.March, 1, 0, 0, 0, 0))
		require.NoError(t, err)
		require.Equal(t, stamp(2024, temporal.February, 29, 23, 59, 59, 0), got)
	})
}

func TestFloorCeiling(t *testing.T) {
	t.Run("Hour on time", func(t *testing.T) {
		got, err := Floor(field.HourOfDay).ApplyTime(clock(14, 30, 45, 123))
		require.NoError(t, err)
		require.Equal(t, clock(14, 0, 0, 0), got)

		got, err = Ceiling(field.HourOfDay).ApplyTime(clock(14, 30, 45, 123))
		require.NoError(t, err)
		require.Equal(t, clock(14, 59, 59, 999_999_999), got)
	})

	t.Run("Nano has no finer field", func(t *testing.T) {
		tod := clock(14, 30, 45, 123)
		got, err := Floor(field.NanoOfSecond).ApplyTime(tod)
		require.NoError(t, err)
		require.Equal(t, tod, got)
	})

	t.Run("Month on timestamp saturates the time part", func(t *testing.T) {
		ts := stamp(2024, temporal.February, 15, 12, 30, 0, 0)

		got, err := Floor(field.MonthOfYear).ApplyTimestamp(ts)
		require.NoError(t, err)
		require.Equal(t, stamp(2024, temporal.February, 1, 0, 0, 0, 0), got)

		got, err = Ceiling(field.MonthOfYear).ApplyTimestamp(ts)
		require.NoError(t, err)
		require.Equal(t, stamp(2024, temporal.February, 29, 23, 59, 59, 999_999_999), got)
	})

	t.Run("Year on date", func(t *testing.T) {
		got, err := Floor(field.Year).ApplyDate(date(2024, temporal.June, 10))
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.January, 1), got)

		got, err = Ceiling(field.Year).ApplyDate(date(2024, temporal.June, 10))
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.December, 31), got)
	})
}

func TestSet(t *testing.T) {
	t.Run("Strict rejects out of range", func(t *testing.T) {
		_, err := Set(field.MinuteOfHour, 65).ApplyTime(clock(10, 0, 0, 0))
		require.ErrorIs(t, err, errs.ErrRangeViolation)

		_, err = Set(field.DayOfMonth, 31).ApplyDate(date(2024, temporal.April, 10))
		require.ErrorIs(t, err, errs.ErrRangeViolation)

		_, err = Set(field.HourOfDay, 24).ApplyTimestamp(stamp(2024, temporal.June, 1, 10, 0, 0, 0))
		require.ErrorIs(t, err, errs.ErrRangeViolation)
	})

	t.Run("Lenient carries into coarser fields", func(t *testing.T) {
		got, err := SetLenient(field.MinuteOfHour, 65).ApplyTime(clock(10, 0, 0, 0))
		require.NoError(t, err)
		require.Equal(t, clock(11, 5, 0, 0), got)

		ts, err := SetLenient(field.MinuteOfHour, 65).ApplyTimestamp(stamp(2024, temporal.June, 1, 23, 30, 0, 0))
		require.NoError(t, err)
		require.Equal(t, stamp(2024, temporal.June, 2, 0, 5, 0, 0), ts)

		d, err := SetLenient(field.DayOfMonth, 32).ApplyDate(date(2024, temporal.January, 15))
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.February, 1), d)
	})

	t.Run("Strict set accepts the end-of-day marker on plain times", func(t *testing.T) {
		got, err := Set(field.HourOfDay, 24).ApplyTime(temporal.Midnight)
		require.NoError(t, err)
		require.True(t, got.IsEndOfDay())
	})

	t.Run("Inputs are never mutated", func(t *testing.T) {
		d := date(2024, temporal.January, 15)
		_, err := Set(field.DayOfMonth, 20).ApplyDate(d)
		require.NoError(t, err)
		require.Equal(t, date(2024, temporal.January, 15), d)
	})
}
