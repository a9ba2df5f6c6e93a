package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
)

func TestNewDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		d, err := NewDate(2024, February, 29)
		require.NoError(t, err)
		require.Equal(t, 2024, d.Year)
		require.Equal(t, February, d.Month)
		require.Equal(t, 29, d.Day)
	})

	t.Run("Invalid day of month", func(t *testing.T) {
		_, err := NewDate(2023, February, 29)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrRangeViolation)
	})

	t.Run("Invalid month", func(t *testing.T) {
		_, err := NewDate(2023, Month(13), 1)
		require.ErrorIs(t, err, errs.ErrRangeViolation)
	})

	t.Run("Negative year", func(t *testing.T) {
		d, err := NewDate(-500, March, 15)
		require.NoError(t, err)
		require.Equal(t, -500, d.Year)
	})
}

func TestIsLeapYear(t *testing.T) {
	require.True(t, IsLeapYear(2024))
	require.True(t, IsLeapYear(2000))
	require.True(t, IsLeapYear(0))
	require.False(t, IsLeapYear(1900))
	require.False(t, IsLeapYear(2023))
	require.True(t, IsLeapYear(-4))
	require.False(t, IsLeapYear(-100))
}

func TestLengthOfMonth(t *testing.T) {
	require.Equal(t, 29, LengthOfMonth(2024, February))
	require.Equal(t, 28, LengthOfMonth(2023, February))
	require.Equal(t, 31, LengthOfMonth(2023, January))
	require.Equal(t, 30, LengthOfMonth(2023, April))
	require.Equal(t, 31, LengthOfMonth(2023, December))
}

func TestDate_EpochDays(t *testing.T) {
	tests := []struct {
		date Date
		days int64
	}{
		{MustDate(1970, January, 1), 0},
		{MustDate(1970, January, 2), 1},
		{MustDate(1969, December, 31), -1},
		{MustDate(2000, March, 1), 11017},
		{MustDate(1600, March, 1), -135080},
	}

	for _, tt := range tests {
		require.Equal(t, tt.days, tt.date.EpochDays(), "date %s", tt.date)
		require.Equal(t, tt.date, DateFromEpochDays(tt.days))
	}
}

func TestDate_EpochDaysRoundTrip(t *testing.T) {
	// walk across several year boundaries including leap centuries
	for _, year := range []int{-500, -1, 0, 1, 1900, 2000, 2024, 12000} {
		d := MustDate(year, January, 1)
		for i := 0; i < 800; i++ {
			require.Equal(t, d, DateFromEpochDays(d.EpochDays()))
			d = d.AddDays(1)
		}
	}
}

func TestDate_DayOfWeek(t *testing.T) {
	require.Equal(t, Thursday, MustDate(1970, January, 1).DayOfWeek())
	require.Equal(t, Monday, MustDate(2024, January, 1).DayOfWeek())
	require.Equal(t, Sunday, MustDate(2000, January, 2).DayOfWeek())
	require.Equal(t, Thursday, MustDate(2024, February, 29).DayOfWeek())
}

func TestDate_DayOfYear(t *testing.T) {
	require.Equal(t, 1, MustDate(2024, January, 1).DayOfYear())
	require.Equal(t, 60, MustDate(2024, February, 29).DayOfYear())
	require.Equal(t, 61, MustDate(2024, March, 1).DayOfYear())
	require.Equal(t, 60, MustDate(2023, March, 1).DayOfYear())
	require.Equal(t, 366, MustDate(2024, December, 31).DayOfYear())
	require.Equal(t, 365, MustDate(2023, December, 31).DayOfYear())
}

func TestDate_AddMonths(t *testing.T) {
	t.Run("Simple shift", func(t *testing.T) {
		require.Equal(t, MustDate(2024, March, 15), MustDate(2024, January, 15).AddMonths(2))
	})

	t.Run("Year carry", func(t *testing.T) {
		require.Equal(t, MustDate(2025, January, 10), MustDate(2024, November, 10).AddMonths(2))
		require.Equal(t, MustDate(2023, December, 10), MustDate(2024, January, 10).AddMonths(-1))
	})

	t.Run("Day clamped to month length", func(t *testing.T) {
		require.Equal(t, MustDate(2024, February, 29), MustDate(2024, January, 31).AddMonths(1))
		require.Equal(t, MustDate(2023, February, 28), MustDate(2023, January, 31).AddMonths(1))
	})
}

func TestMonth_Quarter(t *testing.T) {
	require.Equal(t, Q1, January.Quarter())
	require.Equal(t, Q1, March.Quarter())
	require.Equal(t, Q2, April.Quarter())
	require.Equal(t, Q4, December.Quarter())
	require.Equal(t, October, Q4.FirstMonth())
	require.Equal(t, June, Q2.LastMonth())
}
