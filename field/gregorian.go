package field

import "github.com/arloliu/tempo/temporal"

// Year bounds of the supported proleptic Gregorian range.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// Standard Gregorian field singletons. All operator construction goes through
// these shared instances; there is no public Field constructor.
var (
	Year           = &Field{name: "YEAR", base: temporal.UnitYears, date: yearOps}
	MonthOfYear    = &Field{name: "MONTH_OF_YEAR", base: temporal.UnitMonths, date: monthOps}
	QuarterOfYear  = &Field{name: "QUARTER_OF_YEAR", base: temporal.UnitQuarters, date: quarterOps}
	DayOfMonth     = &Field{name: "DAY_OF_MONTH", base: temporal.UnitDays, date: dayOfMonthOps}
	DayOfWeek      = &Field{name: "DAY_OF_WEEK", base: temporal.UnitDays, date: dayOfWeekOps}
	DayOfYear      = &Field{name: "DAY_OF_YEAR", base: temporal.UnitDays, date: dayOfYearOps}
	HourOfDay      = &Field{name: "HOUR_OF_DAY", base: temporal.UnitHours, extended: true, clockSpan: 3_600_000_000_000, clockMax: 24, clockTsMax: 23}
	MinuteOfHour   = &Field{name: "MINUTE_OF_HOUR", base: temporal.UnitMinutes, clockSpan: 60_000_000_000, clockMax: 59, clockTsMax: 59}
	SecondOfMinute = &Field{name: "SECOND_OF_MINUTE", base: temporal.UnitSeconds, clockSpan: 1_000_000_000, clockMax: 59, clockTsMax: 59}
	NanoOfSecond   = &Field{name: "NANO_OF_SECOND", base: temporal.UnitNanos, clockSpan: 1, clockMax: 999_999_999, clockTsMax: 999_999_999}
)

func clampDay(year int, month temporal.Month, day int) temporal.Date {
	if limit := temporal.LengthOfMonth(year, month); day > limit {
		day = limit
	}

	return temporal.Date{Year: year, Month: month, Day: day}
}

var yearOps = &dateOps{
	get: func(d temporal.Date) int64 { return int64(d.Year) },
	min: func(temporal.Date) int64 { return MinYear },
	max: func(temporal.Date) int64 { return MaxYear },
	with: func(d temporal.Date, v int64, _ bool) (temporal.Date, error) {
		// Feb 29 clamps when moving to a non-leap year
		return clampDay(int(v), d.Month, d.Day), nil
	},
	floor: func(d temporal.Date) temporal.Date {
		return temporal.Date{Year: d.Year, Month: temporal.January, Day: 1}
	},
	ceil: func(d temporal.Date) temporal.Date {
		return temporal.Date{Year: d.Year, Month: temporal.December, Day: 31}
	},
}

var monthOps = &dateOps{
	get: func(d temporal.Date) int64 { return int64(d.Month) },
	min: func(temporal.Date) int64 { return 1 },
	max: func(temporal.Date) int64 { return 12 },
	with: func(d temporal.Date, v int64, lenient bool) (temporal.Date, error) {
		if lenient {
			return d.AddMonths(v - int64(d.Month)), nil
		}

		return clampDay(d.Year, temporal.Month(v), d.Day), nil
	},
	floor: func(d temporal.Date) temporal.Date {
		return temporal.Date{Year: d.Year, Month: d.Month, Day: 1}
	},
	ceil: func(d temporal.Date) temporal.Date {
		return temporal.Date{Year: d.Year, Month: d.Month, Day: temporal.LengthOfMonth(d.Year, d.Month)}
	},
}

var quarterOps = &dateOps{
	get: func(d temporal.Date) int64 { return int64(d.Month.Quarter()) },
	min: func(temporal.Date) int64 { return 1 },
	max: func(temporal.Date) int64 { return 4 },
	with: func(d temporal.Date, v int64, _ bool) (temporal.Date, error) {
		// keep the position within the quarter, shift by whole quarters
		return d.AddMonths((v - int64(d.Month.Quarter())) * 3), nil
	},
	floor: func(d temporal.Date) temporal.Date {
		return temporal.Date{Year: d.Year, Month: d.Month.Quarter().FirstMonth(), Day: 1}
	},
	ceil: func(d temporal.Date) temporal.Date {
		last := d.Month.Quarter().LastMonth()

		return temporal.Date{Year: d.Year, Month: last, Day: temporal.LengthOfMonth(d.Year, last)}
	},
}

var dayOfMonthOps = &dateOps{
	get: func(d temporal.Date) int64 { return int64(d.Day) },
	min: func(temporal.Date) int64 { return 1 },
	max: func(d temporal.Date) int64 { return int64(temporal.LengthOfMonth(d.Year, d.Month)) },
	with: func(d temporal.Date, v int64, lenient bool) (temporal.Date, error) {
		if lenient {
			return d.AddDays(v - int64(d.Day)), nil
		}

		return temporal.Date{Year: d.Year, Month: d.Month, Day: int(v)}, nil
	},
}

var dayOfWeekOps = &dateOps{
	get: func(d temporal.Date) int64 { return int64(d.DayOfWeek()) },
	min: func(temporal.Date) int64 { return int64(temporal.Monday) },
	max: func(temporal.Date) int64 { return int64(temporal.Sunday) },
	with: func(d temporal.Date, v int64, _ bool) (temporal.Date, error) {
		return d.AddDays(v - int64(d.DayOfWeek())), nil
	},
}

var dayOfYearOps = &dateOps{
	get: func(d temporal.Date) int64 { return int64(d.DayOfYear()) },
	min: func(temporal.Date) int64 { return 1 },
	max: func(d temporal.Date) int64 { return int64(temporal.LengthOfYear(d.Year)) },
	with: func(d temporal.Date, v int64, _ bool) (temporal.Date, error) {
		return d.AddDays(v - int64(d.DayOfYear())), nil
	},
}
