package operator

import "github.com/arloliu/tempo/temporal"

// Calendar boundary operators. Each is a fixed, process-wide singleton: the
// roll is plain month/year integer arithmetic with carry, then day 1 for the
// next-X family or the leap-year-aware last day for the previous-X family.
// On timestamps the wall time rides along unchanged.
var (
	FirstDayOfNextMonth      = newBoundaryOperator("FIRST_DAY_OF_NEXT_MONTH", firstDayOfNextMonth)
	FirstDayOfNextQuarter    = newBoundaryOperator("FIRST_DAY_OF_NEXT_QUARTER", firstDayOfNextQuarter)
	FirstDayOfNextYear       = newBoundaryOperator("FIRST_DAY_OF_NEXT_YEAR", firstDayOfNextYear)
	LastDayOfPreviousMonth   = newBoundaryOperator("LAST_DAY_OF_PREVIOUS_MONTH", lastDayOfPreviousMonth)
	LastDayOfPreviousQuarter = newBoundaryOperator("LAST_DAY_OF_PREVIOUS_QUARTER", lastDayOfPreviousQuarter)
	LastDayOfPreviousYear    = newBoundaryOperator("LAST_DAY_OF_PREVIOUS_YEAR", lastDayOfPreviousYear)
)

func newBoundaryOperator(name string, roll func(temporal.Date) temporal.Date) *Operator {
	dateFn := func(d temporal.Date) (temporal.Date, error) {
		return roll(d), nil
	}

	return &Operator{
		kind:   KindBoundary,
		name:   name,
		dateFn: dateFn,
		tsFn: func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			return temporal.Timestamp{Date: roll(ts.Date), Time: ts.Time}, nil
		},
	}
}

// monthRoll shifts (year, month) by delta months with explicit carry.
func monthRoll(year, month, delta int) (int, temporal.Month) {
	month += delta
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}

	return year, temporal.Month(month)
}

func firstDayOfNextMonth(d temporal.Date) temporal.Date {
	year, month := monthRoll(d.Year, int(d.Month), 1)

	return temporal.Date{Year: year, Month: month, Day: 1}
}

func lastDayOfPreviousMonth(d temporal.Date) temporal.Date {
	year, month := monthRoll(d.Year, int(d.Month), -1)

	return temporal.Date{Year: year, Month: month, Day: temporal.LengthOfMonth(year, month)}
}

func firstDayOfNextQuarter(d temporal.Date) temporal.Date {
	start := int(d.Month.Quarter().FirstMonth())
	year, month := monthRoll(d.Year, start, 3)

	return temporal.Date{Year: year, Month: month, Day: 1}
}

func lastDayOfPreviousQuarter(d temporal.Date) temporal.Date {
	start := int(d.Month.Quarter().FirstMonth())
	year, month := monthRoll(d.Year, start, -1)

	return temporal.Date{Year: year, Month: month, Day: temporal.LengthOfMonth(year, month)}
}

func firstDayOfNextYear(d temporal.Date) temporal.Date {
	return temporal.Date{Year: d.Year + 1, Month: temporal.January, Day: 1}
}

func lastDayOfPreviousYear(d temporal.Date) temporal.Date {
	return temporal.Date{Year: d.Year - 1, Month: temporal.December, Day: 31}
}
