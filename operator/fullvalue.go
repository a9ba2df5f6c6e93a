package operator

import "github.com/arloliu/tempo/temporal"

// Full-value clock operators. Rounding may legally produce the 24:00
// end-of-day marker on a plain time of day; on timestamps the marker never
// leaks out, the calendar date rolls forward and the time snaps to start of
// day. Stepping from the marker itself first normalizes hour 24 to hour 0,
// so the next full hour after 24:00 is 01:00 and the next full minute 00:01.
var (
	RoundedToFullHour   = newFullValueOperator("ROUNDED_TO_FULL_HOUR", roundedToFullHour)
	RoundedToFullMinute = newFullValueOperator("ROUNDED_TO_FULL_MINUTE", roundedToFullMinute)
	NextFullHour        = newFullValueOperator("NEXT_FULL_HOUR", nextFullHour)
	NextFullMinute      = newFullValueOperator("NEXT_FULL_MINUTE", nextFullMinute)
)

func newFullValueOperator(name string, adjust func(temporal.TimeOfDay) temporal.TimeOfDay) *Operator {
	return &Operator{
		kind: KindFullValue,
		name: name,
		timeFn: func(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
			return adjust(t), nil
		},
		tsFn: func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			t := adjust(ts.Time)
			if t.IsEndOfDay() {
				return temporal.Timestamp{Date: ts.Date.AddDays(1), Time: temporal.Midnight}, nil
			}

			return temporal.Timestamp{Date: ts.Date, Time: t}, nil
		},
	}
}

func roundedToFullHour(t temporal.TimeOfDay) temporal.TimeOfDay {
	hour := t.Hour
	if t.Minute >= 30 {
		hour++
	}
	if hour > 24 {
		hour = 1
	}

	return temporal.TimeOfDay{Hour: hour}
}

func roundedToFullMinute(t temporal.TimeOfDay) temporal.TimeOfDay {
	minutes := int64(t.Hour)*60 + int64(t.Minute)
	if t.Second >= 30 {
		minutes++
	}

	return timeFromMinutes(minutes)
}

func nextFullHour(t temporal.TimeOfDay) temporal.TimeOfDay {
	if t.IsEndOfDay() {
		// hour 24 normalizes to 0 before stepping
		return temporal.TimeOfDay{Hour: 1}
	}

	return temporal.TimeOfDay{Hour: t.Hour + 1}
}

func nextFullMinute(t temporal.TimeOfDay) temporal.TimeOfDay {
	if t.IsEndOfDay() {
		return temporal.TimeOfDay{Minute: 1}
	}

	return timeFromMinutes(int64(t.Hour)*60 + int64(t.Minute) + 1)
}

// timeFromMinutes materializes whole minutes of day, keeping 1440 as the
// end-of-day marker rather than wrapping it.
func timeFromMinutes(minutes int64) temporal.TimeOfDay {
	if minutes == 1440 {
		return temporal.EndOfDay
	}

	return temporal.TimeFromNanoOfDay(minutes * 60_000_000_000)
}
