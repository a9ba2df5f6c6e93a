package temporal

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
)

// NanosPerDay is the length of a civil day in nanoseconds.
const NanosPerDay = 86_400_000_000_000

// TimeOfDay is an immutable wall clock time with nanosecond precision.
//
// Hour 24 is a legal value: it marks the exclusive end of a day (midnight at
// the end of the day, as opposed to hour 0 which starts it). The marker must
// carry zero minutes, seconds and nanoseconds. Operators treat it as a
// special case, never as a numeric overflow.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
	Nano   int
}

// Midnight is the inclusive start of day, 00:00.
var Midnight = TimeOfDay{}

// EndOfDay is the exclusive end-of-day marker, 24:00.
var EndOfDay = TimeOfDay{Hour: 24}

// NewTimeOfDay validates the components and returns the time.
func NewTimeOfDay(hour, minute, second, nano int) (TimeOfDay, error) {
	if hour < 0 || hour > 24 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d", errs.ErrRangeViolation, hour)
	}
	if hour == 24 && (minute != 0 || second != 0 || nano != 0) {
		return TimeOfDay{}, fmt.Errorf("%w: hour 24 must mark exact end of day", errs.ErrRangeViolation)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d", errs.ErrRangeViolation, minute)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: second %d", errs.ErrRangeViolation, second)
	}
	if nano < 0 || nano > 999_999_999 {
		return TimeOfDay{}, fmt.Errorf("%w: nanosecond %d", errs.ErrRangeViolation, nano)
	}

	return TimeOfDay{Hour: hour, Minute: minute, Second: second, Nano: nano}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid components.
func MustTimeOfDay(hour, minute, second, nano int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}

	return t
}

func (t TimeOfDay) String() string {
	if t.Nano == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}

	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nano)
}

// IsEndOfDay reports whether the time is the 24:00 end-of-day marker.
func (t TimeOfDay) IsEndOfDay() bool {
	return t.Hour == 24
}

// NanoOfDay returns the elapsed nanoseconds since the start of day. The
// end-of-day marker yields exactly NanosPerDay.
func (t TimeOfDay) NanoOfDay() int64 {
	return int64(t.Hour)*3_600_000_000_000 +
		int64(t.Minute)*60_000_000_000 +
		int64(t.Second)*1_000_000_000 +
		int64(t.Nano)
}

// TimeFromNanoOfDay converts elapsed nanoseconds since start of day back into
// a wall clock time. NanosPerDay yields the end-of-day marker; values outside
// [0, NanosPerDay] wrap around the clock.
func TimeFromNanoOfDay(nanos int64) TimeOfDay {
	if nanos == NanosPerDay {
		return EndOfDay
	}
	nanos = floorMod(nanos, NanosPerDay)

	hour := nanos / 3_600_000_000_000
	nanos -= hour * 3_600_000_000_000
	minute := nanos / 60_000_000_000
	nanos -= minute * 60_000_000_000
	second := nanos / 1_000_000_000
	nanos -= second * 1_000_000_000

	return TimeOfDay{Hour: int(hour), Minute: int(minute), Second: int(second), Nano: int(nanos)}
}

// Compare orders times within one day: -1, 0 or +1. The end-of-day marker
// sorts after every other time.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	a, b := t.NanoOfDay(), other.NanoOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
