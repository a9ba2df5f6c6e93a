package field

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// dateOps is the per-field accessor table for the date shape.
type dateOps struct {
	get  func(temporal.Date) int64
	min  func(temporal.Date) int64
	max  func(temporal.Date) int64
	with func(temporal.Date, int64, bool) (temporal.Date, error)
	// floor/ceil set every finer date component to its minimum/maximum;
	// nil means no finer component exists in the date shape.
	floor func(temporal.Date) temporal.Date
	ceil  func(temporal.Date) temporal.Date
}

// Field is an immutable descriptor of one calendar or clock field. Instances
// are process-wide singletons created by this package; callers compare them
// by pointer identity.
type Field struct {
	name     string
	base     temporal.Unit
	extended bool // structurally admits the hour-24 end-of-day marker

	date *dateOps

	// clock fields are fully described by their unit span and value count
	clockSpan   int64 // nanoseconds per field step, 0 for non-clock fields
	clockMax    int64 // maximum value in the time-only shape
	clockTsMax  int64 // maximum value in the timestamp shape
}

func (f *Field) Name() string { return f.name }

// Base returns the unit by which increment/decrement steps the field, or
// temporal.UnitNone if the field has no defined base unit.
func (f *Field) Base() temporal.Unit { return f.base }

// ExtendedRange reports whether the field's time-only range includes the
// hour-24 end-of-day marker.
func (f *Field) ExtendedRange() bool { return f.extended }

// SupportsDate reports whether the field applies to calendar dates.
func (f *Field) SupportsDate() bool { return f.date != nil }

// SupportsTime reports whether the field applies to wall clock times.
func (f *Field) SupportsTime() bool { return f.clockSpan != 0 }

func (f *Field) String() string { return f.name }

func (f *Field) unsupported(shape string) error {
	return fmt.Errorf("%w: field %s does not apply to %s values", errs.ErrUnsupportedOperation, f.name, shape)
}

// DateValue reads the field from a date.
func (f *Field) DateValue(d temporal.Date) (int64, error) {
	if f.date == nil {
		return 0, f.unsupported("date")
	}

	return f.date.get(d), nil
}

// DateMin returns the contextual minimum of the field for the given date.
func (f *Field) DateMin(d temporal.Date) (int64, error) {
	if f.date == nil {
		return 0, f.unsupported("date")
	}

	return f.date.min(d), nil
}

// DateMax returns the contextual maximum of the field for the given date,
// e.g. 29 for day-of-month in a leap February.
func (f *Field) DateMax(d temporal.Date) (int64, error) {
	if f.date == nil {
		return 0, f.unsupported("date")
	}

	return f.date.max(d), nil
}

// WithDate writes the field value onto a date. Strict mode fails with a range
// violation for values outside the contextual bounds; lenient mode carries
// the overflow into coarser fields.
func (f *Field) WithDate(d temporal.Date, v int64, lenient bool) (temporal.Date, error) {
	if f.date == nil {
		return temporal.Date{}, f.unsupported("date")
	}
	if !lenient {
		if v < f.date.min(d) || v > f.date.max(d) {
			return temporal.Date{}, fmt.Errorf("%w: %s=%d not in [%d,%d]",
				errs.ErrRangeViolation, f.name, v, f.date.min(d), f.date.max(d))
		}
	}

	return f.date.with(d, v, lenient)
}

// FloorDate sets every date component finer than the field to its minimum.
// Fields without finer date components return the date unchanged.
func (f *Field) FloorDate(d temporal.Date) (temporal.Date, error) {
	if f.date == nil {
		return temporal.Date{}, f.unsupported("date")
	}
	if f.date.floor == nil {
		return d, nil
	}

	return f.date.floor(d), nil
}

// CeilingDate sets every date component finer than the field to its maximum.
func (f *Field) CeilingDate(d temporal.Date) (temporal.Date, error) {
	if f.date == nil {
		return temporal.Date{}, f.unsupported("date")
	}
	if f.date.ceil == nil {
		return d, nil
	}

	return f.date.ceil(d), nil
}

// TimeValue reads the field from a wall clock time. The end-of-day marker
// reads as hour 24 with zero finer components.
func (f *Field) TimeValue(t temporal.TimeOfDay) (int64, error) {
	if f.clockSpan == 0 {
		return 0, f.unsupported("time")
	}

	return f.clockValue(t.NanoOfDay()), nil
}

func (f *Field) clockValue(nanoOfDay int64) int64 {
	// the modulus also holds for the extended hour field: the end-of-day
	// marker reads as 24 within its 0..24 range
	return (nanoOfDay / f.clockSpan) % (f.clockMax + 1)
}

// TimeMin returns the field minimum in the time shape (always 0 for clock
// fields).
func (f *Field) TimeMin() (int64, error) {
	if f.clockSpan == 0 {
		return 0, f.unsupported("time")
	}

	return 0, nil
}

// TimeMax returns the declared field maximum. The timestamp shape truncates
// the extended hour range since hour 24 never appears inside a timestamp.
func (f *Field) TimeMax(inTimestamp bool) (int64, error) {
	if f.clockSpan == 0 {
		return 0, f.unsupported("time")
	}
	if inTimestamp {
		return f.clockTsMax, nil
	}

	return f.clockMax, nil
}

// TimeMaxAt returns the contextual field maximum for the given time: the
// extended hour range only reaches 24 when every finer component is zero,
// because the end-of-day marker must sit on the exact day boundary. At the
// marker itself the finer clock fields max out at 0, since the marker must
// carry zero finer components.
func (f *Field) TimeMaxAt(t temporal.TimeOfDay, inTimestamp bool) (int64, error) {
	max, err := f.TimeMax(inTimestamp)
	if err != nil {
		return 0, err
	}
	if inTimestamp {
		return max, nil
	}
	if t.IsEndOfDay() && !f.extended {
		return 0, nil
	}
	if f.extended && t.NanoOfDay()%f.clockSpan != 0 {
		max--
	}

	return max, nil
}

// WithTime writes the field value onto a wall clock time. The returned carry
// is the number of whole days the write overflowed; the time-only shape wraps
// cyclically, timestamp callers roll the carry into the date. Strict mode
// fails with a range violation for out-of-range values.
func (f *Field) WithTime(t temporal.TimeOfDay, v int64, lenient bool) (temporal.TimeOfDay, int64, error) {
	if f.clockSpan == 0 {
		return temporal.TimeOfDay{}, 0, f.unsupported("time")
	}
	if !lenient && (v < 0 || v > f.clockMax) {
		return temporal.TimeOfDay{}, 0, fmt.Errorf("%w: %s=%d not in [0,%d]",
			errs.ErrRangeViolation, f.name, v, f.clockMax)
	}

	cur := f.clockValue(t.NanoOfDay())
	total := t.NanoOfDay() + (v-cur)*f.clockSpan

	if !lenient {
		if total == temporal.NanosPerDay {
			// exact end-of-day write stays on the marker instead of wrapping
			return temporal.EndOfDay, 0, nil
		}
		if total < 0 || total > temporal.NanosPerDay {
			return temporal.TimeOfDay{}, 0, fmt.Errorf("%w: %s=%d overflows the day",
				errs.ErrRangeViolation, f.name, v)
		}
	}

	carry := floorDiv(total, temporal.NanosPerDay)

	return temporal.TimeFromNanoOfDay(floorMod(total, temporal.NanosPerDay)), carry, nil
}

// FloorTime truncates every clock component finer than the field to zero.
// The end-of-day marker is already aligned on every clock field.
func (f *Field) FloorTime(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
	if f.clockSpan == 0 {
		return temporal.TimeOfDay{}, f.unsupported("time")
	}
	if t.IsEndOfDay() {
		return t, nil
	}

	nod := t.NanoOfDay()

	return temporal.TimeFromNanoOfDay(nod - nod%f.clockSpan), nil
}

// CeilingTime sets every clock component finer than the field to its maximum.
func (f *Field) CeilingTime(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
	if f.clockSpan == 0 {
		return temporal.TimeOfDay{}, f.unsupported("time")
	}
	if t.IsEndOfDay() {
		return t, nil
	}

	nod := t.NanoOfDay()

	return temporal.TimeFromNanoOfDay(nod - nod%f.clockSpan + f.clockSpan - 1), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
