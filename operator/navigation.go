package operator

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/field"
	"github.com/arloliu/tempo/temporal"
)

// NavigationMode constrains the direction of an ordinal search.
type NavigationMode uint8

const (
	// NavNext moves strictly forward to the next occurrence.
	NavNext NavigationMode = iota + 1
	// NavPrevious moves strictly backward to the previous occurrence.
	NavPrevious
	// NavNextOrSame stays put when the value already matches.
	NavNextOrSame
	// NavPreviousOrSame stays put when the value already matches.
	NavPreviousOrSame
)

func (m NavigationMode) String() string {
	switch m {
	case NavNext:
		return "Next"
	case NavPrevious:
		return "Previous"
	case NavNextOrSame:
		return "NextOrSame"
	case NavPreviousOrSame:
		return "PreviousOrSame"
	default:
		return "Unknown"
	}
}

// Navigate returns the operator moving a date to the closest occurrence of
// the target value of a cyclic enumerated field (day of week, month of year,
// quarter of year), in the direction the mode demands. The value must have a
// calendar date context: applying the operator to a plain time of day fails
// with an unsupported-operation condition.
func Navigate(f *field.Field, mode NavigationMode, target int64) *Operator {
	op := &Operator{
		kind:  KindNavigate,
		field: f,
		name:  fmt.Sprintf("SetTo%s(%s=%d)", mode, f.Name(), target),
	}

	if !f.SupportsDate() {
		// navigation is meaningless without a calendar context; leave all
		// delegates nil so every application reports unsupported
		return op
	}

	dateFn := func(d temporal.Date) (temporal.Date, error) {
		return navigateDate(d, f, mode, target)
	}
	op.dateFn = dateFn
	op.tsFn = func(ts temporal.Timestamp) (temporal.Timestamp, error) {
		d, err := dateFn(ts.Date)
		if err != nil {
			return temporal.Timestamp{}, err
		}

		return temporal.Timestamp{Date: d, Time: ts.Time}, nil
	}

	return op
}

func navigateDate(d temporal.Date, f *field.Field, mode NavigationMode, target int64) (temporal.Date, error) {
	min, err := f.DateMin(d)
	if err != nil {
		return temporal.Date{}, err
	}
	max, err := f.DateMax(d)
	if err != nil {
		return temporal.Date{}, err
	}
	if target < min || target > max {
		return temporal.Date{}, fmt.Errorf("%w: navigation target %d not in [%d,%d]",
			errs.ErrRangeViolation, target, min, max)
	}

	current, err := f.DateValue(d)
	if err != nil {
		return temporal.Date{}, err
	}

	cycle := max - min + 1
	delta := target - current
	switch mode {
	case NavNext:
		if delta <= 0 {
			delta += cycle
		}
	case NavPrevious:
		if delta >= 0 {
			delta -= cycle
		}
	case NavNextOrSame:
		if delta < 0 {
			delta += cycle
		}
	case NavPreviousOrSame:
		if delta > 0 {
			delta -= cycle
		}
	default:
		panic(fmt.Sprintf("operator: unknown navigation mode %d", mode))
	}

	return stepDateBy(d, f, delta)
}

// stepDateBy advances a date by delta base units of the field.
func stepDateBy(d temporal.Date, f *field.Field, delta int64) (temporal.Date, error) {
	switch f.Base() {
	case temporal.UnitYears:
		return d.AddMonths(delta * 12), nil
	case temporal.UnitQuarters:
		return d.AddMonths(delta * 3), nil
	case temporal.UnitMonths:
		return d.AddMonths(delta), nil
	case temporal.UnitWeeks:
		return d.AddDays(delta * 7), nil
	case temporal.UnitDays:
		return d.AddDays(delta), nil
	default:
		return temporal.Date{}, fmt.Errorf("%w: field %s has no calendar base unit",
			errs.ErrUnsupportedOperation, f.Name())
	}
}

// NextWeekday moves strictly forward to the target weekday.
func NextWeekday(w temporal.Weekday) *Operator {
	return Navigate(field.DayOfWeek, NavNext, int64(w))
}

// PreviousWeekday moves strictly backward to the target weekday.
func PreviousWeekday(w temporal.Weekday) *Operator {
	return Navigate(field.DayOfWeek, NavPrevious, int64(w))
}

// NextOrSameWeekday moves forward to the target weekday, staying put on a
// match.
func NextOrSameWeekday(w temporal.Weekday) *Operator {
	return Navigate(field.DayOfWeek, NavNextOrSame, int64(w))
}

// PreviousOrSameWeekday moves backward to the target weekday, staying put on
// a match.
func PreviousOrSameWeekday(w temporal.Weekday) *Operator {
	return Navigate(field.DayOfWeek, NavPreviousOrSame, int64(w))
}

// LastOccurrence selects the last occurrence of a weekday within the month
// for NthWeekdayInMonth.
const LastOccurrence = 5

// NthWeekdayInMonth returns the operator placing a date on the nth occurrence
// (1..4, or LastOccurrence) of the target weekday within the date's month.
func NthWeekdayInMonth(n int, w temporal.Weekday) *Operator {
	op := &Operator{
		kind: KindNavigate,
		name: fmt.Sprintf("NthWeekdayInMonth(%d,%s)", n, w),
	}
	if n < 1 || n > LastOccurrence {
		op.name = fmt.Sprintf("NthWeekdayInMonth(invalid %d,%s)", n, w)
		fail := fmt.Errorf("%w: weekday ordinal %d not in 1..%d", errs.ErrRangeViolation, n, LastOccurrence)
		op.dateFn = func(temporal.Date) (temporal.Date, error) { return temporal.Date{}, fail }
		op.tsFn = func(temporal.Timestamp) (temporal.Timestamp, error) { return temporal.Timestamp{}, fail }

		return op
	}

	dateFn := func(d temporal.Date) (temporal.Date, error) {
		return nthWeekdayInMonth(d, n, w), nil
	}
	op.dateFn = dateFn
	op.tsFn = func(ts temporal.Timestamp) (temporal.Timestamp, error) {
		d, err := dateFn(ts.Date)
		if err != nil {
			return temporal.Timestamp{}, err
		}

		return temporal.Timestamp{Date: d, Time: ts.Time}, nil
	}

	return op
}

func nthWeekdayInMonth(d temporal.Date, n int, w temporal.Weekday) temporal.Date {
	delta := int64(w) - int64(d.DayOfWeek())
	candidate := int64(d.Day) + delta
	days := (int64(n)-(floorDiv(candidate-1, 7)+1))*7 + delta

	// the 5th occurrence may fall past the end of the month
	if n == LastOccurrence && int64(d.Day)+days > int64(temporal.LengthOfMonth(d.Year, d.Month)) {
		days -= 7
	}

	return d.AddDays(days)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
