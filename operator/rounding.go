package operator

import (
	"fmt"

	"github.com/govalues/decimal"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/field"
	"github.com/arloliu/tempo/temporal"
)

// RoundingDirection selects which step boundary a rounding operator snaps to.
type RoundingDirection uint8

const (
	// RoundUp snaps to the next multiple of the step width.
	RoundUp RoundingDirection = iota + 1
	// RoundDown snaps to the previous multiple of the step width.
	RoundDown
	// RoundNearest snaps to the numerically closer multiple, ties upward.
	RoundNearest
)

func (d RoundingDirection) String() string {
	switch d {
	case RoundUp:
		return "Up"
	case RoundDown:
		return "Down"
	case RoundNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// Round returns the stepwise rounding operator for a field: the field's
// value snaps to a multiple of the step width and is written back through
// the lenient path, so a boundary beyond the field's maximum carries into
// the next coarser field (minute 60 becomes the next hour). A step width
// below 1 panics: that is a caller defect, not an input condition.
func Round(f *field.Field, direction RoundingDirection, step int64) *Operator {
	if step < 1 {
		panic(fmt.Sprintf("operator: invalid rounding step %d", step))
	}

	op := &Operator{
		kind:  KindRound,
		field: f,
		name:  fmt.Sprintf("Round(%s,%s,%d)", f.Name(), direction, step),
	}

	if f.SupportsDate() {
		op.dateFn = func(d temporal.Date) (temporal.Date, error) {
			v, err := f.DateValue(d)
			if err != nil {
				return temporal.Date{}, err
			}

			return f.WithDate(d, roundStep(v, step, direction), true)
		}
	}
	if f.SupportsTime() {
		op.timeFn = func(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
			v, err := f.TimeValue(t)
			if err != nil {
				return temporal.TimeOfDay{}, err
			}
			out, _, err := f.WithTime(t, roundStep(v, step, direction), true)

			return out, err
		}
		op.tsFn = func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			v, err := f.TimeValue(ts.Time)
			if err != nil {
				return temporal.Timestamp{}, err
			}
			t, carry, err := f.WithTime(ts.Time, roundStep(v, step, direction), true)
			if err != nil {
				return temporal.Timestamp{}, err
			}

			return temporal.Timestamp{Date: ts.Date.AddDays(carry), Time: t}, nil
		}
	} else if f.SupportsDate() {
		dateFn := op.dateFn
		op.tsFn = func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			d, err := dateFn(ts.Date)
			if err != nil {
				return temporal.Timestamp{}, err
			}

			return temporal.Timestamp{Date: d, Time: ts.Time}, nil
		}
	}

	return op
}

// roundStep snaps v to a multiple of step. Field values are non-negative, so
// plain integer division yields the floor boundary.
func roundStep(v, step int64, direction RoundingDirection) int64 {
	down := (v / step) * step
	up := down
	if v != down {
		up = down + step
	}

	switch direction {
	case RoundDown:
		return down
	case RoundUp:
		return up
	default:
		// nearest, ties toward the ceiling
		if v-down < up-v {
			return down
		}

		return up
	}
}

// Proportional computes the position of a field's value within its range as
// a fraction in [0,1] with 15 decimal digits, half-up at the last digit and
// trailing zeros trimmed.
//
// The extended-range handling and the reduced-range opt-out are two separate
// capabilities: the field declares whether its range structurally includes
// the hour-24 end-of-day marker, the query declares whether the caller wants
// the reduced (marker-free) view. Timestamp queries are always reduced since
// the marker cannot appear there.
type Proportional struct {
	field   *field.Field
	reduced bool
}

// ProportionOf returns the proportional query for a field.
func ProportionOf(f *field.Field) Proportional {
	return Proportional{field: f}
}

// ReducedRange returns the query with the extended hour-24 range disabled.
func (p Proportional) ReducedRange() Proportional {
	return Proportional{field: p.field, reduced: true}
}

// Date evaluates the proportional value on a calendar date.
func (p Proportional) Date(d temporal.Date) (decimal.Decimal, error) {
	v, err := p.field.DateValue(d)
	if err != nil {
		return decimal.Decimal{}, err
	}
	min, err := p.field.DateMin(d)
	if err != nil {
		return decimal.Decimal{}, err
	}
	max, err := p.field.DateMax(d)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return ratio(v, min, max, false)
}

// Time evaluates the proportional value on a wall clock time.
func (p Proportional) Time(t temporal.TimeOfDay) (decimal.Decimal, error) {
	v, err := p.field.TimeValue(t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	max, err := p.field.TimeMax(false)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return ratio(v, 0, max, p.field.ExtendedRange() && !p.reduced)
}

// Timestamp evaluates the proportional value on a timestamp. The timestamp
// shape never holds the end-of-day marker, so the reduced range applies
// regardless of the query's setting.
func (p Proportional) Timestamp(ts temporal.Timestamp) (decimal.Decimal, error) {
	if p.field.SupportsTime() {
		v, err := p.field.TimeValue(ts.Time)
		if err != nil {
			return decimal.Decimal{}, err
		}
		max, err := p.field.TimeMax(true)
		if err != nil {
			return decimal.Decimal{}, err
		}

		return ratio(v, 0, max, false)
	}

	return p.Date(ts.Date)
}

var decimalOne = decimal.MustNew(1, 0)

// ratio computes (v-min)/(max-min+1) with the extended-range adjustment: the
// maximum drops by one before the division unless the value already sits on
// the true maximum, which yields exactly 1. Values beyond the maximum clamp
// to it before the computation.
func ratio(v, min, max int64, extended bool) (decimal.Decimal, error) {
	if v > max {
		v = max
	}
	if v == max {
		// the true maximum maps to exactly 1
		return decimalOne, nil
	}
	if extended {
		max--
	}

	return fraction(v-min, max-min+1)
}

// fraction divides num by den with 15-digit precision, trailing zeros
// trimmed.
func fraction(num, den int64) (decimal.Decimal, error) {
	n, err := decimal.New(num, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: proportional numerator %d", errs.ErrArithmeticOverflow, num)
	}
	d, err := decimal.New(den, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: proportional denominator %d", errs.ErrArithmeticOverflow, den)
	}
	q, err := n.Quo(d)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("proportional division: %w", err)
	}

	return q.Round(15).Trim(0), nil
}
