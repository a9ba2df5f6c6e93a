package operator

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/field"
	"github.com/arloliu/tempo/temporal"
)

// Kind identifies the adjustment an operator performs.
type Kind uint8

const (
	KindMinimize Kind = iota + 1
	KindMaximize
	KindIncrement
	KindDecrement
	KindFloor
	KindCeiling
	KindSet
	KindSetLenient
	KindBoundary
	KindFullValue
	KindRound
	KindNavigate
)

func (k Kind) String() string {
	if int(k) == 0 || int(k) > len(kindNames) {
		return "Unknown"
	}

	return kindNames[k-1]
}

var kindNames = []string{
	"Minimize", "Maximize", "Increment", "Decrement", "Floor", "Ceiling",
	"Set", "SetLenient", "Boundary", "FullValue", "Round", "Navigate",
}

type (
	dateDelegate func(temporal.Date) (temporal.Date, error)
	timeDelegate func(temporal.TimeOfDay) (temporal.TimeOfDay, error)
	tsDelegate   func(temporal.Timestamp) (temporal.Timestamp, error)
)

// Operator is an immutable adjustment command. The per-shape delegates are
// resolved once at construction; a nil delegate means the operator does not
// apply to that shape.
type Operator struct {
	kind  Kind
	field *field.Field
	name  string

	dateFn dateDelegate
	timeFn timeDelegate
	tsFn   tsDelegate
}

func (op *Operator) Kind() Kind { return op.kind }

// Field returns the target field, or nil for fixed operators such as the
// calendar boundary and full-value family.
func (op *Operator) Field() *field.Field { return op.field }

func (op *Operator) String() string { return op.name }

// ApplyDate applies the operator to a calendar date.
func (op *Operator) ApplyDate(d temporal.Date) (temporal.Date, error) {
	if op.dateFn == nil {
		return temporal.Date{}, fmt.Errorf("%w: %s on date values", errs.ErrUnsupportedOperation, op.name)
	}

	return op.dateFn(d)
}

// ApplyTime applies the operator to a wall clock time.
func (op *Operator) ApplyTime(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
	if op.timeFn == nil {
		return temporal.TimeOfDay{}, fmt.Errorf("%w: %s on time values", errs.ErrUnsupportedOperation, op.name)
	}

	return op.timeFn(t)
}

// ApplyTimestamp applies the operator to a timestamp.
func (op *Operator) ApplyTimestamp(ts temporal.Timestamp) (temporal.Timestamp, error) {
	if op.tsFn == nil {
		return temporal.Timestamp{}, fmt.Errorf("%w: %s on timestamp values", errs.ErrUnsupportedOperation, op.name)
	}

	return op.tsFn(ts)
}

// Minimize returns the operator setting the field to its minimum, holding
// coarser fields fixed.
func Minimize(f *field.Field) *Operator {
	return newFieldOperator(KindMinimize, f, 0)
}

// Maximize returns the operator setting the field to its contextual maximum.
func Maximize(f *field.Field) *Operator {
	return newFieldOperator(KindMaximize, f, 0)
}

// Increment returns the operator adding one base unit of the field.
func Increment(f *field.Field) *Operator {
	return newFieldOperator(KindIncrement, f, 0)
}

// Decrement returns the operator subtracting one base unit of the field.
func Decrement(f *field.Field) *Operator {
	return newFieldOperator(KindDecrement, f, 0)
}

// Floor returns the operator setting every field finer than the target to
// its minimum. Shapes without finer fields pass through unchanged.
func Floor(f *field.Field) *Operator {
	return newFieldOperator(KindFloor, f, 0)
}

// Ceiling returns the operator setting every field finer than the target to
// its maximum.
func Ceiling(f *field.Field) *Operator {
	return newFieldOperator(KindCeiling, f, 0)
}

// Set returns the strict set-value operator: values outside the field's
// contextual bounds fail with a range violation.
func Set(f *field.Field, value int64) *Operator {
	return newFieldOperator(KindSet, f, value)
}

// SetLenient returns the lenient set-value operator: out-of-range raw values
// normalize by carrying into coarser fields (minute 65 becomes the next
// hour's minute 5).
func SetLenient(f *field.Field, value int64) *Operator {
	return newFieldOperator(KindSetLenient, f, value)
}

// newFieldOperator resolves the per-shape delegates for a field-driven kind.
// Resolution happens once here; Apply* never re-inspects the kind.
func newFieldOperator(kind Kind, f *field.Field, operand int64) *Operator {
	op := &Operator{
		kind:  kind,
		field: f,
		name:  fmt.Sprintf("%s(%s)", kind, f.Name()),
	}

	if f.SupportsDate() {
		op.dateFn = resolveDateDelegate(kind, f, operand)
	}
	if f.SupportsTime() {
		op.timeFn = resolveTimeDelegate(kind, f, operand)
	}
	op.tsFn = resolveTimestampDelegate(kind, f, operand)

	return op
}

func resolveDateDelegate(kind Kind, f *field.Field, operand int64) dateDelegate {
	switch kind {
	case KindMinimize:
		return func(d temporal.Date) (temporal.Date, error) {
			v, err := f.DateMin(d)
			if err != nil {
				return temporal.Date{}, err
			}

			return f.WithDate(d, v, false)
		}
	case KindMaximize:
		return func(d temporal.Date) (temporal.Date, error) {
			v, err := f.DateMax(d)
			if err != nil {
				return temporal.Date{}, err
			}

			return f.WithDate(d, v, false)
		}
	case KindIncrement:
		return func(d temporal.Date) (temporal.Date, error) {
			return stepDate(d, f, 1)
		}
	case KindDecrement:
		return func(d temporal.Date) (temporal.Date, error) {
			return stepDate(d, f, -1)
		}
	case KindFloor:
		return f.FloorDate
	case KindCeiling:
		return f.CeilingDate
	case KindSet:
		return func(d temporal.Date) (temporal.Date, error) {
			return f.WithDate(d, operand, false)
		}
	case KindSetLenient:
		return func(d temporal.Date) (temporal.Date, error) {
			return f.WithDate(d, operand, true)
		}
	default:
		panic(fmt.Sprintf("operator: unresolvable kind %d", kind))
	}
}

// stepDate advances a date by one base unit of the field.
func stepDate(d temporal.Date, f *field.Field, sign int64) (temporal.Date, error) {
	switch f.Base() {
	case temporal.UnitYears:
		return d.AddMonths(sign * 12), nil
	case temporal.UnitQuarters:
		return d.AddMonths(sign * 3), nil
	case temporal.UnitMonths:
		return d.AddMonths(sign), nil
	case temporal.UnitWeeks:
		return d.AddDays(sign * 7), nil
	case temporal.UnitDays:
		return d.AddDays(sign), nil
	default:
		return temporal.Date{}, fmt.Errorf("%w: field %s has no calendar base unit",
			errs.ErrUnsupportedOperation, f.Name())
	}
}

func resolveTimeDelegate(kind Kind, f *field.Field, operand int64) timeDelegate {
	switch kind {
	case KindMinimize:
		return func(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
			out, _, err := f.WithTime(t, 0, false)

			return out, err
		}
	case KindMaximize:
		return func(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
			max, err := f.TimeMaxAt(t, false)
			if err != nil {
				return temporal.TimeOfDay{}, err
			}
			out, _, err := f.WithTime(t, max, false)

			return out, err
		}
	case KindIncrement:
		return func(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
			return stepTime(t, f, 1), nil
		}
	case KindDecrement:
		return func(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
			return stepTime(t, f, -1), nil
		}
	case KindFloor:
		return f.FloorTime
	case KindCeiling:
		return f.CeilingTime
	case KindSet:
		return func(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
			out, _, err := f.WithTime(t, operand, false)

			return out, err
		}
	case KindSetLenient:
		return func(t temporal.TimeOfDay) (temporal.TimeOfDay, error) {
			out, _, err := f.WithTime(t, operand, true)

			return out, err
		}
	default:
		panic(fmt.Sprintf("operator: unresolvable kind %d", kind))
	}
}

// stepTime shifts a wall clock time by one base unit of the field, wrapping
// cyclically. The end-of-day marker normalizes to hour 0 before stepping
// forward, so incrementing from 24:00 yields 01:00 for hours.
func stepTime(t temporal.TimeOfDay, f *field.Field, sign int64) temporal.TimeOfDay {
	span := f.Base().Nanos()

	return temporal.TimeFromNanoOfDay(t.NanoOfDay() + sign*span)
}

func resolveTimestampDelegate(kind Kind, f *field.Field, operand int64) tsDelegate {
	if f.SupportsTime() {
		return resolveTimestampTimeDelegate(kind, f, operand)
	}
	if f.SupportsDate() {
		return resolveTimestampDateDelegate(kind, f, operand)
	}

	return nil
}

// resolveTimestampDateDelegate adapts a date-field kind to timestamps: the
// date part is adjusted, the wall time rides along, except floor/ceiling
// which also saturate the time part (it is finer than any date field).
func resolveTimestampDateDelegate(kind Kind, f *field.Field, operand int64) tsDelegate {
	dateFn := resolveDateDelegate(kind, f, operand)

	switch kind {
	case KindFloor:
		return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			d, err := dateFn(ts.Date)
			if err != nil {
				return temporal.Timestamp{}, err
			}

			return temporal.Timestamp{Date: d, Time: temporal.Midnight}, nil
		}
	case KindCeiling:
		return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			d, err := dateFn(ts.Date)
			if err != nil {
				return temporal.Timestamp{}, err
			}

			return temporal.Timestamp{Date: d, Time: lastNanoOfDay}, nil
		}
	default:
		return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			d, err := dateFn(ts.Date)
			if err != nil {
				return temporal.Timestamp{}, err
			}

			return temporal.Timestamp{Date: d, Time: ts.Time}, nil
		}
	}
}

var lastNanoOfDay = temporal.TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nano: 999_999_999}

// resolveTimestampTimeDelegate adapts a time-field kind to timestamps: day
// carries roll the calendar date, and the extended hour range collapses to
// 0..23 since timestamps never store the end-of-day marker.
func resolveTimestampTimeDelegate(kind Kind, f *field.Field, operand int64) tsDelegate {
	switch kind {
	case KindMinimize:
		return withTimeValue(f, func(temporal.Timestamp) (int64, error) { return 0, nil }, false)
	case KindMaximize:
		return withTimeValue(f, func(temporal.Timestamp) (int64, error) {
			return f.TimeMax(true)
		}, false)
	case KindIncrement:
		return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			return ts.AddNanos(f.Base().Nanos()), nil
		}
	case KindDecrement:
		return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			return ts.AddNanos(-f.Base().Nanos()), nil
		}
	case KindFloor:
		return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			t, err := f.FloorTime(ts.Time)
			if err != nil {
				return temporal.Timestamp{}, err
			}

			return temporal.Timestamp{Date: ts.Date, Time: t}, nil
		}
	case KindCeiling:
		return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			t, err := f.CeilingTime(ts.Time)
			if err != nil {
				return temporal.Timestamp{}, err
			}

			return temporal.Timestamp{Date: ts.Date, Time: t}, nil
		}
	case KindSet:
		return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			max, err := f.TimeMax(true)
			if err != nil {
				return temporal.Timestamp{}, err
			}
			if operand < 0 || operand > max {
				return temporal.Timestamp{}, fmt.Errorf("%w: %s=%d not in [0,%d]",
					errs.ErrRangeViolation, f.Name(), operand, max)
			}
			t, carry, err := f.WithTime(ts.Time, operand, false)
			if err != nil {
				return temporal.Timestamp{}, err
			}

			return temporal.Timestamp{Date: ts.Date.AddDays(carry), Time: t}, nil
		}
	case KindSetLenient:
		return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
			t, carry, err := f.WithTime(ts.Time, operand, true)
			if err != nil {
				return temporal.Timestamp{}, err
			}

			return temporal.Timestamp{Date: ts.Date.AddDays(carry), Time: t}, nil
		}
	default:
		panic(fmt.Sprintf("operator: unresolvable kind %d", kind))
	}
}

// withTimeValue builds a timestamp delegate writing a computed field value
// through the strict path.
func withTimeValue(f *field.Field, value func(temporal.Timestamp) (int64, error), lenient bool) tsDelegate {
	return func(ts temporal.Timestamp) (temporal.Timestamp, error) {
		v, err := value(ts)
		if err != nil {
			return temporal.Timestamp{}, err
		}
		t, carry, err := f.WithTime(ts.Time, v, lenient)
		if err != nil {
			return temporal.Timestamp{}, err
		}

		return temporal.Timestamp{Date: ts.Date.AddDays(carry), Time: t}, nil
	}
}
