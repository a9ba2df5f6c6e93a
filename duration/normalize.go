// Package duration normalizes the clock portion of calendar durations:
// collapsing to a single unit, truncating below a granularity floor, or
// rounding at the floor with a half-way carry.
package duration

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// Mode selects the normalization strategy.
type Mode uint8

const (
	// ModeOnly collapses the whole clock duration into a single unit,
	// dropping any remainder finer than that unit.
	ModeOnly Mode = iota + 1
	// ModeTruncate keeps the components at or coarser than the unit and
	// drops the finer remainder unchanged.
	ModeTruncate
	// ModeRound truncates like ModeTruncate but first carries one unit when
	// the next finer component reaches half of its range.
	ModeRound
)

func (m Mode) String() string {
	switch m {
	case ModeOnly:
		return "Only"
	case ModeTruncate:
		return "Truncate"
	case ModeRound:
		return "Round"
	default:
		return "Unknown"
	}
}

// Normalizer rewrites the clock components (hours and finer) of a calendar
// duration. Calendrical components pass through untouched. Normalizers are
// immutable and safe to share.
type Normalizer struct {
	mode Mode
	unit temporal.Unit
}

// Only returns a normalizer collapsing the clock duration to a single unit.
func Only(unit temporal.Unit) Normalizer {
	return Normalizer{mode: ModeOnly, unit: unit}
}

// Truncate returns a normalizer dropping precision finer than the unit.
func Truncate(unit temporal.Unit) Normalizer {
	return Normalizer{mode: ModeTruncate, unit: unit}
}

// Round returns a normalizer rounding at the unit with a half-way carry.
func Round(unit temporal.Unit) Normalizer {
	return Normalizer{mode: ModeRound, unit: unit}
}

// clock units ordered coarse to fine
var clockUnits = []temporal.Unit{
	temporal.UnitHours,
	temporal.UnitMinutes,
	temporal.UnitSeconds,
	temporal.UnitMillis,
	temporal.UnitMicros,
	temporal.UnitNanos,
}

// half-range thresholds of the unit one step finer than the cutoff
var halfThreshold = map[temporal.Unit]int64{
	temporal.UnitMinutes: 30,  // carried into hours
	temporal.UnitSeconds: 30,  // carried into minutes
	temporal.UnitMillis:  500, // carried into seconds
	temporal.UnitMicros:  500, // carried into millis
	temporal.UnitNanos:   500, // carried into micros
}

// Apply rewrites the duration's clock components according to the
// normalizer's mode. The sign is preserved by normalizing the absolute value
// and re-negating the result.
func (n Normalizer) Apply(d temporal.CalendarDuration) (temporal.CalendarDuration, error) {
	if !n.unit.IsClock() {
		return temporal.CalendarDuration{}, fmt.Errorf("%w: %s is not a clock unit", errs.ErrUnsupportedOperation, n.unit)
	}

	negative := d.Negative
	abs := d.Abs()

	var calendrical []temporal.DurationItem
	for _, item := range abs.Items {
		if item.Unit.IsCalendrical() {
			calendrical = append(calendrical, item)
		}
	}

	totalNanos, err := clockNanos(abs)
	if err != nil {
		return temporal.CalendarDuration{}, err
	}

	var clock []temporal.DurationItem
	switch n.mode {
	case ModeOnly:
		if amount := totalNanos / n.unit.Nanos(); amount != 0 {
			clock = append(clock, temporal.DurationItem{Amount: amount, Unit: n.unit})
		}
		// only-mode discards the calendrical part as well: the result is a
		// pure single-unit clock duration
		calendrical = nil
	case ModeTruncate:
		clock = splitClock(truncateNanos(totalNanos, n.unit))
	case ModeRound:
		clock = splitClock(roundNanos(totalNanos, n.unit))
	default:
		panic(fmt.Sprintf("duration: unknown normalizer mode %d", n.mode))
	}

	result, err := temporal.NewCalendarDuration(false, append(calendrical, clock...)...)
	if err != nil {
		return temporal.CalendarDuration{}, err
	}
	if negative && !result.IsZero() {
		result = result.Negated()
	}

	return result, nil
}

// clockNanos sums the clock components into nanoseconds with overflow checks.
func clockNanos(d temporal.CalendarDuration) (int64, error) {
	var total int64
	for _, item := range d.Items {
		if !item.Unit.IsClock() {
			continue
		}
		scaled, ok := mulChecked(item.Amount, item.Unit.Nanos())
		if !ok {
			return 0, fmt.Errorf("%w: %d %s", errs.ErrArithmeticOverflow, item.Amount, item.Unit)
		}
		total, ok = addChecked(total, scaled)
		if !ok {
			return 0, fmt.Errorf("%w: clock duration total", errs.ErrArithmeticOverflow)
		}
	}

	return total, nil
}

func truncateNanos(nanos int64, unit temporal.Unit) int64 {
	step := unit.Nanos()

	return nanos - nanos%step
}

func roundNanos(nanos int64, unit temporal.Unit) int64 {
	if unit == temporal.UnitNanos {
		return nanos
	}

	finer := unit + 1
	threshold := halfThreshold[finer]
	step := unit.Nanos()
	remainder := (nanos % step) / finer.Nanos()
	truncated := nanos - nanos%step
	if remainder >= threshold {
		truncated += step
	}

	return truncated
}

// splitClock decomposes non-negative nanoseconds into canonical clock items.
func splitClock(nanos int64) []temporal.DurationItem {
	var items []temporal.DurationItem
	for _, u := range clockUnits {
		amount := nanos / u.Nanos()
		nanos -= amount * u.Nanos()
		if amount != 0 {
			items = append(items, temporal.DurationItem{Amount: amount, Unit: u})
		}
	}

	return items
}

func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
