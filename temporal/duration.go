package temporal

import (
	"fmt"
	"strings"

	"github.com/arloliu/tempo/errs"
)

// MachineDuration is an exact span of machine time: whole seconds plus a
// nanosecond fraction. The value is normalized so that Nanos carries the same
// sign as Seconds and |Nanos| < 1e9.
type MachineDuration struct {
	Seconds int64
	Nanos   int32
}

// NewMachineDuration normalizes the components into canonical form.
func NewMachineDuration(seconds int64, nanos int64) MachineDuration {
	seconds += nanos / 1_000_000_000
	nanos %= 1_000_000_000

	// align signs
	if seconds > 0 && nanos < 0 {
		seconds--
		nanos += 1_000_000_000
	} else if seconds < 0 && nanos > 0 {
		seconds++
		nanos -= 1_000_000_000
	}

	return MachineDuration{Seconds: seconds, Nanos: int32(nanos)}
}

// IsNegative reports whether the duration points backwards in time.
func (d MachineDuration) IsNegative() bool {
	return d.Seconds < 0 || (d.Seconds == 0 && d.Nanos < 0)
}

func (d MachineDuration) String() string {
	n := d.Nanos
	if n < 0 {
		n = -n
	}

	return fmt.Sprintf("%d.%09ds", d.Seconds, n)
}

// DurationItem is one component of a calendar duration: a non-negative amount
// of one unit. The sign of the whole duration lives on CalendarDuration.
type DurationItem struct {
	Amount int64
	Unit   Unit
}

// CalendarDuration is a structured span composed of per-unit amounts, ordered
// coarse to fine with at most one item per unit. An empty item list is the
// zero duration.
type CalendarDuration struct {
	Items    []DurationItem
	Negative bool
}

// NewCalendarDuration validates and canonicalizes the item list: amounts must
// be non-negative, units must not repeat, items are ordered coarse to fine
// and zero amounts are dropped.
func NewCalendarDuration(negative bool, items ...DurationItem) (CalendarDuration, error) {
	var kept []DurationItem
	var seen [UnitNanos + 1]bool

	for _, item := range items {
		if item.Unit == UnitNone || item.Unit > UnitNanos {
			return CalendarDuration{}, fmt.Errorf("%w: duration unit %d", errs.ErrRangeViolation, item.Unit)
		}
		if item.Amount < 0 {
			return CalendarDuration{}, fmt.Errorf("%w: negative amount %d for %s", errs.ErrRangeViolation, item.Amount, item.Unit)
		}
		if seen[item.Unit] {
			return CalendarDuration{}, fmt.Errorf("%w: duplicate duration unit %s", errs.ErrRangeViolation, item.Unit)
		}
		seen[item.Unit] = true
		if item.Amount != 0 {
			kept = append(kept, item)
		}
	}

	ordered := make([]DurationItem, 0, len(kept))
	for u := UnitYears; u <= UnitNanos; u++ {
		for _, item := range kept {
			if item.Unit == u {
				ordered = append(ordered, item)
			}
		}
	}

	if len(ordered) == 0 {
		negative = false
	}

	return CalendarDuration{Items: ordered, Negative: negative}, nil
}

// IsZero reports whether the duration has no components.
func (d CalendarDuration) IsZero() bool {
	return len(d.Items) == 0
}

// Amount returns the amount stored for the unit, or 0 if absent.
func (d CalendarDuration) Amount(u Unit) int64 {
	for _, item := range d.Items {
		if item.Unit == u {
			return item.Amount
		}
	}

	return 0
}

// Abs returns the duration with the sign cleared.
func (d CalendarDuration) Abs() CalendarDuration {
	return CalendarDuration{Items: d.Items, Negative: false}
}

// Negated flips the sign of a non-zero duration.
func (d CalendarDuration) Negated() CalendarDuration {
	if d.IsZero() {
		return d
	}

	return CalendarDuration{Items: d.Items, Negative: !d.Negative}
}

// Equal reports component-wise equality.
func (d CalendarDuration) Equal(other CalendarDuration) bool {
	if d.Negative != other.Negative || len(d.Items) != len(other.Items) {
		return false
	}
	for i := range d.Items {
		if d.Items[i] != other.Items[i] {
			return false
		}
	}

	return true
}

func (d CalendarDuration) String() string {
	if d.IsZero() {
		return "PT0S"
	}

	var sb strings.Builder
	if d.Negative {
		sb.WriteByte('-')
	}
	sb.WriteByte('P')
	clock := false
	for _, item := range d.Items {
		if item.Unit.IsClock() && !clock {
			sb.WriteByte('T')
			clock = true
		}
		fmt.Fprintf(&sb, "%d%s", item.Amount, unitSymbols[item.Unit])
	}

	return sb.String()
}

var unitSymbols = map[Unit]string{
	UnitYears:    "Y",
	UnitQuarters: "Q",
	UnitMonths:   "M",
	UnitWeeks:    "W",
	UnitDays:     "D",
	UnitHours:    "H",
	UnitMinutes:  "M",
	UnitSeconds:  "S",
	UnitMillis:   "ms",
	UnitMicros:   "us",
	UnitNanos:    "ns",
}
