package leapsec

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// Delta returns the elapsed whole SI seconds from a to b on the UTC scale,
// leap seconds included. The result is corrected across the sub-second
// boundary: a positive raw delta with a negative nanosecond remainder loses
// one second, a negative raw delta with a positive remainder gains one.
// Both instants must be at or after the 1972 epoch.
func Delta(a, b temporal.Instant) (int64, error) {
	ua, err := UTCSeconds(a)
	if err != nil {
		return 0, err
	}
	ub, err := UTCSeconds(b)
	if err != nil {
		return 0, err
	}

	delta := ub - ua
	nanoDelta := int64(b.Nanos) - int64(a.Nanos)
	if delta > 0 && nanoDelta < 0 {
		delta--
	} else if delta < 0 && nanoDelta > 0 {
		delta++
	}

	return delta, nil
}

// DeltaNanos returns the elapsed nanoseconds from a to b on the UTC scale
// with overflow-checked arithmetic. The representable span is roughly ±292
// years; anything beyond fails with errs.ErrArithmeticOverflow.
func DeltaNanos(a, b temporal.Instant) (int64, error) {
	ua, err := UTCSeconds(a)
	if err != nil {
		return 0, err
	}
	ub, err := UTCSeconds(b)
	if err != nil {
		return 0, err
	}

	secs, ok := subChecked(ub, ua)
	if !ok {
		return 0, fmt.Errorf("%w: second delta", errs.ErrArithmeticOverflow)
	}
	scaled, ok := mulChecked(secs, 1_000_000_000)
	if !ok {
		return 0, fmt.Errorf("%w: nanosecond delta", errs.ErrArithmeticOverflow)
	}
	total, ok := addChecked(scaled, int64(b.Nanos)-int64(a.Nanos))
	if !ok {
		return 0, fmt.Errorf("%w: nanosecond delta", errs.ErrArithmeticOverflow)
	}

	return total, nil
}

func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

func subChecked(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}

	return d, true
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
