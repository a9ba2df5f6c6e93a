package operator

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/leapsec"
	"github.com/arloliu/tempo/temporal"
	"github.com/arloliu/tempo/tz"
)

// InstantOperator retargets a date/time operator onto zoned instants: the
// instant projects into the zone's local timeline, the timestamp delegate
// applies, and the result projects back through the same offset lookup.
type InstantOperator struct {
	op   *Operator
	zone tz.Zone
}

// AtZone projects the operator onto instants interpreted in the given zone.
func (op *Operator) AtZone(zone tz.Zone) *InstantOperator {
	return &InstantOperator{op: op, zone: zone}
}

// AtOffset projects the operator onto instants at a fixed UTC offset.
func (op *Operator) AtOffset(offset tz.Offset) *InstantOperator {
	return &InstantOperator{op: op, zone: tz.Fixed(offset)}
}

// AtSystemZone projects the operator onto instants in the host's local zone.
func (op *Operator) AtSystemZone() *InstantOperator {
	return &InstantOperator{op: op, zone: tz.System()}
}

func (io *InstantOperator) String() string {
	return fmt.Sprintf("%s@zone", io.op)
}

// Apply adjusts an instant. Increment and decrement of second and sub-second
// fields on a UTC-scale instant step the continuous timeline directly, so an
// inserted leap second is traversed tick by tick instead of being skipped by
// the local round trip. Everything else converts to local time, applies the
// timestamp delegate and converts back.
func (io *InstantOperator) Apply(i temporal.Instant) (temporal.Instant, error) {
	if io.op.tsFn == nil {
		return temporal.Instant{}, fmt.Errorf("%w: %s on instants", errs.ErrUnsupportedOperation, io.op.name)
	}

	if step, ok := io.continuousStep(i); ok {
		return i.AddNanos(step), nil
	}

	posix := i
	if i.Scale == temporal.ScaleUTC {
		var err error
		posix, err = leapsec.ToPosix(i)
		if err != nil {
			return temporal.Instant{}, err
		}
	}

	offset := io.zone.OffsetAt(posix)
	local := tz.ToTimestamp(posix, offset)

	adjusted, err := io.op.ApplyTimestamp(local)
	if err != nil {
		return temporal.Instant{}, err
	}

	result := tz.ToInstant(adjusted, offset)
	if i.Scale == temporal.ScaleUTC {
		return leapsec.ToUTC(result)
	}

	return result, nil
}

// continuousStep reports whether the operator must bypass the local round
// trip: leap-second-sensitive stepping applies to UTC-scale instants when
// the target field's base unit is one second or finer.
func (io *InstantOperator) continuousStep(i temporal.Instant) (int64, bool) {
	if i.Scale != temporal.ScaleUTC || io.op.field == nil {
		return 0, false
	}
	if io.op.kind != KindIncrement && io.op.kind != KindDecrement {
		return 0, false
	}

	base := io.op.field.Base()
	if !base.IsClock() || base.Nanos() > 1_000_000_000 {
		return 0, false
	}

	step := base.Nanos()
	if io.op.kind == KindDecrement {
		step = -step
	}

	return step, true
}
