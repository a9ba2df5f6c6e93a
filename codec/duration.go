package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// Machine duration header flags.
const flagMachineNanos = 0x1 // a four-byte nanosecond component follows

// Calendar duration header flags.
const flagWideAmounts = 0x1 // item amounts use eight bytes instead of four

// EncodeMachineDuration appends the encoding of an exact duration to dst:
// eight bytes of seconds, then four bytes of nanoseconds when non-zero. Both
// components carry the duration's sign.
func EncodeMachineDuration(dst []byte, d temporal.MachineDuration) ([]byte, error) {
	var flags byte
	if d.Nanos != 0 {
		flags |= flagMachineNanos
	}

	dst = append(dst, header(TagMachineDuration, flags))
	dst = wire.AppendUint64(dst, uint64(d.Seconds))
	if d.Nanos != 0 {
		dst = wire.AppendUint32(dst, uint32(d.Nanos))
	}

	return dst, nil
}

// DecodeMachineDuration decodes an exact duration from the start of data.
func DecodeMachineDuration(data []byte) (temporal.MachineDuration, int, error) {
	if len(data) < 9 {
		return temporal.MachineDuration{}, 0, fmt.Errorf("%w: machine duration needs at least 9 bytes, got %d", errs.ErrTruncatedPayload, len(data))
	}
	if headerTag(data[0]) != TagMachineDuration {
		return temporal.MachineDuration{}, 0, fmt.Errorf("%w: expected %s tag, got 0x%x", errs.ErrInvalidHeaderByte, TagMachineDuration, data[0])
	}

	flags := headerFlags(data[0])
	if flags&^byte(flagMachineNanos) != 0 {
		return temporal.MachineDuration{}, 0, fmt.Errorf("%w: machine duration flags 0x%x", errs.ErrInvalidHeaderByte, flags)
	}

	seconds := int64(wire.Uint64(data[1:9]))
	n := 9

	var nanos int64
	if flags&flagMachineNanos != 0 {
		if len(data) < 13 {
			return temporal.MachineDuration{}, 0, fmt.Errorf("%w: machine duration nanosecond needs 4 bytes", errs.ErrTruncatedPayload)
		}
		nanos = int64(int32(wire.Uint32(data[9:13])))
		n = 13
	}

	return temporal.NewMachineDuration(seconds, nanos), n, nil
}

// wideAmountScan reports whether any of the first six items pushes the
// encoding to eight-byte amounts.
func wideAmountScan(items []temporal.DurationItem) bool {
	limit := len(items)
	if limit > 6 {
		limit = 6
	}
	for _, item := range items[:limit] {
		if item.Amount >= 1000 {
			return true
		}
	}

	return false
}

// EncodeCalendarDuration appends the encoding of a structured duration to
// dst. The header flags the amount width (four or eight bytes, picked by
// scanning the first six items for an amount of 1000 or more), followed by
// the item count, per item an amount and a unit tag, and a trailing sign
// byte present only when the duration has items.
func EncodeCalendarDuration(dst []byte, d temporal.CalendarDuration) ([]byte, error) {
	if len(d.Items) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d duration items", errs.ErrValueTooLarge, len(d.Items))
	}

	wide := wideAmountScan(d.Items)
	var flags byte
	if wide {
		flags |= flagWideAmounts
	}

	dst = append(dst, header(TagCalendarDuration, flags), byte(len(d.Items)))
	for _, item := range d.Items {
		if item.Amount < 0 || item.Unit == temporal.UnitNone || item.Unit > temporal.UnitNanos {
			return nil, fmt.Errorf("%w: duration item %d %s", errs.ErrRangeViolation, item.Amount, item.Unit)
		}
		if wide {
			dst = wire.AppendUint64(dst, uint64(item.Amount))
		} else {
			if item.Amount > math.MaxUint32 {
				return nil, fmt.Errorf("%w: amount %d needs wide encoding but the leading items selected narrow", errs.ErrValueTooLarge, item.Amount)
			}
			dst = wire.AppendUint32(dst, uint32(item.Amount))
		}
		dst = append(dst, byte(item.Unit))
	}

	if len(d.Items) > 0 {
		sign := byte(0)
		if d.Negative {
			sign = 1
		}
		dst = append(dst, sign)
	}

	return dst, nil
}

// DecodeCalendarDuration decodes a structured duration from the start of
// data.
func DecodeCalendarDuration(data []byte) (temporal.CalendarDuration, int, error) {
	if len(data) < 2 {
		return temporal.CalendarDuration{}, 0, fmt.Errorf("%w: calendar duration needs at least 2 bytes, got %d", errs.ErrTruncatedPayload, len(data))
	}
	if headerTag(data[0]) != TagCalendarDuration {
		return temporal.CalendarDuration{}, 0, fmt.Errorf("%w: expected %s tag, got 0x%x", errs.ErrInvalidHeaderByte, TagCalendarDuration, data[0])
	}

	flags := headerFlags(data[0])
	if flags&^byte(flagWideAmounts) != 0 {
		return temporal.CalendarDuration{}, 0, fmt.Errorf("%w: calendar duration flags 0x%x", errs.ErrInvalidHeaderByte, flags)
	}

	count := int(data[1])
	width := 4
	if flags&flagWideAmounts != 0 {
		width = 8
	}

	need := 2 + count*(width+1)
	if count > 0 {
		need++ // sign byte
	}
	if len(data) < need {
		return temporal.CalendarDuration{}, 0, fmt.Errorf("%w: calendar duration needs %d bytes, got %d", errs.ErrTruncatedPayload, need, len(data))
	}

	items := make([]temporal.DurationItem, 0, count)
	n := 2
	for range count {
		var amount int64
		if width == 8 {
			amount = int64(wire.Uint64(data[n : n+8]))
		} else {
			amount = int64(wire.Uint32(data[n : n+4]))
		}
		n += width

		items = append(items, temporal.DurationItem{Amount: amount, Unit: temporal.Unit(data[n])})
		n++
	}

	negative := false
	if count > 0 {
		switch data[n] {
		case 0:
		case 1:
			negative = true
		default:
			return temporal.CalendarDuration{}, 0, fmt.Errorf("%w: sign byte 0x%x", errs.ErrInvalidHeaderByte, data[n])
		}
		n++
	}

	d, err := temporal.NewCalendarDuration(negative, items...)
	if err != nil {
		return temporal.CalendarDuration{}, 0, err
	}

	return d, n, nil
}
