package codec

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// EncodeTime appends the encoding of a time of day to dst.
//
// The body drops trailing zero components greedily. The last emitted
// component byte is stored bitwise-complemented, which sets its sign bit
// (hour, minute and second are all below 0x80): the decoder walks the bytes
// and stops at the first one with the sign bit set. Only when the nanosecond
// component is non-zero are all of hour, minute and second emitted plain,
// followed by a four-byte nanosecond.
func EncodeTime(dst []byte, t temporal.TimeOfDay) ([]byte, error) {
	if t.Hour < 0 || t.Hour > 24 || t.Minute < 0 || t.Minute > 59 ||
		t.Second < 0 || t.Second > 59 || t.Nano < 0 || t.Nano > 999_999_999 {
		return nil, fmt.Errorf("%w: time %s", errs.ErrRangeViolation, t)
	}

	return appendTimeBody(append(dst, header(TagTime, 0)), t), nil
}

// DecodeTime decodes a time of day from the start of data.
func DecodeTime(data []byte) (temporal.TimeOfDay, int, error) {
	if len(data) < 2 {
		return temporal.TimeOfDay{}, 0, fmt.Errorf("%w: time needs at least 2 bytes, got %d", errs.ErrTruncatedPayload, len(data))
	}
	if headerTag(data[0]) != TagTime {
		return temporal.TimeOfDay{}, 0, fmt.Errorf("%w: expected %s tag, got 0x%x", errs.ErrInvalidHeaderByte, TagTime, data[0])
	}
	if headerFlags(data[0]) != 0 {
		return temporal.TimeOfDay{}, 0, fmt.Errorf("%w: time flags 0x%x", errs.ErrInvalidHeaderByte, headerFlags(data[0]))
	}

	t, n, err := decodeTimeBody(data[1:])
	if err != nil {
		return temporal.TimeOfDay{}, 0, err
	}

	return t, n + 1, nil
}

func appendTimeBody(dst []byte, t temporal.TimeOfDay) []byte {
	switch {
	case t.Minute == 0 && t.Second == 0 && t.Nano == 0:
		return append(dst, ^byte(t.Hour))
	case t.Second == 0 && t.Nano == 0:
		return append(dst, byte(t.Hour), ^byte(t.Minute))
	case t.Nano == 0:
		return append(dst, byte(t.Hour), byte(t.Minute), ^byte(t.Second))
	default:
		dst = append(dst, byte(t.Hour), byte(t.Minute), byte(t.Second))
		return wire.AppendUint32(dst, uint32(t.Nano))
	}
}

// decodeTimeBody reads the truncated time layout: a byte with the sign bit
// set is the complemented last component.
func decodeTimeBody(data []byte) (temporal.TimeOfDay, int, error) {
	var raw [3]int // hour, minute, second
	n := 0

	for i := range raw {
		if n >= len(data) {
			return temporal.TimeOfDay{}, 0, fmt.Errorf("%w: time body component %d missing", errs.ErrTruncatedPayload, i)
		}
		b := data[n]
		n++
		if b >= 0x80 {
			raw[i] = int(^b)
			t, err := temporal.NewTimeOfDay(raw[0], raw[1], raw[2], 0)
			if err != nil {
				return temporal.TimeOfDay{}, 0, err
			}

			return t, n, nil
		}
		raw[i] = int(b)
	}

	if len(data) < n+4 {
		return temporal.TimeOfDay{}, 0, fmt.Errorf("%w: time body nanosecond needs 4 bytes", errs.ErrTruncatedPayload)
	}
	nano := int(wire.Uint32(data[n : n+4]))
	n += 4

	t, err := temporal.NewTimeOfDay(raw[0], raw[1], raw[2], nano)
	if err != nil {
		return temporal.TimeOfDay{}, 0, err
	}

	return t, n, nil
}
