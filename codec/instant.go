package codec

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// Instant header flags.
const (
	flagInstantUTC   = 0x1 // time scale is UTC-with-leap-seconds
	flagInstantNanos = 0x2 // a four-byte nanosecond component follows
)

// EncodeInstant appends the encoding of an instant to dst: eight bytes of
// elapsed seconds, then four bytes of nanoseconds when non-zero. The time
// scale travels in the header flags.
func EncodeInstant(dst []byte, i temporal.Instant) ([]byte, error) {
	var flags byte
	if i.Scale == temporal.ScaleUTC {
		flags |= flagInstantUTC
	}
	if i.Nanos != 0 {
		flags |= flagInstantNanos
	}
	if i.Nanos < 0 || i.Nanos > 999_999_999 {
		return nil, fmt.Errorf("%w: instant nanos %d", errs.ErrRangeViolation, i.Nanos)
	}

	dst = append(dst, header(TagInstant, flags))
	dst = wire.AppendUint64(dst, uint64(i.Seconds))
	if i.Nanos != 0 {
		dst = wire.AppendUint32(dst, uint32(i.Nanos))
	}

	return dst, nil
}

// DecodeInstant decodes an instant from the start of data.
func DecodeInstant(data []byte) (temporal.Instant, int, error) {
	if len(data) < 9 {
		return temporal.Instant{}, 0, fmt.Errorf("%w: instant needs at least 9 bytes, got %d", errs.ErrTruncatedPayload, len(data))
	}
	if headerTag(data[0]) != TagInstant {
		return temporal.Instant{}, 0, fmt.Errorf("%w: expected %s tag, got 0x%x", errs.ErrInvalidHeaderByte, TagInstant, data[0])
	}

	flags := headerFlags(data[0])
	if flags&^byte(flagInstantUTC|flagInstantNanos) != 0 {
		return temporal.Instant{}, 0, fmt.Errorf("%w: instant flags 0x%x", errs.ErrInvalidHeaderByte, flags)
	}

	scale := temporal.ScalePOSIX
	if flags&flagInstantUTC != 0 {
		scale = temporal.ScaleUTC
	}

	seconds := int64(wire.Uint64(data[1:9]))
	n := 9

	var nanos int32
	if flags&flagInstantNanos != 0 {
		if len(data) < 13 {
			return temporal.Instant{}, 0, fmt.Errorf("%w: instant nanosecond needs 4 bytes", errs.ErrTruncatedPayload)
		}
		nanos = int32(wire.Uint32(data[9:13]))
		n = 13
	}

	i, err := temporal.NewInstant(seconds, nanos, scale)
	if err != nil {
		return temporal.Instant{}, 0, err
	}

	return i, n, nil
}
