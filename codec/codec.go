// Package codec implements the compact binary format for temporal values.
//
// Every encoding starts with one header byte: the high nibble is the type
// tag, the low nibble carries type-specific flags (or, for dates and
// timestamps, the month). Multi-byte integers are big-endian on the wire.
// The byte layout is coupled to the header bits, so any change to a write
// path must update the matching read path in lock-step.
package codec

import (
	"fmt"

	"github.com/arloliu/tempo/endian"
	"github.com/arloliu/tempo/errs"
)

// Tag identifies the encoded value type in the high nibble of the header
// byte. The values are part of the wire format and must not change.
type Tag byte

const (
	// TagDate marks a calendar date.
	TagDate Tag = 0x1
	// TagTime marks a time of day.
	TagTime Tag = 0x2
	// TagWeekModel marks a week model.
	TagWeekModel Tag = 0x3
	// TagInstant marks an instant.
	TagInstant Tag = 0x4
	// TagMachineDuration marks an exact seconds/nanos duration.
	TagMachineDuration Tag = 0x5
	// TagCalendarDuration marks a structured per-unit duration.
	TagCalendarDuration Tag = 0x6
	// TagDayPeriod marks a day period partition.
	TagDayPeriod Tag = 0x7
	// TagTimestamp marks a date paired with a time of day.
	TagTimestamp Tag = 0x8
)

func (t Tag) String() string {
	switch t {
	case TagDate:
		return "Date"
	case TagTime:
		return "Time"
	case TagWeekModel:
		return "WeekModel"
	case TagInstant:
		return "Instant"
	case TagMachineDuration:
		return "MachineDuration"
	case TagCalendarDuration:
		return "CalendarDuration"
	case TagDayPeriod:
		return "DayPeriod"
	case TagTimestamp:
		return "Timestamp"
	default:
		return fmt.Sprintf("unknown(0x%x)", byte(t))
	}
}

// wire is the byte order of all multi-byte integers in the format.
var wire = endian.GetBigEndianEngine()

func header(tag Tag, flags byte) byte {
	return byte(tag)<<4 | flags&0x0F
}

func headerTag(b byte) Tag {
	return Tag(b >> 4)
}

func headerFlags(b byte) byte {
	return b & 0x0F
}

// Decode decodes the value at the start of data by dispatching on its type
// tag. It returns the decoded value, the number of bytes consumed, and an
// error for unknown tags or malformed payloads.
func Decode(data []byte) (any, int, error) {
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty input", errs.ErrTruncatedPayload)
	}

	switch headerTag(data[0]) {
	case TagDate:
		return decodeAny(DecodeDate(data))
	case TagTime:
		return decodeAny(DecodeTime(data))
	case TagWeekModel:
		return decodeAny(DecodeWeekModel(data))
	case TagInstant:
		return decodeAny(DecodeInstant(data))
	case TagMachineDuration:
		return decodeAny(DecodeMachineDuration(data))
	case TagCalendarDuration:
		return decodeAny(DecodeCalendarDuration(data))
	case TagDayPeriod:
		return decodeAny(DecodeDayPeriod(data))
	case TagTimestamp:
		return decodeAny(DecodeTimestamp(data))
	default:
		return nil, 0, fmt.Errorf("%w: 0x%x", errs.ErrUnknownTypeTag, data[0]>>4)
	}
}

func decodeAny[T any](v T, n int, err error) (any, int, error) {
	if err != nil {
		return nil, 0, err
	}

	return v, n, nil
}
