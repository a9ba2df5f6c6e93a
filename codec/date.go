package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// Year-range selectors, stored in the top two bits of the second byte of a
// date encoding. The selector picks the width of the year payload.
const (
	yearRangeCompact = 0 // [1850,2100], one byte as offset from 1850
	yearRangeShort   = 1 // |year| < 10000, two bytes signed
	yearRangeFull    = 2 // int32 range, four bytes signed

	compactYearBase = 1850
	compactYearMax  = 2100
	shortYearBound  = 10_000
)

func yearSelector(year int) byte {
	switch {
	case year >= compactYearBase && year <= compactYearMax:
		return yearRangeCompact
	case year > -shortYearBound && year < shortYearBound:
		return yearRangeShort
	default:
		return yearRangeFull
	}
}

// EncodeDate appends the encoding of a date to dst.
//
// Layout: header byte with the month in the low nibble, one byte packing the
// year-range selector (top two bits) with the day of month (low five bits),
// then a 1, 2 or 4 byte year payload depending on the selector.
func EncodeDate(dst []byte, d temporal.Date) ([]byte, error) {
	return encodeDateWithTag(dst, d, TagDate)
}

func encodeDateWithTag(dst []byte, d temporal.Date, tag Tag) ([]byte, error) {
	if d.Year < math.MinInt32 || d.Year > math.MaxInt32 {
		return nil, fmt.Errorf("%w: year %d exceeds the codec's 32-bit range", errs.ErrValueTooLarge, d.Year)
	}
	if d.Month < temporal.January || d.Month > temporal.December || d.Day < 1 || d.Day > 31 {
		return nil, fmt.Errorf("%w: date %s", errs.ErrRangeViolation, d)
	}

	selector := yearSelector(d.Year)
	dst = append(dst, header(tag, byte(d.Month)), selector<<6|byte(d.Day))

	switch selector {
	case yearRangeCompact:
		return append(dst, byte(d.Year-compactYearBase)), nil
	case yearRangeShort:
		return wire.AppendUint16(dst, uint16(int16(d.Year))), nil
	default:
		return wire.AppendUint32(dst, uint32(int32(d.Year))), nil
	}
}

// DecodeDate decodes a date from the start of data, returning the date and
// the number of bytes consumed.
func DecodeDate(data []byte) (temporal.Date, int, error) {
	return decodeDateWithTag(data, TagDate)
}

func decodeDateWithTag(data []byte, tag Tag) (temporal.Date, int, error) {
	if len(data) < 2 {
		return temporal.Date{}, 0, fmt.Errorf("%w: date needs at least 3 bytes, got %d", errs.ErrTruncatedPayload, len(data))
	}
	if headerTag(data[0]) != tag {
		return temporal.Date{}, 0, fmt.Errorf("%w: expected %s tag, got 0x%x", errs.ErrInvalidHeaderByte, tag, data[0])
	}

	month := temporal.Month(headerFlags(data[0]))
	selector := data[1] >> 6
	day := int(data[1] & 0x1F)

	var year, n int
	switch selector {
	case yearRangeCompact:
		if len(data) < 3 {
			return temporal.Date{}, 0, fmt.Errorf("%w: compact year byte missing", errs.ErrTruncatedPayload)
		}
		year, n = compactYearBase+int(data[2]), 3
	case yearRangeShort:
		if len(data) < 4 {
			return temporal.Date{}, 0, fmt.Errorf("%w: short year needs 2 bytes", errs.ErrTruncatedPayload)
		}
		year, n = int(int16(wire.Uint16(data[2:4]))), 4
	case yearRangeFull:
		if len(data) < 6 {
			return temporal.Date{}, 0, fmt.Errorf("%w: full year needs 4 bytes", errs.ErrTruncatedPayload)
		}
		year, n = int(int32(wire.Uint32(data[2:6]))), 6
	default:
		return temporal.Date{}, 0, fmt.Errorf("%w: year-range selector %d", errs.ErrInvalidHeaderByte, selector)
	}

	d, err := temporal.NewDate(year, month, day)
	if err != nil {
		return temporal.Date{}, 0, err
	}

	return d, n, nil
}

// EncodeTimestamp appends the encoding of a timestamp to dst: the date
// encoding under the timestamp tag, immediately followed by the time body.
func EncodeTimestamp(dst []byte, ts temporal.Timestamp) ([]byte, error) {
	dst, err := encodeDateWithTag(dst, ts.Date, TagTimestamp)
	if err != nil {
		return nil, err
	}
	if ts.Time.Hour < 0 || ts.Time.Hour > 24 {
		return nil, fmt.Errorf("%w: hour %d", errs.ErrRangeViolation, ts.Time.Hour)
	}

	return appendTimeBody(dst, ts.Time), nil
}

// DecodeTimestamp decodes a timestamp from the start of data.
func DecodeTimestamp(data []byte) (temporal.Timestamp, int, error) {
	d, n, err := decodeDateWithTag(data, TagTimestamp)
	if err != nil {
		return temporal.Timestamp{}, 0, err
	}

	t, m, err := decodeTimeBody(data[n:])
	if err != nil {
		return temporal.Timestamp{}, 0, err
	}

	ts, err := temporal.NewTimestamp(d, t)
	if err != nil {
		return temporal.Timestamp{}, 0, err
	}

	return ts, n + m, nil
}
