package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// Week model header flags.
const flagWeekModelISO = 0x1 // the model is the ISO-8601 definition, no payload

// EncodeWeekModel appends the encoding of a week model to dst. The ISO model
// collapses to the bare header byte; any other model carries four bytes:
// first day, minimal days, weekend start, weekend end.
func EncodeWeekModel(dst []byte, m temporal.WeekModel) ([]byte, error) {
	if m.IsISO() {
		return append(dst, header(TagWeekModel, flagWeekModelISO)), nil
	}

	if _, err := temporal.NewWeekModel(m.FirstDay, m.MinimalDays, m.WeekendStart, m.WeekendEnd); err != nil {
		return nil, err
	}

	return append(dst, header(TagWeekModel, 0),
		byte(m.FirstDay), byte(m.MinimalDays), byte(m.WeekendStart), byte(m.WeekendEnd)), nil
}

// DecodeWeekModel decodes a week model from the start of data.
func DecodeWeekModel(data []byte) (temporal.WeekModel, int, error) {
	if len(data) < 1 {
		return temporal.WeekModel{}, 0, fmt.Errorf("%w: empty input", errs.ErrTruncatedPayload)
	}
	if headerTag(data[0]) != TagWeekModel {
		return temporal.WeekModel{}, 0, fmt.Errorf("%w: expected %s tag, got 0x%x", errs.ErrInvalidHeaderByte, TagWeekModel, data[0])
	}

	flags := headerFlags(data[0])
	switch flags {
	case flagWeekModelISO:
		return temporal.ISOWeekModel, 1, nil
	case 0:
		if len(data) < 5 {
			return temporal.WeekModel{}, 0, fmt.Errorf("%w: week model needs 5 bytes, got %d", errs.ErrTruncatedPayload, len(data))
		}
		m, err := temporal.NewWeekModel(
			temporal.Weekday(data[1]), int(data[2]),
			temporal.Weekday(data[3]), temporal.Weekday(data[4]))
		if err != nil {
			return temporal.WeekModel{}, 0, err
		}

		return m, 5, nil
	default:
		return temporal.WeekModel{}, 0, fmt.Errorf("%w: week model flags 0x%x", errs.ErrInvalidHeaderByte, flags)
	}
}

// EncodeDayPeriod appends the encoding of a day period to dst: a boundary
// count, then per boundary the truncated time body followed by a
// length-prefixed label.
func EncodeDayPeriod(dst []byte, p temporal.DayPeriod) ([]byte, error) {
	boundaries := p.Boundaries()
	if len(boundaries) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d day period boundaries", errs.ErrValueTooLarge, len(boundaries))
	}

	dst = append(dst, header(TagDayPeriod, 0), byte(len(boundaries)))
	for _, b := range boundaries {
		if len(b.Label) > math.MaxUint8 {
			return nil, fmt.Errorf("%w: day period label %q", errs.ErrValueTooLarge, b.Label)
		}
		dst = appendTimeBody(dst, b.Start)
		dst = append(dst, byte(len(b.Label)))
		dst = append(dst, b.Label...)
	}

	return dst, nil
}

// DecodeDayPeriod decodes a day period from the start of data.
func DecodeDayPeriod(data []byte) (temporal.DayPeriod, int, error) {
	if len(data) < 2 {
		return temporal.DayPeriod{}, 0, fmt.Errorf("%w: day period needs at least 2 bytes, got %d", errs.ErrTruncatedPayload, len(data))
	}
	if headerTag(data[0]) != TagDayPeriod {
		return temporal.DayPeriod{}, 0, fmt.Errorf("%w: expected %s tag, got 0x%x", errs.ErrInvalidHeaderByte, TagDayPeriod, data[0])
	}
	if headerFlags(data[0]) != 0 {
		return temporal.DayPeriod{}, 0, fmt.Errorf("%w: day period flags 0x%x", errs.ErrInvalidHeaderByte, headerFlags(data[0]))
	}

	count := int(data[1])
	n := 2

	boundaries := make([]temporal.DayPeriodBoundary, 0, count)
	for i := range count {
		start, m, err := decodeTimeBody(data[n:])
		if err != nil {
			return temporal.DayPeriod{}, 0, err
		}
		n += m

		if n >= len(data) {
			return temporal.DayPeriod{}, 0, fmt.Errorf("%w: day period label %d missing", errs.ErrTruncatedPayload, i)
		}
		labelLen := int(data[n])
		n++
		if n+labelLen > len(data) {
			return temporal.DayPeriod{}, 0, fmt.Errorf("%w: day period label %d needs %d bytes", errs.ErrTruncatedPayload, i, labelLen)
		}
		label := string(data[n : n+labelLen])
		n += labelLen

		boundaries = append(boundaries, temporal.DayPeriodBoundary{Start: start, Label: label})
	}

	p, err := temporal.NewDayPeriod(boundaries)
	if err != nil {
		return temporal.DayPeriod{}, 0, err
	}

	return p, n, nil
}
