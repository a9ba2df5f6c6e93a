// Package tempo provides immutable temporal value types, calendar-aware
// adjustment operators, and a compact binary codec for persisting the
// results.
//
// The value types live in the temporal package: Date, TimeOfDay, Timestamp
// and Instant, plus MachineDuration, CalendarDuration, WeekModel and
// DayPeriod. They are plain immutable structs; every adjustment returns a
// new value.
//
// Operators are small reusable command objects built once and applied to any
// number of values:
//
//	op := operator.FirstDayOfNextMonth
//	d, _ := op.ApplyDate(temporal.MustDate(2024, temporal.February, 15))
//	// d == 2024-03-01
//
//	rounded, _ := operator.Round(field.MinuteOfHour, operator.RoundNearest, 15).
//		ApplyTime(temporal.MustTimeOfDay(9, 38, 0, 0))
//	// rounded == 09:45:00
//
// Zoned application projects an operator onto instants through a timezone
// capability:
//
//	i, _ := operator.Floor(field.HourOfDay).AtZone(tz.System()).Apply(now)
//
// This package itself carries convenience wrappers over the codec and blob
// packages for the common encode-one-value and bundle-many-values cases. For
// fine-grained control use those packages directly.
package tempo

import (
	"fmt"

	"github.com/arloliu/tempo/blob"
	"github.com/arloliu/tempo/codec"
	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/internal/hash"
	"github.com/arloliu/tempo/temporal"
)

// Encode encodes one temporal value in the compact binary format.
func Encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case temporal.Date:
		return codec.EncodeDate(nil, v)
	case temporal.TimeOfDay:
		return codec.EncodeTime(nil, v)
	case temporal.Timestamp:
		return codec.EncodeTimestamp(nil, v)
	case temporal.Instant:
		return codec.EncodeInstant(nil, v)
	case temporal.MachineDuration:
		return codec.EncodeMachineDuration(nil, v)
	case temporal.CalendarDuration:
		return codec.EncodeCalendarDuration(nil, v)
	case temporal.WeekModel:
		return codec.EncodeWeekModel(nil, v)
	case temporal.DayPeriod:
		return codec.EncodeDayPeriod(nil, v)
	default:
		return nil, fmt.Errorf("%w: cannot encode %T", errs.ErrUnsupportedOperation, value)
	}
}

// Decode decodes one value encoded by Encode. The concrete type is one of
// the temporal package's value types.
func Decode(data []byte) (any, error) {
	v, _, err := codec.Decode(data)
	return v, err
}

// ValueID computes the 64-bit key a blob uses for a value name.
func ValueID(name string) uint64 {
	return hash.ID(name)
}

// NewBlobWriter creates a blob writer for bundling many named values.
func NewBlobWriter(opts ...blob.WriterOption) (*blob.Writer, error) {
	return blob.NewWriter(opts...)
}

// ParseBlob parses blob bytes produced by a Writer.
func ParseBlob(data []byte) (*blob.Blob, error) {
	return blob.Parse(data)
}
