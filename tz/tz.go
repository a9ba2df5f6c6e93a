// Package tz provides the timezone capability the operator engine consumes:
// a mapping from instants to UTC offsets, plus the instant/timestamp
// conversions built on it.
//
// Timezone rule loading and transition history are not implemented here; the
// Location adapter delegates to the Go runtime's tz database, and Fixed zones
// carry a constant offset. Any type implementing Zone can be plugged in.
package tz

import (
	"fmt"
	"time"

	"github.com/arloliu/tempo/temporal"
)

// Offset is a UTC offset in seconds east of Greenwich.
type Offset int32

// NewOffset builds an offset from hours, minutes and seconds, summed as
// signed components: NewOffset(-4, -30, 0) is UTC-04:30:00, and mixed signs
// simply add, so NewOffset(1, -30, 0) is UTC+00:30:00.
func NewOffset(hours, minutes, seconds int) Offset {
	return Offset(hours*3600 + minutes*60 + seconds)
}

func (o Offset) String() string {
	total := int(o)
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}

	return fmt.Sprintf("UTC%s%02d:%02d:%02d", sign, total/3600, (total/60)%60, total%60)
}

// Seconds returns the offset in seconds east of Greenwich.
func (o Offset) Seconds() int { return int(o) }

// UTC is the zero offset.
const UTC Offset = 0

// Zone is the offset-lookup capability. Implementations must be safe for
// concurrent use.
type Zone interface {
	// OffsetAt returns the UTC offset in effect at the given instant.
	OffsetAt(i temporal.Instant) Offset
}

// fixedZone carries one constant offset.
type fixedZone struct {
	offset Offset
}

func (z fixedZone) OffsetAt(temporal.Instant) Offset { return z.offset }

// Fixed returns a zone with a constant offset.
func Fixed(offset Offset) Zone {
	return fixedZone{offset: offset}
}

// locationZone adapts a stdlib *time.Location.
type locationZone struct {
	loc *time.Location
}

func (z locationZone) OffsetAt(i temporal.Instant) Offset {
	_, off := time.Unix(i.Seconds, int64(i.Nanos)).In(z.loc).Zone()

	return Offset(off)
}

// Location adapts the Go runtime's timezone database to the Zone capability.
func Location(loc *time.Location) Zone {
	return locationZone{loc: loc}
}

// System returns the zone of the host's local time.
func System() Zone {
	return locationZone{loc: time.Local}
}

// ToTimestamp projects an instant into the local timeline of the given
// offset. The instant's POSIX second counting is used; leap-second-aware
// callers project the scale first.
func ToTimestamp(i temporal.Instant, offset Offset) temporal.Timestamp {
	return temporal.TimestampFromUnix(i.Seconds+int64(offset), int(i.Nanos))
}

// ToInstant projects a local timestamp back onto the global timeline using
// the given offset. The result is on the POSIX scale.
func ToInstant(ts temporal.Timestamp, offset Offset) temporal.Instant {
	secs, nanos := ts.UnixSeconds()

	return temporal.Instant{Seconds: secs - int64(offset), Nanos: int32(nanos), Scale: temporal.ScalePOSIX}
}
