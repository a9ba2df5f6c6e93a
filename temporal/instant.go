package temporal

import "fmt"

// TimeScale identifies how an Instant counts elapsed seconds.
type TimeScale uint8

const (
	// ScalePOSIX counts 86400 seconds per day and ignores leap seconds.
	ScalePOSIX TimeScale = iota
	// ScaleUTC counts real SI seconds including inserted leap seconds.
	// Leap-second accounting is defined from 1972-01-01 onward only.
	ScaleUTC
)

func (s TimeScale) String() string {
	switch s {
	case ScalePOSIX:
		return "POSIX"
	case ScaleUTC:
		return "UTC"
	default:
		return "Unknown"
	}
}

// Instant is a point on the global timeline: elapsed seconds since the POSIX
// epoch 1970-01-01T00:00Z plus a nanosecond fraction, tagged with the time
// scale governing its second counting.
type Instant struct {
	Seconds int64
	Nanos   int32
	Scale   TimeScale
}

// NewInstant validates the nanosecond fraction and returns the instant.
func NewInstant(seconds int64, nanos int32, scale TimeScale) (Instant, error) {
	if nanos < 0 || nanos > 999_999_999 {
		return Instant{}, fmt.Errorf("instant nanosecond %d out of range", nanos)
	}

	return Instant{Seconds: seconds, Nanos: nanos, Scale: scale}, nil
}

// MustInstant is like NewInstant but panics on an invalid fraction.
func MustInstant(seconds int64, nanos int32, scale TimeScale) Instant {
	i, err := NewInstant(seconds, nanos, scale)
	if err != nil {
		panic(err)
	}

	return i
}

func (i Instant) String() string {
	return fmt.Sprintf("%d.%09ds (%s)", i.Seconds, i.Nanos, i.Scale)
}

// Compare orders instants by their (seconds, nanos) pair. Instants on
// different scales are not directly comparable; callers must project first.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.Seconds < other.Seconds:
		return -1
	case i.Seconds > other.Seconds:
		return 1
	case i.Nanos < other.Nanos:
		return -1
	case i.Nanos > other.Nanos:
		return 1
	default:
		return 0
	}
}

// AddSeconds shifts the instant along its own continuous timeline.
func (i Instant) AddSeconds(secs int64) Instant {
	return Instant{Seconds: i.Seconds + secs, Nanos: i.Nanos, Scale: i.Scale}
}

// AddNanos shifts the instant along its own continuous timeline, carrying the
// fraction into whole seconds.
func (i Instant) AddNanos(nanos int64) Instant {
	total := int64(i.Nanos) + nanos
	carry := floorDiv(total, 1_000_000_000)

	return Instant{
		Seconds: i.Seconds + carry,
		Nanos:   int32(floorMod(total, 1_000_000_000)),
		Scale:   i.Scale,
	}
}
