package leapsec

import (
	"sync"
	"time"
)

// Clock calibration reconciles the wall clock with the process monotonic
// reading once, then derives every later instant from the monotonic source
// plus the fixed offset. Repeated calibration is idempotent: the sync.Once
// guard serializes racing initializers onto a single computed offset.

var (
	calibrateOnce sync.Once
	monoBase      = time.Now()
	wallOffset    int64 // wall nanoseconds at monoBase
)

// Calibrate performs the one-time clock calibration. Calling it is optional;
// Now calibrates on first use.
func Calibrate() {
	calibrateOnce.Do(func() {
		const (
			maxAttempts = 8
			tolerance   = int64(time.Millisecond)
		)

		var prev int64
		havePrev := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			wall := time.Now()
			mono := time.Since(monoBase)
			offset := wall.UnixNano() - mono.Nanoseconds()

			if havePrev && absInt64(offset-prev) <= tolerance {
				wallOffset = offset
				return
			}
			prev = offset
			havePrev = true
		}

		// both sources kept drifting apart; keep the last sample
		wallOffset = prev
	})
}

// NowPosix returns the calibrated current time as POSIX (seconds, nanos).
func NowPosix() (secs int64, nanos int32) {
	Calibrate()

	total := wallOffset + time.Since(monoBase).Nanoseconds()
	secs = total / 1_000_000_000
	nanos = int32(total % 1_000_000_000)
	if nanos < 0 {
		secs--
		nanos += 1_000_000_000
	}

	return secs, nanos
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
