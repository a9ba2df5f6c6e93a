// Package leapsec implements leap-second-aware instant arithmetic: the table
// of announced UTC leap second insertions, the projection between the POSIX
// and UTC second counting, and the floor-consistent elapsed delta between two
// instants. All of it is defined from the 1972-01-01 epoch onward; earlier
// instants fail with errs.ErrBeforeLeapSecondEpoch.
package leapsec

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/temporal"
)

// EpochSeconds is 1972-01-01T00:00Z expressed in POSIX seconds, the first
// instant with defined leap-second accounting.
const EpochSeconds int64 = 63_072_000

// insertion is one announced leap second. posix is the POSIX second of the
// first instant after the inserted second (midnight of the following UTC
// day); cumulative is the total number of seconds inserted up to and
// including this entry.
type insertion struct {
	posix      int64
	cumulative int64
}

// Announced leap second insertions (IERS Bulletin C), 1972-06-30 through
// 2016-12-31. POSIX values are midnights following the insertion.
var insertions = []insertion{
	{78796800, 1},   // 1972-06-30
	{94694400, 2},   // 1972-12-31
	{126230400, 3},  // 1973-12-31
	{157766400, 4},  // 1974-12-31
	{189302400, 5},  // 1975-12-31
	{220924800, 6},  // 1976-12-31
	{252460800, 7},  // 1977-12-31
	{283996800, 8},  // 1978-12-31
	{315532800, 9},  // 1979-12-31
	{362793600, 10}, // 1981-06-30
	{394329600, 11}, // 1982-06-30
	{425865600, 12}, // 1983-06-30
	{489024000, 13}, // 1985-06-30
	{567993600, 14}, // 1987-12-31
	{631152000, 15}, // 1989-12-31
	{662688000, 16}, // 1990-12-31
	{709948800, 17}, // 1992-06-30
	{741484800, 18}, // 1993-06-30
	{773020800, 19}, // 1994-06-30
	{820454400, 20}, // 1995-12-31
	{867715200, 21}, // 1997-06-30
	{915148800, 22}, // 1998-12-31
	{1136073600, 23}, // 2005-12-31
	{1230768000, 24}, // 2008-12-31
	{1341100800, 25}, // 2012-06-30
	{1435708800, 26}, // 2015-06-30
	{1483228800, 27}, // 2016-12-31
}

// leapsBeforePosix returns the number of leap seconds inserted at or before
// the given POSIX second.
func leapsBeforePosix(posix int64) int64 {
	var n int64
	for _, ins := range insertions {
		if posix < ins.posix {
			break
		}
		n = ins.cumulative
	}

	return n
}

// leapsBeforeUTC returns the number of leap seconds inserted strictly before
// the given UTC-scale second (POSIX epoch based, leap seconds counted).
func leapsBeforeUTC(utc int64) int64 {
	var n int64
	for _, ins := range insertions {
		// the inserted second itself lives at utc boundary-1
		if utc < ins.posix+ins.cumulative {
			break
		}
		n = ins.cumulative
	}

	return n
}

// UTCSeconds projects an instant onto the UTC second counting (POSIX epoch
// based, inserted leap seconds included). Instants already on the UTC scale
// pass through; POSIX-scale instants gain the accumulated insertions. Fails
// for instants before the 1972 epoch.
func UTCSeconds(i temporal.Instant) (int64, error) {
	if i.Scale == temporal.ScaleUTC {
		if i.Seconds < EpochSeconds {
			return 0, fmt.Errorf("%w: UTC seconds %d", errs.ErrBeforeLeapSecondEpoch, i.Seconds)
		}

		return i.Seconds, nil
	}

	if i.Seconds < EpochSeconds {
		return 0, fmt.Errorf("%w: POSIX seconds %d", errs.ErrBeforeLeapSecondEpoch, i.Seconds)
	}

	return i.Seconds + leapsBeforePosix(i.Seconds), nil
}

// PosixSeconds projects a UTC-scale second count back onto the POSIX scale.
// A second inside an inserted leap maps onto the repeated POSIX second
// preceding the following midnight.
func PosixSeconds(utc int64) (int64, error) {
	if utc < EpochSeconds {
		return 0, fmt.Errorf("%w: UTC seconds %d", errs.ErrBeforeLeapSecondEpoch, utc)
	}

	posix := utc - leapsBeforeUTC(utc)
	for _, ins := range insertions {
		// clamp a reading inside the inserted second itself
		if utc == ins.posix+ins.cumulative-1 {
			posix = ins.posix - 1
			break
		}
	}

	return posix, nil
}

// IsLeapSecond reports whether the UTC-scale second count points into an
// inserted leap second (a UTC 23:59:60 reading).
func IsLeapSecond(utc int64) bool {
	for _, ins := range insertions {
		if utc == ins.posix+ins.cumulative-1 {
			return true
		}
	}

	return false
}

// ToUTC converts an instant to the UTC scale.
func ToUTC(i temporal.Instant) (temporal.Instant, error) {
	utc, err := UTCSeconds(i)
	if err != nil {
		return temporal.Instant{}, err
	}

	return temporal.Instant{Seconds: utc, Nanos: i.Nanos, Scale: temporal.ScaleUTC}, nil
}

// ToPosix converts an instant to the POSIX scale, clamping readings inside an
// inserted leap second onto the repeated POSIX second.
func ToPosix(i temporal.Instant) (temporal.Instant, error) {
	if i.Scale == temporal.ScalePOSIX {
		if i.Seconds < EpochSeconds {
			return temporal.Instant{}, fmt.Errorf("%w: POSIX seconds %d", errs.ErrBeforeLeapSecondEpoch, i.Seconds)
		}

		return i, nil
	}

	posix, err := PosixSeconds(i.Seconds)
	if err != nil {
		return temporal.Instant{}, err
	}

	return temporal.Instant{Seconds: posix, Nanos: i.Nanos, Scale: temporal.ScalePOSIX}, nil
}
