package temporal

import "fmt"

// Timestamp combines a calendar date with a wall clock time. Unlike a plain
// TimeOfDay, a timestamp never stores the hour-24 end-of-day marker: the
// normalizing constructor rolls it into midnight of the following day.
type Timestamp struct {
	Date Date
	Time TimeOfDay
}

// NewTimestamp validates both components and normalizes the end-of-day marker
// into the next calendar day.
func NewTimestamp(date Date, t TimeOfDay) (Timestamp, error) {
	if _, err := NewDate(date.Year, date.Month, date.Day); err != nil {
		return Timestamp{}, err
	}
	if _, err := NewTimeOfDay(t.Hour, t.Minute, t.Second, t.Nano); err != nil {
		return Timestamp{}, err
	}

	return normalizeTimestamp(date, t), nil
}

// MustTimestamp is like NewTimestamp but panics on invalid components.
func MustTimestamp(date Date, t TimeOfDay) Timestamp {
	ts, err := NewTimestamp(date, t)
	if err != nil {
		panic(err)
	}

	return ts
}

func normalizeTimestamp(date Date, t TimeOfDay) Timestamp {
	if t.IsEndOfDay() {
		return Timestamp{Date: date.AddDays(1), Time: Midnight}
	}

	return Timestamp{Date: date, Time: t}
}

func (ts Timestamp) String() string {
	return fmt.Sprintf("%sT%s", ts.Date, ts.Time)
}

// UnixSeconds returns the timestamp as elapsed seconds and nanoseconds since
// 1970-01-01T00:00, interpreting the timestamp as UTC wall time.
func (ts Timestamp) UnixSeconds() (secs int64, nanos int) {
	secOfDay := ts.Time.NanoOfDay() / 1_000_000_000

	return ts.Date.EpochDays()*86_400 + secOfDay, ts.Time.Nano
}

// TimestampFromUnix is the inverse of UnixSeconds.
func TimestampFromUnix(secs int64, nanos int) Timestamp {
	days := floorDiv(secs, 86_400)
	secOfDay := floorMod(secs, 86_400)

	return Timestamp{
		Date: DateFromEpochDays(days),
		Time: TimeFromNanoOfDay(secOfDay*1_000_000_000 + int64(nanos)),
	}
}

// Compare orders timestamps chronologically: -1, 0 or +1.
func (ts Timestamp) Compare(other Timestamp) int {
	if c := ts.Date.Compare(other.Date); c != 0 {
		return c
	}

	return ts.Time.Compare(other.Time)
}

// AddNanos shifts the timestamp by the given number of nanoseconds on the
// civil timeline, carrying across day boundaries.
func (ts Timestamp) AddNanos(nanos int64) Timestamp {
	total := ts.Time.NanoOfDay() + nanos
	dayShift := floorDiv(total, NanosPerDay)

	return Timestamp{
		Date: ts.Date.AddDays(dayShift),
		Time: TimeFromNanoOfDay(floorMod(total, NanosPerDay)),
	}
}
