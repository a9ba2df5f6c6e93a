// Package temporal defines the immutable value shapes the tempo operators and
// codec work on: calendar dates, times of day, timestamps, instants, cyclic
// enumerations (weekday, month, quarter), week models, day periods and the two
// duration flavors.
//
// All types are plain immutable values. Every adjustment returns a new value;
// nothing in this package mutates its receiver. Values are safe to share
// between goroutines without synchronization.
//
// # Value shapes
//
//   - Date: proleptic Gregorian calendar date, year may be zero or negative.
//   - TimeOfDay: wall clock time; hour 24 is a valid exclusive end-of-day
//     marker and must carry zero minutes, seconds and nanoseconds.
//   - Timestamp: Date plus TimeOfDay; the hour-24 marker is normalized away
//     at construction (it rolls into the next calendar day).
//   - Instant: seconds/nanoseconds since the POSIX epoch, tagged with a time
//     scale (POSIX or UTC with leap seconds).
//
// Calendar arithmetic (epoch-day conversion, month lengths, weekday
// computation) lives on Date so that operator and codec packages share one
// leap-year-aware implementation.
package temporal
