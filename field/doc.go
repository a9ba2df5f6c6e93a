// Package field implements the field capability the tempo operators are
// driven by: named, bounded components of a temporal value (hour, month, day
// of week, ...) with per-shape read/write access, contextual bounds and an
// optional base unit.
//
// Fields are shared immutable singletons obtained from the package-level
// registry (Year, MonthOfYear, HourOfDay, ...). A field supports the date
// shape, the time shape, or both; timestamp access is derived from the two.
// Lenient writes normalize out-of-range raw values by carrying into coarser
// fields: on the cyclic time-only shape the overflow wraps around the clock,
// on the timestamp shape it rolls the calendar date.
package field
