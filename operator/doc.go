// Package operator implements the adjustment engine over the temporal value
// shapes: generic field operators (minimize, maximize, increment, decrement,
// floor, ceiling, strict and lenient set), the fixed calendar boundary and
// full-clock-unit operators, stepwise rounding, proportional range queries
// and ordinal navigation (next/previous weekday, month, quarter and nth
// weekday in month).
//
// An Operator is an immutable command object. Construction resolves one
// delegate per value shape (date, time, timestamp); applying the operator
// dispatches to the matching delegate and always returns a new value. A
// date/time operator is retargeted onto zoned instants with At, AtOffset or
// AtSystemZone, which round-trip through the timezone capability. Second and
// sub-second stepping on the UTC scale skips the round trip and walks the
// continuous timeline so that leap seconds are traversed instead of skipped.
//
// Operators are stateless after construction and safe to share between
// goroutines. The package-level operators (FirstDayOfNextMonth, NextFullHour,
// ...) are process-wide singletons.
package operator
