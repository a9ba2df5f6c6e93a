// Package errs defines the sentinel errors shared across the tempo packages.
//
// All failures in tempo wrap one of these sentinels with fmt.Errorf("%w: ..."),
// so callers can classify errors with errors.Is regardless of the added context.
package errs

import "errors"

// Operator and field errors.
var (
	// ErrRangeViolation indicates a strict-mode field write outside the field's
	// declared bounds, or an invalid raw component such as day 31 in April.
	ErrRangeViolation = errors.New("value out of range")

	// ErrUnsupportedOperation indicates an adjustment that is undefined for the
	// given field or value shape, e.g. increment on a field without a base unit,
	// or weekday navigation applied to a plain time of day.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrArithmeticOverflow indicates a checked integer conversion or delta
	// computation that would wrap around.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrBeforeLeapSecondEpoch indicates a leap-second-aware query on an instant
	// before 1972-01-01 UTC, where the UTC scale is undefined.
	ErrBeforeLeapSecondEpoch = errors.New("instant before leap second epoch")
)

// Codec errors.
var (
	ErrInvalidHeaderByte = errors.New("invalid codec header byte")
	ErrUnknownTypeTag    = errors.New("unknown codec type tag")
	ErrTruncatedPayload  = errors.New("truncated codec payload")
	ErrValueTooLarge     = errors.New("value exceeds codec limits")
)

// Blob container errors.
var (
	ErrInvalidMagicNumber    = errors.New("invalid magic number")
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")
	ErrInvalidValueCount     = errors.New("invalid value count")
	ErrValueNotFound         = errors.New("value not found")
	ErrNameCollision         = errors.New("value name hash collision")
	ErrChecksumMismatch      = errors.New("payload checksum mismatch")
	ErrInvalidValueName      = errors.New("invalid value name")
)
