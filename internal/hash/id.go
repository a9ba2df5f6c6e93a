// Package hash derives the 64-bit identifiers used to key named values in a
// blob index.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a value name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
