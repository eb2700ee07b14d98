// Package hash computes the 64-bit string hashes used by the table lookup index.
package hash

import "github.com/cespare/xxhash/v2"

// Sum returns the xxHash64 of s.
func Sum(s string) uint64 {
	return xxhash.Sum64String(s)
}

// SumBytes returns the xxHash64 of b. It equals Sum(string(b)).
func SumBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
