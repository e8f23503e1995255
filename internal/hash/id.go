package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a section name. Index entries store this value
// instead of the name itself so lookups compare a single uint64.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum computes the xxHash64 of a payload. Frames store it over the
// uncompressed bytes so corruption is caught after decompression.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
