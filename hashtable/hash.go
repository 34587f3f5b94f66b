package hashtable

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to an unbounded bucket hash. One function is used for the
// whole lifetime of a table.
type HashFunc func(key string) uint64

// Sum of the byte codes of the key
func ByteSum(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(key[i])
	}
	return h
}

// Sum of the byte codes of the key, each weighted by its 1-based position
func WeightedByteSum(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(i+1) * uint64(key[i])
	}
	return h
}

func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// HashFuncByName resolves the names accepted in configuration.
func HashFuncByName(name string) (HashFunc, bool) {
	switch name {
	case "sum":
		return ByteSum, true
	case "weighted":
		return WeightedByteSum, true
	case "xxhash":
		return XXHash, true
	}
	return nil, false
}
