package crc

// FNV1aOffsetBasis64 is the standard 64-bit FNV-1a offset basis. Callers
// seed *hash with it before the first HashFNV1a call (or with any other
// basis to chain or customise).
const FNV1aOffsetBasis64 uint64 = 14695981039346656037

const fnv1aPrime64 uint64 = 1099511628211

// HashFNV1a folds p into the 64-bit FNV-1a hash at *hash. The function
// applies no basis of its own; an empty p leaves *hash unchanged.
// Multiplication wraps mod 2^64.
func HashFNV1a(p []byte, hash *uint64) {
	h := *hash
	for _, b := range p {
		h ^= uint64(b)
		h *= fnv1aPrime64
	}
	*hash = h
}
