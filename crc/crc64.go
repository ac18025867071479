package crc

const crc64WEPoly = 0x42F0E1EBA9EA3693

// crc64Step folds one byte into a forward (non-reflected) CRC-64-WE state.
func crc64Step(crc uint64, b uint8) uint64 {
	crc ^= uint64(b) << 56
	for i := 0; i < 8; i++ {
		if crc&(1<<63) != 0 {
			crc = (crc << 1) ^ crc64WEPoly
		} else {
			crc <<= 1
		}
	}
	return crc
}

// CRC64WE computes CRC-64-WE (polynomial 0x42F0E1EBA9EA3693, seed and
// final XOR all-ones, no reflection) over words. Each 32-bit word is
// consumed most-significant byte first, four bytes per word — a quirk of
// the source API kept for compatibility with callers that checksum
// aligned structures. Byte-oriented callers pad into words or use
// CRC64WEBytes.
func CRC64WE(words []uint32) uint64 {
	crc := ^uint64(0)
	for _, w := range words {
		crc = crc64Step(crc, uint8(w>>24))
		crc = crc64Step(crc, uint8(w>>16))
		crc = crc64Step(crc, uint8(w>>8))
		crc = crc64Step(crc, uint8(w))
	}
	return ^crc
}

// CRC64WEBytes is the byte-oriented convenience form of CRC64WE. For
// word-aligned input it returns the same value as CRC64WE over the
// big-endian packing of those bytes.
func CRC64WEBytes(p []byte) uint64 {
	crc := ^uint64(0)
	for _, b := range p {
		crc = crc64Step(crc, b)
	}
	return ^crc
}
