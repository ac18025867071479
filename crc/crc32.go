package crc

// CRC-32 with the reflected Ethernet/ZIP polynomial 0xEDB88320.
//
// Contract: neither entry point applies any xor-in or xor-out. The caller
// seeds with 0xFFFFFFFF and complements the final value:
//
//	crc := crc.CRC32(0xFFFFFFFF, buf) ^ 0xFFFFFFFF
//
// This matches the source API and lets a running state chain across
// buffers; changing it would silently break every existing caller, so it
// is identical for CRC32 and CRC32Small.

var crc32Table = func() [256]uint32 {
	var table [256]uint32
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ 0xEDB88320
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}()

// crc32SmallTable holds one entry per nibble; 64 bytes of ROM instead of
// 1 KiB.
var crc32SmallTable = func() [16]uint32 {
	var table [16]uint32
	for i := 0; i < 16; i++ {
		crc := uint32(i)
		for bit := 0; bit < 4; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ 0xEDB88320
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}()

// CRC32 folds p into the running state crc, one table lookup per byte.
// See the package contract above: no implicit complement on either side.
func CRC32(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = crc32Table[uint8(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// CRC32Small is CRC32 with a 16-entry table, two lookups per byte.
// Bit-identical to CRC32 for every input; same caller-complement contract.
func CRC32Small(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc ^= uint32(b)
		crc = crc32SmallTable[crc&0x0F] ^ (crc >> 4)
		crc = crc32SmallTable[crc&0x0F] ^ (crc >> 4)
	}
	return crc
}
