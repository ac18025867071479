package crc

const crc24Poly = 0x1864CFB

// CRC24 computes the 24-bit CRC used by RTCM3 framing (polynomial
// 0x1864CFB, zero seed, no reflection, no final XOR). The result sits in
// the low 24 bits of the returned word; the high byte is always zero.
func CRC24(p []byte) uint32 {
	var crc uint32
	for _, b := range p {
		crc ^= uint32(b) << 16
		for i := 0; i < 8; i++ {
			crc <<= 1
			if crc&0x1000000 != 0 {
				crc ^= crc24Poly
			}
		}
	}
	return crc & 0xFFFFFF
}
