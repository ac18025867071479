package crc

// CRC4 computes the MS5611-family PROM checksum: a 4-bit CRC with
// polynomial 0x3 over 8 half-words (16 bytes), high byte of each word
// first. The remainder is kept in bits 15..12 of a 16-bit register, per
// the sensor datasheet's reference routine; the result is returned in the
// low nibble. The caller zeroes the stored CRC nibble before calling, as
// the datasheet requires.
//
// words must hold at least 8 entries.
func CRC4(words []uint16) uint16 {
	var rem uint16
	for cnt := 0; cnt < 16; cnt++ {
		if cnt&1 == 1 {
			rem ^= words[cnt>>1] & 0x00FF
		} else {
			rem ^= words[cnt>>1] >> 8
		}
		for bit := 0; bit < 8; bit++ {
			if rem&0x8000 != 0 {
				rem = (rem << 1) ^ 0x3000
			} else {
				rem <<= 1
			}
		}
	}
	return (rem >> 12) & 0xF
}
