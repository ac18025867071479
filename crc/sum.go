package crc

import "math/bits"

// Parity returns 1 if b has an odd number of bits set, else 0.
func Parity(b uint8) uint8 {
	return uint8(bits.OnesCount8(b) & 1)
}

// SumOfBytes returns the sum of all bytes in p truncated to 8 bits.
func SumOfBytes(p []byte) uint8 {
	var sum uint8
	for _, b := range p {
		sum += b
	}
	return sum
}

// SumOfBytes16 returns the sum of all bytes in p truncated to 16 bits.
// Bytes are added one at a time; this is not a byte-pair sum.
func SumOfBytes16(p []byte) uint16 {
	var sum uint16
	for _, b := range p {
		sum += uint16(b)
	}
	return sum
}

// Sum8WithCarry computes the SPORT/FPort checksum: accumulate all bytes
// into a 16-bit sum, fold the high byte into the low byte by addition,
// and invert the low 8 bits.
func Sum8WithCarry(p []byte) uint8 {
	var sum uint16
	for _, b := range p {
		sum += uint16(b)
	}
	sum = (sum & 0xFF) + (sum >> 8)
	return ^uint8(sum)
}
