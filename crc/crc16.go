package crc

// xmodemTable is the MSB-first table for polynomial 0x1021, shared by the
// XMODEM and seeded CCITT entry points.
var xmodemTable = func() [256]uint16 {
	var table [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}()

// ccittRevTable is the LSB-first table for the reflected polynomial 0x8408.
var ccittRevTable = func() [256]uint16 {
	var table [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if crc&0x0001 != 0 {
				crc = (crc >> 1) ^ 0x8408
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}()

// CRC16XModemUpdate folds one byte into a running XMODEM CRC-16
// (polynomial 0x1021, MSB-first). Start from 0.
func CRC16XModemUpdate(crc uint16, b uint8) uint16 {
	return (crc << 8) ^ xmodemTable[uint8(crc>>8)^b]
}

// CRC16XModem computes the XMODEM CRC-16 of p.
func CRC16XModem(p []byte) uint16 {
	var crc uint16
	for _, b := range p {
		crc = CRC16XModemUpdate(crc, b)
	}
	return crc
}

// CRC16CCITT computes the MSB-first CCITT CRC-16 (polynomial 0x1021) of p
// starting from crc. With crc == 0 this equals CRC16XModem; with
// crc == 0xFFFF it is the CCITT-FALSE variant.
func CRC16CCITT(p []byte, crc uint16) uint16 {
	for _, b := range p {
		crc = CRC16XModemUpdate(crc, b)
	}
	return crc
}

// CRC16CCITTReversed computes the reflected CCITT CRC-16 (polynomial
// 0x8408, LSB-first in and out) of p starting from crc, XORing out into
// the result. crc=0xFFFF, out=0xFFFF gives X-25; crc=0, out=0 gives
// KERMIT.
func CRC16CCITTReversed(p []byte, crc, out uint16) uint16 {
	for _, b := range p {
		crc = (crc >> 8) ^ ccittRevTable[uint8(crc)^b]
	}
	return crc ^ out
}

// CRC16IBM folds p into a running reflected CRC-16 with polynomial 0x8005
// (table constant 0xA001), LSB-first, no final XOR. Callers supply the
// seed; 0 gives the ARC variant.
func CRC16IBM(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc ^= uint16(b)
		for i := 0; i < 8; i++ {
			if crc&0x0001 != 0 {
				crc = (crc >> 1) ^ 0xA001
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}

// CRC16Modbus computes the Modbus RTU CRC-16 of p: the IBM kernel seeded
// with 0xFFFF. The wire puts the low byte first; byte order is the
// caller's concern.
func CRC16Modbus(p []byte) uint16 {
	return CRC16IBM(0xFFFF, p)
}

// Fletcher16 computes the Fletcher-16 checksum of p. Both running sums are
// taken modulo 255 (not 256); the result packs c1 in the high byte and c0
// in the low byte.
func Fletcher16(p []byte) uint16 {
	var c0, c1 uint16
	for _, b := range p {
		c0 = (c0 + uint16(b)) % 255
		c1 = (c1 + c0) % 255
	}
	return c1<<8 | c0
}
