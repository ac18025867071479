package crc

// CRC-8 family. All variants share the same MSB-first shift register and
// differ only in polynomial, seed, and final XOR. Reflected variants
// (Maxim) shift LSB-first with the bit-reversed polynomial instead; the two
// formulations are never mixed within one kernel.

// crc8Table is the 256-entry table for the default polynomial 0x07.
var crc8Table = func() [256]uint8 {
	var table [256]uint8
	for i := 0; i < 256; i++ {
		crc := uint8(i)
		for bit := 0; bit < 8; bit++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ 0x07
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}()

// CRC8 computes the default CRC-8 (polynomial 0x07, zero seed, no final
// XOR) over p.
func CRC8(p []byte) uint8 {
	var crc uint8
	for _, b := range p {
		crc = crc8Table[crc^b]
	}
	return crc
}

// CRC8Generic computes a bit-serial CRC-8 with an arbitrary polynomial and
// seed, MSB-first, no reflection, no final XOR.
func CRC8Generic(p []byte, poly, initial uint8) uint8 {
	crc := initial
	for _, b := range p {
		crc = CRC8DVB(crc, b, poly)
	}
	return crc
}

// CRC8DVB folds one byte into crc using polynomial poly. This is the
// per-byte engine behind the whole family; the DVB name follows the source
// API, which passes the polynomial per call ("seed").
func CRC8DVB(crc, b, poly uint8) uint8 {
	crc ^= b
	for i := 0; i < 8; i++ {
		if crc&0x80 != 0 {
			crc = (crc << 1) ^ poly
		} else {
			crc <<= 1
		}
	}
	return crc
}

// CRC8DVBS2 folds one byte into a running DVB-S2 CRC-8 (polynomial 0xD5).
// Start from 0.
func CRC8DVBS2(crc, b uint8) uint8 {
	return CRC8DVB(crc, b, 0xD5)
}

// CRC8DVBS2Update folds a block into a running DVB-S2 CRC-8.
func CRC8DVBS2Update(crc uint8, p []byte) uint8 {
	for _, b := range p {
		crc = CRC8DVBS2(crc, b)
	}
	return crc
}

// CRC8DVBUpdate folds a block into a running DVB CRC-8 with the standard
// 0xD5 polynomial.
func CRC8DVBUpdate(crc uint8, p []byte) uint8 {
	for _, b := range p {
		crc = CRC8DVB(crc, b, 0xD5)
	}
	return crc
}

// CRC8Maxim computes the Maxim/Dallas 1-Wire CRC-8 (polynomial 0x31,
// reflected in and out, zero seed). This is the checksum in DS18B2x ROM
// codes and scratchpads.
func CRC8Maxim(p []byte) uint8 {
	var crc uint8
	for _, b := range p {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x01 != 0 {
				crc = (crc >> 1) ^ 0x8C // 0x31 reflected
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}

// CRC8SAE computes CRC-8 SAE-J1850 (polynomial 0x1D, seed 0xFF, final XOR
// 0xFF).
func CRC8SAE(p []byte) uint8 {
	crc := uint8(0xFF)
	for _, b := range p {
		crc = CRC8DVB(crc, b, 0x1D)
	}
	return crc ^ 0xFF
}

// CRC8RDS02UF computes the RDS02UF radar frame CRC-8: same 0x1D polynomial
// as SAE-J1850 but zero seed and no final XOR.
func CRC8RDS02UF(p []byte) uint8 {
	var crc uint8
	for _, b := range p {
		crc = CRC8DVB(crc, b, 0x1D)
	}
	return crc
}
