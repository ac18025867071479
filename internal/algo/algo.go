// Package algo names the buffer-shaped kernels so tooling can dispatch on
// a string: the crcsum CLI and the vector runner both go through here. The
// crc package itself stays registry-free.
package algo

import (
	"sort"

	"crckit/crc"
)

// Algorithm describes one kernel. Compute returns the checksum in the low
// Width bits of a uint64. Seeded algorithms fold from seed and get
// DefaultSeed when the caller supplies none; unseeded algorithms ignore
// the seed entirely.
type Algorithm struct {
	Name        string
	Width       int
	Seeded      bool
	DefaultSeed uint64
	Compute     func(p []byte, seed uint64) uint64
}

// registry holds every dispatchable kernel.
//
// Word-shaped kernels (CRC4 over uint16 PROM words, CRC64WE over uint32
// words) are exposed through their byte-oriented forms only; the CLI has
// no way to express word input.
var registry = map[string]Algorithm{
	"crc8": {
		Name: "crc8", Width: 8,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.CRC8(p)) },
	},
	"crc8-dvb-s2": {
		Name: "crc8-dvb-s2", Width: 8, Seeded: true,
		Compute: func(p []byte, seed uint64) uint64 {
			return uint64(crc.CRC8DVBS2Update(uint8(seed), p))
		},
	},
	"crc8-maxim": {
		Name: "crc8-maxim", Width: 8,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.CRC8Maxim(p)) },
	},
	"crc8-sae": {
		Name: "crc8-sae", Width: 8,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.CRC8SAE(p)) },
	},
	"crc8-rds02uf": {
		Name: "crc8-rds02uf", Width: 8,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.CRC8RDS02UF(p)) },
	},
	"crc16-xmodem": {
		Name: "crc16-xmodem", Width: 16,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.CRC16XModem(p)) },
	},
	"crc16-ccitt": {
		Name: "crc16-ccitt", Width: 16, Seeded: true,
		Compute: func(p []byte, seed uint64) uint64 {
			return uint64(crc.CRC16CCITT(p, uint16(seed)))
		},
	},
	// The reversed form takes the caller seed; the final XOR stays zero
	// here, so X-25 output is crcsum's value XOR 0xFFFF.
	"crc16-ccitt-r": {
		Name: "crc16-ccitt-r", Width: 16, Seeded: true,
		Compute: func(p []byte, seed uint64) uint64 {
			return uint64(crc.CRC16CCITTReversed(p, uint16(seed), 0))
		},
	},
	"crc16-gdl90": {
		Name: "crc16-gdl90", Width: 16, Seeded: true,
		Compute: func(p []byte, seed uint64) uint64 {
			return uint64(crc.CRC16GDL90(p, uint16(seed)))
		},
	},
	"crc16-ibm": {
		Name: "crc16-ibm", Width: 16, Seeded: true,
		Compute: func(p []byte, seed uint64) uint64 {
			return uint64(crc.CRC16IBM(uint16(seed), p))
		},
	},
	"crc16-modbus": {
		Name: "crc16-modbus", Width: 16,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.CRC16Modbus(p)) },
	},
	"fletcher16": {
		Name: "fletcher16", Width: 16,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.Fletcher16(p)) },
	},
	"crc24": {
		Name: "crc24", Width: 24,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.CRC24(p)) },
	},
	// The crc.CRC32 kernel leaves xor-in/xor-out to the caller; the
	// registry plays that caller, seeding 0xFFFFFFFF and complementing,
	// so "crc32" here prints the conventional check value (0xCBF43926
	// for "123456789"). A custom seed replaces the xor-in only.
	"crc32": {
		Name: "crc32", Width: 32, Seeded: true, DefaultSeed: 0xFFFFFFFF,
		Compute: func(p []byte, seed uint64) uint64 {
			return uint64(crc.CRC32(uint32(seed), p) ^ 0xFFFFFFFF)
		},
	},
	"crc32-small": {
		Name: "crc32-small", Width: 32, Seeded: true, DefaultSeed: 0xFFFFFFFF,
		Compute: func(p []byte, seed uint64) uint64 {
			return uint64(crc.CRC32Small(uint32(seed), p) ^ 0xFFFFFFFF)
		},
	},
	"crc64-we": {
		Name: "crc64-we", Width: 64,
		Compute: func(p []byte, _ uint64) uint64 { return crc.CRC64WEBytes(p) },
	},
	"fnv1a-64": {
		Name: "fnv1a-64", Width: 64, Seeded: true, DefaultSeed: crc.FNV1aOffsetBasis64,
		Compute: func(p []byte, seed uint64) uint64 {
			h := seed
			crc.HashFNV1a(p, &h)
			return h
		},
	},
	"sum8": {
		Name: "sum8", Width: 8,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.SumOfBytes(p)) },
	},
	"sum16": {
		Name: "sum16", Width: 16,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.SumOfBytes16(p)) },
	},
	"sum8-carry": {
		Name: "sum8-carry", Width: 8,
		Compute: func(p []byte, _ uint64) uint64 { return uint64(crc.Sum8WithCarry(p)) },
	},
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, bool) {
	a, ok := registry[name]
	return a, ok
}

// Names returns every registered name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
