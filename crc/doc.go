// Package crc is a flat collection of integrity-check primitives: CRCs,
// the FNV-1a-64 hash, and trivial checksums, each bit-exact against the
// wire format that names it (Modbus, XMODEM, CCITT, DVB-S2, SAE-J1850,
// Maxim 1-Wire, GDL90, RDS02UF, Fletcher-16, RTCM CRC-24, Ethernet/ZIP
// CRC-32, CRC-64-WE).
//
// Every function is pure and reentrant. Lookup tables are built once at
// package init and never written again, so all entry points are safe for
// concurrent use with no warm-up step. Buffers are consumed in
// transmission order; no endianness adaptation is performed. Arithmetic is
// modular at each kernel's width and never traps. The empty buffer is a
// valid input everywhere and yields the kernel's initial value (with the
// final XOR applied where the parameters call for one).
package crc
