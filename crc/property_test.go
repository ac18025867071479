package crc

import (
	"math/rand"
	"testing"
)

// randBuf returns a deterministic pseudo-random buffer so failures
// reproduce.
func randBuf(rng *rand.Rand, n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(rng.Intn(256))
	}
	return p
}

// TestConcatenationLaw asserts block(a||b) == fold(fold(init, a), b) at
// every split point, for every kernel with an incremental form.
func TestConcatenationLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lengths := []int{0, 1, 2, 3, 7, 64, 255, 1024, 4096}
	for _, n := range lengths {
		buf := randBuf(rng, n)
		// Every split for short buffers; strided splits once the
		// quadratic cost bites.
		stride := 1
		if n > 1024 {
			stride = 13
		}

		wantXModem := CRC16XModem(buf)
		wantDVBS2 := CRC8DVBS2Update(0, buf)
		wantDVB := CRC8DVBUpdate(0, buf)
		wantCRC32 := CRC32(0xFFFFFFFF, buf)
		wantGen := CRC8Generic(buf, 0x31, 0xA5)

		for split := 0; split <= n; split += stride {
			a, b := buf[:split], buf[split:]

			if got := CRC16CCITT(b, CRC16CCITT(a, 0)); got != wantXModem {
				t.Fatalf("xmodem split %d/%d: got 0x%04X want 0x%04X", split, n, got, wantXModem)
			}
			if got := CRC8DVBS2Update(CRC8DVBS2Update(0, a), b); got != wantDVBS2 {
				t.Fatalf("dvb-s2 split %d/%d: got 0x%02X want 0x%02X", split, n, got, wantDVBS2)
			}
			if got := CRC8DVBUpdate(CRC8DVBUpdate(0, a), b); got != wantDVB {
				t.Fatalf("dvb split %d/%d: got 0x%02X want 0x%02X", split, n, got, wantDVB)
			}
			if got := CRC32(CRC32(0xFFFFFFFF, a), b); got != wantCRC32 {
				t.Fatalf("crc32 split %d/%d: got 0x%08X want 0x%08X", split, n, got, wantCRC32)
			}
			if got := CRC8Generic(b, 0x31, CRC8Generic(a, 0x31, 0xA5)); got != wantGen {
				t.Fatalf("crc8 generic split %d/%d: got 0x%02X want 0x%02X", split, n, got, wantGen)
			}
		}
	}
}

// TestByteAtATimeEquivalence checks the per-byte update forms against
// their block forms byte for byte.
func TestByteAtATimeEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	buf := randBuf(rng, 512)

	var xm uint16
	var dvb uint8
	crc32 := uint32(0xFFFFFFFF)
	for _, b := range buf {
		xm = CRC16XModemUpdate(xm, b)
		dvb = CRC8DVBS2(dvb, b)
		crc32 = CRC32(crc32, []byte{b})
	}
	if want := CRC16XModem(buf); xm != want {
		t.Fatalf("xmodem update: got 0x%04X want 0x%04X", xm, want)
	}
	if want := CRC8DVBS2Update(0, buf); dvb != want {
		t.Fatalf("dvb-s2 update: got 0x%02X want 0x%02X", dvb, want)
	}
	if want := CRC32(0xFFFFFFFF, buf); crc32 != want {
		t.Fatalf("crc32 update: got 0x%08X want 0x%08X", crc32, want)
	}
}

// TestCRC32TableEquivalence checks the 16-entry table against the full
// table on random buffers of every length up to 4096.
func TestCRC32TableEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n <= 4096; n += 1 + rng.Intn(17) {
		buf := randBuf(rng, n)
		full := CRC32(0xFFFFFFFF, buf)
		small := CRC32Small(0xFFFFFFFF, buf)
		if full != small {
			t.Fatalf("len %d: full 0x%08X small 0x%08X", n, full, small)
		}
	}
}

// TestCRC64WordByteEquivalence checks the word-oriented entry point
// against the byte wrapper on word-aligned input.
func TestCRC64WordByteEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 64; trial++ {
		words := make([]uint32, rng.Intn(64))
		bytes := make([]byte, 0, len(words)*4)
		for i := range words {
			words[i] = rng.Uint32()
			bytes = append(bytes,
				byte(words[i]>>24), byte(words[i]>>16),
				byte(words[i]>>8), byte(words[i]))
		}
		if w, b := CRC64WE(words), CRC64WEBytes(bytes); w != b {
			t.Fatalf("trial %d: words 0x%016X bytes 0x%016X", trial, w, b)
		}
	}
}

// TestDeterminism runs a handful of kernels twice over the same buffer.
func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	buf := randBuf(rng, 1024)
	if CRC16Modbus(buf) != CRC16Modbus(buf) {
		t.Fatal("modbus not deterministic")
	}
	if CRC24(buf) != CRC24(buf) {
		t.Fatal("crc24 not deterministic")
	}
	if Fletcher16(buf) != Fletcher16(buf) {
		t.Fatal("fletcher not deterministic")
	}
	h1, h2 := FNV1aOffsetBasis64, FNV1aOffsetBasis64
	HashFNV1a(buf, &h1)
	HashFNV1a(buf, &h2)
	if h1 != h2 {
		t.Fatal("fnv not deterministic")
	}
}
