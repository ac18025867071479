package crc

import "testing"

// TestGDL90TableMatchesICD regenerates the MSB-first 0x1021 table the ICD
// prints and compares every entry against the literal data, so a typo in
// the table cannot survive.
func TestGDL90TableMatchesICD(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if want&0x8000 != 0 {
				want = (want << 1) ^ 0x1021
			} else {
				want <<= 1
			}
		}
		if gdl90Table[i] != want {
			t.Fatalf("gdl90Table[%d]: got 0x%04X want 0x%04X", i, gdl90Table[i], want)
		}
	}
}

func TestGolden_GDL90(t *testing.T) {
	if got := CRC16GDL90(nine, 0); got != 0xBEEF {
		t.Fatalf("GDL90(nine): got 0x%04X want 0xBEEF", got)
	}
}

// TestGolden_GDL90_ICDHeartbeat uses the worked example from the GDL90
// ICD: the heartbeat message 00 81 41 DB D0 08 02 carries CRC bytes
// B3 8B (low byte first) on the wire.
func TestGolden_GDL90_ICDHeartbeat(t *testing.T) {
	msg := []byte{0x00, 0x81, 0x41, 0xDB, 0xD0, 0x08, 0x02}
	if got := CRC16GDL90(msg, 0); got != 0x8BB3 {
		t.Fatalf("GDL90(heartbeat): got 0x%04X want 0x8BB3", got)
	}
}

// TestGDL90DiffersFromXModem guards against the easy regression of
// swapping in the standard CCITT step: the two kernels share a table but
// must disagree on ordinary inputs.
func TestGDL90DiffersFromXModem(t *testing.T) {
	if CRC16GDL90(nine, 0) == CRC16XModem(nine) {
		t.Fatalf("GDL90 and XMODEM agree on %q; GDL90 step is wrong", nine)
	}
	msg := []byte{0x00, 0x81, 0x41, 0xDB, 0xD0, 0x08, 0x02}
	if CRC16GDL90(msg, 0) == CRC16XModem(msg) {
		t.Fatalf("GDL90 and XMODEM agree on % X", msg)
	}
}
