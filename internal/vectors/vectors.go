// Package vectors loads and runs golden-vector suites: named inputs with
// the checksum value a conformant peer expects. Suites come from YAML
// files or from the built-in must-pass set.
package vectors

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"crckit/internal/algo"
)

// Vector is one checksum expectation. Input is plain hex bytes; Seed and
// Want accept Go-style integer literals ("0xcbf43926", "255").
type Vector struct {
	Name  string `yaml:"name"`
	Algo  string `yaml:"algo"`
	Seed  string `yaml:"seed,omitempty"`
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

type Suite struct {
	Vectors []Vector `yaml:"vectors"`
}

// Load reads a YAML suite from path and validates every vector against
// the registry before anything runs.
func Load(path string) (Suite, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}

	var s Suite
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Suite{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(s.Vectors) == 0 {
		return Suite{}, fmt.Errorf("%s: no vectors", path)
	}
	for i, v := range s.Vectors {
		if err := v.validate(); err != nil {
			return Suite{}, fmt.Errorf("%s: vector %d: %w", path, i, err)
		}
	}
	return s, nil
}

func (v Vector) validate() error {
	if v.Algo == "" {
		return fmt.Errorf("algo is required")
	}
	a, ok := algo.Lookup(v.Algo)
	if !ok {
		return fmt.Errorf("unknown algo %q", v.Algo)
	}
	if v.Seed != "" && !a.Seeded {
		return fmt.Errorf("algo %q takes no seed", v.Algo)
	}
	if v.Seed != "" {
		if _, err := strconv.ParseUint(v.Seed, 0, 64); err != nil {
			return fmt.Errorf("bad seed %q: %w", v.Seed, err)
		}
	}
	if _, err := hex.DecodeString(v.Input); err != nil {
		return fmt.Errorf("bad input hex: %w", err)
	}
	if v.Want == "" {
		return fmt.Errorf("want is required")
	}
	if _, err := strconv.ParseUint(v.Want, 0, 64); err != nil {
		return fmt.Errorf("bad want %q: %w", v.Want, err)
	}
	return nil
}

// Run evaluates every vector and returns one error per mismatch. A nil
// return means the whole suite passed.
func Run(s Suite) []error {
	var failures []error
	for _, v := range s.Vectors {
		if err := v.run(); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}

func (v Vector) run() error {
	if err := v.validate(); err != nil {
		return err
	}
	a, _ := algo.Lookup(v.Algo)
	input, _ := hex.DecodeString(v.Input)
	want, _ := strconv.ParseUint(v.Want, 0, 64)

	seed := a.DefaultSeed
	if v.Seed != "" {
		seed, _ = strconv.ParseUint(v.Seed, 0, 64)
	}

	got := a.Compute(input, seed)
	if got != want {
		return fmt.Errorf("%s (%s): got 0x%X want 0x%X", v.Name, v.Algo, got, want)
	}
	return nil
}

// Builtin returns the suite of must-pass vectors every release is gated
// on: the conventional check input "123456789" plus protocol frames with
// independently published checksums.
func Builtin() Suite {
	const nine = "313233343536373839"
	return Suite{Vectors: []Vector{
		{Name: "crc32 check value", Algo: "crc32", Input: nine, Want: "0xCBF43926"},
		{Name: "crc32 small-table check value", Algo: "crc32-small", Input: nine, Want: "0xCBF43926"},
		{Name: "modbus response frame", Algo: "crc16-modbus", Input: "010402FFFF", Want: "0x80B8"},
		{Name: "xmodem check value", Algo: "crc16-xmodem", Input: nine, Want: "0x31C3"},
		{Name: "ccitt-false", Algo: "crc16-ccitt", Seed: "0xFFFF", Input: nine, Want: "0x29B1"},
		{Name: "gdl90 icd heartbeat", Algo: "crc16-gdl90", Input: "008141DBD00802", Want: "0x8BB3"},
		{Name: "dvb-s2 check value", Algo: "crc8-dvb-s2", Input: nine, Want: "0xBC"},
		{Name: "maxim ds18b20 rom", Algo: "crc8-maxim", Input: "021CB801000000A2", Want: "0x00"},
		{Name: "maxim ds18b20 rom body", Algo: "crc8-maxim", Input: "021CB801000000", Want: "0xA2"},
		{Name: "fnv1a-64 foobar", Algo: "fnv1a-64", Input: "666f6f626172", Want: "0x85944171F73967E8"},
		{Name: "fletcher16 {1,2}", Algo: "fletcher16", Input: "0102", Want: "0x0403"},
		{Name: "rtcm3 frame parity", Algo: "crc24", Input: "D300044CE00080", Want: "0xEDEDD6"},
		{Name: "crc64-we check value", Algo: "crc64-we", Input: nine, Want: "0x62EC59E3F1A4F00A"},
	}}
}
