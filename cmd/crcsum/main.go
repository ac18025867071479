// crcsum checksums files, stdin, or inline hex with any registered
// integrity-check kernel, and runs golden-vector suites against the
// library. It is a development utility; the library surface itself is
// package crc.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"crckit/internal/algo"
	"crckit/internal/vectors"
)

func main() {
	var (
		algoName   string
		seedStr    string
		hexInput   string
		list       bool
		selftest   bool
		vectorPath string
	)
	flag.StringVar(&algoName, "algo", "crc32", "Algorithm name (see -list)")
	flag.StringVar(&seedStr, "seed", "", "Caller seed for seeded algorithms (Go integer literal, e.g. 0xFFFF)")
	flag.StringVar(&hexInput, "hex", "", "Checksum an inline hex string instead of files")
	flag.BoolVar(&list, "list", false, "List registered algorithms and exit")
	flag.BoolVar(&selftest, "selftest", false, "Run the built-in vector suite and exit")
	flag.StringVar(&vectorPath, "vectors", "", "Run a YAML vector suite and exit")
	flag.Parse()

	switch {
	case list:
		printAlgorithms(os.Stdout)

	case selftest:
		runSuite(vectors.Builtin(), "builtin")

	case vectorPath != "":
		suite, err := vectors.Load(vectorPath)
		if err != nil {
			log.Fatalf("vector suite load failed: %v", err)
		}
		runSuite(suite, vectorPath)

	default:
		a, seed, err := resolveAlgorithm(algoName, seedStr)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if hexInput != "" {
			p, err := hex.DecodeString(hexInput)
			if err != nil {
				log.Fatalf("bad -hex input: %v", err)
			}
			fmt.Println(formatValue(a, a.Compute(p, seed)))
			return
		}
		if err := checksumArgs(a, seed, flag.Args(), os.Stdout); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

// resolveAlgorithm looks up name and parses the caller seed, falling back
// to the algorithm's default seed.
func resolveAlgorithm(name, seedStr string) (algo.Algorithm, uint64, error) {
	a, ok := algo.Lookup(name)
	if !ok {
		return algo.Algorithm{}, 0, fmt.Errorf("unknown algorithm %q (try -list)", name)
	}
	seed := a.DefaultSeed
	if seedStr != "" {
		if !a.Seeded {
			return algo.Algorithm{}, 0, fmt.Errorf("algorithm %q takes no seed", name)
		}
		v, err := strconv.ParseUint(seedStr, 0, 64)
		if err != nil {
			return algo.Algorithm{}, 0, fmt.Errorf("bad seed %q: %w", seedStr, err)
		}
		seed = v
	}
	return a, seed, nil
}

// formatValue renders v with the algorithm's natural width in hex digits.
func formatValue(a algo.Algorithm, v uint64) string {
	return fmt.Sprintf("%0*x", a.Width/4, v)
}

// checksumArgs checksums each named file, or stdin when paths is empty or
// names "-". One line per input: value, two spaces, name.
func checksumArgs(a algo.Algorithm, seed uint64, paths []string, w io.Writer) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		var (
			data    []byte
			release func()
			err     error
		)
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, release, err = readFile(path)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(w, "%s  %s\n", formatValue(a, a.Compute(data, seed)), path)
		if release != nil {
			release()
		}
	}
	return nil
}

func printAlgorithms(w io.Writer) {
	for _, name := range algo.Names() {
		a, _ := algo.Lookup(name)
		seeded := ""
		if a.Seeded {
			seeded = fmt.Sprintf("  (seeded, default 0x%X)", a.DefaultSeed)
		}
		fmt.Fprintf(w, "%-16s %2d-bit%s\n", name, a.Width, seeded)
	}
}

func runSuite(s vectors.Suite, label string) {
	failures := vectors.Run(s)
	for _, err := range failures {
		log.Printf("FAIL %v", err)
	}
	if len(failures) > 0 {
		log.Fatalf("%s: %d of %d vectors failed", label, len(failures), len(s.Vectors))
	}
	fmt.Printf("%s: %d vectors ok\n", label, len(s.Vectors))
}
