//go:build !linux

package main

import "os"

// readFile on non-linux platforms is a plain read; no release func.
func readFile(path string) ([]byte, func(), error) {
	data, err := os.ReadFile(path)
	return data, nil, err
}
