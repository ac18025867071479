//go:build linux

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// readFile maps path read-only instead of copying it into the heap, so
// checksumming large captures stays cheap. The release func unmaps; it is
// non-nil only for mapped data. Empty files and mmap failures fall back to
// a plain read.
func readFile(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if st.Size() == 0 || !st.Mode().IsRegular() {
		data, err := os.ReadFile(path)
		return data, nil, err
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		data, err := os.ReadFile(path)
		return data, nil, err
	}
	return data, func() { _ = unix.Munmap(data) }, nil
}
