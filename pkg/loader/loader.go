// Package loader reads a flat raw binary program image — a stream of
// bytes grouped into 4-byte big-endian words — and installs it into a
// mips.Bus at a given load address.
package loader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"uwmips/pkg/mips"
)

// ErrNotWordAligned indicates the image length was not a multiple of 4.
var ErrNotWordAligned = errors.New("File is not word aligned")

// Load reads r fully and groups its bytes into big-endian 32-bit words.
// The input length must be a multiple of 4.
func Load(r io.Reader) ([]uint32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, ErrNotWordAligned
	}
	words := make([]uint32, len(raw)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(raw[i*4 : i*4+4])
	}
	return words, nil
}

// Install writes words consecutively into bus starting at loadAddr.
func Install(bus *mips.Bus, words []uint32, loadAddr uint32) {
	for i, w := range words {
		bus.Store(loadAddr+uint32(4*i), w)
	}
}
