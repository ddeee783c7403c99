package mips

import (
	"io"
	"log"
	"os"
)

// The two memory-mapped I/O addresses the Bus reserves.
const (
	mmioInput  = 0xFFFF0004
	mmioOutput = 0xFFFF000C
)

// mmioInputSentinel is returned by Peek at the MMIO input address, so the
// debugger can render memory around the MMIO region without consuming
// stdin.
const mmioInputSentinel = 0x10101010

// Bus owns exactly one Memory and mediates CPU accesses, overlaying the
// two MMIO addresses onto Stdin/Stdout. Stdin and Stdout default to
// os.Stdin/os.Stdout but may be swapped out by tests.
type Bus struct {
	mem    *Memory
	Stdin  io.Reader
	Stdout io.Writer
}

// NewBus creates a Bus over a fresh Memory, wired to the real console.
func NewBus() *Bus {
	return &Bus{mem: NewMemory(), Stdin: os.Stdin, Stdout: os.Stdout}
}

// Load reads addr. A read from mmioInput consumes one byte of Stdin,
// zero-extended into a word; stdin exhaustion is process-fatal, since the
// program is ill-formed if it expected more input than was supplied. Any
// other address delegates to Memory.
func (b *Bus) Load(addr uint32) uint32 {
	if addr == mmioInput {
		var buf [1]byte
		if _, err := io.ReadFull(b.Stdin, buf[:]); err != nil {
			log.Fatalf("bus: unexpectedly ran out of stdin: %v", err)
		}
		return uint32(buf[0])
	}
	return b.mem.Load(addr)
}

// Store writes val at addr. A write to mmioOutput writes the low 8 bits
// of val to Stdout as a byte. Any other address delegates to Memory.
func (b *Bus) Store(addr uint32, val uint32) {
	if addr == mmioOutput {
		if _, err := b.Stdout.Write([]byte{byte(val)}); err != nil {
			log.Fatalf("bus: failed to write stdout: %v", err)
		}
		return
	}
	b.mem.Store(addr, val)
}

// Peek reads addr without side effects. At mmioInput it returns a fixed
// non-zero sentinel instead of touching Stdin. Any other address
// delegates to Memory.
func (b *Bus) Peek(addr uint32) uint32 {
	if addr == mmioInput {
		return mmioInputSentinel
	}
	return b.mem.Peek(addr)
}

// Clone deep-copies the owned Memory. Stdin/Stdout are external resources,
// not simulated state, so they are shared — not copied — across clones.
func (b *Bus) Clone() *Bus {
	return &Bus{mem: b.mem.Clone(), Stdin: b.Stdin, Stdout: b.Stdout}
}
