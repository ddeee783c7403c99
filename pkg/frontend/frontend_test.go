package frontend

import (
	"bytes"
	"strings"
	"testing"

	"uwmips/pkg/mips"
)

func newTestCPU(loadAddr uint32) *mips.CPU {
	bus := mips.NewBus()
	bus.Stdin = strings.NewReader("")
	bus.Stdout = &bytes.Buffer{}
	return mips.NewCPU(bus, loadAddr)
}

func TestNoargsNoOp(t *testing.T) {
	cpu := newTestCPU(0)
	before := *cpu.Clone()
	if err := Noargs(cpu); err != nil {
		t.Fatalf("Noargs: %v", err)
	}
	if cpu.R != before.R || cpu.PC != before.PC {
		t.Errorf("Noargs mutated CPU state")
	}
}

func TestTwoIntsSetsRegisters(t *testing.T) {
	cpu := newTestCPU(0)
	if err := TwoInts(cpu, 7, -3); err != nil {
		t.Fatalf("TwoInts: %v", err)
	}
	if cpu.R[1] != 7 {
		t.Errorf("R[1] = %d, want 7", cpu.R[1])
	}
	if cpu.R[2] != 0xFFFFFFFD { // -3 in two's complement
		t.Errorf("R[2] = 0x%x, want 0x%x", cpu.R[2], uint32(0xFFFFFFFD))
	}
}

func TestArrayLaysOutWordsAndSetsRegisters(t *testing.T) {
	cpu := newTestCPU(0x1000)
	array := []int32{10, 20, 30}
	if err := Array(cpu, 0x1000, array); err != nil {
		t.Fatalf("Array: %v", err)
	}
	base := uint32(0x1020)
	if cpu.R[1] != base {
		t.Errorf("R[1] = 0x%x, want 0x%x", cpu.R[1], base)
	}
	if cpu.R[2] != uint32(len(array)) {
		t.Errorf("R[2] = %d, want %d", cpu.R[2], len(array))
	}
	for i, v := range array {
		if got := cpu.Peek(base + uint32(4*i)); got != uint32(v) {
			t.Errorf("mem[0x%x] = %d, want %d", base+uint32(4*i), got, v)
		}
	}
}
