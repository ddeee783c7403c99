// Package frontend implements the register-bootstrap convention applied
// after a program image is loaded, for each of the three user-facing
// frontends: noargs, twoints, and array.
package frontend

import "uwmips/pkg/mips"

// Noargs bootstraps no registers beyond CPU initialization.
func Noargs(cpu *mips.CPU) error {
	return nil
}

// TwoInts sets R[1] and R[2] to the two's-complement reinterpretation of
// int1 and int2.
func TwoInts(cpu *mips.CPU, int1, int2 int32) error {
	if err := cpu.SetReg(mips.GeneralPurpose(1), uint32(int1)); err != nil {
		return err
	}
	return cpu.SetReg(mips.GeneralPurpose(2), uint32(int2))
}

// Array lays out array as consecutive 32-bit words at 0x20+loadAddr, and
// sets R[1] to point at that address and R[2] to the array length.
func Array(cpu *mips.CPU, loadAddr uint32, array []int32) error {
	base := 0x20 + loadAddr
	for i, v := range array {
		cpu.Store(base+uint32(4*i), uint32(v))
	}
	if err := cpu.SetReg(mips.GeneralPurpose(1), base); err != nil {
		return err
	}
	return cpu.SetReg(mips.GeneralPurpose(2), uint32(len(array)))
}
