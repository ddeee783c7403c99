// Package asm is a minimal, encode-only assembler for the MIPS32 subset
// implemented by pkg/mips. It exists to build test programs and to
// round-trip pkg/mips's decoder; it does not parse label-bearing
// assembly source, so callers resolve branch and jump targets by hand.
package asm

import (
	"errors"
	"fmt"
)

// ErrUnknownMnemonic indicates Encode was asked for an opcode it doesn't
// know how to assemble.
var ErrUnknownMnemonic = errors.New("asm: unknown mnemonic")

// ErrWrongOperandCount indicates Encode was called with the wrong number
// of operands for the given mnemonic.
var ErrWrongOperandCount = errors.New("asm: wrong operand count")

// R-type function codes, bits 5..0 of the low byte.
const (
	fnMFHI  = 0x10
	fnMFLO  = 0x12
	fnLIS   = 0x14
	fnJR    = 0x08
	fnJALR  = 0x09
	fnMULT  = 0x18
	fnMULTU = 0x19
	fnDIV   = 0x1A
	fnDIVU  = 0x1B
	fnADD   = 0x20
	fnSUB   = 0x22
	fnSLT   = 0x2A
	fnSLTU  = 0x2B
)

// I-type primary opcodes.
const (
	opBEQ  = 0x04
	opBNE  = 0x05
	opADDI = 0x08
	opLW   = 0x23
	opSW   = 0x2B
)

// J-type primary opcodes.
const (
	opJ   = 0x02
	opJAL = 0x03
)

func encodeR(fn uint32, s, t, d int64) uint32 {
	var out uint32
	out |= (uint32(s) & 0x1F) << 21
	out |= (uint32(t) & 0x1F) << 16
	out |= (uint32(d) & 0x1F) << 11
	out |= fn & 0xFF
	return out
}

func encodeI(top6 uint32, s, t int64, imm int32) uint32 {
	var out uint32
	out |= (top6 & 0x3F) << 26
	out |= (uint32(s) & 0x1F) << 21
	out |= (uint32(t) & 0x1F) << 16
	out |= uint32(imm) & 0xFFFF
	return out
}

func encodeJ(top6 uint32, target int64) uint32 {
	var out uint32
	out |= (top6 & 0x3F) << 26
	out |= uint32(target) & 0x03FFFFFF
	return out
}

func need(mnemonic string, operands []int64, n int) error {
	if len(operands) != n {
		return fmt.Errorf("%w: %s wants %d operand(s), got %d",
			ErrWrongOperandCount, mnemonic, n, len(operands))
	}
	return nil
}

// Encode assembles a single instruction from its mnemonic and operands.
// Operand order matches the canonical assembly syntax pkg/mips's
// Instruction.String renders: e.g. "add rd, rs, rt" takes (d, s, t).
func Encode(mnemonic string, operands ...int64) (uint32, error) {
	switch mnemonic {
	case "mfhi":
		if err := need(mnemonic, operands, 1); err != nil {
			return 0, err
		}
		return encodeR(fnMFHI, 0, 0, operands[0]), nil
	case "mflo":
		if err := need(mnemonic, operands, 1); err != nil {
			return 0, err
		}
		return encodeR(fnMFLO, 0, 0, operands[0]), nil
	case "lis":
		if err := need(mnemonic, operands, 1); err != nil {
			return 0, err
		}
		return encodeR(fnLIS, 0, 0, operands[0]), nil
	case "jr":
		if err := need(mnemonic, operands, 1); err != nil {
			return 0, err
		}
		return encodeR(fnJR, operands[0], 0, 0), nil
	case "jalr":
		if err := need(mnemonic, operands, 1); err != nil {
			return 0, err
		}
		return encodeR(fnJALR, operands[0], 0, 0), nil
	case "mult":
		if err := need(mnemonic, operands, 2); err != nil {
			return 0, err
		}
		return encodeR(fnMULT, operands[0], operands[1], 0), nil
	case "multu":
		if err := need(mnemonic, operands, 2); err != nil {
			return 0, err
		}
		return encodeR(fnMULTU, operands[0], operands[1], 0), nil
	case "div":
		if err := need(mnemonic, operands, 2); err != nil {
			return 0, err
		}
		return encodeR(fnDIV, operands[0], operands[1], 0), nil
	case "divu":
		if err := need(mnemonic, operands, 2); err != nil {
			return 0, err
		}
		return encodeR(fnDIVU, operands[0], operands[1], 0), nil
	case "add":
		if err := need(mnemonic, operands, 3); err != nil {
			return 0, err
		}
		return encodeR(fnADD, operands[1], operands[2], operands[0]), nil
	case "sub":
		if err := need(mnemonic, operands, 3); err != nil {
			return 0, err
		}
		return encodeR(fnSUB, operands[1], operands[2], operands[0]), nil
	case "slt":
		if err := need(mnemonic, operands, 3); err != nil {
			return 0, err
		}
		return encodeR(fnSLT, operands[1], operands[2], operands[0]), nil
	case "sltu":
		if err := need(mnemonic, operands, 3); err != nil {
			return 0, err
		}
		return encodeR(fnSLTU, operands[1], operands[2], operands[0]), nil
	case "beq":
		if err := need(mnemonic, operands, 3); err != nil {
			return 0, err
		}
		return encodeI(opBEQ, operands[0], operands[1], int32(operands[2])), nil
	case "bne":
		if err := need(mnemonic, operands, 3); err != nil {
			return 0, err
		}
		return encodeI(opBNE, operands[0], operands[1], int32(operands[2])), nil
	case "addi":
		if err := need(mnemonic, operands, 3); err != nil {
			return 0, err
		}
		return encodeI(opADDI, operands[1], operands[0], int32(operands[2])), nil
	case "lw":
		if err := need(mnemonic, operands, 3); err != nil {
			return 0, err
		}
		return encodeI(opLW, operands[2], operands[0], int32(operands[1])), nil
	case "sw":
		if err := need(mnemonic, operands, 3); err != nil {
			return 0, err
		}
		return encodeI(opSW, operands[2], operands[0], int32(operands[1])), nil
	case "j":
		if err := need(mnemonic, operands, 1); err != nil {
			return 0, err
		}
		return encodeJ(opJ, operands[0]), nil
	case "jal":
		if err := need(mnemonic, operands, 1); err != nil {
			return 0, err
		}
		return encodeJ(opJAL, operands[0]), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownMnemonic, mnemonic)
	}
}
