package mips

import "fmt"

// Opcode identifies the operation an Instruction performs, independent of
// its encoding kind (R/I/J).
type Opcode int

// R-type opcodes (top6 == 0, dispatched on the low 8 bits of the word).
const (
	MFHI Opcode = iota
	MFLO
	LIS
	JR
	JALR
	MULT
	MULTU
	DIV
	DIVU
	ADD
	SUB
	SLT
	SLTU
	// I-type opcodes.
	BEQ
	BNE
	ADDI
	LW
	SW
	// J-type opcodes.
	J
	JAL
)

var mnemonics = map[Opcode]string{
	MFHI: "mfhi", MFLO: "mflo", LIS: "lis", JR: "jr", JALR: "jalr",
	MULT: "mult", MULTU: "multu", DIV: "div", DIVU: "divu",
	ADD: "add", SUB: "sub", SLT: "slt", SLTU: "sltu",
	BEQ: "beq", BNE: "bne", ADDI: "addi", LW: "lw", SW: "sw",
	J: "j", JAL: "jal",
}

func (op Opcode) String() string {
	if s, ok := mnemonics[op]; ok {
		return s
	}
	return "?"
}

// rFuncCodes maps the low 8 bits of an R-type word (bits 5..0, with the
// two unused high bits of the byte always zero) to its Opcode.
var rFuncCodes = map[uint32]Opcode{
	0x10: MFHI, 0x12: MFLO, 0x14: LIS, 0x08: JR, 0x09: JALR,
	0x18: MULT, 0x19: MULTU, 0x1A: DIV, 0x1B: DIVU,
	0x20: ADD, 0x22: SUB, 0x2A: SLT, 0x2B: SLTU,
}

// iOpcodes maps the primary 6-bit opcode (top6) of an I-type word to its
// Opcode.
var iOpcodes = map[uint32]Opcode{
	0x04: BEQ, 0x05: BNE, 0x08: ADDI, 0x23: LW, 0x2B: SW,
}

// jOpcodes maps the primary 6-bit opcode (top6) of a J-type word to its
// Opcode.
var jOpcodes = map[uint32]Opcode{
	0x02: J, 0x03: JAL,
}

// Kind tags which of the three structured Instruction variants — or the
// Invalid catch-all — a decoded Instruction holds.
type Kind int

const (
	KindR Kind = iota
	KindI
	KindJ
	KindInvalid
)

// Instruction is a tagged 32-bit MIPS instruction. Exactly the fields
// relevant to Kind are meaningful; the decoder never fails, producing
// KindInvalid for unrecognised words instead.
type Instruction struct {
	Kind Kind
	Op   Opcode
	S    uint32 // source register index, R/I
	T    uint32 // second source / target register index, R/I
	D    uint32 // destination register index, R
	Imm  uint32 // sign-extended 16-bit immediate held as a 32-bit word, I
	Tgt  uint32 // 26-bit jump target, J
	Raw  uint32 // original word, Invalid only
}

// DecodeOpcode extracts the primary 6-bit opcode (bits 31..26).
func DecodeOpcode(raw uint32) uint32 { return raw >> 26 }

// DecodeS extracts the source register index (bits 25..21).
func DecodeS(raw uint32) uint32 { return (raw >> 21) & 0x1F }

// DecodeT extracts the second source/target register index (bits 20..16).
func DecodeT(raw uint32) uint32 { return (raw >> 16) & 0x1F }

// DecodeD extracts the destination register index (bits 15..11).
func DecodeD(raw uint32) uint32 { return (raw >> 11) & 0x1F }

// DecodeFn extracts the R-type function code, the low 8 bits of the word.
func DecodeFn(raw uint32) uint32 { return raw & 0xFF }

// DecodeImm16 extracts and sign-extends the low 16 bits as a 32-bit word.
func DecodeImm16(raw uint32) uint32 {
	return uint32(int32(int16(raw & 0xFFFF)))
}

// DecodeTarget extracts the low 26 bits as a jump target.
func DecodeTarget(raw uint32) uint32 { return raw & 0x03FFFFFF }

// Decode decodes a 32-bit word into an Instruction. It never fails;
// unrecognised words produce KindInvalid(raw).
func Decode(raw uint32) Instruction {
	top6 := DecodeOpcode(raw)
	switch {
	case top6 == 0:
		op, ok := rFuncCodes[DecodeFn(raw)]
		if !ok {
			return Instruction{Kind: KindInvalid, Raw: raw}
		}
		return Instruction{
			Kind: KindR, Op: op,
			S: DecodeS(raw), T: DecodeT(raw), D: DecodeD(raw),
		}
	case top6 == 0x02 || top6 == 0x03:
		op, ok := jOpcodes[top6]
		if !ok {
			return Instruction{Kind: KindInvalid, Raw: raw}
		}
		return Instruction{Kind: KindJ, Op: op, Tgt: DecodeTarget(raw)}
	default:
		op, ok := iOpcodes[top6]
		if !ok {
			return Instruction{Kind: KindInvalid, Raw: raw}
		}
		return Instruction{
			Kind: KindI, Op: op,
			S: DecodeS(raw), T: DecodeT(raw), Imm: DecodeImm16(raw),
		}
	}
}

// String renders the Instruction in canonical MIPS assembly syntax.
func (ins Instruction) String() string {
	switch ins.Kind {
	case KindR:
		switch ins.Op {
		case MFHI, MFLO, LIS:
			return fmt.Sprintf("%-5s $%d", ins.Op, ins.D)
		case JR, JALR:
			return fmt.Sprintf("%-5s $%d", ins.Op, ins.S)
		case MULT, MULTU, DIV, DIVU:
			return fmt.Sprintf("%-5s $%d, $%d", ins.Op, ins.S, ins.T)
		default: // ADD, SUB, SLT, SLTU
			return fmt.Sprintf("%-5s $%d, $%d, $%d", ins.Op, ins.D, ins.S, ins.T)
		}
	case KindI:
		imm := int32(ins.Imm)
		switch ins.Op {
		case BEQ, BNE:
			return fmt.Sprintf("%-5s $%d, $%d, %d", ins.Op, ins.S, ins.T, imm)
		case ADDI:
			return fmt.Sprintf("%-5s $%d, $%d, %d", ins.Op, ins.T, ins.S, imm)
		default: // LW, SW
			return fmt.Sprintf("%-5s $%d, %d($%d)", ins.Op, ins.T, imm, ins.S)
		}
	case KindJ:
		return fmt.Sprintf("%-5s 0x%08x", ins.Op, ins.Tgt)
	default:
		return fmt.Sprintf(".word 0x%08x (%d)", ins.Raw, int32(ins.Raw))
	}
}
