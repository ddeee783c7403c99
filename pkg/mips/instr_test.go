package mips

import (
	"testing"

	"uwmips/pkg/asm"
)

func TestDecodeInvalidWord(t *testing.T) {
	ins := Decode(0xFFFFFFFF)
	if ins.Kind != KindInvalid {
		t.Fatalf("Decode(0xFFFFFFFF).Kind = %v, want KindInvalid", ins.Kind)
	}
	if ins.Raw != 0xFFFFFFFF {
		t.Errorf("Raw = 0x%x, want 0xFFFFFFFF", ins.Raw)
	}
}

func TestDecodeJR(t *testing.T) {
	// jr $31 == 0x03E00008
	ins := Decode(0x03E00008)
	if ins.Kind != KindR || ins.Op != JR || ins.S != 31 {
		t.Fatalf("Decode(jr $31) = %+v, want R{JR, s=31}", ins)
	}
}

func TestDecodeJZeroTarget(t *testing.T) {
	ins := Decode(0x08000000) // j 0
	if ins.Kind != KindJ || ins.Op != J || ins.Tgt != 0 {
		t.Fatalf("Decode(j 0) = %+v", ins)
	}
}

// roundTrip encodes mnemonic(operands...), decodes the result, and checks
// the decoded Instruction matches want: encoding then decoding must yield
// back the original instruction.
func roundTrip(t *testing.T, mnemonic string, operands []int64, want Instruction) {
	t.Helper()
	raw, err := asm.Encode(mnemonic, operands...)
	if err != nil {
		t.Fatalf("asm.Encode(%s, %v): %v", mnemonic, operands, err)
	}
	got := Decode(raw)
	if got != want {
		t.Errorf("Decode(Encode(%s, %v)) = %+v, want %+v", mnemonic, operands, got, want)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		mnemonic string
		operands []int64
		want     Instruction
	}{
		{"mfhi", []int64{5}, Instruction{Kind: KindR, Op: MFHI, D: 5}},
		{"mflo", []int64{5}, Instruction{Kind: KindR, Op: MFLO, D: 5}},
		{"lis", []int64{5}, Instruction{Kind: KindR, Op: LIS, D: 5}},
		{"jr", []int64{31}, Instruction{Kind: KindR, Op: JR, S: 31}},
		{"jalr", []int64{31}, Instruction{Kind: KindR, Op: JALR, S: 31}},
		{"mult", []int64{3, 4}, Instruction{Kind: KindR, Op: MULT, S: 3, T: 4}},
		{"multu", []int64{3, 4}, Instruction{Kind: KindR, Op: MULTU, S: 3, T: 4}},
		{"div", []int64{3, 4}, Instruction{Kind: KindR, Op: DIV, S: 3, T: 4}},
		{"divu", []int64{3, 4}, Instruction{Kind: KindR, Op: DIVU, S: 3, T: 4}},
		{"add", []int64{1, 2, 3}, Instruction{Kind: KindR, Op: ADD, D: 1, S: 2, T: 3}},
		{"sub", []int64{1, 2, 3}, Instruction{Kind: KindR, Op: SUB, D: 1, S: 2, T: 3}},
		{"slt", []int64{1, 2, 3}, Instruction{Kind: KindR, Op: SLT, D: 1, S: 2, T: 3}},
		{"sltu", []int64{1, 2, 3}, Instruction{Kind: KindR, Op: SLTU, D: 1, S: 2, T: 3}},
		{"beq", []int64{1, 2, -1}, Instruction{Kind: KindI, Op: BEQ, S: 1, T: 2, Imm: 0xFFFFFFFF}},
		{"bne", []int64{1, 2, 5}, Instruction{Kind: KindI, Op: BNE, S: 1, T: 2, Imm: 5}},
		{"addi", []int64{1, 2, 5}, Instruction{Kind: KindI, Op: ADDI, S: 2, T: 1, Imm: 5}},
		{"lw", []int64{1, 4, 2}, Instruction{Kind: KindI, Op: LW, S: 2, T: 1, Imm: 4}},
		{"sw", []int64{1, 4, 2}, Instruction{Kind: KindI, Op: SW, S: 2, T: 1, Imm: 4}},
		{"j", []int64{0}, Instruction{Kind: KindJ, Op: J, Tgt: 0}},
		{"jal", []int64{123}, Instruction{Kind: KindJ, Op: JAL, Tgt: 123}},
	}
	for _, c := range cases {
		roundTrip(t, c.mnemonic, c.operands, c.want)
	}
}

func TestInstructionStringFormats(t *testing.T) {
	cases := []struct {
		ins  Instruction
		want string
	}{
		{Instruction{Kind: KindR, Op: ADD, D: 1, S: 2, T: 3}, "add   $1, $2, $3"},
		{Instruction{Kind: KindI, Op: BEQ, S: 1, T: 2, Imm: 0xFFFFFFFF}, "beq   $1, $2, -1"},
		{Instruction{Kind: KindI, Op: LW, S: 1, T: 2, Imm: 4}, "lw    $2, 4($1)"},
		{Instruction{Kind: KindJ, Op: J, Tgt: 0}, "j     0x00000000"},
		{Instruction{Kind: KindInvalid, Raw: 0xFFFFFFFF}, ".word 0xffffffff (-1)"},
	}
	for _, c := range cases {
		if got := c.ins.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
