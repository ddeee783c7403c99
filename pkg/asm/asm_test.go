package asm

import (
	"errors"
	"testing"
)

func TestEncodeUnknownMnemonic(t *testing.T) {
	_, err := Encode("nop")
	if !errors.Is(err, ErrUnknownMnemonic) {
		t.Fatalf("err = %v, want ErrUnknownMnemonic", err)
	}
}

func TestEncodeWrongOperandCount(t *testing.T) {
	_, err := Encode("add", 1, 2)
	if !errors.Is(err, ErrWrongOperandCount) {
		t.Fatalf("err = %v, want ErrWrongOperandCount", err)
	}
}

func TestEncodeADDFields(t *testing.T) {
	word, err := Encode("add", 3, 1, 2) // $3 := $1 + $2
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := encodeR(fnADD, 1, 2, 3)
	if word != want {
		t.Errorf("Encode(add, 3, 1, 2) = 0x%08x, want 0x%08x", word, want)
	}
}

func TestEncodeLWFields(t *testing.T) {
	word, err := Encode("lw", 4, 8, 1) // $4 := [$1 + 8]
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := encodeI(opLW, 1, 4, 8)
	if word != want {
		t.Errorf("Encode(lw, 4, 8, 1) = 0x%08x, want 0x%08x", word, want)
	}
}

func TestEncodeJFields(t *testing.T) {
	word, err := Encode("j", 42)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := encodeJ(opJ, 42)
	if word != want {
		t.Errorf("Encode(j, 42) = 0x%08x, want 0x%08x", word, want)
	}
}

func TestEncodeBEQNegativeImmediate(t *testing.T) {
	word, err := Encode("beq", 1, 2, -4)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := encodeI(opBEQ, 1, 2, -4)
	if word != want {
		t.Errorf("Encode(beq, 1, 2, -4) = 0x%08x, want 0x%08x", word, want)
	}
}
