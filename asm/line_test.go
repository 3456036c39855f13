package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hexasm/isa"
)

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	line, ok := ParseLine("  add R1,R2,  R3   // sum")
	assert.True(ok)
	assert.Equal(Line{Mnemonic: "ADD", Operands: []string{"R1", "R2", "R3"}}, line)
	assert.Equal([]string{"ADD", "R1", "R2", "R3"}, line.Words())

	line, ok = ParseLine("JUMP\t-5")
	assert.True(ok)
	assert.Equal(Line{Mnemonic: "JUMP", Operands: []string{"-5"}}, line)

	line, ok = ParseLine("Push R1,,")
	assert.True(ok)
	assert.Equal(Line{Mnemonic: "PUSH", Operands: []string{"R1"}}, line)

	for _, text := range []string{"", "   ", "\t", "// comment", "   // ADD R1, R2, R3", ",,"} {
		_, ok = ParseLine(text)
		assert.False(ok, text)
	}
}

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LD R1, 4", StripComment(" LD R1, 4 // load // twice"))
	assert.Equal("", StripComment("//"))
	assert.Equal("POP R2", StripComment("POP R2"))
}

func encodeText(text string) (code isa.Code, err error) {
	line, ok := ParseLine(text)
	if !ok {
		err = errors.New("blank line")
		return
	}
	return EncodeLine(line)
}

func TestEncodeLine(t *testing.T) {
	assert := assert.New(t)

	table := map[string]isa.Code{
		"ADD R1, R2, R3":   isa.MakeCodeR(isa.OP_ADD, 1, 2, 3),
		"SUB R4 R5 R6":     isa.MakeCodeR(isa.OP_SUB, 4, 5, 6),
		"NAND R1,R1,R1":    isa.MakeCodeR(isa.OP_NAND, 1, 1, 1),
		"NOR R0, R15, R8":  isa.MakeCodeR(isa.OP_NOR, 0, 15, 8),
		"SRL R2, R3, R4":   isa.MakeCodeR(isa.OP_SRL, 2, 3, 4),
		"SRA R2, R3, R4":   isa.MakeCodeR(isa.OP_SRA, 2, 3, 4),
		"ADDI R0, R0, -1":  isa.MakeCodeI(isa.OP_ADDI, 0, 0, 31),
		"SUBI R1, R2, 3":   isa.MakeCodeI(isa.OP_SUBI, 1, 2, 3),
		"NANDI R1, R2, 15": isa.MakeCodeI(isa.OP_NANDI, 1, 2, 15),
		"NORI R1, R2, 16":  isa.MakeCodeI(isa.OP_NORI, 1, 2, -16),
		"LD R3, 256":       isa.MakeCodeM(isa.OP_LD, 3, 256),
		"ST R3, 0x1ff":     isa.MakeCodeM(isa.OP_ST, 3, 511),
		"JUMP -5":          isa.MakeCodeJ(isa.OP_JUMP, -5),
		"jal 100":          isa.MakeCodeJ(isa.OP_JAL, 100),
		"LUI R1, 300":      isa.MakeCodeU(isa.OP_LUI, 1, 300),
		"CMOV R1, R2, R3":  isa.MakeCodeC(isa.OP_CMOV, 1, 2, 3),
		"PUSH R14":         isa.MakeCodeS(isa.OP_PUSH, 14),
		"POP R14 extra":    isa.MakeCodeS(isa.OP_POP, 14),
	}

	for text, expected := range table {
		code, err := encodeText(text)
		assert.NoError(err, text)
		assert.Equal(expected, code, text)
	}
}

func TestEncodeLine_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	code, err := encodeText("ADD R1, R2, R3")
	assert.NoError(err)
	assert.Equal(isa.Opcode(0b00000), isa.Opcode((code>>13)&0x1f))
	assert.Equal(isa.Code(1), (code>>9)&0xf)
	assert.Equal(isa.Code(2), (code>>5)&0xf)
	assert.Equal(isa.Code(3), (code>>1)&0xf)

	neg, err := encodeText("ADDI R0, R0, -1")
	assert.NoError(err)
	pos, err := encodeText("ADDI R0, R0, 31")
	assert.NoError(err)
	assert.Equal(pos, neg)
	assert.Equal(isa.Code(0b11111), neg&0x1f)

	for _, text := range []string{
		"ADD R1, R2, R3",
		"ADDI R0, R0, -1",
		"LD R4, 100",
		"JUMP -5",
		"LUI R9, 511",
		"CMOV R15, R0, R7",
		"POP R2",
	} {
		code, err := encodeText(text)
		assert.NoError(err)
		assert.Equal(text, code.String())
	}
}

func TestEncodeLine_Errors(t *testing.T) {
	assert := assert.New(t)

	table := map[string]error{
		"FOO R1":          ErrUnknownInstruction("FOO"),
		"ADD R1, R2":      &ErrMissingOperand{Mnemonic: "ADD", Index: 2},
		"JUMP":            &ErrMissingOperand{Mnemonic: "JUMP", Index: 0},
		"PUSH":            &ErrMissingOperand{Mnemonic: "PUSH", Index: 0},
		"ADD R1, R16, R3": ErrRegisterRange("R16"),
		"ADD X1, R2, R3":  ErrRegisterSyntax("X1"),
		"ADDI R1, R2, x":  ErrParseNumber("x"),
		"LD R1, R2":       ErrParseNumber("R2"),
		"JUMP 1.5":        ErrParseNumber("1.5"),
	}

	for text, expected := range table {
		_, err := encodeText(text)
		assert.Equal(expected, err, text)
		assert.ErrorIs(err, expected, text)
	}

	_, err := encodeText("LUI R1")
	var missing *ErrMissingOperand
	assert.ErrorAs(err, &missing)
	assert.Equal(1, missing.Index)
	assert.Equal("LUI: missing operand 2", err.Error())
}
