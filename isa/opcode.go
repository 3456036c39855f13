package isa

import (
	"fmt"
)

// Opcode is a 5-bit operation code.
type Opcode int

const (
	OP_ADD   = Opcode(0)  // ADD
	OP_SUB   = Opcode(1)  // SUB
	OP_NAND  = Opcode(2)  // NAND
	OP_NOR   = Opcode(3)  // NOR
	OP_SRL   = Opcode(4)  // SRL
	OP_SRA   = Opcode(5)  // SRA
	OP_ADDI  = Opcode(6)  // ADDI
	OP_SUBI  = Opcode(7)  // SUBI
	OP_NANDI = Opcode(8)  // NANDI
	OP_NORI  = Opcode(9)  // NORI
	OP_LD    = Opcode(10) // LD
	OP_ST    = Opcode(11) // ST
	OP_JUMP  = Opcode(12) // JUMP
	OP_JAL   = Opcode(13) // JAL
	OP_LUI   = Opcode(14) // LUI
	OP_CMOV  = Opcode(15) // CMOV
	OP_PUSH  = Opcode(16) // PUSH
	OP_POP   = Opcode(17) // POP

	OPCODE_COUNT = 18
	OPCODE_BITS  = 5
	OPCODE_SHIFT = 13
)

// opcodeName holds the mnemonic of each defined opcode, indexed by opcode.
var opcodeName = [OPCODE_COUNT]string{
	"ADD", "SUB", "NAND", "NOR", "SRL", "SRA",
	"ADDI", "SUBI", "NANDI", "NORI",
	"LD", "ST",
	"JUMP", "JAL",
	"LUI",
	"CMOV",
	"PUSH", "POP",
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = func() map[string]Opcode {
	ops := make(map[string]Opcode, OPCODE_COUNT)
	for n, name := range opcodeName {
		ops[name] = Opcode(n)
	}
	return ops
}()

// LookupOpcode returns the opcode for an upper case mnemonic.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}

// Valid returns true if the opcode is one of the defined instructions.
func (op Opcode) Valid() bool {
	return op >= 0 && op < OPCODE_COUNT
}

func (op Opcode) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return opcodeName[op]
}

// Format returns the instruction format of the opcode.
func (op Opcode) Format() Format {
	switch op {
	case OP_ADD, OP_SUB, OP_NAND, OP_NOR, OP_SRL, OP_SRA:
		return FORMAT_R
	case OP_ADDI, OP_SUBI, OP_NANDI, OP_NORI:
		return FORMAT_I
	case OP_LD, OP_ST:
		return FORMAT_M
	case OP_JUMP, OP_JAL:
		return FORMAT_J
	case OP_LUI:
		return FORMAT_U
	case OP_CMOV:
		return FORMAT_C
	case OP_PUSH, OP_POP:
		return FORMAT_S
	}

	return FORMAT_INVALID
}
