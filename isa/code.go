package isa

import (
	"fmt"
	"strings"
)

// Register is a 4-bit register index.
type Register uint8

const (
	REGISTER_COUNT = 16
	REGISTER_MASK  = 0xf
)

func (reg Register) String() string {
	return fmt.Sprintf("R%d", uint8(reg))
}

// Code is a single instruction word.
type Code uint32

const (
	CODE_BITS = 18
	CODE_MASK = Code((1 << CODE_BITS) - 1)

	ADDR_MASK = 0x1ff // 9-bit unsigned address field
	IMM9_MASK = 0x1ff // 9-bit unsigned immediate field
)

// Truncate reduces value to its two's complement representation in a
// field of the given width. Values that do not fit wrap.
func Truncate(value int64, bits uint) uint32 {
	mask := uint64(1)<<bits - 1
	if value < 0 {
		value += int64(1) << bits
	}
	return uint32(uint64(value) & mask)
}

// SignExtend interprets the low bits of value as a two's complement number.
func SignExtend(value uint32, bits uint) int64 {
	mask := uint32(1)<<bits - 1
	value &= mask
	if value&(1<<(bits-1)) != 0 {
		return int64(value) - int64(1)<<bits
	}
	return int64(value)
}

// makeOp places the opcode in the top bits of a word.
func makeOp(op Opcode) Code {
	return Code(uint32(op)&0x1f) << OPCODE_SHIFT
}

func makeReg(reg Register, shift uint) Code {
	return Code(uint32(reg)&REGISTER_MASK) << shift
}

// MakeCodeR creates a register to register instruction.
func MakeCodeR(op Opcode, rd, rs1, rs2 Register) Code {
	return makeOp(op) | makeReg(rd, 9) | makeReg(rs1, 5) | makeReg(rs2, 1)
}

// MakeCodeI creates a register and 5-bit signed immediate instruction.
func MakeCodeI(op Opcode, rd, rs1 Register, imm5 int64) Code {
	return makeOp(op) | makeReg(rd, 9) | makeReg(rs1, 5) | Code(Truncate(imm5, 5))
}

// MakeCodeM creates a memory access instruction.
func MakeCodeM(op Opcode, reg Register, addr int64) Code {
	return makeOp(op) | makeReg(reg, 9) | Code(uint64(addr)&ADDR_MASK)
}

// MakeCodeJ creates a jump instruction with a 13-bit signed offset.
func MakeCodeJ(op Opcode, offset int64) Code {
	return makeOp(op) | Code(Truncate(offset, 13))
}

// MakeCodeU creates an upper immediate instruction.
func MakeCodeU(op Opcode, rd Register, imm9 int64) Code {
	return makeOp(op) | makeReg(rd, 9) | Code(uint64(imm9)&IMM9_MASK)
}

// MakeCodeC creates a conditional move instruction.
func MakeCodeC(op Opcode, r1, r2, r3 Register) Code {
	return makeOp(op) | makeReg(r1, 9) | makeReg(r2, 5) | makeReg(r3, 1)
}

// MakeCodeS creates a stack instruction.
func MakeCodeS(op Opcode, reg Register) Code {
	return makeOp(op) | makeReg(reg, 9)
}

// Opcode returns the opcode field.
func (code Code) Opcode() Opcode {
	return Opcode((code >> OPCODE_SHIFT) & 0x1f)
}

// Rd returns the first register field, bits 12..9.
func (code Code) Rd() Register {
	return Register((code >> 9) & REGISTER_MASK)
}

// Rs1 returns the second register field, bits 8..5.
func (code Code) Rs1() Register {
	return Register((code >> 5) & REGISTER_MASK)
}

// Rs2 returns the third register field, bits 4..1.
func (code Code) Rs2() Register {
	return Register((code >> 1) & REGISTER_MASK)
}

// Imm5 returns the sign extended 5-bit immediate.
func (code Code) Imm5() int64 {
	return SignExtend(uint32(code), 5)
}

// Imm9 returns the unsigned 9-bit address or immediate.
func (code Code) Imm9() int64 {
	return int64(code & IMM9_MASK)
}

// Offset13 returns the sign extended 13-bit jump offset.
func (code Code) Offset13() int64 {
	return SignExtend(uint32(code), 13)
}

// Args decodes the operand values of the instruction, in source order.
func (code Code) Args() (args []int64) {
	for _, operand := range code.Opcode().Format().Operands() {
		field := uint32(code>>operand.Shift) & (uint32(1)<<operand.Bits - 1)
		switch operand.Kind {
		case OPERAND_SIGNED:
			args = append(args, SignExtend(field, operand.Bits))
		default:
			args = append(args, int64(field))
		}
	}

	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	op := code.Opcode()
	format := op.Format()
	if format == FORMAT_INVALID || code&^CODE_MASK != 0 {
		return fmt.Sprintf(".word 0x%05x", uint32(code))
	}

	operands := format.Operands()
	words := make([]string, 0, len(operands))
	for n, arg := range code.Args() {
		if operands[n].Kind == OPERAND_REGISTER {
			words = append(words, Register(arg).String())
		} else {
			words = append(words, fmt.Sprintf("%d", arg))
		}
	}

	return op.String() + " " + strings.Join(words, ", ")
}
