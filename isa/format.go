package isa

// Format is an instruction bit layout.
type Format int

const (
	FORMAT_INVALID = Format(0) // ?
	FORMAT_R       = Format(1) // R
	FORMAT_I       = Format(2) // I
	FORMAT_M       = Format(3) // M
	FORMAT_J       = Format(4) // J
	FORMAT_U       = Format(5) // U
	FORMAT_C       = Format(6) // C
	FORMAT_S       = Format(7) // S
)

var formatName = [...]string{"?", "R", "I", "M", "J", "U", "C", "S"}

func (format Format) String() string {
	if format < 0 || int(format) >= len(formatName) {
		return formatName[FORMAT_INVALID]
	}
	return formatName[format]
}

// OperandKind is the type of a source operand.
type OperandKind int

const (
	OPERAND_REGISTER = OperandKind(0) // register
	OPERAND_SIGNED   = OperandKind(1) // signed
	OPERAND_UNSIGNED = OperandKind(2) // unsigned
)

// Operand describes one positional operand of an instruction format.
type Operand struct {
	Kind  OperandKind
	Bits  uint // Field width in the instruction word.
	Shift uint // Bit position of the field's LSB.
}

var (
	operandRd    = Operand{Kind: OPERAND_REGISTER, Bits: 4, Shift: 9}
	operandRs1   = Operand{Kind: OPERAND_REGISTER, Bits: 4, Shift: 5}
	operandRs2   = Operand{Kind: OPERAND_REGISTER, Bits: 4, Shift: 1}
	operandImm5  = Operand{Kind: OPERAND_SIGNED, Bits: 5, Shift: 0}
	operandImm9  = Operand{Kind: OPERAND_UNSIGNED, Bits: 9, Shift: 0}
	operandOff13 = Operand{Kind: OPERAND_SIGNED, Bits: 13, Shift: 0}
)

// formatOperands is the positional operand list of each format.
var formatOperands = [...][]Operand{
	FORMAT_INVALID: nil,
	FORMAT_R:       {operandRd, operandRs1, operandRs2},
	FORMAT_I:       {operandRd, operandRs1, operandImm5},
	FORMAT_M:       {operandRd, operandImm9},
	FORMAT_J:       {operandOff13},
	FORMAT_U:       {operandRd, operandImm9},
	FORMAT_C:       {operandRd, operandRs1, operandRs2},
	FORMAT_S:       {operandRd},
}

// Operands returns the operands of the format, in source order.
func (format Format) Operands() []Operand {
	if format < 0 || int(format) >= len(formatOperands) {
		return nil
	}
	return formatOperands[format]
}

// Encode packs the opcode and decoded operand values into an instruction
// word. Registers are passed as their index. Missing trailing arguments
// encode as zero.
func (format Format) Encode(op Opcode, args ...int64) Code {
	arg := func(n int) int64 {
		if n < len(args) {
			return args[n]
		}
		return 0
	}
	reg := func(n int) Register {
		return Register(arg(n) & REGISTER_MASK)
	}

	switch format {
	case FORMAT_R:
		return MakeCodeR(op, reg(0), reg(1), reg(2))
	case FORMAT_I:
		return MakeCodeI(op, reg(0), reg(1), arg(2))
	case FORMAT_M:
		return MakeCodeM(op, reg(0), arg(1))
	case FORMAT_J:
		return MakeCodeJ(op, arg(0))
	case FORMAT_U:
		return MakeCodeU(op, reg(0), arg(1))
	case FORMAT_C:
		return MakeCodeC(op, reg(0), reg(1), reg(2))
	case FORMAT_S:
		return MakeCodeS(op, reg(0))
	}

	return makeOp(op)
}
