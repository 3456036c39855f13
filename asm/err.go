package asm

import (
	"github.com/ezrec/hexasm/translate"
)

var f = translate.From

// ErrUnknownInstruction is returned for a mnemonic not in the opcode table.
type ErrUnknownInstruction string

func (err ErrUnknownInstruction) Error() string {
	return f("unknown instruction: %v", string(err))
}

func (err ErrUnknownInstruction) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownInstruction)
	return
}

// ErrRegisterSyntax is returned for a register token not of the form Rn.
type ErrRegisterSyntax string

func (err ErrRegisterSyntax) Error() string {
	return f("invalid register: %v", string(err))
}

func (err ErrRegisterSyntax) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterSyntax)
	return
}

// ErrRegisterRange is returned for a register index outside of R0-R15.
type ErrRegisterRange string

func (err ErrRegisterRange) Error() string {
	return f("register out of range: %v", string(err))
}

func (err ErrRegisterRange) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterRange)
	return
}

// ErrParseNumber is returned for an immediate that is not an integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) (ok bool) {
	_, ok = target.(ErrParseNumber)
	return
}

// ErrMissingOperand is returned when a line has fewer operands than its
// instruction format requires.
type ErrMissingOperand struct {
	Mnemonic string
	Index    int // Zero based index of the first missing operand.
}

func (err *ErrMissingOperand) Error() string {
	return f("%v: missing operand %d", err.Mnemonic, err.Index+1)
}

func (err *ErrMissingOperand) Is(target error) (ok bool) {
	_, ok = target.(*ErrMissingOperand)
	return
}

// ErrParseExpression is returned when a $(...) expression cannot be
// evaluated to an integer.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err *ErrParseExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not a valid expression", err.Expr)
	}
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err *ErrParseExpression) Is(target error) (ok bool) {
	_, ok = target.(*ErrParseExpression)
	return
}

func (err *ErrParseExpression) Unwrap() error {
	return err.Err
}

// ErrSyntax indicates the source line an error occurred on.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
