package asm

import (
	"strings"
	"unicode"

	"github.com/ezrec/hexasm/isa"
)

// COMMENT starts a comment that runs to the end of the line.
const COMMENT = "//"

// Line is a tokenized line of assembly source.
type Line struct {
	Mnemonic string   // Upper case mnemonic.
	Operands []string // Operand tokens, in source order.
}

// Words returns the mnemonic followed by the operands.
func (line Line) Words() []string {
	return append([]string{line.Mnemonic}, line.Operands...)
}

// StripComment removes any comment and surrounding whitespace from text.
func StripComment(text string) string {
	text, _, _ = strings.Cut(text, COMMENT)
	return strings.TrimSpace(text)
}

// ParseLine tokenizes a line of source text. Operands are separated by
// whitespace and/or commas. Lines that are blank once comments are removed
// return ok == false.
func ParseLine(text string) (line Line, ok bool) {
	words := strings.FieldsFunc(StripComment(text), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(words) == 0 {
		return
	}

	line = Line{
		Mnemonic: strings.ToUpper(words[0]),
		Operands: words[1:],
	}
	ok = true

	return
}

// EncodeLine encodes a tokenized line into an instruction word. Operands
// beyond those required by the instruction format are ignored.
func EncodeLine(line Line) (code isa.Code, err error) {
	op, ok := isa.LookupOpcode(line.Mnemonic)
	if !ok {
		err = ErrUnknownInstruction(line.Mnemonic)
		return
	}

	format := op.Format()
	operands := format.Operands()
	args := make([]int64, len(operands))
	for n, operand := range operands {
		if n >= len(line.Operands) {
			err = &ErrMissingOperand{Mnemonic: line.Mnemonic, Index: n}
			return
		}

		word := line.Operands[n]
		switch operand.Kind {
		case isa.OPERAND_REGISTER:
			var reg isa.Register
			reg, err = DecodeRegister(word)
			args[n] = int64(reg)
		default:
			args[n], err = DecodeImmediate(word)
		}
		if err != nil {
			return
		}
	}

	code = format.Encode(op, args...)
	return
}
