// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"math"
	"slices"
	"strings"

	"github.com/ezrec/hexasm/isa"
)

// Instruction is a line of assembled code with its source location.
type Instruction struct {
	LineNo int      // Source line number, starting at 1.
	Ip     int      // Index of the word in the program.
	Words  []string // Mnemonic and operand tokens.
	Code   isa.Code // Encoded word.
}

// Assembler is a single pass, line at a time assembler. Each line encodes
// to at most one word, independently of every other line.
type Assembler struct {
	Verbose     bool          // If set, verbosely logs the assembler actions.
	Instruction []Instruction // List of generated instructions.
}

// assembleLine encodes a single line of text. Blank and comment only lines
// return ok == false.
func (asm *Assembler) assembleLine(text string, lineno int) (inst Instruction, ok bool, err error) {
	body := StripComment(text)

	body, err = expandExpr(body, lineno, len(asm.Instruction))
	if err != nil {
		return
	}

	line, ok := ParseLine(body)
	if !ok {
		return
	}

	code, err := EncodeLine(line)
	if err != nil {
		ok = false
		return
	}

	inst = Instruction{
		LineNo: lineno,
		Ip:     len(asm.Instruction),
		Words:  line.Words(),
		Code:   code,
	}

	return
}

// Parse assembles an input stream into a Program. Assembly stops at the
// first line in error, which is returned as an *ErrSyntax.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	asm.Instruction = asm.Instruction[:0]

	lineno := 0
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		inst, ok, _err := asm.assembleLine(text, lineno)
		if _err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(text), Err: _err}
			return
		}
		if !ok {
			continue
		}

		if asm.Verbose {
			log.Printf("%v: %05x %v\n", lineno, uint32(inst.Code), inst.Code)
		}

		asm.Instruction = append(asm.Instruction, inst)
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSyntax{LineNo: lineno + 1, Err: err}
		return
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instruction),
	}

	return
}
