package asm

import (
	"iter"

	"github.com/ezrec/hexasm/isa"
)

// Program is an assembled sequence of instructions, in source order.
type Program struct {
	Instructions []Instruction
}

// Debug returns the instruction at word index ip, or nil.
func (prog *Program) Debug(ip int) *Instruction {
	if ip < 0 || ip >= len(prog.Instructions) {
		return nil
	}
	return &prog.Instructions[ip]
}

// Binary returns the instruction words of the program.
func (prog *Program) Binary() (codes []isa.Code) {
	for _, code := range prog.Codes() {
		codes = append(codes, code)
	}

	return
}

// Codes iterates over the word index and word of every instruction.
func (prog *Program) Codes() iter.Seq2[int, isa.Code] {
	return func(yield func(ip int, code isa.Code) bool) {
		for n, inst := range prog.Instructions {
			if !yield(n, inst.Code) {
				return
			}
		}
	}
}

// Words iterates over every instruction word.
func (prog *Program) Words() iter.Seq[isa.Code] {
	return func(yield func(code isa.Code) bool) {
		for _, code := range prog.Codes() {
			if !yield(code) {
				return
			}
		}
	}
}
