// Package isa describes the instruction set targeted by hexasm.
//
// Every instruction is a single word with a 5-bit opcode in bits 17..13,
// followed by operand fields laid out according to one of seven formats
// (R, I, M, J, U, C and S). Registers are 4-bit indexes R0-R15. Signed
// immediates are stored in two's complement and wrap silently when they do
// not fit their field; unsigned fields are simply masked.
//
// The package also decodes words back into their fields, and renders them
// as canonical assembly text.
package isa
