// Package asm implements the hexasm assembler.
//
// Source is read one line at a time. Everything from the first "//" is a
// comment, and blank lines are skipped. The remaining text is split on
// whitespace and commas; the first token is the mnemonic (case is
// ignored) and the rest are operands, in the order required by the
// instruction's format. Registers are written R0 through R15, immediates as
// signed integers. A $(...) operand is evaluated at assembly time as a
// Starlark expression, with LINENO and PC predeclared.
//
// Each line assembles to exactly one word. The first error stops assembly.
package asm
