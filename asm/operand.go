package asm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/hexasm/isa"
)

// DecodeRegister converts a register token R0..R15 to its index.
func DecodeRegister(token string) (reg isa.Register, err error) {
	digits, ok := strings.CutPrefix(token, "R")
	if !ok {
		err = ErrRegisterSyntax(token)
		return
	}

	index, err := strconv.Atoi(digits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrRegisterRange(token)
		} else {
			err = ErrRegisterSyntax(token)
		}
		return
	}

	if index < 0 || index >= isa.REGISTER_COUNT {
		err = ErrRegisterRange(token)
		return
	}

	reg = isa.Register(index)
	return
}

// DecodeImmediate converts an immediate or offset token to an integer.
// Decimal is the default; 0x, 0o and 0b prefixes select other bases, and
// underscores may separate digits.
// Range is not checked here, fields truncate on encode.
func DecodeImmediate(token string) (value int64, err error) {
	base := 0
	digits := strings.TrimLeft(token, "+-")
	if len(digits) > 1 && digits[0] == '0' && !strings.ContainsRune("xXoObB", rune(digits[1])) {
		// Leading zeros are decimal, not octal.
		base = 10
	}

	value, err = strconv.ParseInt(token, base, 64)
	if err != nil {
		err = ErrParseNumber(token)
		return
	}

	return
}
