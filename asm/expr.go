package asm

import (
	"fmt"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// evalExpr does compile-time $(...) evaluations. LINENO and PC are
// predeclared as the current source line and the index of the word being
// assembled.
func evalExpr(expr string, lineno int, pc int) (value int64, err error) {
	thread := starlark.Thread{Name: "hexasm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
		"PC":     starlark.MakeInt(pc),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrParseExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrParseExpression{Expr: expr}
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = &ErrParseExpression{Expr: expr}
		return
	}

	return
}

// expandExpr replaces every $(...) in text with its decimal value.
func expandExpr(text string, lineno int, pc int) (out string, err error) {
	out = exprRegexp.ReplaceAllStringFunc(text, func(str string) string {
		if err != nil {
			return str
		}
		value, _err := evalExpr(str[2:len(str)-1], lineno, pc)
		if _err != nil {
			err = _err
			return str
		}
		return fmt.Sprintf("%d", value)
	})

	return
}
