// Released under an MIT license. See LICENSE.

// Package commands provides lisa's primitive closures and operatives.
package commands

import (
	"github.com/michaelmacinnis/lisa/internal/common/type/env"
	"github.com/michaelmacinnis/lisa/internal/engine/executor"
)

// Builtins returns the primitives that receive evaluated arguments.
func Builtins() map[string]executor.Applicative {
	return map[string]executor.Applicative{
		// Core.
		"=":      equal,
		"/=":     notEqual,
		"bruijn": bruijn,
		"eval":   eval,
		"kind":   kind,

		// Arithmetic.
		"+":  add,
		"-":  sub,
		"*":  mul,
		"/":  div,
		"**": pow,
		"<":  lt,
		">":  gt,
		"<=": le,
		">=": ge,

		// Math.
		"abs":       abs,
		"ceil":      ceil,
		"complex":   makeComplex,
		"cos":       cos,
		"cot":       cot,
		"csc":       csc,
		"exp":       exp,
		"floor":     floor,
		"imag":      imagPart,
		"lambert-w": lambertW,
		"ln":        ln,
		"real":      realPart,
		"sec":       sec,
		"sin":       sin,
		"sqrt":      sqrt,
		"tan":       tan,

		// Sequences.
		"append":  appendTo,
		"car":     car,
		"cdr":     cdr,
		"cons":    cons,
		"drop":    drop,
		"filter":  filter,
		"foldl":   foldl,
		"iota":    iota,
		"list":    makeList,
		"map":     mapTo,
		"nth":     nth,
		"reverse": reverse,
		"size":    size,
		"take":    take,

		// Text.
		"str->sym":  strToSym,
		"str-cat":   strCat,
		"str-match": strMatch,
		"str-nth":   strNth,
		"str-size":  strSize,
		"str-split": strSplit,
		"sym->str":  symToStr,

		// Grids.
		"grid":      makeGrid,
		"grid-dims": gridDims,
		"grid-ref":  gridRef,
		"grid-rows": gridRows,

		// Calculus.
		"D":        derivative,
		"simplify": simplify,
	}
}

// Syntax returns the primitives that receive unevaluated forms.
func Syntax() map[string]executor.Fexpr {
	return map[string]executor.Fexpr{
		"def":      def,
		"defmacro": defmacro,
		"defun":    defun,
		"dyad":     dyad,
		"if":       ifThenElse,
		"lambda":   lambda,
		"macro":    macro,
		"monad":    monad,
		"quote":    quote,
	}
}

// Install binds every primitive in the frame e.
func Install(e *env.T) {
	for k, op := range Builtins() {
		e.Push(k, executor.NewBuiltin(k, op))
	}

	for k, op := range Syntax() {
		e.Push(k, executor.NewSyntax(k, op))
	}
}
