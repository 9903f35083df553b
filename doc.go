// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package pcomb implements parser combinators over a string cursor, with
// explicit control of backtracking.
//
// # Parsers
//
// A Parser[T] is a function from a Cursor to a value of type T, the cursor
// following the consumed input, or an error. Parsers are built from atoms
// (Literal, Char, Until, Succeed, Fail) and combined into larger grammars:
//
//	digit := pcomb.OrFrom(pcomb.Char('0'), pcomb.Char('1'))
//	bits := pcomb.Many(digit)
//	v, err := pcomb.Run(bits, "0110")
//
// Run is the single entry point for running a parser. Running a parser has no
// side effects, so one parser value may be shared among any number of calls.
//
// # Backtracking
//
// Every failure is an *Error with a Retry flag. An alternation p.Or(q) tries q
// only when p fails with Retry == true. Sequencing combinators (Bind, Then,
// And, Skip) commit: once the first parser has consumed input, any failure of
// the second is reported with Retry == false, and enclosing alternations do
// not try other branches:
//
//	First parser consumed | Failure of the second parser
//	--------------------- | ----------------------------------
//	nothing               | reported with its own Retry flag
//	some input            | reported with Retry == false
//
// To opt a whole sub-grammar back into backtracking, wrap it with Try. A failure
// inside the wrapped parser is then reported as retryable, at the position
// where the wrapped parser started.
//
// # Recursion
//
// Grammars are often recursive. Use Lazy (or ThenLazy, AndLazy, OrLazy) to
// refer to a parser that is defined in terms of itself, so the reference is
// resolved when the parser runs rather than when it is constructed.
package pcomb
