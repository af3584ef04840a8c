package stack

import "errors"

var (
	// ErrMalformedExpression is returned for unknown tokens, missing
	// operands, or leftover operands after evaluation.
	ErrMalformedExpression = errors.New("stack: malformed RPN expression")

	// ErrDivisionByZero is returned when a "/" has a zero divisor.
	ErrDivisionByZero = errors.New("stack: division by zero")

	// ErrMalformedLog is returned when a log line cannot be parsed, names a
	// function outside [0, n), or does not nest properly.
	ErrMalformedLog = errors.New("stack: malformed function log")
)
