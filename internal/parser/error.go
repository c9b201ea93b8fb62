package parser

import (
	"fmt"

	"github.com/solarlang/solar/internal/ast"
)

// Error is a single parse failure. Error() renders it as one line,
// "parse:<line>:<column>: <message>".
type Error struct {
	Message string
	Span    ast.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%s: %s", "parse", e.Span.Start, e.Message)
}

func newError(span ast.Span, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Span: span}
}
