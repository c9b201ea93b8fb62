// Package diag is the unified compilation error taxonomy (spec.md §7),
// shared by every component above the parser so that resolution, typing
// and built-in dispatch all propagate through one sum type. Modeled on
// the teacher's checker/error.go: a closed set of structs, each with an
// isError() marker and a Message() string, rather than a single
// stringly-typed error value.
package diag

import "github.com/solarlang/solar/internal/ast"

type Error interface {
	isError()
	Message() string
	Span() ast.Span
}

func (e NotFoundError) isError()                   {}
func (e ModuleNotFoundError) isError()              {}
func (e TooManyError) isError()                     {}
func (e AmbiguousOverloadError) isError()            {}
func (e LibNotInDepsError) isError()                 {}
func (e TypeMismatchError) isError()                 {}
func (e RecursionWithoutReturnTypeError) isError()   {}
func (e CallingVariableError) isError()              {}
func (e WrongBuiltinError) isError()                 {}
func (e IntConversionError) isError()                {}
func (e FloatConversionError) isError()              {}
func (e UnimplementedError) isError()                {}
func (e FatalError) isError()                        {}

// NotFoundError: symbol lookup in a module yielded no matches (§4.4).
type NotFoundError struct {
	Symbol string
	span   ast.Span
}

func NewNotFoundError(symbol string, span ast.Span) NotFoundError {
	return NotFoundError{Symbol: symbol, span: span}
}
func (e NotFoundError) Message() string { return "symbol not found: " + e.Symbol }
func (e NotFoundError) Span() ast.Span  { return e.span }

// ModuleNotFoundError: an import resolved to a module IdPath absent from
// GlobalModules.
type ModuleNotFoundError struct {
	Path string
	span ast.Span
}

func NewModuleNotFoundError(path string, span ast.Span) ModuleNotFoundError {
	return ModuleNotFoundError{Path: path, span: span}
}
func (e ModuleNotFoundError) Message() string { return "module not found: " + e.Path }
func (e ModuleNotFoundError) Span() ast.Span  { return e.span }

// TooManyError: the symbol finder returned more than one Func match for
// a single-candidate context.
type TooManyError struct {
	Symbol string
	Module string
	span   ast.Span
}

func NewTooManyError(symbol, module string, span ast.Span) TooManyError {
	return TooManyError{Symbol: symbol, Module: module, span: span}
}
func (e TooManyError) Message() string {
	return "too many matches for " + e.Symbol + " in " + e.Module
}
func (e TooManyError) Span() ast.Span { return e.span }

// AmbiguousOverloadError: the call-site overload narrowing rule (§4.5.3)
// found more than one candidate and the current policy has no tie-break.
type AmbiguousOverloadError struct {
	Symbol     string
	Candidates int
	span       ast.Span
}

func NewAmbiguousOverloadError(symbol string, candidates int, span ast.Span) AmbiguousOverloadError {
	return AmbiguousOverloadError{Symbol: symbol, Candidates: candidates, span: span}
}
func (e AmbiguousOverloadError) Message() string {
	return "ambiguous overload for " + e.Symbol
}
func (e AmbiguousOverloadError) Span() ast.Span { return e.span }

// LibNotInDepsError: an import's leading segment isn't a dependency
// short-name in the current project's manifest (§4.3).
type LibNotInDepsError struct {
	LibName string
	span    ast.Span
}

func NewLibNotInDepsError(libName string, span ast.Span) LibNotInDepsError {
	return LibNotInDepsError{LibName: libName, span: span}
}
func (e LibNotInDepsError) Message() string { return "library not in dependencies: " + e.LibName }
func (e LibNotInDepsError) Span() ast.Span  { return e.span }

// TypeMismatchError: spec.md's TypeError{got, wanted}, renamed to avoid
// colliding with Go's own error-handling vocabulary.
type TypeMismatchError struct {
	Got, Wanted string
	span        ast.Span
}

func NewTypeMismatchError(got, wanted string, span ast.Span) TypeMismatchError {
	return TypeMismatchError{Got: got, Wanted: wanted, span: span}
}
func (e TypeMismatchError) Message() string {
	return "type mismatch: got " + e.Got + ", wanted " + e.Wanted
}
func (e TypeMismatchError) Span() ast.Span { return e.span }

// RecursionWithoutReturnTypeError: a recursive call observed a Partial
// function-store entry but the declaring function has no return-type
// annotation to type the call site with (§4.5.2, §9).
type RecursionWithoutReturnTypeError struct {
	Symbol string
	span   ast.Span
}

func NewRecursionWithoutReturnTypeError(symbol string, span ast.Span) RecursionWithoutReturnTypeError {
	return RecursionWithoutReturnTypeError{Symbol: symbol, span: span}
}
func (e RecursionWithoutReturnTypeError) Message() string {
	return "recursive function " + e.Symbol + " has no declared return type"
}
func (e RecursionWithoutReturnTypeError) Span() ast.Span { return e.span }

// CallingVariableError: a resolved call target was a local variable
// (no first-class functions, §9).
type CallingVariableError struct {
	Name string
	File string
	span ast.Span
}

func NewCallingVariableError(name, file string, span ast.Span) CallingVariableError {
	return CallingVariableError{Name: name, File: file, span: span}
}
func (e CallingVariableError) Message() string {
	return "cannot call local variable " + e.Name + " in " + e.File
}
func (e CallingVariableError) Span() ast.Span { return e.span }

// WrongBuiltinError: an unknown buildin_* name, or a known one called
// with the wrong arity (§4.6). The compiler also raises it when a
// user-declared function is called with the wrong number of arguments.
type WrongBuiltinError struct {
	Found string
	span  ast.Span
}

func NewWrongBuiltinError(found string, span ast.Span) WrongBuiltinError {
	return WrongBuiltinError{Found: found, span: span}
}
func (e WrongBuiltinError) Message() string { return "invalid built-in call: " + e.Found }
func (e WrongBuiltinError) Span() ast.Span  { return e.span }

// IntConversionError / FloatConversionError: literal-parsing failures
// (§4.5.4).
type IntConversionError struct {
	Text string
	span ast.Span
}

func NewIntConversionError(text string, span ast.Span) IntConversionError {
	return IntConversionError{Text: text, span: span}
}
func (e IntConversionError) Message() string { return "invalid integer literal: " + e.Text }
func (e IntConversionError) Span() ast.Span  { return e.span }

type FloatConversionError struct {
	Text string
	span ast.Span
}

func NewFloatConversionError(text string, span ast.Span) FloatConversionError {
	return FloatConversionError{Text: text, span: span}
}
func (e FloatConversionError) Message() string { return "invalid float literal: " + e.Text }
func (e FloatConversionError) Span() ast.Span  { return e.span }

// UnimplementedError covers the deliberately-unimplemented surface area
// spec.md names: field access, tuples of arity > 1, generated
// struct/enum constructors, import selection All.
type UnimplementedError struct {
	Feature string
	span    ast.Span
}

func NewUnimplementedError(feature string, span ast.Span) UnimplementedError {
	return UnimplementedError{Feature: feature, span: span}
}
func (e UnimplementedError) Message() string { return "unimplemented: " + e.Feature }
func (e UnimplementedError) Span() ast.Span  { return e.span }

// FatalError covers the assertion-shaped failures spec.md §7 calls
// "Fatal/internal": built-in decl shape mismatches, unrecognized
// built-in type names, malformed manifests reaching the linker.
type FatalError struct {
	Message_ string
}

func NewFatalError(message string) FatalError { return FatalError{Message_: message} }
func (e FatalError) Message() string          { return e.Message_ }
func (e FatalError) Span() ast.Span           { return ast.NoSpan }
