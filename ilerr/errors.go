package ilerr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/ucle-lang/ucle/ast"
)

// New wraps err with a stack trace, the way frontend/ilerr.New captures
// one with runtime/debug.Stack in the teacher -- here via the module's own
// github.com/pkg/errors dependency instead of a hand-rolled capture.
func New(err InferError) error {
	return errors.WithStack(err)
}

// UnboundIdentifierErr is spec.md §7's UnboundIdentifier(name): lookup
// failed for a lower-case name.
type UnboundIdentifierErr struct {
	ast.Positioner
	Name string
}

func (e UnboundIdentifierErr) Error() string {
	return fmt.Sprintf("unbound identifier %q", e.Name)
}
func (e UnboundIdentifierErr) Code() Code { return UnboundIdentifier }

// UnboundTypeOrConstructorErr is spec.md §7's UnboundTypeOrConstructor(name):
// lookup failed for an upper-case name.
type UnboundTypeOrConstructorErr struct {
	ast.Positioner
	Name string
}

func (e UnboundTypeOrConstructorErr) Error() string {
	return fmt.Sprintf("unbound type or constructor %q", e.Name)
}
func (e UnboundTypeOrConstructorErr) Code() Code { return UnboundTypeOrConstructor }

// ArityMismatchErr is spec.md §7's ArityMismatch(expected, got): function
// unification across different arities.
type ArityMismatchErr struct {
	ast.Positioner
	Expected int
	Got      int
}

func (e ArityMismatchErr) Error() string {
	return fmt.Sprintf("expected a function of %d argument(s), got %d", e.Expected, e.Got)
}
func (e ArityMismatchErr) Code() Code { return ArityMismatch }

// RecordFieldMismatchErr is spec.md §7's RecordFieldMismatch(keys1, keys2):
// closed record unification across different key sets.
type RecordFieldMismatchErr struct {
	ast.Positioner
	Keys1 []string
	Keys2 []string
}

func (e RecordFieldMismatchErr) Error() string {
	return fmt.Sprintf("record field mismatch: { %s } vs { %s }",
		strings.Join(e.Keys1, ", "), strings.Join(e.Keys2, ", "))
}
func (e RecordFieldMismatchErr) Code() Code { return RecordFieldMismatch }

// RecursiveTypeErr is spec.md §7's RecursiveType(var, type): the occurs
// check triggered.
type RecursiveTypeErr struct {
	ast.Positioner
	Var  fmt.Stringer
	Type fmt.Stringer
}

func (e RecursiveTypeErr) Error() string {
	return fmt.Sprintf("recursive type: %s occurs in %s", e.Var, e.Type)
}
func (e RecursiveTypeErr) Code() Code { return RecursiveType }

// LiteralMismatchErr is spec.md §7's LiteralMismatch(v1, v2): literal-type
// disagreement.
type LiteralMismatchErr struct {
	ast.Positioner
	V1 any
	V2 any
}

func (e LiteralMismatchErr) Error() string {
	return fmt.Sprintf("literal type mismatch: %v vs %v", e.V1, e.V2)
}
func (e LiteralMismatchErr) Code() Code { return LiteralMismatch }

// UnificationFailureErr is spec.md §7's UnificationFailure(t1, t2): none of
// the unification rules applied.
type UnificationFailureErr struct {
	ast.Positioner
	T1 fmt.Stringer
	T2 fmt.Stringer
}

func (e UnificationFailureErr) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.T1, e.T2)
}
func (e UnificationFailureErr) Code() Code { return UnificationFailure }

var (
	_ InferError = UnboundIdentifierErr{}
	_ InferError = UnboundTypeOrConstructorErr{}
	_ InferError = ArityMismatchErr{}
	_ InferError = RecordFieldMismatchErr{}
	_ InferError = RecursiveTypeErr{}
	_ InferError = LiteralMismatchErr{}
	_ InferError = UnificationFailureErr{}
)
