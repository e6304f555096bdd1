// Package ilerr defines the closed error-kind hierarchy the inference core
// fails with (spec.md §7): one Go type per kind, each optionally carrying
// the ast.Positioner of the offending node.
package ilerr

import (
	"fmt"
	"log/slog"
)

// Code identifies one of the seven error kinds spec.md §7 enumerates.
type Code int

const (
	None Code = iota
	UnboundIdentifier
	UnboundTypeOrConstructor
	ArityMismatch
	RecordFieldMismatch
	RecursiveType
	LiteralMismatch
	UnificationFailure
)

func (c Code) String() string {
	switch c {
	case UnboundIdentifier:
		return "UnboundIdentifier"
	case UnboundTypeOrConstructor:
		return "UnboundTypeOrConstructor"
	case ArityMismatch:
		return "ArityMismatch"
	case RecordFieldMismatch:
		return "RecordFieldMismatch"
	case RecursiveType:
		return "RecursiveType"
	case LiteralMismatch:
		return "LiteralMismatch"
	case UnificationFailure:
		return "UnificationFailure"
	default:
		return "None"
	}
}

// InferError is implemented by every concrete error kind in this package.
type InferError interface {
	error
	Code() Code
}

// FormatWithCode renders e the way diagnostics get printed by a caller that
// does not have its own formatter: "(<code name>) <message>", e.g.
// "(ArityMismatch) expected a function of 1 argument(s), got 2".
func FormatWithCode(e InferError) string {
	return fmt.Sprintf("(%s) %s", e.Code(), e.Error())
}

// Errors aggregates zero or more InferError values in insertion order. The
// core itself fails fast on the first error (spec.md §7 policy); Errors
// exists for a caller driving inference across several top-level
// declarations or files that wants to collect one failure per declaration
// without losing that single-error-per-run contract.
type Errors struct {
	errs []InferError
}

func (r *Errors) With(err ...InferError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(other *Errors) *Errors {
	if r == nil {
		return other
	}
	if other == nil || len(other.errs) == 0 {
		return r
	}
	return r.With(other.errs...)
}

func (r *Errors) Errors() []InferError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	return r != nil && len(r.errs) > 0
}

func (r *Errors) LogValue() slog.Value {
	var attrs []slog.Attr
	for i, e := range r.Errors() {
		attrs = append(attrs, slog.String(fmt.Sprintf("e%d", i), FormatWithCode(e)))
	}
	return slog.GroupValue(attrs...)
}
