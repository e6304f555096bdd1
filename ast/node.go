// Package ast defines the concrete Go representation of the UCLE AST
// consumed by the inference core (spec.md §6): programs made of `type` and
// `let` declarations, expressions (lambdas, `const ... in`, `match`, record
// literals, identifiers, literals, application and `.field` suffixes), and
// patterns (record, constructor, variable, literal).
//
// The lexer and parser that produce this tree are an external collaborator
// (spec.md §1) and are not part of this module; this package exists so the
// core has a concrete type to compile against.
package ast

import "go/token"

// Positioner allows finding the location of a node in the original source.
type Positioner interface {
	Pos() token.Pos
	End() token.Pos
}

// Range is the default Positioner implementation, embedded by every node.
type Range struct {
	PosStart token.Pos
	PosEnd   token.Pos
}

func (r Range) Pos() token.Pos { return r.PosStart }
func (r Range) End() token.Pos { return r.PosEnd }

// RangeBetween creates a Range spanning from fst's start to snd's end.
func RangeBetween(fst, snd Positioner) Range {
	return Range{PosStart: fst.Pos(), PosEnd: snd.End()}
}

// Node is the base interface for all AST nodes.
type Node interface {
	Positioner
}

// Expr is the interface for every expression node.
type Expr interface {
	Node
	exprNode()
}

// Pattern is the interface for every match-arm pattern node.
type Pattern interface {
	Node
	patternNode()
}

// Decl is the interface for every top-level declaration.
type Decl interface {
	Node
	declNode()
}

// TypeExpr is the interface for every surface type-annotation node
// (spec.md §4.6.1).
type TypeExpr interface {
	Node
	typeExprNode()
}

// Program is the root of a parsed UCLE file: a sequence of declarations
// processed sequentially left-to-right (spec.md §1, §4.8).
type Program struct {
	Range
	Decls []Decl
}

// IsUpper reports whether name is an upper-case identifier lexically (a
// type or constructor reference), as opposed to a lower-case value
// identifier. Spec.md §4.6 distinguishes the two only by this lexical rule.
func IsUpper(name string) bool {
	if name == "" {
		return false
	}
	r := name[0]
	return r >= 'A' && r <= 'Z'
}
