package ast

// LetDecl is a top-level (or, once grouped, nested) `let` binding:
//
//	let name(p1, ..., pn) => body
//	let name => body
//
// Params is empty for the parameterless form; a non-empty Params is sugar
// for binding Body under an implicit Lambda (spec.md §6: "optional
// parameter list").
type LetDecl struct {
	Range
	Name          string
	GenericParams []string
	Params        []Param
	Annotation    TypeExpr // nil if unannotated
	Body          Expr
}

func (*LetDecl) declNode() {}

// TypeDecl is a top-level `type` declaration. The core registers Name in
// the environment as a Named type but does not enforce structural
// consistency of Definition beyond resolving it (spec.md §4.6, "Type
// declaration").
type TypeDecl struct {
	Range
	Name          string
	GenericParams []string
	Definition    TypeExpr
}

func (*TypeDecl) declNode() {}

var (
	_ Decl = (*LetDecl)(nil)
	_ Decl = (*TypeDecl)(nil)
)
