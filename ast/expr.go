package ast

// IntLit, StringLit and BoolLit are the three literal expression forms
// (spec.md §4.6: "Integer literal", "String literal", "Boolean literal").
type IntLit struct {
	Range
	Value int64
}

func (*IntLit) exprNode() {}

type StringLit struct {
	Range
	Value string
}

func (*StringLit) exprNode() {}

type BoolLit struct {
	Range
	Value bool
}

func (*BoolLit) exprNode() {}

// Ident is an identifier reference. Whether it denotes a value or a
// type/constructor is determined lexically by IsUpper(Name).
type Ident struct {
	Range
	Name string
}

func (*Ident) exprNode() {}

// Param is a lambda or let parameter: a name with an optional type
// annotation.
type Param struct {
	Range
	Name       string
	Annotation TypeExpr // nil if unannotated
}

// Lambda is `fn(p1, ..., pn) => body`.
type Lambda struct {
	Range
	Params []Param
	Body   Expr
}

func (*Lambda) exprNode() {}

// Suffix is implemented by ApplySuffix and AccessSuffix, the two suffix
// forms a Compound expression threads a base type through left-to-right.
type Suffix interface {
	Node
	suffixNode()
}

// ApplySuffix is `(e1, ..., en)` applied to a preceding expression.
type ApplySuffix struct {
	Range
	Args []Expr
}

func (*ApplySuffix) suffixNode() {}

// AccessSuffix is `.field` applied to a preceding expression.
type AccessSuffix struct {
	Range
	Field string
}

func (*AccessSuffix) suffixNode() {}

// Compound is `primary suffix1 ... suffixk` (spec.md §4.6). Constructing it
// with an empty Suffixes slice is valid; the generator then assigns the
// Compound its Primary's type.
type Compound struct {
	Range
	Primary  Expr
	Suffixes []Suffix
}

func (*Compound) exprNode() {}

// FieldInit is one `name: value` pair in a record literal.
type FieldInit struct {
	Name  string
	Value Expr
}

// RecordLit is `rect { f1: e1, ..., fn: en }`.
type RecordLit struct {
	Range
	Fields []FieldInit
}

func (*RecordLit) exprNode() {}

// ConstIn is `const x = e1 in e2`; unlike a top-level let, it never
// generalizes (spec.md §4.6).
type ConstIn struct {
	Range
	Name  string
	Value Expr
	Body  Expr
}

func (*ConstIn) exprNode() {}

// MatchArm is one `case pattern => body` arm of a match expression.
type MatchArm struct {
	Range
	Pattern Pattern
	Body    Expr
}

// Match is `match scrutinee { arm1 ... armn }`.
type Match struct {
	Range
	Scrutinee Expr
	Arms      []MatchArm
}

func (*Match) exprNode() {}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*StringLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*Compound)(nil)
	_ Expr = (*RecordLit)(nil)
	_ Expr = (*ConstIn)(nil)
	_ Expr = (*Match)(nil)

	_ Suffix = (*ApplySuffix)(nil)
	_ Suffix = (*AccessSuffix)(nil)
)
