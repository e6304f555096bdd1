package ast

// NamedTypeExpr is a reference to a named type, optionally applied to
// arguments (e.g. `List<Number>`).
type NamedTypeExpr struct {
	Range
	Name string
	Args []TypeExpr
}

func (*NamedTypeExpr) typeExprNode() {}

// FuncTypeExpr is one arrow of a right-associative function type
// annotation: `a -> b -> c` parses as FuncTypeExpr{Param: a, Return:
// FuncTypeExpr{Param: b, Return: c}} (spec.md §4.6.1).
type FuncTypeExpr struct {
	Range
	Param  TypeExpr
	Return TypeExpr
}

func (*FuncTypeExpr) typeExprNode() {}

// FieldTypeExpr is one `name: type` pair in a record type annotation.
type FieldTypeExpr struct {
	Name string
	Type TypeExpr
}

// RecordTypeExpr is `rect { f1: t1, ..., fn: tn }` used as a type
// annotation; it always resolves to a closed record (spec.md §4.6.1).
type RecordTypeExpr struct {
	Range
	Fields []FieldTypeExpr
}

func (*RecordTypeExpr) typeExprNode() {}

// UnionTypeExpr is `a | b | ...`.
type UnionTypeExpr struct {
	Range
	Components []TypeExpr
}

func (*UnionTypeExpr) typeExprNode() {}

// IntersectionTypeExpr is `a & b & ...`.
type IntersectionTypeExpr struct {
	Range
	Components []TypeExpr
}

func (*IntersectionTypeExpr) typeExprNode() {}

// LiteralTypeExpr is a literal used as a type, e.g. the `42` in `42 :
// Number`.
type LiteralTypeExpr struct {
	Range
	Value any
}

func (*LiteralTypeExpr) typeExprNode() {}

var (
	_ TypeExpr = (*NamedTypeExpr)(nil)
	_ TypeExpr = (*FuncTypeExpr)(nil)
	_ TypeExpr = (*RecordTypeExpr)(nil)
	_ TypeExpr = (*UnionTypeExpr)(nil)
	_ TypeExpr = (*IntersectionTypeExpr)(nil)
	_ TypeExpr = (*LiteralTypeExpr)(nil)
)
