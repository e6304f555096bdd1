// Package unify implements syntactic unification over the type algebra in
// package types, with an occurs check and the row-polymorphic rule for
// records (spec.md §4.7).
package unify

import (
	"github.com/ucle-lang/ucle/ast"
	"github.com/ucle-lang/ucle/constraint"
	"github.com/ucle-lang/ucle/ilerr"
	"github.com/ucle-lang/ucle/internal/log"
	"github.com/ucle-lang/ucle/types"
)

var logger = log.DefaultLogger.With("section", "unify")

// Unify returns a substitution making t1 and t2 structurally equal, or an
// *ilerr*-wrapped error if none of the rules in spec.md §4.7 apply. fresh
// mints the new row variables rule 5's record case needs when absorbing a
// field exclusive to one side (see unifyRecords); pass the same
// *types.FreshSupply the surrounding inference run already uses so every
// variable identifier stays unique within it. pos is attached to any error
// produced -- pass ast.Range{} when no source location is available (e.g.
// for a constraint synthesized by the solver itself rather than by the
// generator).
func Unify(t1, t2 types.Type, fresh *types.FreshSupply, pos ast.Positioner) (*types.Substitution, error) {
	// Rule 1: structural equality.
	if equalTypes(t1, t2) {
		return types.EmptySubstitution(), nil
	}

	// Rule 2 / 3: one side is a bare variable.
	if v1, ok := t1.(*types.Var); ok {
		return bindVar(v1, t2, pos)
	}
	if v2, ok := t2.(*types.Var); ok {
		return bindVar(v2, t1, pos)
	}

	// Rule 4: both Function.
	f1, f1ok := t1.(*types.Function)
	f2, f2ok := t2.(*types.Function)
	if f1ok && f2ok {
		return unifyFunctions(f1, f2, fresh, pos)
	}

	// Rule 5: both Record.
	r1, r1ok := t1.(*types.Record)
	r2, r2ok := t2.(*types.Record)
	if r1ok && r2ok {
		return unifyRecords(r1, r2, fresh, pos)
	}

	// Rule 6: both Named.
	n1, n1ok := t1.(*types.Named)
	n2, n2ok := t2.(*types.Named)
	if n1ok && n2ok {
		return unifyNamed(n1, n2, fresh, pos)
	}

	// Rule 7: both Union, or both Intersection.
	u1, u1ok := t1.(*types.Union)
	u2, u2ok := t2.(*types.Union)
	if u1ok && u2ok {
		return unifyPositional(u1.Components, u2.Components, t1, t2, fresh, pos)
	}
	i1, i1ok := t1.(*types.Intersection)
	i2, i2ok := t2.(*types.Intersection)
	if i1ok && i2ok {
		return unifyPositional(i1.Components, i2.Components, t1, t2, fresh, pos)
	}

	// Rule 8: both Literal.
	l1, l1ok := t1.(*types.Literal)
	l2, l2ok := t2.(*types.Literal)
	if l1ok && l2ok {
		if l1.Value == l2.Value && l1.Base.Name == l2.Base.Name {
			return types.EmptySubstitution(), nil
		}
		return nil, ilerr.New(ilerr.LiteralMismatchErr{Positioner: pos, V1: l1.Value, V2: l2.Value})
	}

	// Rule 9: Literal vs Named, either order.
	if l1ok && n2ok {
		return unifyLiteralNamed(l1, n2, t1, t2, pos)
	}
	if n1ok && l2ok {
		return unifyLiteralNamed(l2, n1, t1, t2, pos)
	}

	// Rule 10: nothing applies.
	return nil, ilerr.New(ilerr.UnificationFailureErr{Positioner: pos, T1: t1, T2: t2})
}

func unifyLiteralNamed(lit *types.Literal, named *types.Named, t1, t2 types.Type, pos ast.Positioner) (*types.Substitution, error) {
	if lit.Base.Name == named.Name {
		return types.EmptySubstitution(), nil
	}
	return nil, ilerr.New(ilerr.UnificationFailureErr{Positioner: pos, T1: t1, T2: t2})
}

func bindVar(v *types.Var, t types.Type, pos ast.Positioner) (*types.Substitution, error) {
	if other, ok := t.(*types.Var); ok && other.ID == v.ID {
		return types.EmptySubstitution(), nil
	}
	if types.Occurs(v.ID, t) {
		return nil, ilerr.New(ilerr.RecursiveTypeErr{Positioner: pos, Var: v, Type: t})
	}
	return types.SingletonSubstitution(v.ID, t), nil
}

func unifyFunctions(f1, f2 *types.Function, fresh *types.FreshSupply, pos ast.Positioner) (*types.Substitution, error) {
	if len(f1.Params) != len(f2.Params) {
		return nil, ilerr.New(ilerr.ArityMismatchErr{Positioner: pos, Expected: len(f1.Params), Got: len(f2.Params)})
	}
	s1, err := Unify(f1.Return, f2.Return, fresh, pos)
	if err != nil {
		return nil, err
	}
	for i := range f1.Params {
		s2, err := Unify(s1.Apply(f1.Params[i]), s1.Apply(f2.Params[i]), fresh, pos)
		if err != nil {
			return nil, err
		}
		s1 = types.Compose(s2, s1)
	}
	return s1, nil
}

// unifyRecords implements rule 5. Shared fields unify pairwise. Fields
// present on only one side are absorbed into the other side's row
// variable, which resolves to a record carrying exactly those fields plus
// a trailing remainder (nil -- closed -- if the contributing side had no
// row of its own; otherwise a brand-new fresh row variable, never the
// contributing side's own row variable). Minting a fresh variable here
// rather than reusing the contributing side's row matters when both sides
// are open and each has fields the other lacks: reusing, say, r1.Row as
// r2.Row's extension tail while r2.Row is simultaneously being absorbed
// into r1.Row's own extension produces a substitution that refers to
// itself once composed, which then loops forever the next time it is
// applied (see unify_test.go's doubly-open regression case).
func unifyRecords(r1, r2 *types.Record, fresh *types.FreshSupply, pos ast.Positioner) (*types.Substitution, error) {
	sub := types.EmptySubstitution()
	for _, k := range r1.Order {
		if _, ok := r2.Fields[k]; !ok {
			continue
		}
		s, err := Unify(sub.Apply(r1.Fields[k]), sub.Apply(r2.Fields[k]), fresh, pos)
		if err != nil {
			return nil, err
		}
		sub = types.Compose(s, sub)
	}

	only1 := fieldsNotIn(r1, r2)
	only2 := fieldsNotIn(r2, r1)

	if len(only1) > 0 {
		if r2.Row == nil {
			return nil, ilerr.New(ilerr.RecordFieldMismatchErr{Positioner: pos, Keys1: r1.Order, Keys2: r2.Order})
		}
		ext := extensionRecord(r1, only1, freshTail(r1.Row, fresh))
		s, err := Unify(sub.Apply(r2.Row), sub.Apply(ext), fresh, pos)
		if err != nil {
			return nil, err
		}
		sub = types.Compose(s, sub)
	}

	if len(only2) > 0 {
		if r1.Row == nil {
			return nil, ilerr.New(ilerr.RecordFieldMismatchErr{Positioner: pos, Keys1: r1.Order, Keys2: r2.Order})
		}
		ext := extensionRecord(r2, only2, freshTail(r2.Row, fresh))
		s, err := Unify(sub.Apply(r1.Row), sub.Apply(ext), fresh, pos)
		if err != nil {
			return nil, err
		}
		sub = types.Compose(s, sub)
	}

	if len(only1) == 0 && len(only2) == 0 {
		return unifyRows(sub, r1.Row, r2.Row, fresh, pos)
	}
	return sub, nil
}

func fieldsNotIn(a, b *types.Record) []string {
	var out []string
	for _, k := range a.Order {
		if _, ok := b.Fields[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// freshTail returns the trailing row variable an absorbing extension
// record should carry: nil (closed) when the side that contributed the
// extra fields had no row of its own, otherwise a newly minted variable
// standing for whatever further fields that side's own row might still
// carry -- never sourceRow itself, per unifyRecords' doc comment.
func freshTail(sourceRow *types.Var, fresh *types.FreshSupply) *types.Var {
	if sourceRow == nil {
		return nil
	}
	return fresh.FreshVar()
}

func extensionRecord(source *types.Record, keys []string, row *types.Var) *types.Record {
	fields := make(map[string]types.Type, len(keys))
	for _, k := range keys {
		fields[k] = source.Fields[k]
	}
	return types.NewOpenRecord(keys, fields, row)
}

// unifyRows reconciles the two records' row variables once their visible
// key sets already match exactly: two open rows must describe the same
// remainder and unify with each other; a closed side forces the open
// side's row variable down to the empty remainder; two closed sides need
// nothing further.
func unifyRows(sub *types.Substitution, row1, row2 *types.Var, fresh *types.FreshSupply, pos ast.Positioner) (*types.Substitution, error) {
	switch {
	case row1 == nil && row2 == nil:
		return sub, nil
	case row1 != nil && row2 != nil:
		s, err := Unify(sub.Apply(row1), sub.Apply(row2), fresh, pos)
		if err != nil {
			return nil, err
		}
		return types.Compose(s, sub), nil
	default:
		open := row1
		if open == nil {
			open = row2
		}
		empty := types.NewRecord(nil, map[string]types.Type{})
		s, err := Unify(sub.Apply(open), empty, fresh, pos)
		if err != nil {
			return nil, err
		}
		return types.Compose(s, sub), nil
	}
}

func unifyNamed(n1, n2 *types.Named, fresh *types.FreshSupply, pos ast.Positioner) (*types.Substitution, error) {
	if n1.Name != n2.Name || len(n1.Args) != len(n2.Args) {
		return nil, ilerr.New(ilerr.UnificationFailureErr{Positioner: pos, T1: n1, T2: n2})
	}
	sub := types.EmptySubstitution()
	for i := range n1.Args {
		s, err := Unify(sub.Apply(n1.Args[i]), sub.Apply(n2.Args[i]), fresh, pos)
		if err != nil {
			return nil, err
		}
		sub = types.Compose(s, sub)
	}
	return sub, nil
}

func unifyPositional(c1, c2 []types.Type, t1, t2 types.Type, fresh *types.FreshSupply, pos ast.Positioner) (*types.Substitution, error) {
	if len(c1) != len(c2) {
		return nil, ilerr.New(ilerr.UnificationFailureErr{Positioner: pos, T1: t1, T2: t2})
	}
	sub := types.EmptySubstitution()
	for i := range c1 {
		s, err := Unify(sub.Apply(c1[i]), sub.Apply(c2[i]), fresh, pos)
		if err != nil {
			return nil, err
		}
		sub = types.Compose(s, sub)
	}
	return sub, nil
}

// equalTypes reports structural equality without consulting any
// substitution -- rule 1 of spec.md §4.7 fires before any variable is
// chased.
func equalTypes(t1, t2 types.Type) bool {
	switch a := t1.(type) {
	case *types.Var:
		b, ok := t2.(*types.Var)
		return ok && a.ID == b.ID
	case *types.Named:
		b, ok := t2.(*types.Named)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !equalTypes(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *types.Function:
		b, ok := t2.(*types.Function)
		if !ok || len(a.Params) != len(b.Params) || !equalTypes(a.Return, b.Return) {
			return false
		}
		for i := range a.Params {
			if !equalTypes(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return true
	case *types.Record:
		b, ok := t2.(*types.Record)
		if !ok || len(a.Order) != len(b.Order) {
			return false
		}
		if (a.Row == nil) != (b.Row == nil) {
			return false
		}
		if a.Row != nil && a.Row.ID != b.Row.ID {
			return false
		}
		for _, k := range a.Order {
			bt, ok := b.Fields[k]
			if !ok || !equalTypes(a.Fields[k], bt) {
				return false
			}
		}
		return true
	case *types.Literal:
		b, ok := t2.(*types.Literal)
		return ok && a.Value == b.Value && a.Base.Name == b.Base.Name
	case *types.Union:
		b, ok := t2.(*types.Union)
		return ok && equalSlices(a.Components, b.Components)
	case *types.Intersection:
		b, ok := t2.(*types.Intersection)
		return ok && equalSlices(a.Components, b.Components)
	default:
		return false
	}
}

func equalSlices(a, b []types.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalTypes(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Solve folds Unify over cs in insertion order, applying the running
// substitution to both sides before each step and composing the result
// into it (spec.md §4.7, "solve"). fresh is threaded into every Unify call
// so row-extension variables it mints stay unique within the surrounding
// inference run.
func Solve(cs *constraint.Set, fresh *types.FreshSupply, pos ast.Positioner) (*types.Substitution, error) {
	sub := types.EmptySubstitution()
	for _, c := range cs.Items() {
		lhs := sub.Apply(c.Lhs)
		rhs := sub.Apply(c.Rhs)
		s, err := Unify(lhs, rhs, fresh, pos)
		if err != nil {
			logger.Debug("solve failed", "lhs", lhs, "rhs", rhs, "error", err)
			return nil, err
		}
		sub = types.Compose(s, sub)
	}
	return sub, nil
}
