// Package infer implements the constraint generator and inference driver:
// the traversal that assigns a type to every AST node and emits the
// equality constraints the unify package solves (spec.md §4.6), and the
// top-level orchestration that ties generation, solving and generalization
// together (spec.md §4.8).
package infer

import (
	"fmt"

	"github.com/ucle-lang/ucle/ast"
	"github.com/ucle-lang/ucle/constraint"
	"github.com/ucle-lang/ucle/env"
	"github.com/ucle-lang/ucle/ilerr"
	"github.com/ucle-lang/ucle/types"
)

// Generator carries the state shared across an entire inference run: the
// fresh-variable supply (global, so identifiers stay unique across every
// declaration) and the node-to-type map (also global, for the same
// reason). The constraint set is deliberately NOT held here -- the driver
// passes one explicitly per call so it can scope solving to one
// declaration at a time (spec.md §9, fused solve-then-generalize).
type Generator struct {
	Fresh     *types.FreshSupply
	NodeTypes map[ast.Node]types.Type
}

// NewGenerator returns a Generator sharing fresh and an empty node-type map.
func NewGenerator(fresh *types.FreshSupply) *Generator {
	return &Generator{Fresh: fresh, NodeTypes: map[ast.Node]types.Type{}}
}

func (g *Generator) record(node ast.Node, t types.Type) types.Type {
	g.NodeTypes[node] = t
	return t
}

// Expr generates constraints for e under ev into cs and returns e's
// assigned type, implementing every rule of spec.md §4.6 except the
// `let`/`type` declaration rules, which the driver handles directly since
// they need to interleave solving between bindings.
func (g *Generator) Expr(ev *env.Env, cs *constraint.Set, e ast.Expr) (types.Type, error) {
	switch n := e.(type) {
	case *ast.IntLit:
		return g.record(n, types.Number), nil
	case *ast.StringLit:
		return g.record(n, types.String), nil
	case *ast.BoolLit:
		return g.record(n, types.Boolean), nil

	case *ast.Ident:
		t, ok := ev.Lookup(n.Name, g.Fresh)
		if !ok {
			if ast.IsUpper(n.Name) {
				return nil, ilerr.New(ilerr.UnboundTypeOrConstructorErr{Positioner: n, Name: n.Name})
			}
			return nil, ilerr.New(ilerr.UnboundIdentifierErr{Positioner: n, Name: n.Name})
		}
		return g.record(n, t), nil

	case *ast.Lambda:
		return g.lambda(ev, cs, n)

	case *ast.Compound:
		return g.compound(ev, cs, n)

	case *ast.RecordLit:
		fields := make(map[string]types.Type, len(n.Fields))
		order := make([]string, 0, len(n.Fields))
		for _, f := range n.Fields {
			t, err := g.Expr(ev, cs, f.Value)
			if err != nil {
				return nil, err
			}
			fields[f.Name] = t
			order = append(order, f.Name)
		}
		return g.record(n, types.NewRecord(order, fields)), nil

	case *ast.ConstIn:
		t1, err := g.Expr(ev, cs, n.Value)
		if err != nil {
			return nil, err
		}
		inner := ev.Extend(n.Name, types.Mono(t1))
		t2, err := g.Expr(inner, cs, n.Body)
		if err != nil {
			return nil, err
		}
		return g.record(n, t2), nil

	case *ast.Match:
		return g.match(ev, cs, n)

	default:
		return nil, fmt.Errorf("infer: unhandled expression node %T", e)
	}
}

func (g *Generator) lambda(ev *env.Env, cs *constraint.Set, n *ast.Lambda) (types.Type, error) {
	cur := ev
	params := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		var pt types.Type
		if p.Annotation != nil {
			t, err := g.TypeExpr(ev, p.Annotation)
			if err != nil {
				return nil, err
			}
			pt = t
		} else {
			pt = g.Fresh.FreshVar()
		}
		g.record(p, pt)
		params[i] = pt
		cur = cur.Extend(p.Name, types.Mono(pt))
	}
	body, err := g.Expr(cur, cs, n.Body)
	if err != nil {
		return nil, err
	}
	return g.record(n, &types.Function{Params: params, Return: body}), nil
}

func (g *Generator) compound(ev *env.Env, cs *constraint.Set, n *ast.Compound) (types.Type, error) {
	cur, err := g.Expr(ev, cs, n.Primary)
	if err != nil {
		return nil, err
	}
	for _, suf := range n.Suffixes {
		switch s := suf.(type) {
		case *ast.ApplySuffix:
			argTypes := make([]types.Type, len(s.Args))
			for i, a := range s.Args {
				at, err := g.Expr(ev, cs, a)
				if err != nil {
					return nil, err
				}
				argTypes[i] = at
			}
			rho := g.Fresh.FreshVar()
			cs.Equal(cur, &types.Function{Params: argTypes, Return: rho})
			cur = g.record(s, rho)

		case *ast.AccessSuffix:
			rho := g.Fresh.FreshVar()
			row := g.Fresh.FreshVar()
			cs.Equal(cur, types.NewOpenRecord([]string{s.Field}, map[string]types.Type{s.Field: rho}, row))
			cur = g.record(s, rho)

		default:
			return nil, fmt.Errorf("infer: unhandled suffix node %T", suf)
		}
	}
	return g.record(n, cur), nil
}

func (g *Generator) match(ev *env.Env, cs *constraint.Set, n *ast.Match) (types.Type, error) {
	sigma, err := g.Expr(ev, cs, n.Scrutinee)
	if err != nil {
		return nil, err
	}
	rho := g.Fresh.FreshVar()
	for _, arm := range n.Arms {
		pi, armEnv, err := g.Pattern(ev, cs, arm.Pattern)
		if err != nil {
			return nil, err
		}
		cs.Equal(sigma, pi)
		beta, err := g.Expr(armEnv, cs, arm.Body)
		if err != nil {
			return nil, err
		}
		cs.Equal(rho, beta)
	}
	return g.record(n, rho), nil
}

// Pattern generates constraints for p under ev, returning the pattern's
// type and ev extended with every variable the pattern binds (spec.md
// §4.6, "Patterns").
func (g *Generator) Pattern(ev *env.Env, cs *constraint.Set, p ast.Pattern) (types.Type, *env.Env, error) {
	switch n := p.(type) {
	case *ast.VarPattern:
		t := g.Fresh.FreshVar()
		g.record(n, t)
		return t, ev.Extend(n.Name, types.Mono(t)), nil

	case *ast.LiteralPattern:
		base, err := literalBaseType(n.Value)
		if err != nil {
			return nil, nil, err
		}
		return g.record(n, base), ev, nil

	case *ast.RecordPattern:
		fields := make(map[string]types.Type, len(n.Fields))
		order := make([]string, 0, len(n.Fields))
		cur := ev
		for _, f := range n.Fields {
			t, nextEnv, err := g.Pattern(cur, cs, f.Pattern)
			if err != nil {
				return nil, nil, err
			}
			fields[f.Name] = t
			order = append(order, f.Name)
			cur = nextEnv
		}
		return g.record(n, types.NewRecord(order, fields)), cur, nil

	case *ast.ConstructorPattern:
		cur := ev
		argTypes := make([]types.Type, len(n.Args))
		for i, a := range n.Args {
			t, nextEnv, err := g.Pattern(cur, cs, a)
			if err != nil {
				return nil, nil, err
			}
			argTypes[i] = t
			cur = nextEnv
		}
		ctorType, ok := ev.Lookup(n.Name, g.Fresh)
		if !ok {
			return nil, nil, ilerr.New(ilerr.UnboundTypeOrConstructorErr{Positioner: n, Name: n.Name})
		}
		rho := g.Fresh.FreshVar()
		cs.Equal(ctorType, &types.Function{Params: argTypes, Return: rho})
		return g.record(n, rho), cur, nil

	default:
		return nil, nil, fmt.Errorf("infer: unhandled pattern node %T", p)
	}
}

// TypeExpr resolves a surface type annotation to a core type
// compositionally, per spec.md §4.6.1.
func (g *Generator) TypeExpr(ev *env.Env, te ast.TypeExpr) (types.Type, error) {
	switch t := te.(type) {
	case *ast.NamedTypeExpr:
		if _, ok := ev.Scheme(t.Name); !ok {
			return nil, ilerr.New(ilerr.UnboundTypeOrConstructorErr{Positioner: t, Name: t.Name})
		}
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			at, err := g.TypeExpr(ev, a)
			if err != nil {
				return nil, err
			}
			args[i] = at
		}
		return &types.Named{Name: t.Name, Args: args}, nil

	case *ast.FuncTypeExpr:
		param, err := g.TypeExpr(ev, t.Param)
		if err != nil {
			return nil, err
		}
		ret, err := g.TypeExpr(ev, t.Return)
		if err != nil {
			return nil, err
		}
		return &types.Function{Params: []types.Type{param}, Return: ret}, nil

	case *ast.RecordTypeExpr:
		fields := make(map[string]types.Type, len(t.Fields))
		order := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			ft, err := g.TypeExpr(ev, f.Type)
			if err != nil {
				return nil, err
			}
			fields[f.Name] = ft
			order = append(order, f.Name)
		}
		return types.NewRecord(order, fields), nil

	case *ast.UnionTypeExpr:
		comps := make([]types.Type, len(t.Components))
		for i, c := range t.Components {
			ct, err := g.TypeExpr(ev, c)
			if err != nil {
				return nil, err
			}
			comps[i] = ct
		}
		return &types.Union{Components: comps}, nil

	case *ast.IntersectionTypeExpr:
		comps := make([]types.Type, len(t.Components))
		for i, c := range t.Components {
			ct, err := g.TypeExpr(ev, c)
			if err != nil {
				return nil, err
			}
			comps[i] = ct
		}
		return &types.Intersection{Components: comps}, nil

	case *ast.LiteralTypeExpr:
		base, err := literalBaseType(t.Value)
		if err != nil {
			return nil, err
		}
		return &types.Literal{Value: t.Value, Base: base}, nil

	default:
		return nil, fmt.Errorf("infer: unhandled type expression node %T", te)
	}
}

func literalBaseType(value any) (*types.Named, error) {
	switch value.(type) {
	case int64:
		return types.Number, nil
	case string:
		return types.String, nil
	case bool:
		return types.Boolean, nil
	default:
		return nil, fmt.Errorf("infer: literal value of unsupported type %T", value)
	}
}
