package infer

import (
	"github.com/ucle-lang/ucle/ast"
	"github.com/ucle-lang/ucle/constraint"
	"github.com/ucle-lang/ucle/env"
	"github.com/ucle-lang/ucle/internal/log"
	"github.com/ucle-lang/ucle/types"
	"github.com/ucle-lang/ucle/unify"
)

var logger = log.DefaultLogger.With("section", "infer")

// Infer runs the full pipeline of spec.md §4.8 over program and returns the
// resolved top-level environment plus the per-node type map. It fails fast
// on the first error, per spec.md §7.
func Infer(program *ast.Program) (*env.Env, map[ast.Node]types.Type, error) {
	logger.Debug("starting inference run", "decls", len(program.Decls))
	fresh := types.NewFreshSupply()
	g := NewGenerator(fresh)
	ev := env.Builtins()

	placeholders := make(map[string]*types.Var, len(program.Decls))
	for _, d := range program.Decls {
		switch decl := d.(type) {
		case *ast.LetDecl:
			v := fresh.FreshVar()
			ev = ev.Extend(decl.Name, types.Mono(v))
			placeholders[decl.Name] = v
		case *ast.TypeDecl:
			ev = ev.Extend(decl.Name, types.Mono(&types.Named{Name: decl.Name}))
		}
	}

	for _, d := range program.Decls {
		switch decl := d.(type) {
		case *ast.LetDecl:
			if err := inferLet(g, &ev, decl, placeholders[decl.Name]); err != nil {
				logger.Debug("let binding failed", "name", decl.Name, "error", err)
				return nil, nil, err
			}
			logger.Debug("let binding solved", "name", decl.Name)
		case *ast.TypeDecl:
			if _, err := g.TypeExpr(ev, decl.Definition); err != nil {
				return nil, nil, err
			}
		}
	}

	return ev, g.NodeTypes, nil
}

// inferLet generates constraints for one `let` binding's body into a
// constraint set scoped to just this declaration, solves it, and
// generalizes the result before extending *ev -- the fused
// solve-then-generalize-per-binding strategy spec.md §9 permits in place of
// re-solving the whole accumulated constraint set after every declaration.
func inferLet(g *Generator, ev **env.Env, decl *ast.LetDecl, placeholder *types.Var) error {
	cs := constraint.New()
	body := letBody(decl)

	t, err := g.Expr(*ev, cs, body)
	if err != nil {
		return err
	}
	cs.Equal(placeholder, t)

	s, err := unify.Solve(cs, g.Fresh, decl)
	if err != nil {
		return err
	}

	resolved := s.Apply(t)
	scheme := (*ev).Generalize(resolved)
	*ev = (*ev).Extend(decl.Name, scheme)

	for node, nt := range g.NodeTypes {
		g.NodeTypes[node] = nt.Apply(s)
	}
	return nil
}

// letBody desugars a `let name(p1, ..., pn) => body` declaration's optional
// parameter list into the Lambda it is shorthand for (spec.md §6); a
// parameterless declaration's body is used as-is.
func letBody(decl *ast.LetDecl) ast.Expr {
	if len(decl.Params) == 0 {
		return decl.Body
	}
	return &ast.Lambda{
		Range:  decl.Range,
		Params: decl.Params,
		Body:   decl.Body,
	}
}

// InferredTypesAsStrings is the convenience wrapper of spec.md §6: it runs
// Infer and pretty-prints every top-level `let` binding's resolved scheme
// body.
func InferredTypesAsStrings(program *ast.Program) (map[string]string, error) {
	resolvedEnv, _, err := Infer(program)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, d := range program.Decls {
		decl, ok := d.(*ast.LetDecl)
		if !ok {
			continue
		}
		scheme, ok := resolvedEnv.Scheme(decl.Name)
		if !ok {
			continue
		}
		out[decl.Name] = scheme.Body.String()
	}
	return out, nil
}

// NodeTypeStrings pretty-prints every entry of a node-type map returned by
// Infer. It is a supplement to spec.md §6's string convenience wrapper,
// useful to a future caller (an IDE/LSP integration, say) that wants
// per-node hover types without re-deriving pretty-printing itself.
func NodeTypeStrings(nodeTypes map[ast.Node]types.Type) map[ast.Node]string {
	out := make(map[ast.Node]string, len(nodeTypes))
	for node, t := range nodeTypes {
		out[node] = t.String()
	}
	return out
}
