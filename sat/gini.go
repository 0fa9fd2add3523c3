package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// DefaultSolver answers the sat.Solver contract in-process using
// go-air/gini, a CDCL solver built around the same structurally-hashed
// circuit representation bddlabel borrows for its node table. Nothing in
// the retrieved corpus exercises gini's top-level Solve/Add/Value API
// directly (the one gini file present is irifrance/gini/logic's circuit
// builder, already the model for bddlabel's node table), so this file
// follows the solver's documented public API rather than a literal
// in-corpus usage site; see DESIGN.md's sat entry.
type DefaultSolver struct{}

// NewDefaultSolver returns the in-process gini-backed Solver.
func NewDefaultSolver() *DefaultSolver {
	return &DefaultSolver{}
}

// Solve implements Solver.
func (DefaultSolver) Solve(cnf CNF) (Model, bool, error) {
	if cnf.NumVars < 0 {
		return nil, false, fmt.Errorf("sat: negative NumVars %d", cnf.NumVars)
	}

	g := gini.New()
	for _, cl := range cnf.Clauses {
		for _, lit := range cl {
			if lit == 0 {
				return nil, false, fmt.Errorf("sat: clause contains literal 0")
			}
			g.Add(litToGini(lit))
		}
		g.Add(0)
	}

	switch g.Solve() {
	case 1:
		model := make(Model, 0, cnf.NumVars)
		for v := 1; v <= cnf.NumVars; v++ {
			if g.Value(z.Var(v).Pos()) {
				model = append(model, v)
			} else {
				model = append(model, -v)
			}
		}

		return model, true, nil
	case -1:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("sat: gini returned an undetermined result")
	}
}

func litToGini(lit int) z.Lit {
	if lit < 0 {
		return z.Var(-lit).Neg()
	}

	return z.Var(lit).Pos()
}
