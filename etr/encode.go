// SPDX-License-Identifier: MIT
// Package etr renders one compiled lps.LPS, together with a target counter
// pair, into a theory formula whose satisfying models are reachability
// witnesses (spec.md §4.5), ported from the original reference's
// ETRSolver.solve/solve_path/solve_cycle/solve_negatives.
//
// Two deliberate simplifications versus the original (both consequences of
// using a reference decision procedure instead of an external SMT backend,
// see SPEC_FULL.md §1):
//
//   - The original declares intermediate x_i/y_i variables constrained equal
//     to each edge's weight, purely so the weight can be referenced twice
//     (once in the weighted sum, once in the colinearity check). We
//     substitute the weight expression directly — an equivalent formula up
//     to variable elimination.
//   - A cycle's triviality (all its edges colinear, meaning it may be
//     "taken" with weight 0) is decided once, numerically, at encode time
//     from concrete edge weights, rather than left as a symbolic choice for
//     the solver to branch on. A cycle with a symbolically-weighted edge in
//     any consecutive pair is conservatively treated as non-trivial; a
//     single-edge cycle has no pair and is always trivial.
package etr

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/vass2/core"
	"github.com/katalvlaran/vass2/lps"
	"github.com/katalvlaran/vass2/theory"
)

// Encode builds the solver formula deciding whether l reaches (targetX,
// targetY). An LPS with neither a path nor any cycles is legal input: its
// path contribution is trivially (0, 0), so the resulting formula is sat
// iff the target itself is (0, 0) (spec.md §4.6's "Empty path" invariant).
func Encode(l *lps.LPS, targetX, targetY int64) (*theory.Solver, error) {
	s := theory.NewSolver()

	pathXTerms := make([]*theory.Expr, 0, len(l.Path))
	pathYTerms := make([]*theory.Expr, 0, len(l.Path))
	for _, t := range l.Path {
		a := alphaVar(t)
		pathXTerms = append(pathXTerms, theory.Mul(a, valueExpr(t.X)))
		pathYTerms = append(pathYTerms, theory.Mul(a, valueExpr(t.Y)))
		s.Assert(theory.Lit(theory.Gt(a, theory.Const(0))))
		s.Assert(theory.Lit(theory.Le(a, theory.Const(1))))
	}
	pathX, pathY := theory.Var("path_x"), theory.Var("path_y")
	s.Assert(theory.Lit(theory.Eq(theory.Sum(pathXTerms), pathX)))
	s.Assert(theory.Lit(theory.Eq(theory.Sum(pathYTerms), pathY)))

	names := sortedCycleNames(l.Cycles)
	cycleXVars := make([]*theory.Expr, 0, len(names))
	cycleYVars := make([]*theory.Expr, 0, len(names))
	for _, name := range names {
		cx, cy := theory.Var("cycle_x_"+name), theory.Var("cycle_y_"+name)
		cycleXVars = append(cycleXVars, cx)
		cycleYVars = append(cycleYVars, cy)
		encodeCycle(s, l.Cycles[name], cx, cy)
	}

	s.Assert(theory.Lit(theory.Eq(theory.Add(pathX, theory.Sum(cycleXVars)), theory.Const(float64(targetX)))))
	s.Assert(theory.Lit(theory.Eq(theory.Add(pathY, theory.Sum(cycleYVars)), theory.Const(float64(targetY)))))

	encodeNegativeLinks(s, l)

	return s, nil
}

func alphaVar(t lps.Transition) *theory.Expr {
	return theory.Var(fmt.Sprintf("a_%s_%s", t.From, t.To))
}

// betaVar names a cycle transition's weight; unlike a path alpha it has no
// upper bound, so it does not share the "a_" prefix.
func betaVar(t lps.Transition) *theory.Expr {
	return theory.Var(fmt.Sprintf("b_%s_%s", t.From, t.To))
}

func valueExpr(v core.Value) *theory.Expr {
	if v.IsSymbol {
		return theory.Var(v.Sym.String())
	}

	return theory.Const(float64(v.Const))
}

func encodeCycle(s *theory.Solver, cyc []lps.Transition, cx, cy *theory.Expr) {
	xTerms := make([]*theory.Expr, 0, len(cyc))
	yTerms := make([]*theory.Expr, 0, len(cyc))
	alphas := make([]*theory.Expr, 0, len(cyc))
	for _, t := range cyc {
		a := betaVar(t)
		alphas = append(alphas, a)
		xTerms = append(xTerms, theory.Mul(a, valueExpr(t.X)))
		yTerms = append(yTerms, theory.Mul(a, valueExpr(t.Y)))
	}

	taken := theory.And(
		theory.Lit(theory.Eq(theory.Sum(xTerms), cx)),
		theory.Lit(theory.Eq(theory.Sum(yTerms), cy)),
	)
	skipped := theory.And(
		theory.Lit(theory.Eq(cx, theory.Const(0))),
		theory.Lit(theory.Eq(cy, theory.Const(0))),
	)
	s.Assert(theory.Or(taken, skipped))

	trivial := isTrivial(cyc)
	for _, a := range alphas {
		if trivial {
			s.Assert(theory.Lit(theory.Ge(a, theory.Const(0))))
		} else {
			s.Assert(theory.Lit(theory.Gt(a, theory.Const(0))))
		}
	}
}

// isTrivial reports whether every consecutive pair of edge weight vectors in
// cyc is colinear (x_i*y_{i+1} == x_{i+1}*y_i), decidable only when both
// edges in a pair carry concrete weights — ported from VASS.py's `trivial`
// check in ETRSolver.solve_cycle.
func isTrivial(cyc []lps.Transition) bool {
	for i := 0; i+1 < len(cyc); i++ {
		a, b := cyc[i], cyc[i+1]
		if a.X.IsSymbol || a.Y.IsSymbol || b.X.IsSymbol || b.Y.IsSymbol {
			return false
		}
		if a.X.Const*b.Y.Const != b.X.Const*a.Y.Const {
			return false
		}
	}

	return true
}

// encodeNegativeLinks links every negated symbolic value ("-name") to its
// positive counterpart ("name") via var(-name) == -var(name), once per
// distinct name, across every transition in the path and all cycles.
func encodeNegativeLinks(s *theory.Solver, l *lps.LPS) {
	seen := make(map[string]bool)
	link := func(v core.Value) {
		if !v.IsSymbol || !v.Sym.Negated || seen[v.Sym.Name] {
			return
		}
		seen[v.Sym.Name] = true
		s.Assert(theory.Lit(theory.Eq(theory.Var(v.Sym.String()), theory.Neg(theory.Var(v.Sym.Name)))))
	}
	for _, t := range l.Path {
		link(t.X)
		link(t.Y)
	}
	for _, cyc := range l.Cycles {
		for _, t := range cyc {
			link(t.X)
			link(t.Y)
		}
	}
}

func sortedCycleNames(cycles map[string][]lps.Transition) []string {
	names := make([]string, 0, len(cycles))
	for name := range cycles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
