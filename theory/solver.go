// SPDX-License-Identifier: MIT
package theory

import (
	"context"
	"strings"
)

const (
	maxDNFBranches  = 4096
	bilinearTol     = 1e-4
	strictGap       = 1e-5
	maxSearchDepth  = 20
	maxSearchBudget = 4000
)

// Solver accumulates asserted formulas and decides their joint satisfiability.
type Solver struct {
	asserted []BoolExpr
}

// NewSolver returns an empty solver.
func NewSolver() *Solver { return &Solver{} }

// Assert conjoins f with everything previously asserted.
func (s *Solver) Assert(f BoolExpr) { s.asserted = append(s.asserted, f) }

// Result is the verdict of a Check call.
type Result int

const (
	Unsat Result = iota
	Sat
	Unknown
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Check decides satisfiability of the conjunction of everything asserted so
// far, expanding it to disjunctive normal form and trying each branch in
// turn (the first satisfiable branch wins). Returns (Sat, model, nil),
// (Unsat, nil, nil), or (Unknown, nil, ErrUnknown) — ctx cancellation or
// deadline yields (Unknown, nil, ErrTimeout).
func (s *Solver) Check(ctx context.Context) (Result, map[string]float64, error) {
	whole := And(s.asserted...)
	branches := dnf(whole)
	if len(branches) > maxDNFBranches {
		return Unknown, nil, ErrUnknown
	}

	sawUnknown := false
	for _, branch := range branches {
		select {
		case <-ctx.Done():
			return Unknown, nil, ErrTimeout
		default:
		}

		outcome := solveBranch(ctx, branch)
		if outcome.timedOut {
			return Unknown, nil, ErrTimeout
		}
		if outcome.sat {
			return Sat, stripAux(outcome.model), nil
		}
		if outcome.unknown {
			sawUnknown = true
		}
	}

	if sawUnknown {
		return Unknown, nil, ErrUnknown
	}

	return Unsat, nil, nil
}

// Verify re-checks everything asserted so far and reports only whether it is
// satisfiable, discarding the model and any Unknown/error detail — the
// boolean-only counterpart to Check (mirrors the original reference's
// ETRSolver.verify, `self.solver.check() == sat`).
func (s *Solver) Verify(ctx context.Context) bool {
	res, _, _ := s.Check(ctx)

	return res == Sat
}

func stripAux(model map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(model))
	for k, v := range model {
		if strings.HasPrefix(k, "w:") {
			continue
		}
		out[k] = v
	}

	return out
}

// varBounds gives the default box for a named variable: alpha-weight
// variables (package etr names them "a_p_q") range over (0,1], everything
// else (symbolic counter values, "b_p_q" cycle weights, path/cycle effect
// sums) is treated as an unbounded real within the solver's working range.
func varBounds(name string) (lo, hi float64) {
	if strings.HasPrefix(name, "a_") {
		return 0, 1
	}

	return -bigInf, bigInf
}
