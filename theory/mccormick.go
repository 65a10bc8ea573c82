// SPDX-License-Identifier: MIT
package theory

import (
	"context"
	"math"
)

// branchOutcome is the tri-state result of solving one DNF branch.
type branchOutcome struct {
	sat      bool
	unknown  bool
	timedOut bool
	model    map[string]float64
}

// pairKey identifies one bilinear product's two factors in canonical order.
type pairKey struct{ a, b string }

// atomPlan is one normalized atom ready for re-assembly into a linRow, with
// its bilinear monomials kept aside for McCormick substitution.
type atomPlan struct {
	linear   map[string]float64
	constant float64
	op       cmpOp
	pairs    []monomial // bilinear monomials, referenced by aux var "w:a\x00b"
}

// solveBranch decides one DNF branch (a conjunction of Atoms). Branches with
// no bilinear term are decided exactly by a single simplex feasibility run;
// branches with bilinear terms are decided by McCormick relaxation with
// spatial branch-and-bound on the tightest-violated product, bounded by
// maxSearchDepth/maxSearchBudget (SPEC_FULL.md §1, "no SMT backend").
func solveBranch(ctx context.Context, atoms []Atom) branchOutcome {
	plans := make([]atomPlan, 0, len(atoms))
	pairSet := make(map[string]pairKey)
	for _, a := range atoms {
		n := normalizeAtom(a)
		p := atomPlan{linear: n.linear, constant: n.constant, op: n.op}
		for _, bm := range n.bilinear {
			key := bilinearKey(bm.vars[0], bm.vars[1])
			pairSet[key] = pairKey{bm.vars[0], bm.vars[1]}
			p.pairs = append(p.pairs, bm)
		}
		plans = append(plans, p)
	}

	if len(pairSet) == 0 {
		rows := assembleRows(plans, nil, nil)
		vars := collectVars(rows)
		res := solveLinear(rows, vars)

		return branchOutcome{sat: res.feasible, model: res.model}
	}

	budget := maxSearchBudget

	return spatialSearch(ctx, plans, pairSet, map[string][2]float64{}, 0, &budget)
}

// auxName names the McCormick auxiliary variable standing in for v1*v2.
func auxName(k string) string { return "w:" + k }

// assembleRows turns each atomPlan into a linRow, substituting bilinear
// monomials with their McCormick auxiliary variable.
func assembleRows(plans []atomPlan, pairSet map[string]pairKey, bounds map[string][2]float64) []linRow {
	rows := make([]linRow, 0, len(plans)+4*len(pairSet))
	for _, p := range plans {
		coeffs := make(map[string]float64, len(p.linear)+len(p.pairs))
		for k, v := range p.linear {
			coeffs[k] += v
		}
		for _, bm := range p.pairs {
			key := bilinearKey(bm.vars[0], bm.vars[1])
			coeffs[auxName(key)] += bm.coef
		}
		op, rhs := canonOp(p.op, p.constant)
		rows = append(rows, linRow{coeffs: coeffs, op: op, rhs: rhs})
	}

	for key, pk := range pairSet {
		lo1, hi1 := effectiveBounds(pk.a, bounds)
		lo2, hi2 := effectiveBounds(pk.b, bounds)
		w := auxName(key)
		rows = append(rows,
			linRow{coeffs: map[string]float64{w: 1, pk.b: -lo1, pk.a: -lo2}, op: opGe, rhs: -lo1 * lo2},
			linRow{coeffs: map[string]float64{w: 1, pk.b: -hi1, pk.a: -hi2}, op: opGe, rhs: -hi1 * hi2},
			linRow{coeffs: map[string]float64{w: 1, pk.b: -hi1, pk.a: -lo2}, op: opLe, rhs: -hi1 * lo2},
			linRow{coeffs: map[string]float64{w: 1, pk.b: -lo1, pk.a: -hi2}, op: opLe, rhs: -lo1 * hi2},
		)
	}

	return rows
}

func spatialSearch(ctx context.Context, plans []atomPlan, pairSet map[string]pairKey, bounds map[string][2]float64, depth int, budget *int) branchOutcome {
	select {
	case <-ctx.Done():
		return branchOutcome{timedOut: true}
	default:
	}
	*budget--
	if *budget <= 0 {
		return branchOutcome{unknown: true}
	}

	rows := assembleRows(plans, pairSet, bounds)
	vars := collectVars(rows)
	res := solveLinear(rows, vars)
	if !res.feasible {
		return branchOutcome{}
	}

	worstKey := ""
	worstViol := bilinearTol
	for key, pk := range pairSet {
		v1 := res.model[pk.a]
		v2 := res.model[pk.b]
		w := res.model[auxName(key)]
		viol := math.Abs(w - v1*v2)
		if viol > worstViol {
			worstViol = viol
			worstKey = key
		}
	}
	if worstKey == "" {
		return branchOutcome{sat: true, model: res.model}
	}
	if depth >= maxSearchDepth {
		return branchOutcome{unknown: true}
	}

	pk := pairSet[worstKey]
	va, vb := pk.a, pk.b
	loA, hiA := effectiveBounds(va, bounds)
	loB, hiB := effectiveBounds(vb, bounds)
	splitVar, lo, hi := va, loA, hiA
	if hiB-loB > hiA-loA {
		splitVar, lo, hi = vb, loB, hiB
	}
	mid := lo + (hi-lo)/2

	leftBounds := cloneBounds(bounds)
	leftBounds[splitVar] = [2]float64{lo, mid}
	if out := spatialSearch(ctx, plans, pairSet, leftBounds, depth+1, budget); out.sat || out.timedOut {
		return out
	} else if out.unknown {
		rightBounds := cloneBounds(bounds)
		rightBounds[splitVar] = [2]float64{mid, hi}
		right := spatialSearch(ctx, plans, pairSet, rightBounds, depth+1, budget)
		if right.sat || right.timedOut {
			return right
		}

		return branchOutcome{unknown: true}
	}

	rightBounds := cloneBounds(bounds)
	rightBounds[splitVar] = [2]float64{mid, hi}

	return spatialSearch(ctx, plans, pairSet, rightBounds, depth+1, budget)
}

func cloneBounds(b map[string][2]float64) map[string][2]float64 {
	out := make(map[string][2]float64, len(b)+1)
	for k, v := range b {
		out[k] = v
	}

	return out
}

func effectiveBounds(name string, override map[string][2]float64) (float64, float64) {
	if b, ok := override[name]; ok {
		return b[0], b[1]
	}

	return varBounds(name)
}

// canonOp reduces a normalized atom (linear·x + constant) op 0 into
// (op, rhs) so that linear·x op rhs. Strict inequalities are approximated by
// a small positive margin, a standard LP-feasibility tolerance.
func canonOp(op cmpOp, constant float64) (cmpOp, float64) {
	switch op {
	case opEq:
		return opEq, -constant
	case opLe:
		return opLe, -constant
	case opGe:
		return opGe, -constant
	case opGt:
		return opGe, -constant + strictGap
	default:
		return opEq, -constant
	}
}

func collectVars(rows []linRow) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		for name := range r.coeffs {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				out = append(out, name)
			}
		}
	}

	return out
}
