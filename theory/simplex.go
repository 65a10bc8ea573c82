// SPDX-License-Identifier: MIT
package theory

import (
	"math"

	"github.com/katalvlaran/vass2/matrix"
)

// bigInf stands in for "unbounded" in variable bound tracking; large enough
// that no 2-VASS witness constant plausibly exceeds it, small enough to keep
// the tableau numerically sane.
const bigInf = 1e7

const feasEps = 1e-12

// linRow is one linear constraint over named variables: sum(coef*var) op rhs.
type linRow struct {
	coeffs map[string]float64
	op     cmpOp
	rhs    float64
}

// simplexResult is the outcome of a phase-1 feasibility simplex run.
type simplexResult struct {
	feasible bool
	model    map[string]float64
}

// solveLinear decides feasibility of a conjunction of linear constraints
// over possibly-free real variables, via a two-phase (phase-1 only, since we
// only need feasibility, not optimization) simplex built on a
// matrix.Dense tableau (adapted from lvlath's linear-algebra package,
// repurposed here as the simplex's working storage).
//
// Free variables are split into a non-negative positive/negative pair
// (v = v+ - v-); inequalities gain slack or surplus variables; each equality
// (and each converted inequality) with a non-unit starting basic column gets
// an artificial variable. Feasibility holds iff the minimized sum of
// artificial variables is (numerically) zero.
func solveLinear(rows []linRow, vars []string) simplexResult {
	if len(rows) == 0 {
		model := make(map[string]float64, len(vars))
		for _, v := range vars {
			model[v] = 0
		}

		return simplexResult{feasible: true, model: model}
	}

	// Column plan: for every named variable, a (pos, neg) pair of >=0 columns.
	type col struct{ pos, neg int }
	cols := make(map[string]col, len(vars))
	colNames := make([]string, 0, 2*len(vars))
	addVar := func(name string) col {
		if c, ok := cols[name]; ok {
			return c
		}
		c := col{pos: len(colNames), neg: len(colNames) + 1}
		colNames = append(colNames, name+"+", name+"-")
		cols[name] = c

		return c
	}
	for _, v := range vars {
		addVar(v)
	}
	for _, r := range rows {
		for name := range r.coeffs {
			addVar(name)
		}
	}

	numStructural := len(colNames)

	// Normalize every row to an equality with rhs >= 0, tracking how many
	// slack/surplus/artificial columns it needs.
	type normRow struct {
		coeffs  map[string]float64 // over colNames (struct cols) only
		rhs     float64
		slack   int // +1 appended slack column index, or -1
		surplus int // +1 appended surplus column index (coefficient -1), or -1
		needsArt bool
	}
	var norm []normRow
	for _, r := range rows {
		rhs := r.rhs
		coeffs := make(map[string]float64, len(r.coeffs))
		for name, c := range r.coeffs {
			pc := cols[name]
			coeffs[colNames[pc.pos]] = c
			coeffs[colNames[pc.neg]] = -c
		}
		op := r.op
		if rhs < 0 {
			rhs = -rhs
			for k, v := range coeffs {
				coeffs[k] = -v
			}
			switch op {
			case opLe:
				op = opGe
			case opGe:
				op = opLe
			}
		}

		nr := normRow{coeffs: coeffs, rhs: rhs, slack: -1, surplus: -1}
		switch op {
		case opEq:
			nr.needsArt = true
		case opLe:
			nr.slack = numStructural
			colNames = append(colNames, "_slk")
			numStructural++
		case opGe:
			nr.surplus = numStructural
			colNames = append(colNames, "_srp")
			numStructural++
			nr.needsArt = true
		}
		norm = append(norm, nr)
	}

	numArt := 0
	artCol := make([]int, len(norm))
	for i, nr := range norm {
		artCol[i] = -1
		if nr.needsArt {
			artCol[i] = numStructural + numArt
			numArt++
		}
	}

	totalCols := numStructural + numArt
	m := len(norm)
	// tableau has m constraint rows + 1 objective row, totalCols + 1 (rhs) columns.
	tab, err := matrix.NewDense(m+1, totalCols+1)
	if err != nil {
		return simplexResult{feasible: false}
	}

	basis := make([]int, m)
	for i, nr := range norm {
		for name, c := range nr.coeffs {
			j := indexOfName(colNames, name)
			_ = tab.Set(i, j, c)
		}
		if nr.slack >= 0 {
			_ = tab.Set(i, nr.slack, 1)
			basis[i] = nr.slack
		}
		if nr.surplus >= 0 {
			_ = tab.Set(i, nr.surplus, -1)
		}
		_ = tab.Set(i, totalCols, nr.rhs)
		if artCol[i] >= 0 {
			_ = tab.Set(i, artCol[i], 1)
			basis[i] = artCol[i]
		}
	}

	// Phase-1 objective: minimize sum of artificials, expressed as a
	// maximization of their negative, row-reduced so basic artificial
	// columns read zero in the objective row.
	for i := 0; i < m; i++ {
		if artCol[i] < 0 {
			continue
		}
		cost, _ := tab.At(m, artCol[i])
		_ = tab.Set(m, artCol[i], cost+1)
		for j := 0; j <= totalCols; j++ {
			v, _ := tab.At(i, j)
			cur, _ := tab.At(m, j)
			_ = tab.Set(m, j, cur-v)
		}
	}

	pivotSimplex(tab, basis, m, totalCols)

	obj, _ := tab.At(m, totalCols)
	if math.Abs(obj) > 1e-6 {
		return simplexResult{feasible: false}
	}

	values := make([]float64, totalCols)
	for i := 0; i < m; i++ {
		rhs, _ := tab.At(i, totalCols)
		values[basis[i]] = rhs
	}

	model := make(map[string]float64, len(vars))
	for _, v := range vars {
		c := cols[v]
		model[v] = values[c.pos] - values[c.neg]
	}

	return simplexResult{feasible: true, model: model}
}

func indexOfName(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}

	return -1
}

// pivotSimplex runs Bland's-rule simplex pivoting to drive the objective row
// non-negative across structural columns, i.e. to optimality, guarding
// against cycling deterministically rather than via a perturbation scheme.
func pivotSimplex(tab *matrix.Dense, basis []int, m, totalCols int) {
	const maxIters = 5000
	for iter := 0; iter < maxIters; iter++ {
		// Bland's rule: smallest-index column with negative objective coefficient.
		pivotCol := -1
		for j := 0; j < totalCols; j++ {
			v, _ := tab.At(m, j)
			if v < -feasEps {
				pivotCol = j
				break
			}
		}
		if pivotCol == -1 {
			return // optimal
		}

		pivotRow := -1
		best := math.Inf(1)
		for i := 0; i < m; i++ {
			a, _ := tab.At(i, pivotCol)
			if a <= feasEps {
				continue
			}
			rhs, _ := tab.At(i, totalCols)
			ratio := rhs / a
			if ratio < best-feasEps || (ratio < best+feasEps && (pivotRow == -1 || basis[i] < basis[pivotRow])) {
				best = ratio
				pivotRow = i
			}
		}
		if pivotRow == -1 {
			return // unbounded; feasibility callers only care about the objective value reached so far
		}

		pv, _ := tab.At(pivotRow, pivotCol)
		for j := 0; j <= totalCols; j++ {
			v, _ := tab.At(pivotRow, j)
			_ = tab.Set(pivotRow, j, v/pv)
		}
		for i := 0; i <= m; i++ {
			if i == pivotRow {
				continue
			}
			factor, _ := tab.At(i, pivotCol)
			if factor == 0 {
				continue
			}
			for j := 0; j <= totalCols; j++ {
				pr, _ := tab.At(pivotRow, j)
				v, _ := tab.At(i, j)
				_ = tab.Set(i, j, v-factor*pr)
			}
		}
		basis[pivotRow] = pivotCol
	}
}
