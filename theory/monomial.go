// SPDX-License-Identifier: MIT
package theory

// monomial is coef * product(vars); vars has 0 (constant), 1 (linear), or 2
// (bilinear) entries — our formulas never build higher-degree products.
type monomial struct {
	coef float64
	vars []string
}

func negateMonos(ms []monomial) []monomial {
	out := make([]monomial, len(ms))
	for i, m := range ms {
		out[i] = monomial{coef: -m.coef, vars: m.vars}
	}

	return out
}

// linearize expands e into a sum of monomials.
func linearize(e *Expr) []monomial {
	switch e.kind {
	case kindConst:
		return []monomial{{coef: e.value}}
	case kindVar:
		return []monomial{{coef: 1, vars: []string{e.name}}}
	case kindNeg:
		return negateMonos(linearize(e.left))
	case kindAdd:
		return append(linearize(e.left), linearize(e.right)...)
	case kindSub:
		return append(linearize(e.left), negateMonos(linearize(e.right))...)
	case kindMul:
		left := linearize(e.left)
		right := linearize(e.right)
		out := make([]monomial, 0, len(left)*len(right))
		for _, a := range left {
			for _, b := range right {
				out = append(out, monomial{coef: a.coef * b.coef, vars: append(append([]string{}, a.vars...), b.vars...)})
			}
		}

		return out
	default:
		return nil
	}
}

// normalizedAtom is atom.lhs - atom.rhs, folded into a constant term, a
// linear coefficient map, and any bilinear (two-variable) monomials.
type normalizedAtom struct {
	op       cmpOp
	constant float64
	linear   map[string]float64
	bilinear []monomial // two-variable monomials, coef already merged by canonical key
}

func normalizeAtom(a Atom) normalizedAtom {
	ms := append(linearize(a.lhs), negateMonos(linearize(a.rhs))...)

	n := normalizedAtom{op: a.op, linear: make(map[string]float64)}
	bilinear := make(map[string]monomial)
	for _, m := range ms {
		switch len(m.vars) {
		case 0:
			n.constant += m.coef
		case 1:
			n.linear[m.vars[0]] += m.coef
		case 2:
			key := bilinearKey(m.vars[0], m.vars[1])
			bm := bilinear[key]
			bm.coef += m.coef
			bm.vars = canonicalPair(m.vars[0], m.vars[1])
			bilinear[key] = bm
		}
	}
	for _, bm := range bilinear {
		if bm.coef != 0 {
			n.bilinear = append(n.bilinear, bm)
		}
	}

	return n
}

func canonicalPair(a, b string) []string {
	if a <= b {
		return []string{a, b}
	}

	return []string{b, a}
}

func bilinearKey(a, b string) string {
	p := canonicalPair(a, b)

	return p[0] + "\x00" + p[1]
}
