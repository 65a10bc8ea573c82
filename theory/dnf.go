// SPDX-License-Identifier: MIT
package theory

// dnf expands a BoolExpr into disjunctive normal form: a list of branches,
// each branch a conjunction (AND) of Atoms.
func dnf(b BoolExpr) [][]Atom {
	switch b.kind {
	case boolAtom:
		return [][]Atom{{b.atom}}
	case boolAnd:
		branches := [][]Atom{{}}
		for _, t := range b.terms {
			branches = crossJoin(branches, dnf(t))
		}

		return branches
	case boolOr:
		var out [][]Atom
		for _, t := range b.terms {
			out = append(out, dnf(t)...)
		}

		return out
	case boolNot:
		return dnf(pushNegation(b.terms[0]))
	default:
		return nil
	}
}

func crossJoin(a, b [][]Atom) [][]Atom {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([][]Atom, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			merged := make([]Atom, 0, len(ca)+len(cb))
			merged = append(merged, ca...)
			merged = append(merged, cb...)
			out = append(out, merged)
		}
	}

	return out
}

// pushNegation applies De Morgan's laws and comparison-negation to move a Not
// down to its Atom leaves, given only Eq/Le/Ge/Gt comparisons are ever built.
func pushNegation(b BoolExpr) BoolExpr {
	switch b.kind {
	case boolAtom:
		return negateAtom(b.atom)
	case boolAnd:
		negated := make([]BoolExpr, len(b.terms))
		for i, t := range b.terms {
			negated[i] = Not(t)
		}

		return Or(negated...)
	case boolOr:
		negated := make([]BoolExpr, len(b.terms))
		for i, t := range b.terms {
			negated[i] = Not(t)
		}

		return And(negated...)
	case boolNot:
		return b.terms[0]
	default:
		return b
	}
}

func negateAtom(a Atom) BoolExpr {
	switch a.op {
	case opEq:
		return Or(Lit(Gt(a.lhs, a.rhs)), Lit(Gt(a.rhs, a.lhs)))
	case opLe:
		return Lit(Gt(a.lhs, a.rhs))
	case opGe:
		return Lit(Gt(a.rhs, a.lhs))
	case opGt:
		return Lit(Le(a.lhs, a.rhs))
	default:
		return Lit(a)
	}
}
