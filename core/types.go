package core

import "fmt"

// Symbol names a free real variable carried by a symbolic edge weight.
// A leading '-' in the JSON source strips to Name and sets Negated; the
// ETR encoder links Negated/non-Negated occurrences of the same Name with
// `var(name) + var(-name) == 0` (spec.md §4.5, "Symbolic negation").
type Symbol struct {
	Name    string
	Negated bool
}

// String renders the symbol the way it was written in source form, e.g. "X" or "-X".
func (s Symbol) String() string {
	if s.Negated {
		return "-" + s.Name
	}

	return s.Name
}

// Value is one edge's x or y field: either a fixed integer constant, or a
// named free real variable (see Symbol). Exactly one of the two is active,
// discriminated by IsSymbol.
type Value struct {
	IsSymbol bool
	Const    int64
	Sym      Symbol
}

// ConstValue builds a constant Value.
func ConstValue(n int64) Value { return Value{Const: n} }

// SymbolValue builds a symbolic Value from a name already split into base/negated form.
func SymbolValue(name string, negated bool) Value {
	return Value{IsSymbol: true, Sym: Symbol{Name: name, Negated: negated}}
}

// String renders the value for diagnostics and LPS round-tripping.
func (v Value) String() string {
	if v.IsSymbol {
		return v.Sym.String()
	}

	return fmt.Sprintf("%d", v.Const)
}

// Edge is a stored transition plus a stable identifier, mirroring lvlath's
// core.Edge shape (ID, From, To, payload) but carrying Value pairs instead
// of a single integer weight.
type Edge struct {
	ID   string
	From string
	To   string
	X    Value
	Y    Value
}
