// SPDX-License-Identifier: MIT
package core

import "fmt"

// States returns the sorted list of all state identifiers, including any
// synthetic states minted during edge-splitting normalization.
// Complexity: O(1) (precomputed at Load time).
func (v *VASS) States() []string { return v.states }

// HasState reports whether id names a known state.
func (v *VASS) HasState(id string) bool {
	for _, s := range v.states {
		if s == id {
			return true
		}
	}

	return false
}

// Adjacency returns, for each state with at least one outgoing edge, the
// sorted list of successor states. The reachability tree (spec.md §4.2)
// unfolds exactly along this mapping.
func (v *VASS) Adjacency() map[string][]string { return v.adjacency }

// Successors returns the sorted successor list of id, or nil if id has none.
func (v *VASS) Successors(id string) []string { return v.adjacency[id] }

// Transition returns the (x, y) update of the unique edge p -> q.
// Returns ErrNoSuchTransition if no such edge exists.
func (v *VASS) Transition(p, q string) (Value, Value, error) {
	e, ok := v.edgesByEndpoints[[2]string{p, q}]
	if !ok {
		return Value{}, Value{}, fmt.Errorf("core: transition(%s,%s): %w", p, q, ErrNoSuchTransition)
	}

	return e.X, e.Y, nil
}

// MustTransition is the internal fast path used by the LPS compiler, which
// by construction only ever asks for edges that exist on the reachability
// tree it walked. A miss here is a bug in LPS construction, not a user-facing
// condition (spec.md §7: "Fatal panic; tests must hit zero occurrences").
func (v *VASS) MustTransition(p, q string) (Value, Value) {
	x, y, err := v.Transition(p, q)
	if err != nil {
		panic(err)
	}

	return x, y
}

// EdgeCount returns the number of normalized edges (including synthetic split edges).
func (v *VASS) EdgeCount() int { return len(v.edgesByEndpoints) }
