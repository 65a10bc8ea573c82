// SPDX-License-Identifier: MIT
package core

import (
	"fmt"
	"sort"
	"strings"
)

// VASS is the immutable 2-dimensional Vector Addition System with States
// produced by Load. All states are normalized to strings; edges satisfy the
// single-edge-per-ordered-pair invariant (spec.md §3/§4.1) after construction.
//
// VASS is read-only after Load: there is no public mutator, so it needs no
// internal locking — every reachability run over the same VASS is
// independent and side-effect free (spec.md §5).
type VASS struct {
	Start, End             string
	StartX, StartY         int64
	EndX, EndY             int64
	states                 []string            // sorted, deduplicated
	edgesByEndpoints       map[[2]string]*Edge // (from,to) -> edge; enforces single-edge invariant
	adjacency              map[string][]string // from -> sorted successor states
	syntheticStateCounters map[string]int      // "p" -> next "p-k" suffix to mint
}

// RawEdge mirrors one element of the VASS JSON "edges" array (spec.md §6):
// p/q are arbitrary JSON scalars (stringified on load), x/y are int or a
// symbolic name.
type RawEdge struct {
	P interface{} `json:"p"`
	Q interface{} `json:"q"`
	X interface{} `json:"x"`
	Y interface{} `json:"y"`
}

// RawVASS mirrors the top-level VASS JSON object of spec.md §6.
type RawVASS struct {
	Start   interface{} `json:"start"`
	End     interface{} `json:"end"`
	StartX  int64       `json:"start_x"`
	StartY  int64       `json:"start_y"`
	EndX    int64       `json:"end_x"`
	EndY    int64       `json:"end_y"`
	Edges   []RawEdge   `json:"edges"`
}

// stringifyScalar converts a decoded JSON scalar (string, float64, bool, nil)
// into the canonical state-identifier string. Numbers are rendered without a
// trailing ".0" when they are integral, matching Python's str(int(...)).
func stringifyScalar(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), nil
		}

		return fmt.Sprintf("%g", t), nil
	case bool:
		return fmt.Sprintf("%t", t), nil
	case nil:
		return "", ErrEmptyState
	default:
		return "", fmt.Errorf("core: unsupported scalar type %T: %w", v, ErrBadValue)
	}
}

// ParseValue converts a decoded JSON x/y field into a Value: a float64 that
// is integral becomes a constant, a string becomes a (possibly negated)
// symbolic name (spec.md §6: "names starting with '-' denote negation").
// Exported so reach's standalone LPS loader (spec.md §6, "LPS input (JSON)")
// can parse the same x/y union without duplicating the rule.
func ParseValue(v interface{}) (Value, error) { return parseValue(v) }

func parseValue(v interface{}) (Value, error) {
	switch t := v.(type) {
	case float64:
		return ConstValue(int64(t)), nil
	case string:
		negated := strings.HasPrefix(t, "-")
		name := strings.TrimPrefix(t, "-")
		if name == "" {
			return Value{}, fmt.Errorf("core: empty symbolic name: %w", ErrBadValue)
		}

		return SymbolValue(name, negated), nil
	default:
		return Value{}, fmt.Errorf("core: value %v: %w", v, ErrBadValue)
	}
}

// Load builds a normalized VASS from raw JSON-decoded input.
//
// Normalization (spec.md §4.1, ported from the original Python
// VASS.__init__): edges are consumed in input order; the first edge seen
// between a given ordered (p, q) pair is kept as-is, every subsequent
// parallel edge is split by inserting a fresh synthetic state "p-k"
// (k monotonically increasing per p) and replacing
// p --(x,y)--> q with p --(0,0)--> p-k --(x,y)--> q.
//
// Complexity: O(E log E), where E = len(raw.Edges): map lookups per edge,
// then sorting the state list and every successor list.
func Load(raw RawVASS) (*VASS, error) {
	start, err := stringifyScalar(raw.Start)
	if err != nil || start == "" {
		return nil, ErrMissingStart
	}
	end, err := stringifyScalar(raw.End)
	if err != nil || end == "" {
		return nil, ErrMissingEnd
	}

	v := &VASS{
		Start:                  start,
		End:                    end,
		StartX:                 raw.StartX,
		StartY:                 raw.StartY,
		EndX:                   raw.EndX,
		EndY:                   raw.EndY,
		edgesByEndpoints:       make(map[[2]string]*Edge, len(raw.Edges)),
		adjacency:              make(map[string][]string),
		syntheticStateCounters: make(map[string]int),
	}

	stateSet := make(map[string]struct{})
	stateSet[start] = struct{}{}
	stateSet[end] = struct{}{}

	nextEdgeID := 0
	addEdge := func(from string, x, y Value, to string) {
		nextEdgeID++
		e := &Edge{ID: fmt.Sprintf("e%d", nextEdgeID), From: from, To: to, X: x, Y: y}
		v.edgesByEndpoints[[2]string{from, to}] = e
		v.adjacency[from] = append(v.adjacency[from], to)
		stateSet[from] = struct{}{}
		stateSet[to] = struct{}{}
	}

	for _, raw := range raw.Edges {
		p, err := stringifyScalar(raw.P)
		if err != nil {
			return nil, fmt.Errorf("core: edge.p: %w", err)
		}
		q, err := stringifyScalar(raw.Q)
		if err != nil {
			return nil, fmt.Errorf("core: edge.q: %w", err)
		}
		x, err := parseValue(raw.X)
		if err != nil {
			return nil, fmt.Errorf("core: edge(%s,%s).x: %w", p, q, err)
		}
		y, err := parseValue(raw.Y)
		if err != nil {
			return nil, fmt.Errorf("core: edge(%s,%s).y: %w", p, q, err)
		}

		if _, exists := v.edgesByEndpoints[[2]string{p, q}]; exists {
			k := v.syntheticStateCounters[p]
			v.syntheticStateCounters[p] = k + 1
			mid := fmt.Sprintf("%s-%d", p, k)
			addEdge(p, ConstValue(0), ConstValue(0), mid)
			addEdge(mid, x, y, q)
		} else {
			addEdge(p, x, y, q)
		}
	}

	v.states = make([]string, 0, len(stateSet))
	for s := range stateSet {
		v.states = append(v.states, s)
	}
	sort.Strings(v.states)

	for from := range v.adjacency {
		succ := v.adjacency[from]
		sort.Strings(succ)
		v.adjacency[from] = succ
	}

	return v, nil
}
