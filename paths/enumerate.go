// SPDX-License-Identifier: MIT
// Package paths enumerates every simple path from source to target and every
// simple cycle reachable from the source (spec.md §4.3), by walking a
// reachtree.Tree that was already built so that each root-to-node chain is
// simple and each node whose state repeats an ancestor is a closed cycle.
//
// Complexity: O(V+E) to walk the tree once, plus O(C) rotation-canonical
// work per discovered cycle (C = number of cycles, each O(L) via Booth's
// algorithm — see rotutil.go).
package paths

import (
	"github.com/katalvlaran/vass2/reachtree"
)

// Path is a simple path of states from the VASS's start to its end, no repeats.
type Path []string

// Cycle is a simple cycle in CLOSED form: Cycle[0] == Cycle[len(Cycle)-1],
// and no other state repeats.
type Cycle []string

// Enumerate walks tr in pre-order (the arena is already stored in the order
// it was discovered, which is pre-order — see reachtree.Build) and records:
//
//   - a Path whenever a node's state equals end and end does not occur among
//     that node's own ancestors (spec.md §4.3, "the path is simple");
//   - a Cycle whenever a node's state recurs among its ancestors, deduplicated
//     up to rotation (spec.md §4.3, "Deduplicate cycles up to rotation").
func Enumerate(tr *reachtree.Tree, end string) ([]Path, []Cycle) {
	var resultPaths []Path
	var resultCycles []Cycle
	seenCycleSig := make(map[string]struct{})

	for idx := 1; idx < len(tr.Nodes); idx++ { // idx 0 is the root; it starts no path/cycle of its own
		state := tr.Nodes[idx].State
		ancestors := tr.Ancestors(idx) // nearest-first: [parent, grandparent, ..., root]

		if k := indexOf(ancestors, state); k >= 0 {
			recordCycle(state, ancestors[:k+1], seenCycleSig, &resultCycles)

			continue
		}

		if state == end {
			resultPaths = append(resultPaths, buildPath(ancestors, state))
		}
	}

	return resultPaths, resultCycles
}

// buildPath renders the root-to-node ancestor chain (nearest-first) plus the
// node's own state into start-to-end order.
func buildPath(ancestorsNearestFirst []string, state string) Path {
	p := make(Path, 0, len(ancestorsNearestFirst)+1)
	for i := len(ancestorsNearestFirst) - 1; i >= 0; i-- {
		p = append(p, ancestorsNearestFirst[i])
	}
	p = append(p, state)

	return p
}

// recordCycle closes the cycle segment (state, then the ancestor chain down
// to and including the first ancestor equal to state, reversed into
// root-ward order, then state again), canonicalizes it, and appends it to
// cycles if no rotation of it has been seen before.
func recordCycle(state string, segmentNearestFirst []string, seen map[string]struct{}, cycles *[]Cycle) {
	rootWard := reverseStates(segmentNearestFirst) // open form: [state, ..., nearest parent]

	canon := canonicalRotation(rootWard)
	sig := joinSig(canon)
	if _, dup := seen[sig]; dup {
		return
	}
	seen[sig] = struct{}{}

	closed := append(append(Cycle{}, canon...), canon[0])
	*cycles = append(*cycles, closed)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// RotateClosed rotates a CLOSED cycle (first == last) so that start becomes
// its new first and last element, following the original reference
// semantics exactly (spec.md §4.4 step 1, ported from VASS.py rotate_cycle):
// if start is not present, or already leads the cycle, the cycle is
// returned unchanged.
func RotateClosed(cycle Cycle, start string) Cycle {
	idx := indexOf(cycle, start)
	if idx <= 0 {
		return cycle
	}

	out := make(Cycle, 0, len(cycle))
	out = append(out, cycle[idx:]...)
	out = append(out, cycle[1:idx]...)
	out = append(out, start)

	return out
}

// Underlying strips a label's "_k" uniquing suffix, per spec.md §4.4's
// label-stripping convention `label[:label.rfind('_')]`.
func Underlying(label string) string {
	for i := len(label) - 1; i >= 0; i-- {
		if label[i] == '_' {
			return label[:i]
		}
	}

	return label
}
