// SPDX-License-Identifier: MIT
package lps

import (
	"sort"

	"github.com/katalvlaran/vass2/core"
	"github.com/katalvlaran/vass2/paths"
)

// Compile turns every discovered Path, together with the full pool of
// discovered Cycles, into one or more LPSes per path (spec.md §4.4), ported
// directly from VASS.py's linear_path_scheme.
//
// For each path, cycles are classified by whether a rotation of the cycle
// shares a state with the path ("basic", anchored directly) or not ("to be
// flattened", spliced into the path via an already-anchored cycle that
// intersects it). Anchoring two cycles to the same state duplicates that
// state in the path first, so each cycle gets its own anchor occurrence.
// Flattening repeats until no more to-flatten cycles can be spliced in,
// emitting one LPS snapshot after the initial anchoring pass and one more
// after each flattening step.
//
// The second return value counts cycles left stranded in to-flatten across
// every path once no placement progress can be made (SPEC_FULL.md Open
// Question 1: the total is logged once per Solve call); callers that care
// about the under-approximation this
// implies should surface it, e.g. as a warning log.
func Compile(v *core.VASS, allPaths []paths.Path, allCycles []paths.Cycle) ([]LPS, int) {
	var out []LPS
	abandoned := 0

	for _, p := range allPaths {
		workingPath := append([]string{}, []string(p)...)
		visited := make(map[string]bool)
		var toFlatten []paths.Cycle
		var basicCycles []paths.Cycle

		for _, origCycle := range allCycles {
			cyc := origCycle
			anchored := true

			if !containsState(workingPath, cyc[0]) {
				if inter, ok := firstIntersectingState(cyc, workingPath); ok {
					cyc = paths.RotateClosed(cyc, inter)
				} else {
					anchored = false
					if !containsCycle(toFlatten, origCycle) {
						toFlatten = append(toFlatten, origCycle)
					}
				}
			}

			if anchored {
				basicCycles = append(basicCycles, cyc)
				workingPath = anchorOrDuplicate(workingPath, cyc[0], visited)
			}
		}

		out = append(out, exportLPS(v, workingPath, basicCycles))

		for len(toFlatten) > 0 {
			cycleToFlatten, found := pickFlattenTarget(basicCycles, toFlatten)
			if !found {
				abandoned += len(toFlatten)

				break
			}

			anchorIdx := indexOfState(workingPath, cycleToFlatten[0])
			workingPath = spliceAfter(workingPath, anchorIdx, cycleToFlatten[1:])

			visited = make(map[string]bool)
			var toRemove []paths.Cycle
			for _, cyc0 := range toFlatten {
				inter, ok := firstIntersectingState(cyc0, workingPath)
				if !ok {
					continue
				}
				toRemove = append(toRemove, cyc0)
				cyc := paths.RotateClosed(cyc0, inter)
				basicCycles = append(basicCycles, cyc)
				workingPath = anchorOrDuplicate(workingPath, cyc[0], visited)
			}

			out = append(out, exportLPS(v, workingPath, basicCycles))
			toFlatten = removeCycles(toFlatten, toRemove)
		}
	}

	return out, abandoned
}

// anchorOrDuplicate records anchor as visited the first time a cycle claims
// it; every subsequent cycle claiming the same anchor instead duplicates
// that state in the path immediately before its first occurrence, giving the
// new cycle its own (0,0)-linked anchor occurrence.
func anchorOrDuplicate(path []string, anchor string, visited map[string]bool) []string {
	if !visited[anchor] {
		visited[anchor] = true

		return path
	}

	idx := indexOfState(path, anchor)

	return insertBefore(path, idx, anchor)
}

// spliceAfter inserts interior immediately after position idx.
func spliceAfter(path []string, idx int, interior []string) []string {
	out := make([]string, 0, len(path)+len(interior))
	out = append(out, path[:idx+1]...)
	out = append(out, interior...)
	out = append(out, path[idx+1:]...)

	return out
}

// pickFlattenTarget chooses, among the already-anchored basic cycles sorted
// longest-first (ties keep their basicCycles order, mirroring a stable
// Python sort), the first one that shares a state with the to-flatten pool —
// the cycle that will carry a to-flatten cycle into the path.
func pickFlattenTarget(basicCycles, toFlatten []paths.Cycle) (paths.Cycle, bool) {
	added := append([]paths.Cycle{}, basicCycles...)
	sort.SliceStable(added, func(i, j int) bool { return len(added[i]) > len(added[j]) })

	allStates := make(map[string]struct{})
	for _, c := range toFlatten {
		for _, s := range c {
			allStates[s] = struct{}{}
		}
	}

	for _, ac := range added {
		for _, s := range ac {
			if _, ok := allStates[s]; ok {
				return ac, true
			}
		}
	}

	return nil, false
}
