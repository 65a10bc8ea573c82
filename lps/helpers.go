// SPDX-License-Identifier: MIT
package lps

import "github.com/katalvlaran/vass2/paths"

func containsState(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}

func indexOfState(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// insertBefore inserts v immediately before position idx, shifting the rest
// right, mirroring Python's list.insert(idx, v).
func insertBefore(s []string, idx int, v string) []string {
	out := make([]string, 0, len(s)+1)
	out = append(out, s[:idx]...)
	out = append(out, v)
	out = append(out, s[idx:]...)

	return out
}

// firstIntersectingState scans cycle in its own stored order (ignoring the
// closing duplicate of its first element) and returns the first state that
// also occurs in path. Deterministic by construction: unlike the Python
// original, which intersects two sets and takes an arbitrary element, this
// never depends on map/set iteration order (see SPEC_FULL.md Open Question 1).
func firstIntersectingState(cycle paths.Cycle, path []string) (string, bool) {
	for i := 0; i < len(cycle)-1; i++ {
		if containsState(path, cycle[i]) {
			return cycle[i], true
		}
	}

	return "", false
}

// cycleEqual reports whether two closed cycles hold identical state sequences.
func cycleEqual(a, b paths.Cycle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func containsCycle(cycles []paths.Cycle, c paths.Cycle) bool {
	for _, x := range cycles {
		if cycleEqual(x, c) {
			return true
		}
	}

	return false
}

func removeCycles(from, remove []paths.Cycle) []paths.Cycle {
	out := from[:0:0]
	for _, c := range from {
		if !containsCycle(remove, c) {
			out = append(out, c)
		}
	}

	return out
}
