// SPDX-License-Identifier: MIT
package lps

import (
	"fmt"

	"github.com/katalvlaran/vass2/core"
	"github.com/katalvlaran/vass2/paths"
)

// labelUnique assigns each occurrence of a state a unique "state_k" label.
// Path occurrences and cycle interior occurrences share one per-state
// counter (pathCtr); a cycle's anchor (its first/last element, the same
// underlying state) gets its own counter (cycleCtr), so the k-th cycle
// anchored on a state reuses the label of that state's k-th path occurrence
// (the one anchor duplication made for it) — ported from VASS.py
// label_unique, which keeps exactly these two counters.
func labelUnique(path []string, cycles []paths.Cycle) ([]string, [][]string) {
	pathCtr := make(map[string]int)
	cycleCtr := make(map[string]int)

	labeledPath := make([]string, len(path))
	for i, s := range path {
		labeledPath[i] = fmt.Sprintf("%s_%d", s, pathCtr[s])
		pathCtr[s]++
	}

	labeledCycles := make([][]string, len(cycles))
	for ci, cyc := range cycles {
		labeled := make([]string, len(cyc))
		last := len(cyc) - 1
		for i, s := range cyc {
			if i == 0 || i == last {
				labeled[i] = fmt.Sprintf("%s_%d", s, cycleCtr[s])
				if i == last {
					cycleCtr[s]++
				}
			} else {
				labeled[i] = fmt.Sprintf("%s_%d", s, pathCtr[s])
				pathCtr[s]++
			}
		}
		labeledCycles[ci] = labeled
	}

	return labeledPath, labeledCycles
}

// buildTransitions renders a sequence of unique labels into Transitions,
// looking up each edge's weight by the pair of underlying states. Two
// consecutive distinct labels sharing an underlying state (an
// anchor-duplication seam) always carry a (0,0) weight rather than a graph
// lookup. A self-loop cycle labels both ends identically, so it keeps its
// real edge weight.
func buildTransitions(v *core.VASS, labels []string) []Transition {
	out := make([]Transition, 0, len(labels)-1)
	for i := 0; i < len(labels)-1; i++ {
		p, q := labels[i], labels[i+1]
		origP, origQ := paths.Underlying(p), paths.Underlying(q)

		var x, y core.Value
		if origP == origQ && p != q {
			x, y = core.ConstValue(0), core.ConstValue(0)
		} else {
			x, y = v.MustTransition(origP, origQ)
		}

		out = append(out, Transition{From: p, X: x, Y: y, To: q})
	}

	return out
}

// exportLPS labels path and cycles and renders both into an LPS, naming
// cycles "c1", "c2", ... in the order they were accumulated.
func exportLPS(v *core.VASS, path []string, cycles []paths.Cycle) LPS {
	labeledPath, labeledCycles := labelUnique(path, cycles)

	out := LPS{
		Path:   buildTransitions(v, labeledPath),
		Cycles: make(map[string][]Transition, len(labeledCycles)),
	}
	for i, lc := range labeledCycles {
		name := fmt.Sprintf("c%d", i+1)
		out.Cycles[name] = buildTransitions(v, lc)
	}

	return out
}
