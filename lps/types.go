// SPDX-License-Identifier: MIT
// Package lps compiles (path, cycle) pairs produced by package paths into
// Linear Path Schemes: a simple path with simple cycles anchored to its
// states, every cycle reachable via either direct anchoring or flattening
// (spec.md §4.4). This is the densest component of the system, ported
// directly from the original Python reference's
// VASS.linear_path_scheme/label_unique/export_lps.
package lps

import "github.com/katalvlaran/vass2/core"

// Transition is one labeled edge within an emitted LPS: From/To are unique
// per-occurrence labels ("state_k"), not bare state identifiers — see
// paths.Underlying to recover the underlying state from a label.
type Transition struct {
	From string
	X    core.Value
	Y    core.Value
	To   string
}

// LPS is one Linear Path Scheme: a labeled path plus a set of labeled
// cycles, each anchored to some label occurring in Path (spec.md §3's
// Invariants, §8's "Anchor closure").
type LPS struct {
	Path   []Transition
	Cycles map[string][]Transition
}
