// SPDX-License-Identifier: MIT
package reach

import "github.com/katalvlaran/vass2/lps"

// Witness is a satisfying assignment for one LPS: which LPS it was, and the
// solver's model (alpha weights and per-cycle effect sums), enough to
// reconstruct the concrete run (spec.md §3, "Witness").
type Witness struct {
	LPS   lps.LPS
	Model map[string]float64
	RunID string
}

// Stats summarizes one Solve call's search effort (spec.md §8, used by
// tests and surfaced to the CLI's structured log output).
type Stats struct {
	PathsFound    int
	CyclesFound   int
	LPSGenerated  int
	LPSDischarged int
}
