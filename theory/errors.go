// SPDX-License-Identifier: MIT
package theory

import "errors"

// ErrTimeout is returned when Check's context is cancelled or its deadline
// elapses before a verdict is reached (spec.md §7, "Solver-timeout").
var ErrTimeout = errors.New("theory: solver timed out")

// ErrUnknown is returned when the reference decision procedure exhausts its
// branch-and-bound budget on a bilinear formula without reaching a verdict,
// or when the formula expands to more than maxDNFBranches DNF branches —
// a real SMT backend would instead report sat/unsat conclusively
// (spec.md §7, "Solver-unknown"; SPEC_FULL.md §1).
var ErrUnknown = errors.New("theory: solver could not decide (bilinear search or DNF expansion limit reached)")
