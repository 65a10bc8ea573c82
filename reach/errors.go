// SPDX-License-Identifier: MIT
// Package reach is the top-level driver: given a core.VASS, it builds the
// reachability tree, enumerates paths and cycles, compiles every Linear Path
// Scheme, and tries each against the ETR encoder/solver until one is
// satisfiable or all are exhausted (spec.md §4, "Solve").
package reach

import "errors"

// ErrMalformedInput is returned when the input VASS JSON fails validation
// (spec.md §7, "Malformed input").
var ErrMalformedInput = errors.New("reach: malformed input")

// ErrUnreachable is returned when every compiled LPS's formula is unsat —
// the target counter pair is provably unreachable from the start state
// (spec.md §7, "Unreachable").
var ErrUnreachable = errors.New("reach: target is unreachable")

// ErrLPSCapReached is returned when the number of compiled LPSes exceeds
// Config.MaxLPS before any of them could be tried — SPEC_FULL.md Open
// Question 2's resolution: a configurable safety cap on search effort rather
// than an unbounded enumeration.
var ErrLPSCapReached = errors.New("reach: LPS cap reached before a verdict")
