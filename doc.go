// Package vass2 decides and witnesses reachability for a 2-dimensional
// Vector Addition System with States (2-VASS): given a finite directed
// graph whose edges carry integer or symbolic (x, y) counter updates, and a
// source/target configuration pair, it answers whether some run of the
// system connects them, and produces a concrete witness.
//
// The module is organized by pipeline stage, leaves first:
//
//	core/      — immutable 2-VASS graph model (states, transitions, load normalization)
//	reachtree/ — bounded DFS unfolding of the graph from its source state
//	paths/     — simple-path and simple-cycle enumeration over a reachability tree
//	lps/       — Linear Path Scheme compiler (anchoring, duplication, flattening)
//	etr/       — encodes one LPS plus a target counter pair as a theory formula
//	theory/    — the Solver type: a reference simplex/McCormick decision procedure
//	reach/     — the driver: JSON (de)serialization, Solve, Witness, Stats
//	config/    — viper-backed runtime configuration (timeouts, LPS cap)
//	vlog/      — logrus-backed structured logging
//	cmd/vass2/ — the cobra CLI (solve, lps, version)
//
// Data flow: JSON -> core.VASS -> reachtree.Tree -> (paths.Path, paths.Cycle)
// -> []lps.LPS -> theory.Solver (built by etr.Encode) -> reach.Witness.
//
// See SPEC_FULL.md for the full specification and DESIGN.md for the
// grounding ledger behind each package's design.
package vass2
