// SPDX-License-Identifier: MIT
package core

import "errors"

// ErrEmptyState indicates a state identifier stringified to the empty string.
var ErrEmptyState = errors.New("core: state identifier is empty")

// ErrUnknownState indicates an edge referenced a state never declared by any edge.
var ErrUnknownState = errors.New("core: unknown state")

// ErrNoSuchTransition indicates Transition(p, q) was called on a non-adjacent
// pair. Per the reachability-tree/LPS invariants this signals a bug in LPS
// construction, not a user-facing condition; callers on the internal fast
// path should use MustTransition and let it panic.
var ErrNoSuchTransition = errors.New("core: no such transition")

// ErrBadValue indicates an edge's x or y field was neither a JSON number nor a string.
var ErrBadValue = errors.New("core: edge value must be an integer or a symbolic name")

// ErrMissingStart indicates the VASS input lacked a usable "start" state.
var ErrMissingStart = errors.New("core: missing start state")

// ErrMissingEnd indicates the VASS input lacked a usable "end" state.
var ErrMissingEnd = errors.New("core: missing end state")
