// SPDX-License-Identifier: MIT
// Package reachtree builds the bounded DFS unfolding of a core.VASS from its
// source state (spec.md §4.2). Every simple path and every simple cycle
// reachable from the source surfaces as a node in this tree: a node whose
// state equals an ancestor's state is a cycle; a node whose state equals the
// VASS's target and is not its own ancestor is a simple path.
//
// The tree is stored as a flat arena of nodes addressed by index, with a
// parent index rather than a parent pointer (spec.md §9, "Cyclic tree
// back-pointers... encode as indices into a flat node arena to avoid
// reference cycles and to allow cheap ancestor traversal").
package reachtree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vass2/core"
)

// ErrDepthExceeded indicates the hard depth guard (2*|E|*|Q|) was hit while
// unfolding the tree, which can only happen on a pathological or malformed
// input graph (spec.md §4.2).
var ErrDepthExceeded = errors.New("reachtree: depth guard exceeded")

const noParent = -1

// Node is one arena entry: its state, its parent's index (noParent for the
// root), and the indices of its children in discovery order.
type Node struct {
	State    string
	Parent   int
	Children []int
}

// Tree is the flat node arena rooted at the VASS's start state.
type Tree struct {
	Nodes []Node
}

// Root returns the arena index of the root node (always 0 for a non-empty tree).
func (t *Tree) Root() int { return 0 }

// Ancestors returns the chain of states from idx's parent up to the root,
// nearest-first (idx itself is not included).
func (t *Tree) Ancestors(idx int) []string {
	out := make([]string, 0, len(t.Nodes))
	for p := t.Nodes[idx].Parent; p != noParent; p = t.Nodes[p].Parent {
		out = append(out, t.Nodes[p].State)
	}

	return out
}

// IsAncestor reports whether state occurs among idx's own state or any of its ancestors.
func (t *Tree) IsAncestor(idx int, state string) bool {
	if t.Nodes[idx].State == state {
		return true
	}
	for _, p := range t.Ancestors(idx) {
		if p == state {
			return true
		}
	}

	return false
}

// Build unfolds the reachability tree from v.Start. A child is expanded
// further only if its state does not already appear on the root-to-child
// parent chain (spec.md §4.2); this bounds every root-to-leaf chain to a
// simple path and surfaces every simple cycle at least once as a
// child-equals-ancestor node (package paths deduplicates repeats).
func Build(v *core.VASS) (*Tree, error) {
	t := &Tree{Nodes: make([]Node, 0, 2*len(v.States()))}
	rootIdx := t.addNode(v.Start, noParent)

	maxDepth := 2 * v.EdgeCount() * len(v.States())
	if maxDepth <= 0 {
		maxDepth = 1 // degenerate single-state/no-edge graphs still get one level of headroom
	}

	if err := t.expand(v, rootIdx, 0, maxDepth); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tree) addNode(state string, parent int) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{State: state, Parent: parent})
	if parent != noParent {
		t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
	}

	return idx
}

func (t *Tree) expand(v *core.VASS, idx int, depth int, maxDepth int) error {
	if depth > maxDepth {
		return fmt.Errorf("reachtree: at depth %d (limit %d): %w", depth, maxDepth, ErrDepthExceeded)
	}

	state := t.Nodes[idx].State
	for _, succ := range v.Successors(state) {
		childIdx := t.addNode(succ, idx)

		// A child whose state recurs among its own ancestors closes a
		// cycle; do not descend further from it (spec.md §4.3: "After
		// emitting a cycle at a node, do not descend further from that
		// node").
		if t.IsAncestor(t.Nodes[childIdx].Parent, succ) {
			continue
		}
		if err := t.expand(v, childIdx, depth+1, maxDepth); err != nil {
			return err
		}
	}

	return nil
}
