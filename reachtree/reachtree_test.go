package reachtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vass2/core"
	"github.com/katalvlaran/vass2/reachtree"
)

func mustVASS(t *testing.T, start, end string, edges ...core.RawEdge) *core.VASS {
	t.Helper()
	v, err := core.Load(core.RawVASS{Start: start, End: end, Edges: edges})
	require.NoError(t, err)

	return v
}

func TestBuild_SelfLoopSurfacesAsCycle(t *testing.T) {
	v := mustVASS(t, "q0", "q2",
		core.RawEdge{P: "q0", Q: "q1", X: 1.0, Y: 0.0},
		core.RawEdge{P: "q1", Q: "q1", X: 0.0, Y: 1.0},
		core.RawEdge{P: "q1", Q: "q2", X: 0.0, Y: 0.0},
	)

	tr, err := reachtree.Build(v)
	require.NoError(t, err)

	// root -> q1 -> {q1 (cycle, no descend), q2 (target, stop since no more edges)}
	root := tr.Nodes[tr.Root()]
	require.Equal(t, "q0", root.State)
	require.Len(t, root.Children, 1)

	q1 := tr.Nodes[root.Children[0]]
	assert.Equal(t, "q1", q1.State)
	assert.Len(t, q1.Children, 2)

	var sawLoop, sawTarget bool
	for _, c := range q1.Children {
		n := tr.Nodes[c]
		if n.State == "q1" {
			sawLoop = true
			assert.Empty(t, n.Children, "cycle node must not be expanded further")
		}
		if n.State == "q2" {
			sawTarget = true
		}
	}
	assert.True(t, sawLoop)
	assert.True(t, sawTarget)
}

func TestBuild_NoEdgesSingleState(t *testing.T) {
	v := mustVASS(t, "only", "only")
	tr, err := reachtree.Build(v)
	require.NoError(t, err)
	require.Len(t, tr.Nodes, 1)
}
