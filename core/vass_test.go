package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vass2/core"
)

func edge(p string, x int64, y int64, q string) core.RawEdge {
	return core.RawEdge{P: p, Q: q, X: float64(x), Y: float64(y)}
}

func TestLoad_SplitsParallelEdges(t *testing.T) {
	raw := core.RawVASS{
		Start: "0", End: "2",
		Edges: []core.RawEdge{
			edge("0", 1, 1, "1"),
			edge("0", 2, 2, "1"), // parallel: 0->1 already exists
			edge("1", 0, 0, "2"),
		},
	}

	v, err := core.Load(raw)
	require.NoError(t, err)

	// Single-edge invariant: exactly one stored edge per ordered pair that
	// actually appears, including the synthetic split.
	_, _, err = v.Transition("0", "1")
	require.NoError(t, err)

	// 0 keeps its original edge to 1 and gains the split edge to the
	// synthetic state; sorted, the synthetic "0-0" comes first.
	succ0 := v.Successors("0")
	require.Len(t, succ0, 2)
	mid := succ0[0]
	assert.NotEqual(t, "1", mid, "parallel edge must be split through a synthetic state")

	x, y, err := v.Transition(mid, "1")
	require.NoError(t, err)
	assert.Equal(t, core.ConstValue(2), x)
	assert.Equal(t, core.ConstValue(2), y)

	x0, y0, err := v.Transition("0", mid)
	require.NoError(t, err)
	assert.Equal(t, core.ConstValue(0), x0)
	assert.Equal(t, core.ConstValue(0), y0)
}

func TestLoad_SymbolicValues(t *testing.T) {
	raw := core.RawVASS{
		Start: "0", End: "1",
		Edges: []core.RawEdge{
			{P: "0", Q: "1", X: "X", Y: -5.0},
		},
	}
	v, err := core.Load(raw)
	require.NoError(t, err)

	x, y, err := v.Transition("0", "1")
	require.NoError(t, err)
	assert.True(t, x.IsSymbol)
	assert.Equal(t, "X", x.Sym.Name)
	assert.False(t, x.Sym.Negated)
	assert.Equal(t, core.ConstValue(-5), y)
}

func TestVASS_Transition_NoSuchTransition(t *testing.T) {
	v, err := core.Load(core.RawVASS{Start: "0", End: "1", Edges: []core.RawEdge{edge("0", 1, 1, "1")}})
	require.NoError(t, err)

	_, _, err = v.Transition("1", "0")
	assert.ErrorIs(t, err, core.ErrNoSuchTransition)

	assert.Panics(t, func() { v.MustTransition("1", "0") })
}

func TestLoad_MissingStartEnd(t *testing.T) {
	_, err := core.Load(core.RawVASS{Edges: []core.RawEdge{edge("0", 1, 1, "1")}})
	assert.ErrorIs(t, err, core.ErrMissingStart)
}
