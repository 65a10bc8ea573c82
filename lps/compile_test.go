package lps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vass2/core"
	"github.com/katalvlaran/vass2/lps"
	"github.com/katalvlaran/vass2/paths"
)

func mustVASS(t *testing.T, start, end string, edges ...core.RawEdge) *core.VASS {
	t.Helper()
	v, err := core.Load(core.RawVASS{Start: start, End: end, Edges: edges})
	require.NoError(t, err)

	return v
}

func TestCompile_PathOnlyNoCycles(t *testing.T) {
	v := mustVASS(t, "q0", "q2",
		core.RawEdge{P: "q0", Q: "q1", X: 1.0, Y: 0.0},
		core.RawEdge{P: "q1", Q: "q2", X: 0.0, Y: 1.0},
	)
	out, _ := lps.Compile(v, []paths.Path{{"q0", "q1", "q2"}}, nil)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Cycles)
	require.Len(t, out[0].Path, 2)
	assert.Equal(t, "q0_0", out[0].Path[0].From)
	assert.Equal(t, "q1_0", out[0].Path[0].To)
	assert.Equal(t, "q1_0", out[0].Path[1].From)
	assert.Equal(t, "q2_0", out[0].Path[1].To)
}

func TestCompile_DirectlyAnchoredCycle(t *testing.T) {
	v := mustVASS(t, "q0", "q2",
		core.RawEdge{P: "q0", Q: "q1", X: 1.0, Y: 0.0},
		core.RawEdge{P: "q1", Q: "q1", X: 0.0, Y: 1.0},
		core.RawEdge{P: "q1", Q: "q2", X: 0.0, Y: 0.0},
	)
	out, _ := lps.Compile(v, []paths.Path{{"q0", "q1", "q2"}}, []paths.Cycle{{"q1", "q1"}})
	require.Len(t, out, 1)
	require.Len(t, out[0].Cycles, 1)
	cyc, ok := out[0].Cycles["c1"]
	require.True(t, ok)
	require.Len(t, cyc, 1)
	// anchor and close label the same occurrence for a length-1 self-loop
	// cycle; it is not an anchor-duplication seam, so it keeps the self-loop
	// edge's (0,1) weight.
	assert.Equal(t, "q1_0", cyc[0].From)
	assert.Equal(t, "q1_0", cyc[0].To)
	assert.Equal(t, core.ConstValue(0), cyc[0].X)
	assert.Equal(t, core.ConstValue(1), cyc[0].Y)
}

func TestCompile_TwoCyclesSameAnchorDuplicatesState(t *testing.T) {
	v := mustVASS(t, "q0", "q2",
		core.RawEdge{P: "q0", Q: "q1", X: 1.0, Y: 0.0},
		core.RawEdge{P: "q1", Q: "q1", X: 0.0, Y: 1.0},
		core.RawEdge{P: "q1", Q: "m", X: 2.0, Y: 0.0},
		core.RawEdge{P: "m", Q: "q1", X: 0.0, Y: 2.0},
		core.RawEdge{P: "q1", Q: "q2", X: 0.0, Y: 0.0},
	)
	out, _ := lps.Compile(v, []paths.Path{{"q0", "q1", "q2"}}, []paths.Cycle{
		{"q1", "q1"},
		{"q1", "m", "q1"},
	})
	require.Len(t, out, 1)
	require.Len(t, out[0].Cycles, 2)
	// both cycles anchored at q1: the second one forces a duplicate q1 occurrence in the path,
	// so the path must now visit q1 twice, linked by a (0,0) seam.
	require.Len(t, out[0].Path, 3)
	var sawZeroSeam bool
	for _, tr := range out[0].Path {
		if paths.Underlying(tr.From) == "q1" && paths.Underlying(tr.To) == "q1" {
			sawZeroSeam = true
			assert.Equal(t, core.ConstValue(0), tr.X)
			assert.Equal(t, core.ConstValue(0), tr.Y)
		}
	}
	assert.True(t, sawZeroSeam)
}

func TestCompile_FlattenedCycleSplicesIntoPath(t *testing.T) {
	v := mustVASS(t, "q0", "q2",
		core.RawEdge{P: "q0", Q: "q1", X: 1.0, Y: 0.0},
		core.RawEdge{P: "q1", Q: "m", X: 1.0, Y: 0.0},
		core.RawEdge{P: "m", Q: "q1", X: 0.0, Y: 1.0},
		core.RawEdge{P: "m", Q: "n", X: 1.0, Y: 1.0},
		core.RawEdge{P: "n", Q: "m", X: 1.0, Y: 1.0},
		core.RawEdge{P: "q1", Q: "q2", X: 0.0, Y: 0.0},
	)
	// cycle A anchors directly on the path at q1; cycle B (m,n,m) shares no
	// state with the path and must be flattened in via cycle A's body.
	out, _ := lps.Compile(v, []paths.Path{{"q0", "q1", "q2"}}, []paths.Cycle{
		{"q1", "m", "q1"},
		{"m", "n", "m"},
	})
	require.Len(t, out, 2, "one LPS for the initial anchoring pass, one more after flattening")

	first := out[0]
	require.Len(t, first.Cycles, 1, "cycle B cannot anchor yet in the first snapshot")

	second := out[1]
	require.Len(t, second.Cycles, 2, "cycle B anchors once cycle A's body is spliced into the path")
	_, hasB := second.Cycles["c2"]
	assert.True(t, hasB)
}
