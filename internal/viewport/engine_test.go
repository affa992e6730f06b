package viewport

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(Config{RefitDelay: 5 * time.Millisecond})
	t.Cleanup(e.Close)
	return e
}

func testGraph() *lineage.Snapshot {
	return &lineage.Snapshot{
		Nodes: []lineage.Node{
			positioned("table1", 0, 0, "col_a", "col_b"),
			positioned("table2", 400, 0, "col_a", "col_c"),
		},
		Edges: []lineage.Edge{
			{From: lineage.ColumnRef{Table: "table1", Column: "col_a"}, To: lineage.ColumnRef{Table: "table2", Column: "col_a"}},
		},
	}
}

func TestLoadDefaults(t *testing.T) {
	e := testEngine(t)
	e.Load(testGraph())

	// Auto-expand-all on first successful load, selection defaults to the
	// first column of the first node.
	assert.True(t, e.Expanded("table1"))
	assert.True(t, e.Expanded("table2"))
	assert.Equal(t, "col_a", e.Selected())
}

func TestDragStateMachine(t *testing.T) {
	e := testEngine(t)
	e.Load(testGraph())

	require.Equal(t, ModeIdle, e.Mode())

	e.PointerDown(geo.NewPoint(100, 100))
	assert.Equal(t, ModeDragging, e.Mode())

	e.PointerMove(geo.NewPoint(130, 80))
	tr := e.Transform()
	assert.Equal(t, 30.0, tr.X)
	assert.Equal(t, -20.0, tr.Y)
	assert.Equal(t, 1.0, tr.Scale)

	// Deltas accumulate from the press origin, not the previous move.
	e.PointerMove(geo.NewPoint(110, 110))
	tr = e.Transform()
	assert.Equal(t, 10.0, tr.X)
	assert.Equal(t, 10.0, tr.Y)

	e.PointerUp()
	assert.Equal(t, ModeIdle, e.Mode())

	// Moves after release are ignored.
	e.PointerMove(geo.NewPoint(500, 500))
	assert.Equal(t, tr, e.Transform())
}

func TestSecondPressIgnored(t *testing.T) {
	e := testEngine(t)
	e.PointerDown(geo.NewPoint(0, 0))
	e.PointerMove(geo.NewPoint(50, 0))

	// A press during an active drag must not corrupt the drag origin.
	e.PointerDown(geo.NewPoint(999, 999))
	e.PointerMove(geo.NewPoint(60, 0))
	assert.Equal(t, 60.0, e.Transform().X)
}

func TestPointerUpWithoutDrag(t *testing.T) {
	e := testEngine(t)
	e.PointerUp()
	assert.Equal(t, ModeIdle, e.Mode())
}

func TestWheelZoomClampsAtCeiling(t *testing.T) {
	e := testEngine(t)

	// deltaY = -1000 at scale 1.0 gives factor e^1 ≈ 2.718; a second wheel
	// would exceed the ceiling and must clamp at 3.0.
	e.Wheel(geo.NewPoint(0, 0), -1000)
	assert.InDelta(t, math.E, e.Transform().Scale, 1e-9)

	e.Wheel(geo.NewPoint(0, 0), -1000)
	assert.Equal(t, MaxScale, e.Transform().Scale)
}

func TestWheelZoomAnchorsAtPointer(t *testing.T) {
	e := testEngine(t)
	pointer := geo.NewPoint(250, 180)

	before := e.Transform().ToContent(pointer)
	e.Wheel(pointer, -400)
	after := e.Transform().ToScreen(before)

	// Content under the cursor stays under the cursor.
	assert.InDelta(t, pointer.X, after.X, 1e-9)
	assert.InDelta(t, pointer.Y, after.Y, 1e-9)
}

func TestDiscreteZoom(t *testing.T) {
	e := testEngine(t)
	e.SetViewport(Size{Width: 800, Height: 600})

	e.ZoomIn()
	assert.InDelta(t, 1.3, e.Transform().Scale, 1e-9)

	e.ZoomOut()
	assert.InDelta(t, 1.0, e.Transform().Scale, 1e-9)

	// Repeated zoom-out bottoms out at the scale floor.
	for i := 0; i < 50; i++ {
		e.ZoomOut()
	}
	assert.Equal(t, MinScale, e.Transform().Scale)
}

func TestReset(t *testing.T) {
	e := testEngine(t)
	e.Wheel(geo.NewPoint(10, 10), -300)
	e.PointerDown(geo.NewPoint(0, 0))
	e.PointerMove(geo.NewPoint(40, 40))
	e.PointerUp()

	e.Reset()
	assert.Equal(t, Identity(), e.Transform())
}

func TestScaleInvariantUnderRandomInput(t *testing.T) {
	e := testEngine(t)
	e.Load(testGraph())
	e.SetViewport(Size{Width: 800, Height: 600})
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		switch rng.Intn(6) {
		case 0:
			e.Wheel(geo.NewPoint(rng.Float64()*800, rng.Float64()*600), (rng.Float64()-0.5)*20000)
		case 1:
			e.ZoomIn()
		case 2:
			e.ZoomOut()
		case 3:
			e.PointerDown(geo.NewPoint(rng.Float64()*800, rng.Float64()*600))
		case 4:
			e.PointerMove(geo.NewPoint(rng.Float64()*800, rng.Float64()*600))
		case 5:
			e.PointerUp()
		}

		s := e.Transform().Scale
		require.GreaterOrEqual(t, s, MinScale)
		require.LessOrEqual(t, s, MaxScale)
	}
}

func TestToggleSymmetry(t *testing.T) {
	e := testEngine(t)
	e.Load(testGraph())

	require.True(t, e.Expanded("table1"))
	e.Toggle("table1")
	assert.False(t, e.Expanded("table1"))
	e.Toggle("table1")
	assert.True(t, e.Expanded("table1"))
}

func TestToggleSchedulesRefit(t *testing.T) {
	e := testEngine(t)
	e.Load(testGraph())
	e.SetViewport(Size{Width: 800, Height: 600})
	e.Reset()

	e.Toggle("table1")

	// The deferred re-fit replaces the identity transform.
	assert.Eventually(t, func() bool {
		return e.Transform() != Identity()
	}, time.Second, time.Millisecond)
}

func TestLoadRefitDeferredUntilSized(t *testing.T) {
	e := testEngine(t)
	e.Load(testGraph())

	// No viewport size yet: the scheduled fit becomes pending, the
	// transform stays put.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, Identity(), e.Transform())

	// The retry happens as soon as the surface reports a real size.
	e.SetViewport(Size{Width: 800, Height: 600})
	tr := e.Transform()
	assert.NotEqual(t, Identity(), tr)
	assert.GreaterOrEqual(t, tr.Scale, MinFitScale)
	assert.LessOrEqual(t, tr.Scale, MaxFitScale)
}

func TestSceneHighlights(t *testing.T) {
	e := testEngine(t)
	e.Load(testGraph())

	e.SelectColumn("col_a")
	scene := e.Scene(Size{Width: 800, Height: 600})
	require.Len(t, scene.Edges, 1)
	assert.True(t, scene.Edges[0].Highlighted)
	assert.True(t, e.IsHighlighted("table1", "col_a"))

	// col_b appears on table1 but no edge touches it.
	e.SelectColumn("col_b")
	scene = e.Scene(Size{Width: 800, Height: 600})
	assert.False(t, scene.Edges[0].Highlighted)
	assert.False(t, e.IsHighlighted("table1", "col_b"))
	assert.False(t, e.IsHighlighted("table1", "col_a"))
}

func TestSceneSkipsStaleEdges(t *testing.T) {
	snap := testGraph()
	snap.Edges = append(snap.Edges, lineage.Edge{
		From: lineage.ColumnRef{Table: "missing", Column: "x"},
		To:   lineage.ColumnRef{Table: "table1", Column: "col_a"},
	})

	e := testEngine(t)
	e.Load(snap)

	scene := e.Scene(Size{Width: 800, Height: 600})
	assert.Len(t, scene.Edges, 1)
}

func TestSceneSkipsUnpositionedNodes(t *testing.T) {
	snap := testGraph()
	snap.Nodes = append(snap.Nodes, lineage.Node{ID: "detached", Name: "detached"})

	e := testEngine(t)
	e.Load(snap)

	scene := e.Scene(Size{Width: 800, Height: 600})
	assert.Len(t, scene.Nodes, 2)
}

func TestSceneColumns(t *testing.T) {
	e := testEngine(t)
	e.Load(testGraph())

	scene := e.Scene(Size{Width: 800, Height: 600})
	require.Len(t, scene.Nodes, 2)

	require.Len(t, scene.Nodes[0].Columns, 2)
	assert.Equal(t, "col_a", scene.Nodes[0].Columns[0].Name)
	assert.True(t, scene.Nodes[0].Columns[0].Highlighted)
	assert.False(t, scene.Nodes[0].Columns[1].Highlighted)
	assert.True(t, scene.Nodes[0].Expanded)
}
