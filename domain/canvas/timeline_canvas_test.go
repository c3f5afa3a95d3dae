package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
)

type changeRecorder struct {
	calls [][]entities.Milestone
}

func (r *changeRecorder) record(ms []entities.Milestone) {
	r.calls = append(r.calls, ms)
}

func (r *changeRecorder) last() []entities.Milestone {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func zoomedTimeline(t *testing.T, n int, scale float64) (*TimelineCanvas, *changeRecorder) {
	t.Helper()
	rec := &changeRecorder{}
	c := NewTimelineCanvas(milestones(n), Size{Width: 1200, Height: 500}, rec.record)
	c.viewport.Scale = scale
	return c, rec
}

func TestTimelineCanvas_DragAtZoom(t *testing.T) {
	c, rec := zoomedTimeline(t, 5, 1.5)
	before, ok := c.Layout().Position("c")
	require.True(t, ok)

	c.OnPointerDown(OnNode("c"), valueobjects.At(500, 300))
	assert.Equal(t, DraggingNode, c.Mode())
	c.OnPointerMove(valueobjects.At(600, 350))
	c.OnPointerUp()

	after, _ := c.Layout().Position("c")
	assert.InDelta(t, 66.67, after.X()-before.X(), 0.01)
	assert.InDelta(t, 33.33, after.Y()-before.Y(), 0.01)

	// the segment from node 2 to node 3 starts at the moved coordinate
	from, _, ok := c.Layout().Path.Segment(2)
	require.True(t, ok)
	assert.True(t, from.Equals(after))
	_, to, _ := c.Layout().Path.Segment(1)
	assert.True(t, to.Equals(after))

	require.Len(t, rec.calls, 1)
	emitted := rec.last()
	require.Len(t, emitted, 5, "the whole collection is emitted")
	require.NotNil(t, emitted[2].Position)
	assert.True(t, emitted[2].Position.Equals(after))
	assert.Nil(t, emitted[0].Position, "untouched nodes keep their default placement")

	_, expanded := c.Expanded()
	assert.False(t, expanded, "a drag is not a click")
}

func TestTimelineCanvas_DragClampsAtZero(t *testing.T) {
	c, rec := zoomedTimeline(t, 3, 1)

	c.OnPointerDown(OnNode("a"), valueobjects.At(0, 0))
	c.OnPointerMove(valueobjects.At(-5000, -5000))
	c.OnPointerUp()

	pos, _ := c.Layout().Position("a")
	assert.True(t, pos.Equals(valueobjects.At(0, 0)))
	require.Len(t, rec.calls, 1)
}

func TestTimelineCanvas_DragHasNoUpperBound(t *testing.T) {
	c, _ := zoomedTimeline(t, 3, 1)

	c.OnPointerDown(OnNode("b"), valueobjects.At(0, 0))
	c.OnPointerMove(valueobjects.At(5000, 5000))
	c.OnPointerUp()

	pos, _ := c.Layout().Position("b")
	assert.True(t, pos.Equals(valueobjects.At(420+5000, 57.6+5000)))
	assert.Greater(t, c.Layout().Extent.Width, pos.X(), "extent follows dragged nodes")
	assert.Greater(t, c.Layout().Extent.Height, pos.Y())
}

func TestTimelineCanvas_ClickTogglesExpand(t *testing.T) {
	c, rec := zoomedTimeline(t, 3, 1)

	c.OnPointerDown(OnNode("a"), valueobjects.At(10, 10))
	c.OnPointerMove(valueobjects.At(12, 13))
	c.OnPointerUp()
	assert.True(t, c.IsExpanded("a"))
	assert.Empty(t, rec.calls, "below the threshold nothing moves")

	c.OnPointerDown(OnNode("b"), valueobjects.At(10, 10))
	c.OnPointerUp()
	assert.True(t, c.IsExpanded("b"))
	assert.False(t, c.IsExpanded("a"))

	c.OnPointerDown(OnNode("b"), valueobjects.At(10, 10))
	c.OnPointerUp()
	_, ok := c.Expanded()
	assert.False(t, ok)
}

func TestTimelineCanvas_ChildPressDragsParentAndClicksChild(t *testing.T) {
	ms := milestones(2)
	ms[0].Children = []entities.Milestone{{ID: "kid", Phase: valueobjects.PhaseEducation}}
	rec := &changeRecorder{}
	c := NewTimelineCanvas(ms, Size{Width: 800, Height: 400}, rec.record)
	c.viewport.Scale = 1

	c.OnPointerDown(OnChild("a", "kid"), valueobjects.At(0, 0))
	c.OnPointerUp()
	assert.True(t, c.IsExpanded("kid"))

	c.OnPointerDown(OnChild("a", "kid"), valueobjects.At(0, 0))
	c.OnPointerMove(valueobjects.At(40, 0))
	c.OnPointerUp()
	require.Len(t, rec.calls, 1)
	require.NotNil(t, rec.last()[0].Position)
	assert.InDelta(t, 180, rec.last()[0].Position.X(), 1e-9)
	assert.Nil(t, rec.last()[0].Children[0].Position, "children are never positioned on the canvas")
}

func TestTimelineCanvas_PanAndLeave(t *testing.T) {
	c, rec := zoomedTimeline(t, 2, 0.5)

	c.OnPointerDown(OnBackground(), valueobjects.At(100, 100))
	assert.Equal(t, Panning, c.Mode())
	c.OnPointerMove(valueobjects.At(150, 80))
	assert.True(t, c.Viewport().Pan.Equals(valueobjects.At(50, -20)))

	c.OnPointerLeave()
	assert.Equal(t, Idle, c.Mode())
	c.OnPointerMove(valueobjects.At(500, 500))
	assert.True(t, c.Viewport().Pan.Equals(valueobjects.At(50, -20)), "moves after leave are ignored")
	assert.Empty(t, rec.calls)
}

func TestTimelineCanvas_ControlPressDoesNothing(t *testing.T) {
	c, _ := zoomedTimeline(t, 2, 1)
	c.OnPointerDown(OnControl(), valueobjects.At(1, 1))
	assert.Equal(t, Idle, c.Mode())
	c.OnPointerUp()
	_, ok := c.Expanded()
	assert.False(t, ok)
}

func TestTimelineCanvas_Wheel(t *testing.T) {
	c, _ := zoomedTimeline(t, 2, 1)
	c.OnWheel(100)
	assert.InDelta(t, 0.7, c.Viewport().Scale, 1e-9)
	for i := 0; i < 50; i++ {
		c.OnWheel(500)
	}
	assert.Equal(t, MinZoom, c.Viewport().Scale)
}

func TestTimelineCanvas_DetailOverlayReadsLiveNode(t *testing.T) {
	ms := milestones(2)
	ms[1].Children = []entities.Milestone{{ID: "kid", Role: "Intern"}}
	c := NewTimelineCanvas(ms, Size{Width: 800, Height: 400}, nil)

	c.OpenDetails("kid")
	node, ok := c.DetailNode()
	require.True(t, ok)
	assert.Equal(t, "Intern", node.Role)

	ms[1].Children[0].Role = "Engineer"
	c.SetMilestones(ms)
	node, ok = c.DetailNode()
	require.True(t, ok)
	assert.Equal(t, "Engineer", node.Role, "overlay re-resolves after the document changes")

	c.OnKey(KeyEscape)
	_, ok = c.DetailNode()
	assert.False(t, ok)
}

func TestTimelineCanvas_RemovedNodeClosesOverlayAndExpansion(t *testing.T) {
	c := NewTimelineCanvas(milestones(3), Size{Width: 800, Height: 400}, nil)
	c.OpenDetails("c")
	c.ToggleExpand("c")

	c.SetMilestones(milestones(2))

	_, ok := c.DetailNode()
	assert.False(t, ok)
	_, ok = c.Expanded()
	assert.False(t, ok)
}

func TestTimelineCanvas_DoesNotMutateCallerSlice(t *testing.T) {
	ms := milestones(3)
	c := NewTimelineCanvas(ms, Size{Width: 800, Height: 400}, nil)
	c.viewport.Scale = 1

	c.OnPointerDown(OnNode("a"), valueobjects.At(0, 0))
	c.OnPointerMove(valueobjects.At(100, 0))
	c.OnPointerUp()

	assert.Nil(t, ms[0].Position)
	require.NotNil(t, c.Milestones()[0].Position)
}

func TestTimelineCanvas_NodePressDuringPanKeepsPanning(t *testing.T) {
	c, rec := zoomedTimeline(t, 5, 1)
	before, _ := c.Layout().Position("c")

	c.OnPointerDown(OnBackground(), valueobjects.At(100, 100))
	c.OnPointerDown(OnNode("c"), valueobjects.At(500, 300))
	assert.Equal(t, Panning, c.Mode())

	c.OnPointerMove(valueobjects.At(140, 130))
	c.OnPointerUp()

	assert.True(t, c.Viewport().Pan.Equals(valueobjects.At(40, 30)))
	after, _ := c.Layout().Position("c")
	assert.True(t, after.Equals(before))
	assert.Empty(t, rec.calls)
}
