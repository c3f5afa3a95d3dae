package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
)

func TestChildLayouts(t *testing.T) {
	parent := entities.Milestone{
		ID:    "p",
		Phase: valueobjects.PhaseGrowth,
		Children: []entities.Milestone{
			{ID: "c1", Phase: valueobjects.PhaseEducation},
			{ID: "c2", Phase: valueobjects.PhaseEducation, Color: "rose"},
			{ID: "c3"},
		},
	}

	children := ChildLayouts(parent)
	require.Len(t, children, 3)

	assert.Equal(t, valueobjects.Gradient("from-emerald-500 to-teal-600"), children[0].Gradient)
	assert.Equal(t, valueobjects.Gradient("from-rose-500 to-pink-600"), children[1].Gradient)
	assert.Equal(t, valueobjects.FallbackGradient, children[2].Gradient)

	first := NodeCardHeight/2 + ChildGap + ChildCardHeight/2
	assert.True(t, children[0].Offset.Equals(valueobjects.At(0, first)))
	assert.True(t, children[2].Offset.Equals(valueobjects.At(0, first+2*(ChildCardHeight+ChildGap))))

	abs := ChildPosition(valueobjects.At(400, 100), children[1])
	assert.True(t, abs.Equals(valueobjects.At(400, 100+first+ChildCardHeight+ChildGap)))
}

func TestChildLayouts_NoneForCirclesOrLeaves(t *testing.T) {
	assert.Nil(t, ChildLayouts(entities.Milestone{ID: "leaf"}))
	assert.Nil(t, ChildLayouts(entities.Milestone{
		ID:       "round",
		Shape:    valueobjects.ShapeCircle,
		Children: []entities.Milestone{{ID: "c"}},
	}))
}

func TestChildLayouts_DoNotMoveTheCanvasPath(t *testing.T) {
	ms := milestones(3)
	without := ComputeTimelineLayout(ms)

	ms[1].Children = []entities.Milestone{{ID: "x"}, {ID: "y"}}
	with := ComputeTimelineLayout(ms)

	assert.Equal(t, without.Path.String(), with.Path.String())
	assert.Len(t, with.Nodes[1].Children, 2)
}
