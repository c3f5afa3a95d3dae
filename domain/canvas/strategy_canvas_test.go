package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/domain/core/valueobjects"
)

func TestStrategyCanvas_DragWithinBounds(t *testing.T) {
	var emitted [][]valueobjects.Position
	c := NewStrategyCanvas([]string{"a", "b", "c"}, nil, func(p []valueobjects.Position) {
		emitted = append(emitted, p)
	})

	c.OnPointerDown(OnCard(0), valueobjects.At(0, 0))
	c.OnPointerMove(valueobjects.At(100, 40))
	c.OnPointerUp()

	require.Len(t, emitted, 1)
	require.Len(t, emitted[0], 3, "every card position is emitted")
	assert.True(t, emitted[0][0].Equals(valueobjects.At(124, 64)))

	c.OnPointerDown(OnCard(0), valueobjects.At(0, 0))
	c.OnPointerMove(valueobjects.At(-1000, 5000))
	c.OnPointerUp()

	pos := c.Positions()[0]
	assert.True(t, pos.Equals(valueobjects.At(0, StrategyHeight-CardHeight+DragPadY)))

	c.OnPointerDown(OnCard(2), valueobjects.At(0, 0))
	c.OnPointerMove(valueobjects.At(5000, 0))
	c.OnPointerUp()
	assert.InDelta(t, StrategyWidth-CardWidth+DragPadX, c.Positions()[2].X(), 1e-9)
}

func TestStrategyCanvas_IgnoresBackgroundAndBadIndex(t *testing.T) {
	c := NewStrategyCanvas([]string{"a"}, nil, nil)

	c.OnPointerDown(OnBackground(), valueobjects.At(0, 0))
	assert.Equal(t, Idle, c.Mode())

	c.OnPointerDown(OnCard(7), valueobjects.At(0, 0))
	assert.Equal(t, Idle, c.Mode())
}

func TestStrategyCanvas_UsesAlignedStoredPositions(t *testing.T) {
	stored := []valueobjects.Position{valueobjects.At(5, 6), valueobjects.At(7, 8)}
	c := NewStrategyCanvas([]string{"a", "b"}, stored, nil)
	assert.Equal(t, stored, c.Positions())

	c = NewStrategyCanvas([]string{"a", "b", "c"}, stored, nil)
	assert.Equal(t, StrategyDefaultPositions(3), c.Positions())
}

func TestStrategyCanvas_SmallMoveIsNotADrag(t *testing.T) {
	called := false
	c := NewStrategyCanvas([]string{"a"}, nil, func([]valueobjects.Position) { called = true })

	c.OnPointerDown(OnCard(0), valueobjects.At(0, 0))
	c.OnPointerMove(valueobjects.At(2, 2))
	c.OnPointerLeave()

	assert.False(t, called)
	assert.Equal(t, StrategyDefaultPositions(1), c.Positions())
}

func TestStrategyCanvas_SecondPressDoesNotStealTheDrag(t *testing.T) {
	c := NewStrategyCanvas([]string{"a", "b"}, nil, nil)
	start := c.Positions()

	c.OnPointerDown(OnCard(0), valueobjects.At(0, 0))
	c.OnPointerDown(OnCard(1), valueobjects.At(0, 0))
	c.OnPointerMove(valueobjects.At(30, 20))
	c.OnPointerUp()

	assert.True(t, c.Positions()[0].Equals(start[0].Translate(30, 20)))
	assert.True(t, c.Positions()[1].Equals(start[1]))
}
