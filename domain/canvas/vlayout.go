package canvas

import (
	"math"

	"portfolio/domain/core/valueobjects"
)

// Strategy sea geometry, in content units. Card positions are top-left corners.
const (
	StrategyWidth  = 1100.0
	StrategyHeight = 650.0
	CardWidth      = 280.0
	CardHeight     = 80.0
	DragPadX       = 120.0
	DragPadY       = 80.0

	vRowStep  = 72.0
	vXMargin  = 24.0
	vXStep    = 44.0
	vStartTop = 24.0
)

// StrategyFrame is the fixed size of the strategy sea.
func StrategyFrame() Size {
	return Size{Width: StrategyWidth, Height: StrategyHeight}
}

// StrategyDefaultPositions arranges n cards in a V: card i and card n-1-i
// share a row and step inward from opposite edges, and an odd middle card sits
// centred below the last pair.
func StrategyDefaultPositions(n int) []valueobjects.Position {
	if n <= 0 {
		return []valueobjects.Position{}
	}
	out := make([]valueobjects.Position, n)
	pairs := n / 2
	for row := 0; row < pairs; row++ {
		y := vStartTop + float64(row)*vRowStep
		inset := vXMargin + float64(row)*vXStep
		out[row] = valueobjects.At(inset, y)
		out[n-1-row] = valueobjects.At(StrategyWidth-CardWidth-inset, y)
	}
	if n%2 == 1 {
		out[pairs] = valueobjects.At((StrategyWidth-CardWidth)/2, vStartTop+float64(pairs)*vRowStep)
	}
	return out
}

// ResolveStrategyPositions uses stored positions only when there is exactly
// one per card; anything else falls back to the V layout.
func ResolveStrategyPositions(n int, stored []valueobjects.Position) []valueobjects.Position {
	if n > 0 && len(stored) == n {
		return append([]valueobjects.Position(nil), stored...)
	}
	return StrategyDefaultPositions(n)
}

// StrategyBounds keeps cards at non-negative coordinates and at most one drag
// pad beyond the far edges of the sea.
func StrategyBounds() Bounds {
	return Bounded(
		valueobjects.At(0, 0),
		valueobjects.At(StrategyWidth-CardWidth+DragPadX, StrategyHeight-CardHeight+DragPadY),
	)
}

// StrategyCard is one laid-out strategy point.
type StrategyCard struct {
	Index    int                   `json:"index"`
	Text     string                `json:"text"`
	Position valueobjects.Position `json:"position"`
	Manual   bool                  `json:"manual"`
}

// StrategyLayout is the derived projection of the strategy points.
type StrategyLayout struct {
	Cards  []StrategyCard `json:"cards"`
	Frame  Size           `json:"frame"`
	Extent Size           `json:"extent"`
}

// ComputeStrategyLayout resolves card positions and the area they cover.
func ComputeStrategyLayout(points []string, stored []valueobjects.Position) StrategyLayout {
	manual := len(points) > 0 && len(stored) == len(points)
	positions := ResolveStrategyPositions(len(points), stored)
	cards := make([]StrategyCard, len(points))
	for i, text := range points {
		cards[i] = StrategyCard{Index: i, Text: text, Position: positions[i], Manual: manual}
	}
	return StrategyLayout{
		Cards:  cards,
		Frame:  StrategyFrame(),
		Extent: strategyExtent(positions),
	}
}

func strategyExtent(positions []valueobjects.Position) Size {
	w, h := StrategyWidth, StrategyHeight
	for _, p := range positions {
		w = math.Max(w, p.X()+CardWidth)
		h = math.Max(h, p.Y()+CardHeight)
	}
	return Size{Width: w, Height: h}
}
