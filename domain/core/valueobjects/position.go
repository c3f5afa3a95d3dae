package valueobjects

import (
	"math"

	"github.com/goccy/go-json"

	pkgerrors "portfolio/pkg/errors"
)

// Position is a value object representing a point on a canvas, in content pixels.
type Position struct {
	x float64
	y float64
}

// NewPosition creates a position with validation
func NewPosition(x, y float64) (Position, error) {
	if !isValidCoordinate(x) || !isValidCoordinate(y) {
		return Position{}, pkgerrors.NewValidationError("invalid coordinates: must be finite numbers")
	}
	return Position{x: x, y: y}, nil
}

// At builds a position from coordinates that are already known to be finite,
// such as the output of layout arithmetic.
func At(x, y float64) Position {
	return Position{x: x, y: y}
}

// X returns the X coordinate
func (p Position) X() float64 {
	return p.x
}

// Y returns the Y coordinate
func (p Position) Y() float64 {
	return p.y
}

// DistanceTo calculates the Euclidean distance to another position
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(p.x-other.x, p.y-other.y)
}

// Equals checks if two positions are equal
func (p Position) Equals(other Position) bool {
	const epsilon = 1e-9
	return math.Abs(p.x-other.x) < epsilon &&
		math.Abs(p.y-other.y) < epsilon
}

// Translate moves the position by the given offsets
func (p Position) Translate(dx, dy float64) Position {
	return Position{x: p.x + dx, y: p.y + dy}
}

// Sub returns the offset from other to p.
func (p Position) Sub(other Position) Position {
	return Position{x: p.x - other.x, y: p.y - other.y}
}

// DivideBy divides both coordinates by factor. A non-positive factor leaves p unchanged.
func (p Position) DivideBy(factor float64) Position {
	if factor <= 0 {
		return p
	}
	return Position{x: p.x / factor, y: p.y / factor}
}

// ClampMin raises each coordinate to at least the matching coordinate of min.
func (p Position) ClampMin(min Position) Position {
	return Position{x: math.Max(p.x, min.x), y: math.Max(p.y, min.y)}
}

// ClampMax lowers each coordinate to at most the matching coordinate of max.
func (p Position) ClampMax(max Position) Position {
	return Position{x: math.Min(p.x, max.x), y: math.Min(p.y, max.y)}
}

// Midpoint calculates the midpoint between two positions
func (p Position) Midpoint(other Position) Position {
	return Position{
		x: (p.x + other.x) / 2,
		y: (p.y + other.y) / 2,
	}
}

type positionJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalJSON implements json.Marshaler
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(positionJSON{X: p.x, Y: p.y})
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Position) UnmarshalJSON(data []byte) error {
	var raw positionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pos, err := NewPosition(raw.X, raw.Y)
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

// isValidCoordinate checks if a coordinate is a valid finite number
func isValidCoordinate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
