package canvas

import (
	"math"

	"portfolio/domain/core/valueobjects"
)

// Zoom limits and wheel sensitivity.
const (
	MinZoom         = 0.25
	MaxZoom         = 2.0
	InitialZoom     = 0.85
	ZoomWheelFactor = 0.003
)

// Viewport is the pan/zoom transform between screen and content space.
// Screen = content*Scale + Pan. Size is the visible area in screen pixels and
// is what wheel zoom anchors on.
type Viewport struct {
	Pan   valueobjects.Position `json:"pan"`
	Scale float64               `json:"scale"`
	Size  Size                  `json:"size"`
}

// NewViewport returns the initial transform for a visible area.
func NewViewport(size Size) Viewport {
	return Viewport{Scale: InitialZoom, Size: size}
}

// ClampZoom bounds a scale factor to [MinZoom, MaxZoom].
func ClampZoom(scale float64) float64 {
	return math.Min(MaxZoom, math.Max(MinZoom, scale))
}

// Center is the middle of the visible area in screen space.
func (v Viewport) Center() valueobjects.Position {
	return valueobjects.At(v.Size.Width/2, v.Size.Height/2)
}

// ToContent maps a screen point into content space.
func (v Viewport) ToContent(screen valueobjects.Position) valueobjects.Position {
	return screen.Sub(v.Pan).DivideBy(v.Scale)
}

// ToScreen maps a content point into screen space.
func (v Viewport) ToScreen(content valueobjects.Position) valueobjects.Position {
	return valueobjects.At(content.X()*v.Scale+v.Pan.X(), content.Y()*v.Scale+v.Pan.Y())
}

// PannedTo returns the viewport with a new pan offset.
func (v Viewport) PannedTo(pan valueobjects.Position) Viewport {
	v.Pan = pan
	return v
}

// Wheel applies a wheel gesture: scale moves by -deltaY*ZoomWheelFactor and
// is clamped. The content point under the viewport centre stays put.
func (v Viewport) Wheel(deltaY float64) Viewport {
	return v.ZoomTo(v.Scale - deltaY*ZoomWheelFactor)
}

// ZoomTo sets the scale (clamped), anchored at the viewport centre.
func (v Viewport) ZoomTo(scale float64) Viewport {
	next := ClampZoom(scale)
	if next == v.Scale {
		return v
	}
	center := v.Center()
	anchor := v.ToContent(center)
	v.Scale = next
	v.Pan = valueobjects.At(center.X()-anchor.X()*next, center.Y()-anchor.Y()*next)
	return v
}

// Resize changes the visible area, keeping the transform.
func (v Viewport) Resize(size Size) Viewport {
	v.Size = size
	return v
}
