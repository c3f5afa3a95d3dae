package valueobjects

// Phase is the career phase a milestone belongs to. It drives the default colour.
type Phase string

const (
	PhaseEducation Phase = "education"
	PhaseEarly     Phase = "early"
	PhaseGrowth    Phase = "growth"
	PhaseCurrent   Phase = "current"
)

// Phases lists every known phase in display order.
var Phases = []Phase{PhaseEducation, PhaseEarly, PhaseGrowth, PhaseCurrent}

// IsValid reports whether p is a known phase.
func (p Phase) IsValid() bool {
	_, ok := phaseGradients[p]
	return ok
}

// Shape is how a timeline node is drawn.
type Shape string

const (
	ShapeCard   Shape = "card"
	ShapeCircle Shape = "circle"
)

// OrDefault returns ShapeCard for anything that is not a known shape.
func (s Shape) OrDefault() Shape {
	if s == ShapeCircle {
		return ShapeCircle
	}
	return ShapeCard
}

// PlaceLabel says what kind of place the company field names.
type PlaceLabel string

const (
	PlaceSchool     PlaceLabel = "School"
	PlaceUniversity PlaceLabel = "University"
	PlaceCompany    PlaceLabel = "Company"
)

// Display renders a place name with its label. Companies are shown bare.
func (l PlaceLabel) Display(place string) string {
	switch l {
	case PlaceSchool, PlaceUniversity:
		return string(l) + ": " + place
	default:
		return place
	}
}

// Gradient is a two-stop colour gradient expressed as utility classes
// ("from-<colour> to-<colour>"), the form the presentation layer consumes.
type Gradient string

// FallbackGradient is used when neither override nor phase resolves.
const FallbackGradient Gradient = "from-gray-500 to-gray-600"

var phaseGradients = map[Phase]Gradient{
	PhaseEducation: "from-emerald-500 to-teal-600",
	PhaseEarly:     "from-cyan-500 to-blue-600",
	PhaseGrowth:    "from-violet-500 to-purple-600",
	PhaseCurrent:   "from-amber-500 to-orange-600",
}

// ColorPresets maps the colour override keys offered by the editor to gradients.
// "default" deliberately maps to the empty gradient so the phase colour wins.
var ColorPresets = map[string]Gradient{
	"default": "",
	"emerald": "from-emerald-500 to-teal-600",
	"cyan":    "from-cyan-500 to-blue-600",
	"violet":  "from-violet-500 to-purple-600",
	"amber":   "from-amber-500 to-orange-600",
	"rose":    "from-rose-500 to-pink-600",
	"blue":    "from-blue-500 to-indigo-600",
	"green":   "from-green-500 to-emerald-600",
	"gray":    "from-gray-500 to-gray-600",
}

// PhaseGradient returns the default gradient for a phase.
func PhaseGradient(p Phase) Gradient {
	if g, ok := phaseGradients[p]; ok {
		return g
	}
	return FallbackGradient
}

// ResolveGradient picks the override colour when it names a non-empty preset,
// otherwise the phase colour. The result is never empty.
func ResolveGradient(colorKey string, phase Phase) Gradient {
	if colorKey != "" {
		if g, ok := ColorPresets[colorKey]; ok && g != "" {
			return g
		}
	}
	return PhaseGradient(phase)
}
