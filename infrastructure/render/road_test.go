package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/domain/canvas"
	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
)

func TestRoad(t *testing.T) {
	milestones := []entities.Milestone{
		{ID: "m1", Role: "R&D Intern", Phase: valueobjects.PhaseEducation, Shape: valueobjects.ShapeCircle},
		{ID: "m2", Role: "Engineer", Phase: valueobjects.PhaseGrowth, Color: "rose",
			Children: []entities.Milestone{{ID: "c1", Role: "Side project", Phase: valueobjects.PhaseEarly}}},
	}
	layout := canvas.ComputeTimelineLayout(milestones)

	var buf bytes.Buffer
	Road(&buf, layout, Labels(milestones))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `d="`+layout.Path.String()+`"`)
	assert.Contains(t, out, "R&amp;D Intern")
	assert.Contains(t, out, "Side project")
	assert.Contains(t, out, "#f43f5e", "colour override wins over phase")
	assert.Contains(t, out, `id="node-m1"`)
	assert.Equal(t, 1, strings.Count(out, "<circle"))
	assert.Equal(t, 2, strings.Count(out, "<rect")-1, "one card, one child, plus the backdrop")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestRoad_Empty(t *testing.T) {
	var buf bytes.Buffer
	Road(&buf, canvas.ComputeTimelineLayout(nil), nil)

	assert.NotContains(t, buf.String(), "<path")
	assert.Contains(t, buf.String(), "</svg>")
}

func TestGradientStops(t *testing.T) {
	from, to := GradientStops(valueobjects.ResolveGradient("", valueobjects.PhaseCurrent))
	assert.Equal(t, "#f59e0b", from)
	assert.Equal(t, "#ea580c", to)

	from, to = GradientStops("from-unknown-300 nonsense")
	assert.Equal(t, "#6b7280", from)
	assert.Equal(t, "#4b5563", to)
}

func TestLabels(t *testing.T) {
	labels := Labels([]entities.Milestone{
		{ID: "a", Role: "Lead", Children: []entities.Milestone{{ID: "b", Role: "Mentor"}}},
	})
	assert.Equal(t, map[string]string{"a": "Lead", "b": "Mentor"}, labels)
}
