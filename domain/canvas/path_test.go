package canvas

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"portfolio/domain/core/valueobjects"
)

func TestBuildPath(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		p := BuildPath(nil)
		assert.True(t, p.IsEmpty())
		assert.Equal(t, "", p.String())
		assert.Equal(t, 0, p.Segments())
	})

	t.Run("single point is a bare move", func(t *testing.T) {
		p := BuildPath([]valueobjects.Position{valueobjects.At(140, 160)})
		require.Len(t, p.Commands, 1)
		assert.Equal(t, MoveTo, p.Commands[0].Op)
		assert.Equal(t, "M 140 160", p.String())
		assert.Equal(t, 0, p.Segments())
	})

	t.Run("move then one line per point", func(t *testing.T) {
		p := BuildPath([]valueobjects.Position{
			valueobjects.At(140, 160),
			valueobjects.At(420, 57.6),
			valueobjects.At(700, 262.4),
		})
		assert.Equal(t, "M 140 160 L 420 57.6 L 700 262.4", p.String())
		assert.Equal(t, 2, p.Segments())
	})

	t.Run("json is path data", func(t *testing.T) {
		data, err := json.Marshal(BuildPath([]valueobjects.Position{valueobjects.At(1, 2), valueobjects.At(3, 4)}))
		require.NoError(t, err)
		assert.Equal(t, `"M 1 2 L 3 4"`, string(data))
	})
}

func TestBuildPath_VisitsPointsInOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(t, "n")
		pts := make([]valueobjects.Position, n)
		for i := range pts {
			pts[i] = valueobjects.At(
				rapid.Float64Range(-500, 5000).Draw(t, "x"),
				rapid.Float64Range(-500, 5000).Draw(t, "y"),
			)
		}
		p := BuildPath(pts)
		if len(p.Commands) != n {
			t.Fatalf("want %d commands, got %d", n, len(p.Commands))
		}
		if p.Commands[0].Op != MoveTo {
			t.Fatalf("path must start with a move")
		}
		for i, c := range p.Commands {
			if i > 0 && c.Op != LineTo {
				t.Fatalf("command %d is %c", i, c.Op)
			}
			if !c.Point.Equals(pts[i]) {
				t.Fatalf("command %d at %v, want %v", i, c.Point, pts[i])
			}
		}
	})
}

func TestPath_Segment(t *testing.T) {
	p := BuildPath([]valueobjects.Position{valueobjects.At(0, 0), valueobjects.At(10, 0)})

	from, to, ok := p.Segment(0)
	require.True(t, ok)
	assert.True(t, from.Equals(valueobjects.At(0, 0)))
	assert.True(t, to.Equals(valueobjects.At(10, 0)))

	_, _, ok = p.Segment(1)
	assert.False(t, ok)
	_, _, ok = p.Segment(-1)
	assert.False(t, ok)
}
