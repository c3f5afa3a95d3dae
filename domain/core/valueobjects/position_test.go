package valueobjects

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid position at origin",
			x:       0,
			y:       0,
			wantErr: false,
		},
		{
			name:    "valid positive position",
			x:       100.5,
			y:       200.75,
			wantErr: false,
		},
		{
			name:    "negative coordinates are representable",
			x:       -100.5,
			y:       -200.75,
			wantErr: false,
		},
		{
			name:    "NaN x coordinate",
			x:       math.NaN(),
			y:       0,
			wantErr: true,
			errMsg:  "invalid coordinates",
		},
		{
			name:    "NaN y coordinate",
			x:       0,
			y:       math.NaN(),
			wantErr: true,
			errMsg:  "invalid coordinates",
		},
		{
			name:    "Infinity x coordinate",
			x:       math.Inf(1),
			y:       0,
			wantErr: true,
			errMsg:  "invalid coordinates",
		},
		{
			name:    "Negative infinity y coordinate",
			x:       0,
			y:       math.Inf(-1),
			wantErr: true,
			errMsg:  "invalid coordinates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPosition(tt.x, tt.y)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.x, pos.X())
				assert.Equal(t, tt.y, pos.Y())
			}
		})
	}
}

func TestPosition_DistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		pos1     Position
		pos2     Position
		expected float64
	}{
		{"same point", At(0, 0), At(0, 0), 0},
		{"along x-axis", At(0, 0), At(10, 0), 10},
		{"along y-axis", At(0, 0), At(0, 10), 10},
		{"3-4-5 triangle", At(0, 0), At(3, 4), 5},
		{"negative coordinates", At(-5, -5), At(5, 5), math.Sqrt(200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := tt.pos1.DistanceTo(tt.pos2)
			assert.InDelta(t, tt.expected, distance, 0.0001)

			// Distance should be symmetric
			assert.InDelta(t, distance, tt.pos2.DistanceTo(tt.pos1), 0.0001)
		})
	}
}

func TestPosition_Equals(t *testing.T) {
	assert.True(t, At(1.5, 2.5).Equals(At(1.5, 2.5)))
	assert.False(t, At(1.5, 2.5).Equals(At(1.6, 2.5)))
	assert.False(t, At(1.5, 2.5).Equals(At(1.5, 2.6)))
	assert.True(t, At(1, 2).Equals(At(1+1e-10, 2+1e-10)), "within epsilon")
	assert.False(t, At(1, 2).Equals(At(1+1e-8, 2)), "outside epsilon")
}

func TestPosition_Arithmetic(t *testing.T) {
	p := At(100, 50)

	assert.True(t, p.Translate(-25, 10).Equals(At(75, 60)))
	assert.True(t, p.Sub(At(40, 20)).Equals(At(60, 30)))
	assert.True(t, p.DivideBy(2).Equals(At(50, 25)))
	assert.True(t, p.DivideBy(0).Equals(p), "non-positive factor is ignored")
	assert.True(t, p.Midpoint(At(0, 0)).Equals(At(50, 25)))
}

func TestPosition_Clamp(t *testing.T) {
	assert.True(t, At(-10, 20).ClampMin(At(0, 0)).Equals(At(0, 20)))
	assert.True(t, At(10, -20).ClampMin(At(0, 0)).Equals(At(10, 0)))
	assert.True(t, At(900, 20).ClampMax(At(800, 600)).Equals(At(800, 20)))
	assert.True(t, At(5, 5).ClampMin(At(0, 0)).ClampMax(At(10, 10)).Equals(At(5, 5)))
}

func TestPosition_JSON(t *testing.T) {
	t.Run("marshals to x/y object", func(t *testing.T) {
		data, err := json.Marshal(At(12.5, 40))
		require.NoError(t, err)
		assert.JSONEq(t, `{"x":12.5,"y":40}`, string(data))
	})

	t.Run("unmarshals x/y object", func(t *testing.T) {
		var p Position
		require.NoError(t, json.Unmarshal([]byte(`{"x":3,"y":4}`), &p))
		assert.True(t, p.Equals(At(3, 4)))
	})

	t.Run("optional pointer stays nil when absent", func(t *testing.T) {
		var holder struct {
			Position *Position `json:"position,omitempty"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{}`), &holder))
		assert.Nil(t, holder.Position)
	})

	t.Run("rejects non-object", func(t *testing.T) {
		var p Position
		assert.Error(t, json.Unmarshal([]byte(`"12,40"`), &p))
	})
}
