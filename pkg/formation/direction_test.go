package formation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/formation/pkg/ctdf"
)

func TestVisualSectors(t *testing.T) {
	assert.Equal(t, []string{"A", "C", "B"}, VisualSectors("@A[1:1]@C[2:2]@B[2:3]"))
	assert.Equal(t, []string{"A", "B"}, VisualSectors("@A[1:1]@X@B[2:3]"))
	assert.Empty(t, VisualSectors("[1:1,2:2]"))
	assert.Empty(t, VisualSectors(""))
}

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		name           string
		formation      string
		vehicleSectors string
		expected       ctdf.TravelDirection
	}{
		{
			name:           "last written sector, not alphabetical",
			formation:      "@A[1:1]@C[2:2]@B[2:3]",
			vehicleSectors: "B",
			expected:       ctdf.TravelDirectionRight,
		},
		{
			name:           "first written sector",
			formation:      "@A[1:1]@C[2:2]@B[2:3]",
			vehicleSectors: "A",
			expected:       ctdf.TravelDirectionLeft,
		},
		{
			name:           "interior sector is unknown",
			formation:      "@A[1:1]@C[2:2]@B[2:3]",
			vehicleSectors: "C",
			expected:       ctdf.TravelDirectionUnknown,
		},
		{
			name:           "vehicle spanning sectors with padding",
			formation:      "@A[1:1]@B[2:2]",
			vehicleSectors: " B , A ",
			expected:       ctdf.TravelDirectionLeft,
		},
		{
			name:           "single sector",
			formation:      "@D[LK,2:1]",
			vehicleSectors: "D",
			expected:       ctdf.TravelDirectionLeft,
		},
		{
			name:           "blank vehicle sectors",
			formation:      "@A[1:1]@B[2:2]",
			vehicleSectors: " , ",
			expected:       ctdf.TravelDirectionUnknown,
		},
		{
			name:           "no sectors in formation",
			formation:      "[1:1,2:2]",
			vehicleSectors: "A",
			expected:       ctdf.TravelDirectionUnknown,
		},
		{
			name:           "blank formation",
			formation:      "",
			vehicleSectors: "A",
			expected:       ctdf.TravelDirectionUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDirection(tt.formation, tt.vehicleSectors))
		})
	}
}
