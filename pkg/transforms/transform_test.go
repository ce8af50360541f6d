package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/formation/pkg/ctdf"
)

const sampleTransforms = `
- type: ctdf.WagonAttribute
  match:
    Code: VH
  data:
    Label: Rollstuhlplätze
- match:
    Type: restaurant
  data:
    TypeLabel: Speisewagen
`

func sampleSections() []*ctdf.FormationSection {
	return []*ctdf.FormationSection{
		{
			Sector: "A",
			Wagons: []*ctdf.FormationWagon{
				{
					Type:      ctdf.WagonTypeWagon,
					TypeLabel: "Coach",
					Attributes: []*ctdf.WagonAttribute{
						{Code: "VH", Label: "Wheelchair spaces"},
						{Code: "BZ", Label: "Business zone"},
					},
				},
				{
					Type:      ctdf.WagonTypeRestaurant,
					TypeLabel: "Restaurant car",
				},
			},
		},
	}
}

func TestTransform(t *testing.T) {
	require.NoError(t, Load([]byte(sampleTransforms)))
	defer Load([]byte("[]"))

	assert.Equal(t, 2, Count())

	sections := sampleSections()
	Transform(sections)

	wagons := sections[0].Wagons
	assert.Equal(t, "Rollstuhlplätze", wagons[0].Attributes[0].Label)
	assert.Equal(t, "Business zone", wagons[0].Attributes[1].Label)
	assert.Equal(t, "Coach", wagons[0].TypeLabel)
	assert.Equal(t, "Speisewagen", wagons[1].TypeLabel)
}

func TestTransformWithoutDefinitions(t *testing.T) {
	require.NoError(t, Load([]byte("[]")))

	sections := sampleSections()
	Transform(sections)

	assert.Equal(t, sampleSections(), sections)
}

func TestLoadInvalid(t *testing.T) {
	assert.Error(t, Load([]byte("- match: [")))
}
