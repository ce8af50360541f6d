package formation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGroupParenthesisedGroup(t *testing.T) {
	wagons, next := DecodeGroup("(LK,2:1,2:2)", "A", 0)
	require.Len(t, wagons, 3)

	assert.Equal(t, 3, next)
	assert.Equal(t, []int{0, 1, 2}, []int{wagons[0].Position, wagons[1].Position, wagons[2].Position})

	assert.True(t, wagons[0].NoAccessToPrevious)
	assert.Equal(t, groupNoPassageMessage, wagons[0].NoAccessMessage)
	assert.False(t, wagons[1].NoAccessToPrevious)
	assert.False(t, wagons[1].NoAccessToNext)
	assert.True(t, wagons[2].NoAccessToNext)
	assert.Equal(t, groupNoPassageMessage, wagons[2].NoAccessMessage)
}

func TestDecodeGroupPartialParenthesis(t *testing.T) {
	wagons, _ := DecodeGroup("(1:1,1:2),2:3", "", 5)
	require.Len(t, wagons, 3)

	assert.Equal(t, 5, wagons[0].Position)
	assert.True(t, wagons[0].NoAccessToPrevious)
	assert.False(t, wagons[2].NoAccessToNext)
}

func TestDecodeGroupOffersPatchLastWagon(t *testing.T) {
	wagons, _ := DecodeGroup("(2:1,2:2):3#VH;BHP", "", 0)
	require.Len(t, wagons, 2)

	assert.Empty(t, wagons[0].Attributes)
	assert.Equal(t, []string{"VH", "BHP"}, attributeCodes(wagons[1]))
	assert.True(t, wagons[1].NoAccessToNext)
}

func TestDecodeGroupOffersSkipTrailingFictitious(t *testing.T) {
	wagons, next := DecodeGroup("(2:1,F)#VH", "", 0)
	require.Len(t, wagons, 1)

	assert.Equal(t, 2, next)
	assert.Equal(t, []string{"VH"}, attributeCodes(wagons[0]))
}

func TestDecodeGroupOffersAreDeduplicated(t *testing.T) {
	wagons, _ := DecodeGroup("(1:1,2:2#VH)#VH;NF", "", 0)
	require.Len(t, wagons, 2)

	assert.Equal(t, []string{"VH", "NF"}, attributeCodes(wagons[1]))
}

func TestDecodeGroupFictitiousConsumesPosition(t *testing.T) {
	wagons, next := DecodeGroup("1:1,F,2:2", "", 0)
	require.Len(t, wagons, 2)

	assert.Equal(t, 0, wagons[0].Position)
	assert.Equal(t, 2, wagons[1].Position)
	assert.Equal(t, 3, next)
}

func TestDecodeGroupSectorChange(t *testing.T) {
	wagons, _ := DecodeGroup("1:1,@B2:2", "A", 0)
	require.Len(t, wagons, 2)

	assert.Equal(t, "A", wagons[0].Sector)
	assert.Equal(t, "B", wagons[1].Sector)
}

func TestDecodeGroupIgnoresUnknownTokens(t *testing.T) {
	wagons, next := DecodeGroup("1:1,zz,2:2", "", 0)
	require.Len(t, wagons, 2)

	assert.Equal(t, 2, next)
}

func TestDecodeGroupEmpty(t *testing.T) {
	wagons, next := DecodeGroup("", "A", 7)

	assert.Empty(t, wagons)
	assert.Equal(t, 7, next)
}
