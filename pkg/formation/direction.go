package formation

import (
	"github.com/travigo/formation/pkg/ctdf"
	"github.com/travigo/formation/pkg/util"
	"golang.org/x/exp/slices"
)

// VisualSectors lists the sectors that carry wagons, in the order they are written.
func VisualSectors(formation string) []string {
	var sectors []string

	for _, section := range Decode(formation) {
		sectors = append(sectors, section.Sector)
	}

	return util.RemoveDuplicateStrings(sectors, nil)
}

// ResolveDirection derives the travel direction from where the first vehicle stands. Only the edge
// sectors are considered: a vehicle strictly inside three or more sectors is always unknown.
func ResolveDirection(formation string, vehicleSectors string) ctdf.TravelDirection {
	visual := VisualSectors(formation)
	if len(visual) == 0 {
		return ctdf.TravelDirectionUnknown
	}

	sectors := util.SplitAndTrim(vehicleSectors, ",")
	if len(sectors) == 0 {
		return ctdf.TravelDirectionUnknown
	}

	if slices.Contains(sectors, visual[0]) {
		return ctdf.TravelDirectionLeft
	}
	if slices.Contains(sectors, visual[len(visual)-1]) {
		return ctdf.TravelDirectionRight
	}

	return ctdf.TravelDirectionUnknown
}
