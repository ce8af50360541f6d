package formation

import "github.com/travigo/formation/pkg/ctdf"

// sectionAssembler groups wagons by sector, remembering the order each sector was first seen.
type sectionAssembler struct {
	order  []string
	wagons map[string][]*ctdf.FormationWagon
}

func newSectionAssembler() *sectionAssembler {
	return &sectionAssembler{
		wagons: map[string][]*ctdf.FormationWagon{},
	}
}

func (a *sectionAssembler) Touch(sector string) {
	if _, seen := a.wagons[sector]; seen {
		return
	}

	a.order = append(a.order, sector)
	a.wagons[sector] = []*ctdf.FormationWagon{}
}

func (a *sectionAssembler) Add(wagons ...*ctdf.FormationWagon) {
	for _, wagon := range wagons {
		a.Touch(wagon.Sector)
		a.wagons[wagon.Sector] = append(a.wagons[wagon.Sector], wagon)
	}
}

// Sections returns the non-empty sections in first-seen order.
func (a *sectionAssembler) Sections() []*ctdf.FormationSection {
	sections := []*ctdf.FormationSection{}

	for _, sector := range a.order {
		if len(a.wagons[sector]) == 0 {
			continue
		}

		sections = append(sections, &ctdf.FormationSection{
			Sector: sector,
			Wagons: a.wagons[sector],
		})
	}

	return sections
}
