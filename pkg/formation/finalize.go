package formation

import "github.com/travigo/formation/pkg/ctdf"

const (
	noPassageNextMessage     = "No passage to next coach"
	noPassagePreviousMessage = "No passage to previous coach"
)

// Finalize renumbers the wagons of all sections 0..N-1 in written order and settles the passage
// flags between neighbours. It is the only place positions are rewritten.
func Finalize(sections []*ctdf.FormationSection) {
	var wagons []*ctdf.FormationWagon
	for _, section := range sections {
		wagons = append(wagons, section.Wagons...)
	}

	for i, wagon := range wagons {
		wagon.Position = i

		if wagon.IsLocomotive() {
			wagon.Status = []ctdf.WagonStatus{}
		}

		refreshPassageMessage(wagon)
	}

	for i := 1; i < len(wagons); i++ {
		previous, current := wagons[i-1], wagons[i]

		if previous.IsLocomotive() || current.IsLocomotive() {
			clearPassage(previous)
			clearPassage(current)
			continue
		}

		if previous.NoAccessToNext || current.NoAccessToPrevious {
			previous.NoAccessToNext = true
			current.NoAccessToPrevious = true

			if previous.NoAccessMessage == "" {
				previous.NoAccessMessage = noPassageNextMessage
			}
			if current.NoAccessMessage == "" {
				current.NoAccessMessage = noPassagePreviousMessage
			}
		}
	}

	// A later pair can re-raise a flag on a wagon that an earlier locomotive pair cleared, so the
	// locomotive neighbourhoods are settled once more over the final flags.
	for i, wagon := range wagons {
		if !wagon.IsLocomotive() {
			continue
		}

		for j := i - 1; j <= i+1; j++ {
			if j >= 0 && j < len(wagons) {
				clearPassage(wagons[j])
			}
		}

		if i-2 >= 0 && !wagons[i-2].IsLocomotive() {
			wagons[i-2].NoAccessToNext = false
			refreshPassageMessage(wagons[i-2])
		}
		if i+2 < len(wagons) && !wagons[i+2].IsLocomotive() {
			wagons[i+2].NoAccessToPrevious = false
			refreshPassageMessage(wagons[i+2])
		}
	}
}

func clearPassage(wagon *ctdf.FormationWagon) {
	wagon.NoAccessToPrevious = false
	wagon.NoAccessToNext = false
	wagon.NoAccessMessage = ""
}

// refreshPassageMessage keeps the message in line with whichever flags are still raised.
func refreshPassageMessage(wagon *ctdf.FormationWagon) {
	switch {
	case !wagon.NoAccessToPrevious && !wagon.NoAccessToNext:
		wagon.NoAccessMessage = ""
	case wagon.NoAccessMessage == noPassageNextMessage && !wagon.NoAccessToNext:
		wagon.NoAccessMessage = noPassagePreviousMessage
	case wagon.NoAccessMessage == noPassagePreviousMessage && !wagon.NoAccessToPrevious:
		wagon.NoAccessMessage = noPassageNextMessage
	case wagon.NoAccessMessage == "" && wagon.NoAccessToNext:
		wagon.NoAccessMessage = noPassageNextMessage
	case wagon.NoAccessMessage == "":
		wagon.NoAccessMessage = noPassagePreviousMessage
	}
}
