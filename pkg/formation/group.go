package formation

import (
	"regexp"

	"github.com/travigo/formation/pkg/ctdf"
)

const groupNoPassageMessage = "No passage to the neighbouring coach possible"

var (
	groupOffersPattern = regexp.MustCompile(`[\])](?::\d+)?#([A-Z]+(?:;[A-Z]+)*)$`)
	passageSpanPattern = regexp.MustCompile(`\(.*?\)`)
)

// DecodeGroup decodes the content of one bracket group. Every vehicle or fictitious token consumes a
// position starting at position; the returned int is the next free position.
func DecodeGroup(content string, sector string, position int) ([]*ctdf.FormationWagon, int) {
	var groupOffers []string
	if match := groupOffersPattern.FindStringSubmatchIndex(content); match != nil {
		groupOffers = parseOfferCodes(content[match[2]:match[3]])
		content = content[:match[0]+1]
	}

	wagons := []*ctdf.FormationWagon{}

	for _, token := range Tokenize(content) {
		switch token.Kind {
		case TokenSector:
			sector = token.Value[1:]
		case TokenFictitiousWagon:
			position++
		case TokenVehicle:
			if wagon := DecodeVehicle(token.Value, sector, position); wagon != nil {
				wagons = append(wagons, wagon)
			}
			position++
		}
	}

	if len(wagons) == 0 {
		return wagons, position
	}

	// Only real wagons are in the list, so a trailing fictitious token never receives the offers.
	last := wagons[len(wagons)-1]
	for _, code := range groupOffers {
		last.Attributes = appendAttribute(last.Attributes, newAttribute(code, true))
	}

	if span := passageSpanPattern.FindStringIndex(content); span != nil {
		if span[0] == 0 {
			wagons[0].NoAccessToPrevious = true
			wagons[0].NoAccessMessage = groupNoPassageMessage
		}
		if span[1] == len(content) {
			last.NoAccessToNext = true
			last.NoAccessMessage = groupNoPassageMessage
		}
	}

	return wagons, position
}
