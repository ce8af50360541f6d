// Package formation decodes the compact formation strings published for Swiss trains into sectors
// and wagons.
//
// The encoding has no formal grammar. Decoding never fails: blank input gives no sections and
// anything unrecognised is skipped. Every call works on its own state, so calls may run
// concurrently.
package formation

import (
	"strings"

	"github.com/travigo/formation/pkg/ctdf"
)

// Decode parses a formation string into its sections, ordered by the first appearance of each
// sector. Wagon positions are contiguous from 0 across all sections.
func Decode(formation string) []*ctdf.FormationSection {
	if strings.TrimSpace(formation) == "" {
		return []*ctdf.FormationSection{}
	}

	processor := &segmentProcessor{
		sections: newSectionAssembler(),
	}
	for _, seg := range splitSegments(formation) {
		processor.process(seg)
	}

	sections := processor.sections.Sections()
	Finalize(sections)

	return sections
}
