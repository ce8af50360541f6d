package formation

import (
	"regexp"
	"strings"

	"github.com/travigo/formation/pkg/ctdf"
)

var (
	sectorMarkerPattern = regexp.MustCompile(`@[A-Z]`)
	separatorReplacer   = strings.NewReplacer("\\", ",")
)

type segment struct {
	Sector string
	Body   string
}

// splitSegments cuts the formation immediately before every sector marker. Text ahead of the first
// marker belongs to the default (blank) sector.
func splitSegments(formation string) []segment {
	markers := sectorMarkerPattern.FindAllStringIndex(formation, -1)
	if len(markers) == 0 {
		return []segment{{Body: unwrapOutermost(formation)}}
	}

	var segments []segment
	if markers[0][0] > 0 {
		segments = append(segments, segment{Body: formation[:markers[0][0]]})
	}

	for i, marker := range markers {
		end := len(formation)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		segments = append(segments, segment{
			Sector: formation[marker[0]+1 : marker[1]],
			Body:   formation[marker[1]:end],
		})
	}

	return segments
}

// unwrapOutermost drops the enclosing brackets when one group spans the whole formation.
func unwrapOutermost(formation string) string {
	trimmed := strings.TrimSpace(formation)

	start, end, ok := findGroup(trimmed, '[', ']')
	if ok && start == 0 && end == len(trimmed)-1 {
		return trimmed[1:end]
	}

	return formation
}

type segmentProcessor struct {
	position int
	sections *sectionAssembler
}

func (p *segmentProcessor) process(seg segment) {
	p.sections.Touch(seg.Sector)

	groups, rest := drainGroups(seg.Body, '[', ']')
	for _, group := range groups {
		var wagons []*ctdf.FormationWagon
		wagons, p.position = DecodeGroup(group, seg.Sector, p.position)

		p.sections.Add(wagons...)
	}

	for _, part := range strings.Split(separatorReplacer.Replace(rest), ",") {
		part = strings.TrimSpace(part)

		switch {
		case part == "":
			continue
		case part == "F":
			p.position++
		case IsPotentialWagon(part):
			if wagon := DecodeVehicle(part, seg.Sector, p.position); wagon != nil {
				p.sections.Add(wagon)
			}
			p.position++
		}
	}
}
