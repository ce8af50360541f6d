package formation

import (
	"regexp"
	"strings"

	"github.com/travigo/formation/pkg/ctdf"
)

const statusChars = "->=%"

var (
	familyPattern     = regexp.MustCompile(`F[AZ]`)
	restaurantPattern = regexp.MustCompile(`W[12R]`)

	ordinalPattern     = regexp.MustCompile(`[,:](\d{1,3})(?:[:#]|$|[)])`)
	ordinalPairPattern = regexp.MustCompile(`(\d{1,3}):(\d{1,3})`)

	classOrdinalPattern = regexp.MustCompile(`^([12])(?::|\):|,:|@:)\d`)
	firstClassPattern   = regexp.MustCompile(`(?:^|[,@(])1`)
	secondClassPattern  = regexp.MustCompile(`(?:^|[,@(])2`)
	bothClassesPattern  = regexp.MustCompile(`(?:^|[,@(])12`)

	enclosureRemover = strings.NewReplacer("[", "", "]", "", "(", "", ")", "")
)

// DecodeVehicle turns a single wagon token into a wagon. It returns nil only for a blank token.
func DecodeVehicle(token string, sector string, position int) *ctdf.FormationWagon {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	preserved := stripStatus(stripOnce(stripStatus(token), '[', ']'))
	cleaned := stripStatus(stripOnce(preserved, '(', ')'))
	head, offers, _ := strings.Cut(cleaned, "#")

	code, wagonType := decodeType(cleaned)
	family := familyPattern.MatchString(code) || familyPattern.MatchString(head)

	wagon := &ctdf.FormationWagon{
		Position:  position,
		Number:    decodeNumber(token),
		Type:      wagonType,
		TypeCode:  code,
		TypeLabel: typeLabel(wagonType),
		Classes:   decodeClasses(preserved, family),
		Status:    decodeStatus(token),
		Sector:    sector,

		NoAccessToPrevious: strings.HasPrefix(preserved, "(") || strings.HasPrefix(token, "("),
		NoAccessToNext:     strings.HasSuffix(preserved, ")") || strings.HasSuffix(token, ")"),
	}
	wagon.Attributes = decodeAttributes(token, head, offers, family)

	return wagon
}

func stripStatus(token string) string {
	return strings.TrimLeft(token, statusChars)
}

func stripOnce(token string, open, close byte) string {
	if len(token) > 0 && token[0] == open {
		token = token[1:]
	}
	if len(token) > 0 && token[len(token)-1] == close {
		token = token[:len(token)-1]
	}

	return token
}

func decodeStatus(token string) []ctdf.WagonStatus {
	if strings.HasPrefix(token, "-") || strings.Contains(token, "(-") || strings.Contains(token, "@-") {
		return []ctdf.WagonStatus{ctdf.WagonStatusClosed}
	}

	status := []ctdf.WagonStatus{}
	if strings.Contains(token, ">") {
		status = append(status, ctdf.WagonStatusGroupBoarding)
	}
	if strings.Contains(token, "=") {
		status = append(status, ctdf.WagonStatusReservedForTransit)
	}
	if strings.Contains(token, "%") {
		status = append(status, ctdf.WagonStatusUnserviced)
	}

	return status
}

func decodeType(cleaned string) (string, string) {
	for _, candidate := range typeCodes {
		if candidate.anchored.MatchString(cleaned) {
			return candidate.Code, candidate.Type
		}
	}

	for _, candidate := range typeCodes {
		if strings.Contains(cleaned, candidate.Code) {
			return candidate.Code, candidate.Type
		}
	}

	return "", ctdf.WagonTypeWagon
}

func decodeNumber(token string) string {
	bare := enclosureRemover.Replace(token)

	if match := ordinalPattern.FindStringSubmatch(bare); match != nil {
		return match[1]
	}
	if match := ordinalPairPattern.FindStringSubmatch(bare); match != nil {
		return match[2]
	}

	return ""
}

func decodeClasses(preserved string, family bool) []string {
	if family {
		return []string{"2"}
	}

	stripped := stripStatus(stripOnce(stripOnce(preserved, '[', ']'), '(', ')'))

	if match := classOrdinalPattern.FindStringSubmatch(stripped); match != nil {
		return []string{match[1]}
	}

	switch {
	case strings.Contains(stripped, "WR"):
		return []string{"2"}
	case strings.Contains(stripped, "W1"):
		return []string{"1"}
	case strings.Contains(stripped, "W2"):
		return []string{"2"}
	}

	both := bothClassesPattern.MatchString(stripped)
	classes := []string{}
	if both || firstClassPattern.MatchString(stripped) {
		classes = append(classes, "1")
	}
	if both || secondClassPattern.MatchString(stripped) {
		classes = append(classes, "2")
	}

	return classes
}

func decodeAttributes(token string, head string, offers string, family bool) []*ctdf.WagonAttribute {
	attributes := []*ctdf.WagonAttribute{}

	if family {
		attributes = appendAttribute(attributes, newAttribute("FZ", false))
	}
	if strings.Contains(head, "D") {
		attributes = appendAttribute(attributes, newAttribute("LA", false))
	}
	if strings.Contains(head, "WL") {
		attributes = appendAttribute(attributes, newAttribute("WL", false))
	}
	if strings.Contains(head, "CC") {
		attributes = appendAttribute(attributes, newAttribute("CC", false))
	}
	if restaurantPattern.MatchString(head) && !strings.Contains(token, "%") {
		attributes = appendAttribute(attributes, newAttribute("WR", false))
	}

	for _, code := range parseOfferCodes(offers) {
		attributes = appendAttribute(attributes, newAttribute(code, true))
	}

	return attributes
}

// parseOfferCodes splits a ';' separated offer list, dropping anything that is not letters.
func parseOfferCodes(offers string) []string {
	var codes []string

	for _, part := range strings.Split(offers, ";") {
		code := strings.TrimFunc(part, func(r rune) bool {
			return r < 'A' || r > 'Z'
		})
		if code != "" {
			codes = append(codes, code)
		}
	}

	return codes
}

func appendAttribute(attributes []*ctdf.WagonAttribute, attribute *ctdf.WagonAttribute) []*ctdf.WagonAttribute {
	if attribute == nil {
		return attributes
	}

	for _, existing := range attributes {
		if existing.Code == attribute.Code {
			return attributes
		}
	}

	return append(attributes, attribute)
}
