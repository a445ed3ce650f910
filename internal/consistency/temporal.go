package consistency

import (
	"regexp"
	"strconv"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/textutil"
)

// Fixed regex set for year and date references.
var (
	yearPattern      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	monthYearPattern = regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(19|20)\d{2}\b`)
)

// dateRef is one dated statement: the sentence and the year it mentions.
type dateRef struct {
	sentence string
	year     int
}

// CheckTemporalConsistency extracts dated statements and pairs those whose
// sentences share at least 30% of their words. A pair describing what looks
// like the same event more than 365 days apart is flagged.
func CheckTemporalConsistency(sections []document.Section) Check {
	var refs []dateRef
	for _, sec := range sections {
		for _, sent := range textutil.Sentences(sec.Content) {
			year := extractYear(sent)
			if year > 0 {
				refs = append(refs, dateRef{sentence: sent, year: year})
			}
		}
	}

	var found []Inconsistency
	for i := 0; i < len(refs); i++ {
		for j := i + 1; j < len(refs); j++ {
			if textutil.WordOverlapRatio(refs[i].sentence, refs[j].sentence) < 0.3 {
				continue
			}
			diff := refs[i].year - refs[j].year
			if diff < 0 {
				diff = -diff
			}
			if diff*365 > 365 {
				found = append(found, Inconsistency{
					FirstOccurrence:     refs[i].sentence,
					SecondOccurrence:    refs[j].sentence,
					SuggestedCorrection: "confirm the correct date for this event",
				})
			}
		}
	}
	return finish(CheckTemporal, found)
}

// extractYear returns the first year mentioned in the sentence, preferring a
// month-qualified date over a bare year. Zero means no date reference.
func extractYear(sentence string) int {
	if m := monthYearPattern.FindString(sentence); m != "" {
		if y := yearPattern.FindString(m); y != "" {
			n, _ := strconv.Atoi(y)
			return n
		}
	}
	if y := yearPattern.FindString(sentence); y != "" {
		n, _ := strconv.Atoi(y)
		return n
	}
	return 0
}
