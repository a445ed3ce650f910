package consistency

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/textutil"
)

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// unitTokens are the unit markers searched for near a number.
var unitTokens = []string{
	"%", "percent", "usd", "eur", "dollars", "million", "billion",
	"thousand", "kg", "km", "miles", "hours", "days", "weeks", "months",
	"years", "users", "customers", "employees",
}

// unitWindow is the character window scanned on each side of a number for a
// unit token.
const unitWindow = 10

// numberRef is a number with its unit and surrounding sentence.
type numberRef struct {
	value    float64
	unit     string
	sentence string
}

// CheckNumericalConsistency extracts numbers carrying a unit token within a
// +/-10 character window and pairs same-unit numbers whose sentences share
// at least two words. Pairs differing by more than 10% are flagged.
func CheckNumericalConsistency(sections []document.Section) Check {
	var refs []numberRef
	for _, sec := range sections {
		for _, sent := range textutil.Sentences(sec.Content) {
			refs = append(refs, extractNumbers(sent)...)
		}
	}

	var found []Inconsistency
	for i := 0; i < len(refs); i++ {
		for j := i + 1; j < len(refs); j++ {
			a, b := refs[i], refs[j]
			if a.unit != b.unit {
				continue
			}
			if textutil.SharedWords(a.sentence, b.sentence) < 2 {
				continue
			}
			if relativeDiff(a.value, b.value) <= 0.10 {
				continue
			}
			found = append(found, Inconsistency{
				FirstOccurrence:  a.sentence,
				SecondOccurrence: b.sentence,
				SuggestedCorrection: fmt.Sprintf(
					"reconcile the %s figures (%g vs %g)", a.unit, a.value, b.value),
				PercentDiff: percentDiff(a.value, b.value),
			})
		}
	}
	return finish(CheckNumerical, found)
}

// extractNumbers finds every number in a sentence that has a unit token
// within the window, in left-to-right order.
func extractNumbers(sentence string) []numberRef {
	var refs []numberRef
	lower := strings.ToLower(sentence)
	for _, loc := range numberPattern.FindAllStringIndex(lower, -1) {
		value, err := strconv.ParseFloat(lower[loc[0]:loc[1]], 64)
		if err != nil {
			continue
		}
		start := loc[0] - unitWindow
		if start < 0 {
			start = 0
		}
		end := loc[1] + unitWindow
		if end > len(lower) {
			end = len(lower)
		}
		window := lower[start:end]
		for _, unit := range unitTokens {
			if strings.Contains(window, unit) {
				refs = append(refs, numberRef{value: value, unit: unit, sentence: sentence})
				break
			}
		}
	}
	return refs
}

// relativeDiff is |a-b| over the larger magnitude, the flagging measure.
func relativeDiff(a, b float64) float64 {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	max := a
	if b > max {
		max = b
	}
	if max == 0 {
		return 0
	}
	return diff / max
}

// percentDiff is the reported figure: the larger value's share of the pair's
// sum, as a percentage. For 10 vs 25 this reports 71.4.
func percentDiff(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}
	max := a
	if b > max {
		max = b
	}
	return max / (a + b) * 100
}
