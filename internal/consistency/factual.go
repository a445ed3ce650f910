package consistency

import (
	"strings"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/textutil"
)

var negationWords = []string{"not", "no", "never", "cannot", "without"}

// CheckFactualConsistency extracts statements (sentences containing digits or
// strong verbs) and scans ascending pairs for contradictions: a negation
// mismatch over heavily overlapping statements, or opposing absolutes
// (always/never, all/none).
func CheckFactualConsistency(sections []document.Section, lex *lexicon.Lexicon) Check {
	var statements []string
	for _, sec := range sections {
		for _, sent := range textutil.Sentences(sec.Content) {
			if textutil.HasDigit(sent) || textutil.CountAnyWord(sent, lex.StrongVerbs) > 0 {
				statements = append(statements, sent)
			}
		}
	}

	var found []Inconsistency
	for i := 0; i < len(statements); i++ {
		for j := i + 1; j < len(statements); j++ {
			if contradicts(statements[i], statements[j]) {
				found = append(found, Inconsistency{
					FirstOccurrence:     statements[i],
					SecondOccurrence:    statements[j],
					SuggestedCorrection: "verify which statement is accurate and align the other",
				})
			}
		}
	}
	return finish(CheckFactual, found)
}

func contradicts(a, b string) bool {
	overlap := textutil.WordOverlapRatio(a, b)

	negA := textutil.CountAnyWord(a, negationWords) > 0
	negB := textutil.CountAnyWord(b, negationWords) > 0
	if negA != negB && overlap >= 0.6 {
		return true
	}

	if opposingAbsolutes(a, b, "always", "never") && overlap >= 0.5 {
		return true
	}
	if opposingAbsolutes(a, b, "all", "none") && overlap >= 0.5 {
		return true
	}
	return false
}

func opposingAbsolutes(a, b, first, second string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return (textutil.ContainsWord(la, first) && textutil.ContainsWord(lb, second)) ||
		(textutil.ContainsWord(la, second) && textutil.ContainsWord(lb, first))
}
