package consistency

import (
	"fmt"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/textutil"
)

// CheckStyleConsistency counts formal and informal marker words per section
// and flags the document when both registers appear anywhere in it.
func CheckStyleConsistency(sections []document.Section, lex *lexicon.Lexicon) Check {
	var firstFormal, firstInformal string
	formalTotal, informalTotal := 0, 0

	for _, sec := range sections {
		formal := textutil.CountAnyWord(sec.Content, lex.FormalMarkers)
		informal := textutil.CountAnyWord(sec.Content, lex.InformalMarkers)
		formalTotal += formal
		informalTotal += informal
		if formal > 0 && firstFormal == "" {
			firstFormal = sec.Title
		}
		if informal > 0 && firstInformal == "" {
			firstInformal = sec.Title
		}
	}

	if formalTotal == 0 || informalTotal == 0 {
		return finish(CheckStyle, nil)
	}

	found := []Inconsistency{{
		FirstOccurrence: fmt.Sprintf(
			"formal language in %q (%d markers)", firstFormal, formalTotal),
		SecondOccurrence: fmt.Sprintf(
			"informal language in %q (%d markers)", firstInformal, informalTotal),
		SuggestedCorrection: "standardize on a single register across sections",
	}}
	c := finish(CheckStyle, found)
	// Both registers present is a mixed verdict rather than a flat fail.
	c.Result = ResultMixed
	return c
}
