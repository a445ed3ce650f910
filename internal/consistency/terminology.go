package consistency

import (
	"fmt"
	"strings"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/textutil"
)

// suffixes are stripped longest-first to derive a word's base form.
var suffixes = []string{
	"izations", "ization", "isations", "isation", "ments", "ment",
	"tions", "tion", "ings", "ing", "ies", "ers", "er", "ed", "es", "s",
}

// baseForm strips one known suffix, keeping at least four characters so
// short words never collapse into spurious groups.
func baseForm(word string) string {
	for _, suf := range suffixes {
		if strings.HasSuffix(word, suf) && len(word)-len(suf) >= 4 {
			return word[:len(word)-len(suf)]
		}
	}
	return word
}

// CheckTerminologyConsistency groups content words by suffix-stripped base
// form and reports every pairwise combination of variants sharing a base.
// Impact grades by count: more than three findings is high, any is medium.
func CheckTerminologyConsistency(sections []document.Section) Check {
	type variant struct {
		word  string
		count int
	}
	type group struct {
		variants []*variant
		byWord   map[string]*variant
	}

	groups := make(map[string]*group)
	var order []string // bases in first-seen order

	for _, sec := range sections {
		for _, w := range textutil.ContentWords(sec.Title+" "+sec.Content, 3) {
			base := baseForm(w)
			g, ok := groups[base]
			if !ok {
				g = &group{byWord: make(map[string]*variant)}
				groups[base] = g
				order = append(order, base)
			}
			v, ok := g.byWord[w]
			if !ok {
				v = &variant{word: w}
				g.byWord[w] = v
				g.variants = append(g.variants, v)
			}
			v.count++
		}
	}

	var found []Inconsistency
	for _, base := range order {
		g := groups[base]
		if len(g.variants) < 2 {
			continue
		}
		// The most frequent variant (first seen on ties) is the suggestion.
		preferred := g.variants[0]
		for _, v := range g.variants[1:] {
			if v.count > preferred.count {
				preferred = v
			}
		}
		for i := 0; i < len(g.variants); i++ {
			for j := i + 1; j < len(g.variants); j++ {
				found = append(found, Inconsistency{
					FirstOccurrence:  g.variants[i].word,
					SecondOccurrence: g.variants[j].word,
					SuggestedCorrection: fmt.Sprintf(
						"use %q consistently", preferred.word),
				})
			}
		}
	}

	c := Check{Type: CheckTerminology, Inconsistencies: found}
	switch {
	case len(found) == 0:
		c.Result = ResultConsistent
		c.Impact = ImpactLow
	case len(found) > 3:
		c.Result = ResultInconsistent
		c.Impact = ImpactHigh
	default:
		c.Result = ResultInconsistent
		c.Impact = ImpactMedium
	}
	return c
}
