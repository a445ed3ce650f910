// Package consistency runs six independent pairwise checks over a section
// list: terminology, formatting, style, factual, temporal, and numerical.
// Every check is a pure function over the sections; all pairwise scans
// iterate in ascending index order so repeated runs report identical,
// identically-ordered inconsistency lists.
package consistency

import (
	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
)

// CheckType identifies one of the six checks.
type CheckType string

const (
	CheckTerminology CheckType = "terminology"
	CheckFormatting  CheckType = "formatting"
	CheckStyle       CheckType = "style"
	CheckFactual     CheckType = "factual"
	CheckTemporal    CheckType = "temporal"
	CheckNumerical   CheckType = "numerical"
)

// Result is the overall verdict of one check.
type Result string

const (
	ResultConsistent   Result = "consistent"
	ResultInconsistent Result = "inconsistent"
	ResultMixed        Result = "mixed"
)

// Impact grades how much a check's findings matter.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Inconsistency is one conflicting pair of occurrences.
type Inconsistency struct {
	FirstOccurrence     string  `json:"first_occurrence"`
	SecondOccurrence    string  `json:"second_occurrence"`
	SuggestedCorrection string  `json:"suggested_correction"`
	PercentDiff         float64 `json:"percent_diff,omitempty"`
}

// Check is the result of one consistency check.
type Check struct {
	Type            CheckType       `json:"type"`
	Result          Result          `json:"result"`
	Inconsistencies []Inconsistency `json:"inconsistencies,omitempty"`
	Impact          Impact          `json:"impact"`
}

// fixedImpact is the per-type impact applied when a check finds anything.
// Terminology grades by count instead (see terminologyImpact).
var fixedImpact = map[CheckType]Impact{
	CheckFormatting: ImpactLow,
	CheckStyle:      ImpactLow,
	CheckFactual:    ImpactHigh,
	CheckTemporal:   ImpactMedium,
	CheckNumerical:  ImpactHigh,
}

// RunAll executes the six checks in their fixed order.
func RunAll(sections []document.Section, lex *lexicon.Lexicon) []Check {
	return []Check{
		CheckTerminologyConsistency(sections),
		CheckFormattingConsistency(sections),
		CheckStyleConsistency(sections, lex),
		CheckFactualConsistency(sections, lex),
		CheckTemporalConsistency(sections),
		CheckNumericalConsistency(sections),
	}
}

// finish assembles a Check from its findings, applying the fixed impact
// table and the empty-findings defaults.
func finish(t CheckType, found []Inconsistency) Check {
	c := Check{Type: t, Inconsistencies: found}
	if len(found) == 0 {
		c.Result = ResultConsistent
		c.Impact = ImpactLow
		return c
	}
	c.Result = ResultInconsistent
	c.Impact = fixedImpact[t]
	return c
}
