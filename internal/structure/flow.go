// Package structure scores the flow between sections and optimizes document
// structure through merge, split, and reorder passes. Passes work on copies;
// the caller's section list is never mutated.
package structure

import (
	"fmt"
	"math"
	"strings"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/textutil"
)

// Transition is the scored boundary between two adjacent sections.
type Transition struct {
	FromID       string   `json:"from_id"`
	ToID         string   `json:"to_id"`
	QualityScore float64  `json:"quality_score"`
	Type         string   `json:"type"`
	Issues       []string `json:"issues,omitempty"`

	thematic float64
	logical  float64
}

// IssueSeverity grades a flow issue.
type IssueSeverity string

const (
	SeverityLow    IssueSeverity = "low"
	SeverityMedium IssueSeverity = "medium"
	SeverityHigh   IssueSeverity = "high"
)

// FlowIssue is one detected flow problem.
type FlowIssue struct {
	Type        string        `json:"type"`
	Severity    IssueSeverity `json:"severity"`
	Description string        `json:"description"`
}

// FlowAnalysis is the document-level flow result.
type FlowAnalysis struct {
	FlowScore          float64      `json:"flow_score"`
	Transitions        []Transition `json:"transitions,omitempty"`
	Issues             []FlowIssue  `json:"issues,omitempty"`
	LogicalProgression string       `json:"logical_progression"`
}

// canonicalPairs lists title-role pairs that constitute a full logical
// connection, in their fixed order.
var canonicalPairs = [][2]string{
	{"introduction", "background"},
	{"background", "methodology"},
	{"methodology", "analysis"},
	{"analysis", "results"},
	{"results", "discussion"},
	{"discussion", "conclusion"},
	{"problem", "solution"},
	{"cause", "effect"},
	{"theory", "application"},
}

// boundaryChars is the window scanned at a section boundary for
// transitional phrases.
const boundaryChars = 200

// AnalyzeFlow scores every adjacent transition and derives the document
// flow score with its issue list.
func AnalyzeFlow(sections []document.Section, lex *lexicon.Lexicon) FlowAnalysis {
	fa := FlowAnalysis{}

	for i := 0; i+1 < len(sections); i++ {
		fa.Transitions = append(fa.Transitions, scoreTransition(sections[i], sections[i+1], lex))
	}
	fa.Issues = detectFlowIssues(sections, fa.Transitions)
	fa.FlowScore = flowScore(fa.Transitions, fa.Issues)
	fa.LogicalProgression = progressionSummary(fa.FlowScore)
	return fa
}

// scoreTransition weighs thematic continuity 0.4, logical connection 0.4,
// and transitional-phrase presence 0.2.
func scoreTransition(from, to document.Section, lex *lexicon.Lexicon) Transition {
	thematic := thematicContinuity(from, to)
	logical := logicalConnection(from, to, lex)
	phrase := transitionalPresence(from, to, lex)

	score := 0.4*thematic + 0.4*logical + 0.2*phrase
	t := Transition{
		FromID:       from.ID,
		ToID:         to.ID,
		QualityScore: score,
		Type:         transitionType(score),
		thematic:     thematic,
		logical:      logical,
	}
	if thematic < 0.1 {
		t.Issues = append(t.Issues, "no shared topics across the boundary")
	}
	if logical < 0.2 {
		t.Issues = append(t.Issues, "no logical connective linking the sections")
	}
	return t
}

// thematicContinuity is the Jaccard overlap of the sections' top 50 terms.
func thematicContinuity(from, to document.Section) float64 {
	a := termSetOf(from)
	b := termSetOf(to)
	return textutil.JaccardOverlap(a, b)
}

func termSetOf(s document.Section) map[string]bool {
	set := make(map[string]bool)
	for _, t := range textutil.TopTerms(s.Content, 50) {
		set[t] = true
	}
	return set
}

// logicalConnection is 1.0 on a canonical title-pair match, otherwise the
// normalized connective-word count of the second section, capped at 1.
func logicalConnection(from, to document.Section, lex *lexicon.Lexicon) float64 {
	fromTitle := strings.ToLower(from.Title)
	toTitle := strings.ToLower(to.Title)
	for _, pair := range canonicalPairs {
		if strings.Contains(fromTitle, pair[0]) && strings.Contains(toTitle, pair[1]) {
			return 1.0
		}
	}
	count := textutil.CountAnyWord(to.Content, lex.ConnectiveWords)
	return textutil.Clamp01(float64(count) / 5.0)
}

// transitionalPresence counts known phrases in the last/first 200 characters
// around the boundary, capped at 5 and normalized.
func transitionalPresence(from, to document.Section, lex *lexicon.Lexicon) float64 {
	tail := from.Content
	if len(tail) > boundaryChars {
		tail = tail[len(tail)-boundaryChars:]
	}
	head := to.Content
	if len(head) > boundaryChars {
		head = head[:boundaryChars]
	}
	count := textutil.CountAnyPhrase(tail, lex.TransitionalPhrases) +
		textutil.CountAnyPhrase(head, lex.TransitionalPhrases)
	if count > 5 {
		count = 5
	}
	return float64(count) / 5.0
}

func transitionType(score float64) string {
	switch {
	case score >= 0.7:
		return "smooth"
	case score >= 0.5:
		return "moderate"
	default:
		return "abrupt"
	}
}

// detectFlowIssues reports abrupt transitions, missing canonical sections
// (once per document), redundant content, and mixed heading numbering.
func detectFlowIssues(sections []document.Section, transitions []Transition) []FlowIssue {
	var issues []FlowIssue

	for _, t := range transitions {
		if t.QualityScore < 0.5 {
			sev := SeverityMedium
			if t.QualityScore < 0.3 {
				sev = SeverityHigh
			}
			issues = append(issues, FlowIssue{
				Type:     "abrupt_transition",
				Severity: sev,
				Description: fmt.Sprintf(
					"abrupt transition from %s to %s (score %.2f)", t.FromID, t.ToID, t.QualityScore),
			})
		}
	}

	if len(sections) > 1 {
		for _, role := range []string{"introduction", "conclusion"} {
			if !hasTitleKeyword(sections, role) {
				issues = append(issues, FlowIssue{
					Type:        "missing_section",
					Severity:    SeverityMedium,
					Description: fmt.Sprintf("document has no %s section", role),
				})
			}
		}
	}

	for i := 0; i < len(sections); i++ {
		for j := i + 1; j < len(sections); j++ {
			overlap := textutil.JaccardOverlap(termSetOf(sections[i]), termSetOf(sections[j]))
			if overlap > 0.7 {
				sev := SeverityMedium
				if overlap > 0.8 {
					sev = SeverityHigh
				}
				issues = append(issues, FlowIssue{
					Type:     "redundant_content",
					Severity: sev,
					Description: fmt.Sprintf(
						"sections %q and %q overlap heavily (%.0f%%)",
						sections[i].Title, sections[j].Title, overlap*100),
				})
			}
		}
	}

	if mixedNumbering(sections) {
		issues = append(issues, FlowIssue{
			Type:        "mixed_numbering",
			Severity:    SeverityLow,
			Description: "headings mix numbered and unnumbered styles",
		})
	}
	return issues
}

func hasTitleKeyword(sections []document.Section, keyword string) bool {
	for _, s := range sections {
		if strings.Contains(strings.ToLower(s.Title), keyword) {
			return true
		}
	}
	return false
}

func mixedNumbering(sections []document.Section) bool {
	numbered, plain := false, false
	for _, s := range sections {
		t := strings.TrimSpace(s.Title)
		if t == "" {
			continue
		}
		if t[0] >= '0' && t[0] <= '9' {
			numbered = true
		} else {
			plain = true
		}
	}
	return numbered && plain
}

// flowScore blends mean transition quality (0.6) with mean logical
// connection (0.4), then applies a severity-weighted issue penalty capped at
// 50%. The result is on a 0-100 scale.
func flowScore(transitions []Transition, issues []FlowIssue) float64 {
	if len(transitions) == 0 {
		// A single-section document has no transitions to fault.
		base := 1.0
		return applyPenalty(base, issues) * 100
	}
	var quality, logical []float64
	for _, t := range transitions {
		quality = append(quality, t.QualityScore)
		logical = append(logical, t.logical)
	}
	base := 0.6*textutil.Mean(quality) + 0.4*textutil.Mean(logical)
	return textutil.Clamp(applyPenalty(base, issues)*100, 0, 100)
}

func applyPenalty(base float64, issues []FlowIssue) float64 {
	penalty := 0.0
	for _, is := range issues {
		switch is.Severity {
		case SeverityHigh:
			penalty += 0.3
		case SeverityMedium:
			penalty += 0.15
		default:
			penalty += 0.05
		}
	}
	return base * (1 - math.Min(0.5, penalty))
}

func progressionSummary(score float64) string {
	switch {
	case score >= 70:
		return "strong logical progression between sections"
	case score >= 40:
		return "moderate logical progression with weak links"
	default:
		return "weak logical progression; sections read as disconnected"
	}
}
