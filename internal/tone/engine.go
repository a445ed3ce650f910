package tone

import (
	"fmt"
	"strings"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/textutil"
)

// SectionTone pairs a section with its tone analysis.
type SectionTone struct {
	SectionID string   `json:"section_id"`
	Title     string   `json:"title"`
	Analysis  Analysis `json:"analysis"`
}

// Shift is a tone change between two adjacent sections.
type Shift struct {
	FromSectionID string        `json:"from_section_id"`
	ToSectionID   string        `json:"to_section_id"`
	FromTone      document.Tone `json:"from_tone"`
	ToTone        document.Tone `json:"to_tone"`
	Magnitude     float64       `json:"magnitude"`
	Appropriate   bool          `json:"appropriate"`
	Reason        string        `json:"reason"`
}

// Result is the document-level tone analysis.
type Result struct {
	DocumentTone       document.Tone `json:"document_tone"`
	OverallConsistency float64       `json:"overall_consistency"`
	Sections           []SectionTone `json:"sections"`
	Shifts             []Shift       `json:"shifts,omitempty"`
	Recommendations    []string      `json:"recommendations,omitempty"`
}

// sectionExpectations maps title keywords to the tones a section of that
// role is expected to carry. First keyword match wins.
var sectionExpectations = []struct {
	keywords []string
	expected []document.Tone
}{
	{
		keywords: []string{"executive", "summary", "conclusion"},
		expected: []document.Tone{document.ToneFormal, document.ToneNeutral, document.ToneAcademic},
	},
	{
		keywords: []string{"method", "analysis", "result"},
		expected: []document.Tone{document.ToneAcademic, document.ToneFormal},
	},
}

// Analyze classifies every section, scores adjacent shifts, and aggregates a
// document tone with recommendations.
func Analyze(sections []document.Section, opts document.Options, lex *lexicon.Lexicon) Result {
	opts = opts.Normalize()
	res := Result{}

	for _, sec := range sections {
		a := Classify(sec.Content, lex)
		a.Appropriateness = sectionAppropriateness(sec.Title, a.PrimaryTone)
		res.Sections = append(res.Sections, SectionTone{
			SectionID: sec.ID,
			Title:     sec.Title,
			Analysis:  a,
		})
	}

	res.DocumentTone = majorityTone(res.Sections)
	res.Shifts = detectShifts(sections, res.Sections)
	res.OverallConsistency = overallConsistency(res.Sections, res.Shifts)
	res.Recommendations = recommend(res, opts)
	return res
}

// majorityTone votes over section primary tones, first-seen winning ties.
func majorityTone(sections []SectionTone) document.Tone {
	if len(sections) == 0 {
		return document.ToneNeutral
	}
	counts := make(map[document.Tone]int)
	var order []document.Tone
	for _, st := range sections {
		t := st.Analysis.PrimaryTone
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	best := order[0]
	for _, t := range order {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best
}

// detectShifts evaluates each adjacent section pair.
func detectShifts(sections []document.Section, tones []SectionTone) []Shift {
	var shifts []Shift
	for i := 0; i+1 < len(tones); i++ {
		from, to := tones[i], tones[i+1]
		if from.Analysis.PrimaryTone == to.Analysis.PrimaryTone {
			continue
		}
		magnitude := document.ShiftMagnitude(from.Analysis.PrimaryTone, to.Analysis.PrimaryTone)
		appropriate, reason := shiftAppropriate(
			from.Analysis.PrimaryTone, to.Analysis.PrimaryTone,
			sections[i+1].Title, magnitude)
		shifts = append(shifts, Shift{
			FromSectionID: from.SectionID,
			ToSectionID:   to.SectionID,
			FromTone:      from.Analysis.PrimaryTone,
			ToTone:        to.Analysis.PrimaryTone,
			Magnitude:     magnitude,
			Appropriate:   appropriate,
			Reason:        reason,
		})
	}
	return shifts
}

// shiftAppropriate applies the fixed rule order; the first matching rule wins.
func shiftAppropriate(from, to document.Tone, toTitle string, magnitude float64) (bool, string) {
	title := strings.ToLower(toTitle)
	switch {
	case from == document.ToneFormal && to == document.ToneInformal:
		return false, "formal to informal drop reads as a register break"
	case from == document.ToneInformal && to == document.ToneFormal:
		if strings.Contains(title, "conclusion") || strings.Contains(title, "summary") {
			return true, "formal register is expected entering a closing section"
		}
		return false, "informal to formal jump mid-document is jarring"
	case to == document.ToneAcademic && strings.Contains(title, "analysis"):
		return true, "academic tone fits an analysis section"
	case magnitude < 0.3:
		return true, "minor shift"
	default:
		return true, "acceptable shift"
	}
}

// sectionAppropriateness grades a section's tone against its title role.
func sectionAppropriateness(title string, tone document.Tone) Appropriateness {
	lower := strings.ToLower(title)
	for _, exp := range sectionExpectations {
		matched := false
		for _, kw := range exp.keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, t := range exp.expected {
			if t == tone {
				return AppropriatenessGood
			}
		}
		return AppropriatenessPoor
	}
	return AppropriatenessAdequate
}

// overallConsistency blends the mean section consistency (weight 0.7) with a
// shift penalty term (weight 0.3). The penalty sums 0.2 x magnitude over
// inappropriate shifts, capped at 1.
func overallConsistency(sections []SectionTone, shifts []Shift) float64 {
	if len(sections) == 0 {
		return sectionConsistency
	}
	var scores []float64
	for _, st := range sections {
		scores = append(scores, st.Analysis.ConsistencyScore)
	}
	mean := textutil.Mean(scores)

	penalty := 0.0
	for _, sh := range shifts {
		if !sh.Appropriate {
			penalty += sh.Magnitude * 0.2
		}
	}
	penalty = textutil.Clamp01(penalty)

	return textutil.Clamp01(0.7*mean + 0.3*(1-penalty))
}

// recommend derives recommendations from inappropriate shifts, poorly fitting
// sections, target-tone mismatch, and excessive shift counts.
func recommend(res Result, opts document.Options) []string {
	var recs []string
	for _, sh := range res.Shifts {
		if !sh.Appropriate {
			recs = append(recs, fmt.Sprintf(
				"smooth the %s-to-%s shift between sections %s and %s: %s",
				sh.FromTone, sh.ToTone, sh.FromSectionID, sh.ToSectionID, sh.Reason))
		}
	}
	for _, st := range res.Sections {
		if st.Analysis.Appropriateness == AppropriatenessPoor {
			recs = append(recs, fmt.Sprintf(
				"rework %q: a %s tone does not fit this section's role",
				st.Title, st.Analysis.PrimaryTone))
		}
	}
	if opts.TargetTone != "" && res.DocumentTone != opts.TargetTone {
		recs = append(recs, fmt.Sprintf(
			"overall tone is %s but the target is %s", res.DocumentTone, opts.TargetTone))
	}
	if len(res.Shifts) > opts.MaxToneShifts && !opts.AllowMixedTones {
		recs = append(recs, fmt.Sprintf(
			"document changes tone %d times (limit %d); consolidate registers",
			len(res.Shifts), opts.MaxToneShifts))
	}
	return recs
}
