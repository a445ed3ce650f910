package structure

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/textutil"
)

// Config toggles the optimization passes individually.
type Config struct {
	EnableMerge   bool
	EnableSplit   bool
	EnableReorder bool
}

// DefaultConfig enables every pass.
func DefaultConfig() Config {
	return Config{EnableMerge: true, EnableSplit: true, EnableReorder: true}
}

// Result is the outcome of an optimization run. OptimizedSections is always
// a fresh list; the input sections are left untouched.
type Result struct {
	OptimizedSections      []document.Section `json:"optimized_sections"`
	AppliedOptimizations   []string           `json:"applied_optimizations,omitempty"`
	StructuralQualityScore float64            `json:"structural_quality_score"`
	FlowImprovementScore   float64            `json:"flow_improvement_score"`
	Recommendations        []string           `json:"recommendations,omitempty"`
}

// mergeThreshold is the word count below which adjacent sections merge.
const mergeThreshold = 100

// reorderBuckets maps title keywords to their canonical position. Unmatched
// sections keep a stable 100+index bucket so the sort never moves them
// relative to each other.
var reorderBuckets = []struct {
	keyword string
	bucket  int
}{
	{"introduction", 10},
	{"intro", 10},
	{"background", 20},
	{"method", 30},
	{"analysis", 40},
	{"result", 50},
	{"discussion", 55},
	{"conclusion", 60},
	{"appendix", 70},
}

// Optimize runs the merge, split, and reorder passes in fixed order, each on
// the previous pass's output, and scores the outcome.
func Optimize(sections []document.Section, opts document.Options, cfg Config, lex *lexicon.Lexicon) Result {
	opts = opts.Normalize()

	before := AnalyzeFlow(sections, lex)

	working := make([]document.Section, len(sections))
	for i, s := range sections {
		working[i] = s.Clone()
	}

	var applied []string
	if cfg.EnableMerge {
		var merged bool
		working, merged = mergePass(working)
		if merged {
			applied = append(applied, "merge_short_sections")
		}
	}
	if cfg.EnableSplit {
		var split bool
		working, split = splitPass(working, opts.TargetSectionLength)
		if split {
			applied = append(applied, "split_long_sections")
		}
	}
	if cfg.EnableReorder && opts.EnforceLogicalFlow && len(working) >= 2 {
		var reordered bool
		working, reordered = reorderPass(working)
		if reordered {
			applied = append(applied, "reorder_sections")
		}
	}

	after := AnalyzeFlow(working, lex)

	return Result{
		OptimizedSections:      working,
		AppliedOptimizations:   applied,
		StructuralQualityScore: QualityScore(working, after),
		FlowImprovementScore:   improvement(before.FlowScore/100, after.FlowScore/100),
		Recommendations:        recommend(working, after, opts),
	}
}

// mergePass concatenates adjacent pairs that are both under the merge
// threshold, restarting the scan from the merge point.
func mergePass(sections []document.Section) ([]document.Section, bool) {
	merged := false
	for i := 0; i+1 < len(sections); {
		a, b := sections[i], sections[i+1]
		if textutil.WordCount(a.Content) >= mergeThreshold ||
			textutil.WordCount(b.Content) >= mergeThreshold {
			i++
			continue
		}

		combined := a.Clone()
		combined.Title = a.Title + " / " + b.Title
		combined.Content = strings.TrimSpace(a.Content) + "\n\n" + strings.TrimSpace(b.Content)
		combined.EndIndex = b.EndIndex
		if b.Level < combined.Level {
			combined.Level = b.Level
		}
		combined.ChildIDs = unionStrings(a.ChildIDs, b.ChildIDs)
		combined.KeyTopics = unionStrings(a.KeyTopics, b.KeyTopics)

		sections = append(sections[:i], append([]document.Section{combined}, sections[i+2:]...)...)
		merged = true
		// Re-examine from the merge point: the combined section may still
		// be short enough to absorb its new neighbor.
	}
	return sections, merged
}

// splitPass breaks sections longer than twice the target into one
// sub-section per paragraph. Single-paragraph sections stay whole.
func splitPass(sections []document.Section, targetLength int) ([]document.Section, bool) {
	split := false
	var out []document.Section
	for _, s := range sections {
		if textutil.WordCount(s.Content) <= 2*targetLength {
			out = append(out, s)
			continue
		}
		paragraphs := textutil.Paragraphs(s.Content)
		if len(paragraphs) <= 1 {
			out = append(out, s)
			continue
		}
		split = true
		offset := s.StartIndex
		for i, para := range paragraphs {
			part := s.Clone()
			part.ID = fmt.Sprintf("%s-p%d", s.ID, i+1)
			part.Title = fmt.Sprintf("%s (Part %d)", s.Title, i+1)
			part.Content = para
			part.StartIndex = offset
			if i == len(paragraphs)-1 {
				part.EndIndex = s.EndIndex
			} else {
				part.EndIndex = offset + len(para) - 1
				offset = part.EndIndex + 1
			}
			part.ChildIDs = nil
			out = append(out, part)
		}
	}
	return out, split
}

// reorderPass stable-sorts sections by canonical title bucket, applying the
// new order only when it differs from the current one.
func reorderPass(sections []document.Section) ([]document.Section, bool) {
	type keyed struct {
		section document.Section
		bucket  int
	}
	keys := make([]keyed, len(sections))
	for i, s := range sections {
		keys[i] = keyed{section: s, bucket: bucketOf(s.Title, i)}
	}
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].bucket < keys[j].bucket })

	changed := false
	out := make([]document.Section, len(keys))
	for i, k := range keys {
		out[i] = k.section
		if k.section.ID != sections[i].ID {
			changed = true
		}
	}
	if !changed {
		return sections, false
	}
	return out, true
}

func bucketOf(title string, index int) int {
	lower := strings.ToLower(title)
	for _, rb := range reorderBuckets {
		if strings.Contains(lower, rb.keyword) {
			return rb.bucket
		}
	}
	return 100 + index
}

// QualityScore blends length balance (0.3), hierarchy regularity (0.3), and
// flow (0.4) into a [0, 1] structural quality score.
func QualityScore(sections []document.Section, flow FlowAnalysis) float64 {
	return textutil.Clamp01(0.3*lengthBalance(sections) +
		0.3*hierarchyScore(sections) +
		0.4*flow.FlowScore/100)
}

// lengthBalance is 1 minus the coefficient of variation of section word
// counts, floored at zero.
func lengthBalance(sections []document.Section) float64 {
	if len(sections) == 0 {
		return 0
	}
	var counts []float64
	for _, s := range sections {
		counts = append(counts, float64(textutil.WordCount(s.Content)))
	}
	mean := textutil.Mean(counts)
	if mean == 0 {
		return 0
	}
	variance := 0.0
	for _, c := range counts {
		variance += (c - mean) * (c - mean)
	}
	variance /= float64(len(counts))
	cv := math.Sqrt(variance) / mean
	if cv > 1 {
		return 0
	}
	return 1 - cv
}

// hierarchyScore is the fraction of consecutive level pairs that do not
// decrease, minus 0.1 for every level skip greater than one.
func hierarchyScore(sections []document.Section) float64 {
	if len(sections) < 2 {
		return 1
	}
	nonDecreasing := 0
	penalty := 0.0
	for i := 1; i < len(sections); i++ {
		diff := sections[i].Level - sections[i-1].Level
		if diff >= 0 {
			nonDecreasing++
		}
		if diff > 1 {
			penalty += 0.1
		}
	}
	score := float64(nonDecreasing)/float64(len(sections)-1) - penalty
	return textutil.Clamp01(score)
}

// improvement normalizes the flow gain against the remaining headroom.
func improvement(before, after float64) float64 {
	if after <= before {
		return 0
	}
	if before >= 1 {
		return 0
	}
	return (after - before) / (1 - before)
}

// recommend derives actions from remaining medium/high flow issues, section
// count bounds, and per-section length outliers.
func recommend(sections []document.Section, flow FlowAnalysis, opts document.Options) []string {
	var recs []string
	for _, is := range flow.Issues {
		if is.Severity == SeverityMedium || is.Severity == SeverityHigh {
			recs = append(recs, is.Description)
		}
	}
	if len(sections) < opts.MinSections {
		recs = append(recs, fmt.Sprintf(
			"document has %d sections; the configured minimum is %d",
			len(sections), opts.MinSections))
	}
	if len(sections) > opts.MaxSections {
		recs = append(recs, fmt.Sprintf(
			"document has %d sections; the configured maximum is %d",
			len(sections), opts.MaxSections))
	}
	for _, s := range sections {
		words := textutil.WordCount(s.Content)
		if words > int(1.5*float64(opts.TargetSectionLength)) {
			recs = append(recs, fmt.Sprintf(
				"consider splitting %q (%d words, target %d)",
				s.Title, words, opts.TargetSectionLength))
		} else if words < 50 && len(sections) > 1 {
			recs = append(recs, fmt.Sprintf(
				"consider merging %q (%d words) into a neighbor", s.Title, words))
		}
	}
	return recs
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range append(append([]string(nil), a...), b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
