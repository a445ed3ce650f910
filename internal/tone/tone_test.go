package tone

import (
	"math"
	"testing"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
)

func TestClassify_PrimaryTones(t *testing.T) {
	lex := lexicon.Default()
	cases := []struct {
		name string
		text string
		want document.Tone
	}{
		{
			"academic",
			"The methodology uses a systematic framework. Therefore the hypothesis holds. Moreover the findings are empirical. Thus the analysis stands.",
			document.ToneAcademic,
		},
		{
			"persuasive",
			"We must act now because this step is essential and clearly proven.",
			document.TonePersuasive,
		},
		{
			"formal",
			"Therefore the board shall convene. Moreover the charter applies. Thus the matter proceeds accordingly.",
			document.ToneFormal,
		},
		{
			"informal",
			"Yeah, this stuff is basically pretty cool and totally fine, okay.",
			document.ToneInformal,
		},
		{
			"neutral",
			"The meeting covered three agenda items and ended at noon.",
			document.ToneNeutral,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(c.text, lex)
			if got.PrimaryTone != c.want {
				t.Errorf("expected primary tone %q, got %q", c.want, got.PrimaryTone)
			}
		})
	}
}

func TestClassify_SectionConsistencyFixed(t *testing.T) {
	got := Classify("Any text at all.", lexicon.Default())
	if got.ConsistencyScore != 0.8 {
		t.Errorf("expected fixed section consistency 0.8, got %f", got.ConsistencyScore)
	}
	if got.Emotional == nil || got.Emotional.Consistency != 0.8 {
		t.Error("expected emotional consistency 0.8")
	}
}

func TestShiftMagnitude_SymmetricAndScaled(t *testing.T) {
	ab := document.ShiftMagnitude(document.ToneInformal, document.ToneFormal)
	ba := document.ShiftMagnitude(document.ToneFormal, document.ToneInformal)
	if ab != ba {
		t.Errorf("expected symmetric magnitudes, got %f and %f", ab, ba)
	}
	if ab != 1.0 {
		t.Errorf("expected full-scale magnitude 1.0 for informal-formal, got %f", ab)
	}
	if m := document.ShiftMagnitude(document.ToneNeutral, document.ToneAcademic); m != 0.2 {
		t.Errorf("expected 0.2 for one-step shift, got %f", m)
	}
	if m := document.ShiftMagnitude(document.ToneFormal, document.ToneFormal); m != 0 {
		t.Errorf("expected 0 for identical tones, got %f", m)
	}
}

func TestAnalyze_NoShiftForSameTone(t *testing.T) {
	sections := []document.Section{
		{ID: "sec-1", Title: "One", Content: "The meeting covered three items."},
		{ID: "sec-2", Title: "Two", Content: "The agenda listed four points."},
	}
	res := Analyze(sections, document.DefaultOptions(), lexicon.Default())
	if len(res.Shifts) != 0 {
		t.Errorf("expected no shifts between same-tone sections, got %v", res.Shifts)
	}
	if res.DocumentTone != document.ToneNeutral {
		t.Errorf("expected neutral document tone, got %q", res.DocumentTone)
	}
}

func TestAnalyze_FormalToInformalIsInappropriate(t *testing.T) {
	sections := []document.Section{
		{ID: "sec-1", Title: "Overview", Content: "Therefore the board shall convene. Moreover the charter applies. Thus it proceeds."},
		{ID: "sec-2", Title: "Notes", Content: "Yeah, this stuff is basically pretty cool, okay."},
	}
	res := Analyze(sections, document.DefaultOptions(), lexicon.Default())
	if len(res.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(res.Shifts))
	}
	sh := res.Shifts[0]
	if sh.Appropriate {
		t.Error("expected formal-to-informal shift to be inappropriate")
	}
	if sh.Magnitude != 1.0 {
		t.Errorf("expected magnitude 1.0, got %f", sh.Magnitude)
	}
	if len(res.Recommendations) == 0 {
		t.Error("expected a recommendation for the inappropriate shift")
	}
}

func TestAnalyze_InformalToFormalIntoConclusion(t *testing.T) {
	sections := []document.Section{
		{ID: "sec-1", Title: "Chat", Content: "Yeah, this stuff is basically pretty cool, okay."},
		{ID: "sec-2", Title: "Conclusion", Content: "Therefore the board shall convene. Moreover the charter applies. Thus it proceeds."},
	}
	res := Analyze(sections, document.DefaultOptions(), lexicon.Default())
	if len(res.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(res.Shifts))
	}
	if !res.Shifts[0].Appropriate {
		t.Errorf("expected shift into a conclusion to be appropriate: %s", res.Shifts[0].Reason)
	}
}

func TestOverallConsistency_PenalizesInappropriateShifts(t *testing.T) {
	clean := []SectionTone{
		{Analysis: Analysis{ConsistencyScore: 0.8}},
		{Analysis: Analysis{ConsistencyScore: 0.8}},
	}
	noShift := overallConsistency(clean, nil)
	withBad := overallConsistency(clean, []Shift{
		{Magnitude: 1.0, Appropriate: false},
	})
	if withBad >= noShift {
		t.Errorf("expected penalty to lower consistency: %f vs %f", withBad, noShift)
	}
	// 0.7*0.8 + 0.3*(1-0.2) = 0.8.
	if math.Abs(withBad-0.8) > 1e-9 {
		t.Errorf("expected 0.8, got %f", withBad)
	}
}

func TestMajorityTone_FirstSeenWinsTies(t *testing.T) {
	sections := []SectionTone{
		{Analysis: Analysis{PrimaryTone: document.ToneFormal}},
		{Analysis: Analysis{PrimaryTone: document.ToneInformal}},
	}
	if got := majorityTone(sections); got != document.ToneFormal {
		t.Errorf("expected first-seen tone to win the tie, got %q", got)
	}
}

func TestRecommend_TargetToneMismatch(t *testing.T) {
	sections := []document.Section{
		{ID: "sec-1", Title: "One", Content: "The meeting covered three items."},
	}
	opts := document.DefaultOptions()
	opts.TargetTone = document.ToneFormal
	res := Analyze(sections, opts, lexicon.Default())
	found := false
	for _, r := range res.Recommendations {
		if r == "overall tone is neutral but the target is formal" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected target mismatch recommendation, got %v", res.Recommendations)
	}
}
