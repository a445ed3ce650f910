package textutil

import (
	"reflect"
	"testing"
)

func TestSentences_TerminalPunctuation(t *testing.T) {
	got := Sentences("First sentence. Second one! Is this third? Trailing fragment")
	want := []string{"First sentence.", "Second one!", "Is this third?", "Trailing fragment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentences_DecimalNotSplit(t *testing.T) {
	got := Sentences("Growth was 3.5 percent this year.")
	if len(got) != 1 {
		t.Errorf("expected 1 sentence, got %d: %v", len(got), got)
	}
}

func TestSentences_Empty(t *testing.T) {
	if got := Sentences(""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestWordCount(t *testing.T) {
	if n := WordCount("one two  three\nfour"); n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
	if n := WordCount(""); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("para one\n\npara two\n\n\n\npara three")
	if len(got) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %v", len(got), got)
	}
	if got[1] != "para two" {
		t.Errorf("expected %q, got %q", "para two", got[1])
	}
}

func TestNormalizeWord(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello,", "hello"},
		{"(World)", "world"},
		{"don't", "don't"},
		{"---", ""},
		{"2024.", "2024"},
	}
	for _, c := range cases {
		if got := NormalizeWord(c.in); got != c.want {
			t.Errorf("NormalizeWord(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestContentWords_FiltersStopwordsAndShortWords(t *testing.T) {
	got := ContentWords("The system processes the data with care", 3)
	want := []string{"system", "processes", "data", "care"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTopTerms_FrequencyThenFirstOccurrence(t *testing.T) {
	text := "alpha beta alpha gamma beta alpha delta"
	got := TopTerms(text, 3)
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTopTerms_Deterministic(t *testing.T) {
	text := "zebra apple zebra apple mango cherry mango cherry"
	first := TopTerms(text, 4)
	for i := 0; i < 20; i++ {
		if got := TopTerms(text, 4); !reflect.DeepEqual(got, first) {
			t.Fatalf("expected stable ranking %v, got %v", first, got)
		}
	}
}

func TestJaccardOverlap(t *testing.T) {
	a := map[string]bool{"one": true, "two": true}
	b := map[string]bool{"two": true, "three": true}
	got := JaccardOverlap(a, b)
	if got != 1.0/3.0 {
		t.Errorf("expected 1/3, got %f", got)
	}
	if JaccardOverlap(nil, nil) != 0 {
		t.Error("expected 0 for two empty sets")
	}
}

func TestWordOverlapRatio_SmallerSetBasis(t *testing.T) {
	// Smaller text has 2 distinct words, both appear in the larger text.
	got := WordOverlapRatio("budget report", "the annual budget report for finance")
	if got != 1.0 {
		t.Errorf("expected 1.0, got %f", got)
	}
}

func TestSharedWords(t *testing.T) {
	if n := SharedWords("release schedule update", "the schedule update shipped"); n != 2 {
		t.Errorf("expected 2 shared words, got %d", n)
	}
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"table", 2},
		{"there", 1},
		{"documentation", 5},
		{"", 0},
	}
	for _, c := range cases {
		if got := CountSyllables(c.word); got != c.want {
			t.Errorf("CountSyllables(%q): expected %d, got %d", c.word, c.want, got)
		}
	}
}

func TestContainsWord_WholeWordOnly(t *testing.T) {
	if !ContainsWord("The cat sat.", "cat") {
		t.Error("expected whole-word match")
	}
	if ContainsWord("concatenate strings", "cat") {
		t.Error("expected no substring match")
	}
}

func TestCountAnyWord(t *testing.T) {
	n := CountAnyWord("Therefore we conclude. Moreover, we therefore repeat.", []string{"therefore", "moreover"})
	if n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
}

func TestCountAnyPhrase(t *testing.T) {
	n := CountAnyPhrase("In addition, costs rose. In addition, revenue fell.", []string{"in addition"})
	if n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(120, 0, 100) != 100 {
		t.Error("expected upper clamp")
	}
	if Clamp(-5, 0, 100) != 0 {
		t.Error("expected lower clamp")
	}
	if Clamp01(0.5) != 0.5 {
		t.Error("expected pass-through")
	}
}

func TestMean(t *testing.T) {
	if Mean(nil) != 0 {
		t.Error("expected 0 for empty slice")
	}
	if Mean([]float64{2, 4, 6}) != 4 {
		t.Error("expected mean 4")
	}
}
