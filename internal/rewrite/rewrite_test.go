package rewrite

import (
	"strings"
	"testing"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
)

func TestRewrite_FormalExpandsContractions(t *testing.T) {
	res := Rewrite("I don't think that's right.", document.ToneFormal,
		document.DefaultOptions(), lexicon.Default())

	if res.RewrittenText != "I do not think that is right." {
		t.Errorf("unexpected rewrite: %q", res.RewrittenText)
	}
	if len(res.Changes) != 2 {
		t.Fatalf("expected 2 changes, got %d: %v", len(res.Changes), res.Changes)
	}
	for _, c := range res.Changes {
		if c.Type != ChangeToneAdjustment {
			t.Errorf("expected tone adjustment, got %q", c.Type)
		}
		if c.Impact != "low" {
			t.Errorf("expected low impact, got %q", c.Impact)
		}
	}
	if res.Confidence != 0.8 {
		t.Errorf("expected fixed confidence 0.8, got %f", res.Confidence)
	}
}

func TestRewrite_PreservesLeadingCapital(t *testing.T) {
	res := Rewrite("Don't stop now.", document.ToneFormal,
		document.DefaultOptions(), lexicon.Default())
	if !strings.HasPrefix(res.RewrittenText, "Do not") {
		t.Errorf("expected capitalized replacement, got %q", res.RewrittenText)
	}
}

func TestRewrite_NoMatchesLeavesTextUnchanged(t *testing.T) {
	text := "The committee reviewed the agenda."
	res := Rewrite(text, document.ToneFormal, document.DefaultOptions(), lexicon.Default())
	if res.RewrittenText != text {
		t.Errorf("expected unchanged text, got %q", res.RewrittenText)
	}
	if len(res.Changes) != 0 {
		t.Errorf("expected no changes, got %v", res.Changes)
	}
	if res.WordCountChangePercent != 0 {
		t.Errorf("expected zero word change, got %f", res.WordCountChangePercent)
	}
}

func TestRewrite_WholeWordsOnly(t *testing.T) {
	// "get" must not fire inside "together".
	res := Rewrite("We met together to get the files.", document.ToneFormal,
		document.DefaultOptions(), lexicon.Default())
	if !strings.Contains(res.RewrittenText, "together") {
		t.Errorf("expected %q untouched, got %q", "together", res.RewrittenText)
	}
	if !strings.Contains(res.RewrittenText, "obtain the files") {
		t.Errorf("expected whole-word %q replaced, got %q", "get", res.RewrittenText)
	}
}

func TestRewrite_MultiWordKeyWinsOverPrefix(t *testing.T) {
	res := Rewrite("We saw a lot of progress.", document.ToneFormal,
		document.DefaultOptions(), lexicon.Default())
	if !strings.Contains(res.RewrittenText, "a considerable amount of progress") {
		t.Errorf("expected multi-word substitution, got %q", res.RewrittenText)
	}
}

func TestRewrite_InformalContractsPhrases(t *testing.T) {
	res := Rewrite("We cannot ship because it is not ready.", document.ToneInformal,
		document.DefaultOptions(), lexicon.Default())
	if !strings.Contains(res.RewrittenText, "can't") {
		t.Errorf("expected contraction, got %q", res.RewrittenText)
	}
}

func TestRewrite_UnknownToneTableIsNoop(t *testing.T) {
	text := "I don't think so."
	res := Rewrite(text, document.ToneNeutral, document.DefaultOptions(), lexicon.Default())
	if res.RewrittenText != text {
		t.Errorf("expected no-op for a tone without a table, got %q", res.RewrittenText)
	}
}

func TestRewrite_ReportsToneBeforeAndAfter(t *testing.T) {
	res := Rewrite("I don't think that's right.", document.ToneFormal,
		document.DefaultOptions(), lexicon.Default())
	if res.ToneBefore == "" || res.ToneAfter == "" {
		t.Error("expected tone classification before and after")
	}
}

func TestRewrite_Deterministic(t *testing.T) {
	text := "We can't show the kids how to get stuff, and that's a problem we need to fix."
	first := Rewrite(text, document.ToneFormal, document.DefaultOptions(), lexicon.Default())
	for i := 0; i < 5; i++ {
		again := Rewrite(text, document.ToneFormal, document.DefaultOptions(), lexicon.Default())
		if again.RewrittenText != first.RewrittenText {
			t.Fatalf("expected identical output, got %q then %q", first.RewrittenText, again.RewrittenText)
		}
		if len(again.Changes) != len(first.Changes) {
			t.Fatalf("expected identical change counts")
		}
		for i := range first.Changes {
			if again.Changes[i] != first.Changes[i] {
				t.Fatalf("change %d differs between runs", i)
			}
		}
	}
}

func TestMatchCase(t *testing.T) {
	if got := matchCase("Don't", "do not"); got != "Do not" {
		t.Errorf("expected %q, got %q", "Do not", got)
	}
	if got := matchCase("don't", "do not"); got != "do not" {
		t.Errorf("expected %q, got %q", "do not", got)
	}
}
