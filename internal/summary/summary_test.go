package summary

import (
	"strings"
	"testing"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
)

func longText(sentences int) string {
	var b strings.Builder
	for i := 0; i < sentences; i++ {
		b.WriteString("The platform processed another batch of records during the overnight window and logged every step. ")
	}
	return strings.TrimSpace(b.String())
}

func TestGenerate_RespectsTargetWords(t *testing.T) {
	g := Generate(longText(30), 40, document.DetailStandard, lexicon.Default())
	if got := len(strings.Fields(g.Summary)); got > 40 {
		t.Errorf("expected at most 40 words, got %d", got)
	}
	if g.Statistics.WordCount != len(strings.Fields(g.Summary)) {
		t.Errorf("word count %d does not match summary length %d",
			g.Statistics.WordCount, len(strings.Fields(g.Summary)))
	}
}

func TestGenerate_DetailLevelControlsSentenceCount(t *testing.T) {
	text := "First point stands. Second point follows. Third point grows. Fourth point lands. " +
		"Fifth point holds. Sixth point turns. Seventh point ends. Eighth point closes."
	brief := Generate(text, 1000, document.DetailBrief, lexicon.Default())
	detailed := Generate(text, 1000, document.DetailDetailed, lexicon.Default())

	briefSentences := strings.Count(brief.Summary, ".")
	detailedSentences := strings.Count(detailed.Summary, ".")
	if briefSentences >= detailedSentences {
		t.Errorf("expected brief (%d sentences) shorter than detailed (%d)",
			briefSentences, detailedSentences)
	}
}

func TestGenerate_UnknownDetailFallsBackToStandard(t *testing.T) {
	g := Generate(longText(10), 0, document.DetailLevel("bogus"), lexicon.Default())
	if g.Summary == "" {
		t.Error("expected a summary despite unknown detail level")
	}
}

func TestGenerate_EmptyText(t *testing.T) {
	g := Generate("", 0, document.DetailStandard, lexicon.Default())
	if g.Summary != "" {
		t.Errorf("expected empty summary, got %q", g.Summary)
	}
	if g.Statistics.CompressionRatio != 0 {
		t.Errorf("expected zero ratio, got %f", g.Statistics.CompressionRatio)
	}
}

func TestGenerate_KeyPointsFromBullets(t *testing.T) {
	text := "The plan has steps.\n- ship the beta\n- collect feedback\n- fix the gaps\nThat is all."
	g := Generate(text, 100, document.DetailStandard, lexicon.Default())
	if len(g.KeyPoints) != 3 {
		t.Fatalf("expected 3 bullet key points, got %d: %v", len(g.KeyPoints), g.KeyPoints)
	}
	if g.KeyPoints[0] != "ship the beta" {
		t.Errorf("expected first bullet, got %q", g.KeyPoints[0])
	}
}

func TestGenerate_ConfidenceWithinRange(t *testing.T) {
	g := Generate(longText(40), 60, document.DetailStandard, lexicon.Default())
	if g.Confidence < 0 || g.Confidence > 1 {
		t.Errorf("confidence out of range: %f", g.Confidence)
	}
}

func TestKeySentences_FirstAndLastFavored(t *testing.T) {
	sentences := []string{
		"Opening statement of the document.",
		"Middle filler without much weight here.",
		"More middle filler of no particular note.",
		"Closing statement of the document.",
	}
	got := keySentences(sentences, 2, lexicon.Default())
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(got))
	}
	if got[0] != sentences[0] {
		t.Errorf("expected opening sentence first, got %q", got[0])
	}
	if got[1] != sentences[3] {
		t.Errorf("expected closing sentence second, got %q", got[1])
	}
}

func TestKeySentences_OriginalOrderRestored(t *testing.T) {
	// The digit-bearing sentence outscores earlier ones but must not move.
	sentences := []string{
		"Opening statement of the project overview today.",
		"Revenue rose 14 percent across 3 regions.",
		"Closing statement of the project overview today.",
	}
	got := keySentences(sentences, 3, lexicon.Default())
	for i := range got {
		if got[i] != sentences[i] {
			t.Errorf("position %d: expected %q, got %q", i, sentences[i], got[i])
		}
	}
}

func TestTruncateToWords_BacksOffToSentenceEnd(t *testing.T) {
	text := "Short first sentence. A much longer second sentence that keeps going with more words."
	got := truncateToWords(text, 6)
	if got != "Short first sentence." {
		t.Errorf("expected back-off to first sentence, got %q", got)
	}
}

func TestTruncateToWords_AppendsTerminal(t *testing.T) {
	got := truncateToWords("words without any terminal punctuation at all in here", 4)
	if !strings.HasSuffix(got, ".") {
		t.Errorf("expected appended period, got %q", got)
	}
}

func TestSummarizeDocument_Composition(t *testing.T) {
	sections := []document.Section{
		{ID: "sec-1", Title: "Introduction", Content: "This report explains the migration. The scope covers three services."},
		{ID: "sec-2", Title: "Details", Content: "The migration moved the queue first. The cache followed a week later. Downtime stayed under an hour."},
		{ID: "sec-3", Title: "Recommendations", Content: "- monitor the queue\n- archive the old cache"},
		{ID: "sec-4", Title: "Conclusion", Content: "The migration finished on schedule. Overall the result held up."},
	}
	ds := SummarizeDocument(sections, document.DefaultOptions(), lexicon.Default())

	if ds.Executive == "" {
		t.Error("expected an executive summary")
	}
	if len(strings.Fields(ds.Executive)) > 150 {
		t.Errorf("executive summary over the 150 word cap: %d words", len(strings.Fields(ds.Executive)))
	}
	if !strings.HasPrefix(ds.Executive, "This report explains the migration.") {
		t.Errorf("expected executive to lead with the introduction, got %q", ds.Executive)
	}
	if len(ds.Sections) != 4 {
		t.Errorf("expected 4 section summaries, got %d", len(ds.Sections))
	}
	if len(ds.MainConclusions) == 0 {
		t.Error("expected conclusions from the conclusion section")
	}
	if len(ds.Recommendations) != 2 {
		t.Errorf("expected 2 bullet recommendations, got %v", ds.Recommendations)
	}
	if ds.Recommendations[0] != "monitor the queue" {
		t.Errorf("expected first bullet, got %q", ds.Recommendations[0])
	}
	if len(ds.KeyThemes) == 0 {
		t.Error("expected key themes")
	}
}

func TestSummarizeDocument_NoSections(t *testing.T) {
	ds := SummarizeDocument(nil, document.DefaultOptions(), lexicon.Default())
	if ds.Executive != "" {
		t.Errorf("expected empty executive, got %q", ds.Executive)
	}
	if len(ds.Sections) != 0 {
		t.Errorf("expected no section summaries, got %d", len(ds.Sections))
	}
}
