package summary

import (
	"strings"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/textutil"
)

// SectionSummary pairs a section with its generated summary.
type SectionSummary struct {
	SectionID string    `json:"section_id"`
	Title     string    `json:"title"`
	Summary   Generated `json:"summary"`
}

// DocumentSummary is the full document-level summary composition.
type DocumentSummary struct {
	Executive       string           `json:"executive"`
	Full            Generated        `json:"full"`
	Sections        []SectionSummary `json:"sections,omitempty"`
	KeyThemes       []string         `json:"key_themes,omitempty"`
	MainConclusions []string         `json:"main_conclusions,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty"`
}

// executiveWordCap bounds the executive summary length.
const executiveWordCap = 150

// SummarizeDocument composes the executive, full, and per-section summaries
// plus themes, conclusions, and recommendations.
func SummarizeDocument(sections []document.Section, opts document.Options, lex *lexicon.Lexicon) DocumentSummary {
	opts = opts.Normalize()

	var fullText strings.Builder
	for _, s := range sections {
		if fullText.Len() > 0 {
			fullText.WriteString("\n\n")
		}
		fullText.WriteString(s.Content)
	}

	ds := DocumentSummary{
		Full:      Generate(fullText.String(), 0, opts.DetailLevel, lex),
		KeyThemes: textutil.TopTerms(fullText.String(), 5),
	}

	for _, s := range sections {
		ds.Sections = append(ds.Sections, SectionSummary{
			SectionID: s.ID,
			Title:     s.Title,
			Summary:   Generate(s.Content, 0, document.DetailBrief, lex),
		})
	}

	ds.Executive = executiveSummary(sections, lex)
	ds.MainConclusions = mainConclusions(sections, lex)
	ds.Recommendations = documentRecommendations(sections, lex)
	return ds
}

// executiveSummary opens with the introduction's lead, adds up to two key
// points from at most three topic sections, and closes with the conclusion,
// capped at 150 words.
func executiveSummary(sections []document.Section, lex *lexicon.Lexicon) string {
	var parts []string

	if intro := findByKeywords(sections, "introduction", "intro", "overview", "executive"); intro != nil {
		if lead := firstSentence(intro.Content); lead != "" {
			parts = append(parts, lead)
		}
	} else if len(sections) > 0 {
		if lead := firstSentence(sections[0].Content); lead != "" {
			parts = append(parts, lead)
		}
	}

	topicCount := 0
	for i := range sections {
		if topicCount >= 3 {
			break
		}
		if isClosingSection(sections[i].Title) || isOpeningSection(sections[i].Title) {
			continue
		}
		g := Generate(sections[i].Content, 0, document.DetailBrief, lex)
		limit := 2
		if len(g.KeyPoints) < limit {
			limit = len(g.KeyPoints)
		}
		parts = append(parts, g.KeyPoints[:limit]...)
		topicCount++
	}

	if concl := findByKeywords(sections, "conclusion", "summary"); concl != nil {
		if close := firstSentence(concl.Content); close != "" {
			parts = append(parts, close)
		}
	}

	return truncateToWords(strings.Join(parts, " "), executiveWordCap)
}

// mainConclusions pulls key sentences from conclusion, summary, or findings
// sections, falling back to the last section.
func mainConclusions(sections []document.Section, lex *lexicon.Lexicon) []string {
	source := findByKeywords(sections, "conclusion", "summary", "finding")
	if source == nil && len(sections) > 0 {
		source = &sections[len(sections)-1]
	}
	if source == nil {
		return nil
	}
	return keySentences(textutil.Sentences(source.Content), 3, lex)
}

// documentRecommendations extracts bullets from recommendation or action
// sections, falling back to their key sentences.
func documentRecommendations(sections []document.Section, lex *lexicon.Lexicon) []string {
	source := findByKeywords(sections, "recommendation", "action", "next steps")
	if source == nil {
		return nil
	}
	points := keyPoints(source.Content, nil, 0)
	if len(points) > 0 {
		return points
	}
	return keySentences(textutil.Sentences(source.Content), 3, lex)
}

func findByKeywords(sections []document.Section, keywords ...string) *document.Section {
	for i := range sections {
		lower := strings.ToLower(sections[i].Title)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return &sections[i]
			}
		}
	}
	return nil
}

func isOpeningSection(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "introduction") || strings.Contains(lower, "intro") ||
		strings.Contains(lower, "overview") || strings.Contains(lower, "executive")
}

func isClosingSection(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "conclusion") || strings.Contains(lower, "summary")
}

func firstSentence(text string) string {
	sentences := textutil.Sentences(text)
	if len(sentences) == 0 {
		return ""
	}
	return sentences[0]
}
