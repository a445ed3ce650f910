// Package readability scores text for standard readability indices,
// formality, and emotional valence. Every score is a deterministic
// closed-form heuristic over word and sentence statistics.
package readability

import (
	"sort"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/textutil"
)

// Scores is the full readability and register profile of one text.
type Scores struct {
	WordCount        int `json:"word_count"`
	SentenceCount    int `json:"sentence_count"`
	SyllableCount    int `json:"syllable_count"`
	ComplexWordCount int `json:"complex_word_count"`

	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`

	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	GunningFog         float64 `json:"gunning_fog"`

	// Formality is 0 (informal) to 10 (formal), 5 when no markers appear.
	Formality          float64          `json:"formality"`
	Valence            document.Valence `json:"valence"`
	EmotionalIntensity float64          `json:"emotional_intensity"`
	DominantEmotions   []string         `json:"dominant_emotions,omitempty"`
}

// Analyze computes the full score set for one text.
func Analyze(text string, lex *lexicon.Lexicon) Scores {
	words := textutil.Words(text)
	sentences := textutil.Sentences(text)

	s := Scores{
		WordCount:     len(words),
		SentenceCount: len(sentences),
	}
	for _, w := range words {
		syl := textutil.CountSyllables(w)
		s.SyllableCount += syl
		if syl >= 3 {
			s.ComplexWordCount++
		}
	}

	// Zero sentences or words gets neutral defaults instead of failing.
	if s.WordCount == 0 || s.SentenceCount == 0 {
		s.Formality = 5
		s.Valence = document.ValenceNeutral
		return s
	}

	s.AvgWordsPerSentence = float64(s.WordCount) / float64(s.SentenceCount)
	s.AvgSyllablesPerWord = float64(s.SyllableCount) / float64(s.WordCount)

	s.FleschReadingEase = textutil.Clamp(
		206.835-1.015*s.AvgWordsPerSentence-84.6*s.AvgSyllablesPerWord, 0, 100)
	s.FleschKincaidGrade = textutil.Clamp(
		0.39*s.AvgWordsPerSentence+11.8*s.AvgSyllablesPerWord-15.59, 0, 20)
	s.GunningFog = textutil.Clamp(
		0.4*(s.AvgWordsPerSentence+100*float64(s.ComplexWordCount)/float64(s.WordCount)), 0, 20)

	s.Formality = Formality(text, lex)
	s.Valence, s.EmotionalIntensity = Emotion(text, lex)
	s.DominantEmotions = DominantEmotions(text, lex)
	return s
}

// Formality returns 10 x formal/(formal+informal) over marker counts, or the
// neutral 5 when no markers appear.
func Formality(text string, lex *lexicon.Lexicon) float64 {
	formal := textutil.CountAnyWord(text, lex.FormalMarkers)
	informal := textutil.CountAnyWord(text, lex.InformalMarkers)
	if formal+informal == 0 {
		return 5
	}
	return 10 * float64(formal) / float64(formal+informal)
}

// Emotion classifies valence from positive/negative marker ratios and
// returns intensity as min(1, emotional word density x 10).
func Emotion(text string, lex *lexicon.Lexicon) (document.Valence, float64) {
	pos := textutil.CountAnyWord(text, lex.PositiveMarkers)
	neg := textutil.CountAnyWord(text, lex.NegativeMarkers)
	total := textutil.WordCount(text)

	intensity := 0.0
	if total > 0 {
		intensity = textutil.Clamp01(float64(pos+neg) / float64(total) * 10)
	}

	switch {
	case pos > 2*neg && pos > 0:
		return document.ValencePositive, intensity
	case neg > 2*pos && neg > 0:
		return document.ValenceNegative, intensity
	case pos > 0 && neg > 0:
		return document.ValenceMixed, intensity
	default:
		return document.ValenceNeutral, intensity
	}
}

// DominantEmotions returns every matched emotion category, most frequent
// first with ties broken alphabetically for determinism.
func DominantEmotions(text string, lex *lexicon.Lexicon) []string {
	type hit struct {
		name  string
		count int
	}
	var hits []hit
	for name, markers := range lex.EmotionCategories {
		if c := textutil.CountAnyWord(text, markers); c > 0 {
			hits = append(hits, hit{name, c})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].count != hits[j].count {
			return hits[i].count > hits[j].count
		}
		return hits[i].name < hits[j].name
	})
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}
	return out
}
