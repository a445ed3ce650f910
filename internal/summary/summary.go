// Package summary produces extractive summaries by scoring sentences and
// reassembling the top candidates in their original order.
package summary

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/textutil"
	"github.com/dgallion1/doclens/internal/tone"
)

// Statistics describes a generated summary.
type Statistics struct {
	WordCount        int     `json:"word_count"`
	CompressionRatio float64 `json:"compression_ratio"`
	KeyPointCount    int     `json:"key_point_count"`
	Coverage         float64 `json:"coverage"`
}

// Generated is one summary with its quality metadata.
type Generated struct {
	Summary    string        `json:"summary"`
	KeyPoints  []string      `json:"key_points,omitempty"`
	Statistics Statistics    `json:"statistics"`
	Tone       document.Tone `json:"tone"`
	Confidence float64       `json:"confidence"`
}

// keySentenceCount maps detail levels to the number of sentences kept.
var keySentenceCount = map[document.DetailLevel]int{
	document.DetailBrief:         3,
	document.DetailStandard:      5,
	document.DetailDetailed:      8,
	document.DetailComprehensive: 12,
}

// defaultTargetWords maps detail levels to a target length when the caller
// does not supply one.
var defaultTargetWords = map[document.DetailLevel]int{
	document.DetailBrief:         50,
	document.DetailStandard:      100,
	document.DetailDetailed:      200,
	document.DetailComprehensive: 400,
}

var keyPointPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*[-*\x{2022}]\s+(.+)$`),
	regexp.MustCompile(`(?m)^\s*\d+[.)]\s+(.+)$`),
	regexp.MustCompile(`(?mi)^\s*key point:\s*(.+)$`),
}

// Generate summarizes one text toward targetWords (0 derives the target from
// the detail level).
func Generate(text string, targetWords int, detail document.DetailLevel, lex *lexicon.Lexicon) Generated {
	k, ok := keySentenceCount[detail]
	if !ok {
		detail = document.DetailStandard
		k = keySentenceCount[detail]
	}
	if targetWords <= 0 {
		targetWords = defaultTargetWords[detail]
	}

	sentences := textutil.Sentences(text)
	key := keySentences(sentences, k, lex)

	summaryText := strings.Join(key, " ")
	summaryText = truncateToWords(summaryText, targetWords)

	// Short summaries with material left over get a continuity sentence.
	if len(key) > 1 && textutil.WordCount(summaryText) < int(0.7*float64(targetWords)) {
		summaryText = strings.TrimSpace(summaryText + " " + lex.ContinuitySentence)
	}

	points := keyPoints(text, key, k)

	originalWords := textutil.WordCount(text)
	summaryWords := textutil.WordCount(summaryText)
	ratio := 0.0
	if originalWords > 0 {
		ratio = float64(summaryWords) / float64(originalWords)
	}

	coverage := 0.0
	if len(sentences) > 0 {
		coverage = 0.7*float64(len(key))/float64(len(sentences)) + 0.3*ratio
	}

	return Generated{
		Summary:   summaryText,
		KeyPoints: points,
		Statistics: Statistics{
			WordCount:        summaryWords,
			CompressionRatio: ratio,
			KeyPointCount:    len(points),
			Coverage:         textutil.Clamp01(coverage),
		},
		Tone:       tone.Classify(summaryText, lex).PrimaryTone,
		Confidence: confidence(summaryText, ratio, len(points)),
	}
}

// keySentences scores every sentence and returns the top k restored to
// their original order.
func keySentences(sentences []string, k int, lex *lexicon.Lexicon) []string {
	if len(sentences) == 0 {
		return nil
	}
	type scored struct {
		index int
		score int
	}
	ranked := make([]scored, len(sentences))
	for i, sent := range sentences {
		score := 0
		if i == 0 {
			score += 3
		}
		if i == len(sentences)-1 {
			score += 2
		}
		if textutil.HasDigit(sent) {
			score += 2
		}
		if textutil.CountAnyWord(sent, lex.ConclusionMarkers) > 0 {
			score += 2
		}
		if textutil.CountAnyWord(sent, lex.ImportanceMarkers) > 0 {
			score++
		}
		if wc := textutil.WordCount(sent); wc > 8 && wc < 30 {
			score++
		}
		ranked[i] = scored{index: i, score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if k > len(ranked) {
		k = len(ranked)
	}
	top := ranked[:k]
	sort.Slice(top, func(i, j int) bool { return top[i].index < top[j].index })

	out := make([]string, 0, k)
	for _, s := range top {
		out = append(out, sentences[s.index])
	}
	return out
}

// keyPoints extracts bullet, numbered, and "key point:" lines, falling back
// to the top key sentences, deduplicated in first-seen order.
func keyPoints(text string, key []string, k int) []string {
	var points []string
	for _, pat := range keyPointPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			points = append(points, strings.TrimSpace(m[1]))
		}
	}
	if len(points) == 0 {
		limit := 5
		if k < limit {
			limit = k
		}
		if limit > len(key) {
			limit = len(key)
		}
		points = append(points, key[:limit]...)
	}

	seen := make(map[string]bool)
	var out []string
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// truncateToWords cuts text at the target word count, then backs off to the
// nearest preceding terminal punctuation, appending one if none exists.
func truncateToWords(text string, target int) string {
	words := strings.Fields(text)
	if len(words) <= target {
		return text
	}
	cut := strings.Join(words[:target], " ")
	if idx := lastTerminal(cut); idx >= 0 {
		return cut[:idx+1]
	}
	return cut + "."
}

func lastTerminal(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '.', '!', '?':
			return i
		}
	}
	return -1
}

// confidence starts at 0.7 and adjusts for compression ratio, key point
// count, terminal punctuation, and sentence length variance.
func confidence(summaryText string, ratio float64, keyPointCount int) float64 {
	c := 0.7

	switch {
	case ratio >= 0.05 && ratio < 0.2:
		c += 0.1
	case ratio >= 0.2 && ratio < 0.4:
		c += 0.05
	case ratio >= 0.4 && ratio < 0.6:
		c -= 0.05
	case ratio >= 0.6:
		c -= 0.1
	}

	switch {
	case keyPointCount >= 5:
		c += 0.1
	case keyPointCount >= 3:
		c += 0.05
	case keyPointCount == 0:
		c -= 0.05
	}

	if lastTerminal(summaryText) == len(summaryText)-1 && summaryText != "" {
		c += 0.05
	}
	if v := sentenceLengthVariance(summaryText); v > 5 && v < 50 {
		c += 0.05
	}
	return textutil.Clamp01(c)
}

func sentenceLengthVariance(text string) float64 {
	sentences := textutil.Sentences(text)
	if len(sentences) < 2 {
		return 0
	}
	var lengths []float64
	for _, s := range sentences {
		lengths = append(lengths, float64(textutil.WordCount(s)))
	}
	mean := textutil.Mean(lengths)
	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	return variance / float64(len(lengths))
}
