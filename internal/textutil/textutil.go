// Package textutil provides the word, sentence and term statistics shared by
// every analysis engine. All functions are pure and deterministic.
package textutil

import (
	"sort"
	"strings"
	"unicode"
)

// Words splits text on whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the number of whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Sentences does basic terminal-punctuation sentence splitting.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && (i+1 >= len(runes) || unicode.IsSpace(runes[i+1])) {
			s := strings.TrimSpace(current.String())
			if s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Paragraphs splits on blank lines, dropping empty segments.
func Paragraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// NormalizeWord lowercases a word and strips surrounding punctuation.
func NormalizeWord(w string) string {
	return strings.TrimFunc(strings.ToLower(w), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// NormalizedWords returns every word lowercased with punctuation stripped,
// dropping words that normalize to the empty string.
func NormalizedWords(text string) []string {
	var out []string
	for _, w := range strings.Fields(text) {
		if n := NormalizeWord(w); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// stopwords are excluded from term extraction and overlap measures.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "for": true,
	"from": true, "had": true, "has": true, "have": true, "he": true,
	"her": true, "his": true, "in": true, "is": true, "it": true,
	"its": true, "not": true, "of": true, "on": true, "or": true,
	"she": true, "that": true, "the": true, "their": true, "there": true,
	"these": true, "they": true, "this": true, "those": true, "to": true,
	"was": true, "we": true, "were": true, "which": true, "will": true,
	"with": true, "you": true, "your": true,
}

// IsStopword reports whether the normalized word is a stopword.
func IsStopword(w string) bool {
	return stopwords[w]
}

// ContentWords returns normalized words longer than minLen that are not
// stopwords, in document order.
func ContentWords(text string, minLen int) []string {
	var out []string
	for _, w := range NormalizedWords(text) {
		if len(w) > minLen && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

// termCount pairs a term with its frequency for stable ranking.
type termCount struct {
	term  string
	count int
	first int
}

// TopTerms returns up to limit content words of length > 3 ranked by
// frequency, ties broken by first occurrence so the result is deterministic.
func TopTerms(text string, limit int) []string {
	words := ContentWords(text, 3)
	counts := make(map[string]*termCount)
	for i, w := range words {
		tc, ok := counts[w]
		if !ok {
			tc = &termCount{term: w, first: i}
			counts[w] = tc
		}
		tc.count++
	}

	ranked := make([]termCount, 0, len(counts))
	for _, tc := range counts {
		ranked = append(ranked, *tc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	out := make([]string, 0, limit)
	for _, tc := range ranked[:limit] {
		out = append(out, tc.term)
	}
	return out
}

// TermSet returns the set of content words of length > 3.
func TermSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range ContentWords(text, 3) {
		set[w] = true
	}
	return set
}

// JaccardOverlap computes |a∩b| / |a∪b| over two term sets.
// Empty union yields 0.
func JaccardOverlap(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// SharedWords counts normalized words present in both texts.
func SharedWords(a, b string) int {
	setA := make(map[string]bool)
	for _, w := range NormalizedWords(a) {
		setA[w] = true
	}
	shared := 0
	seen := make(map[string]bool)
	for _, w := range NormalizedWords(b) {
		if setA[w] && !seen[w] {
			shared++
			seen[w] = true
		}
	}
	return shared
}

// WordOverlapRatio returns the fraction of the smaller text's distinct
// normalized words that also appear in the other text. Two empty texts
// overlap fully at 0.
func WordOverlapRatio(a, b string) float64 {
	setA := make(map[string]bool)
	for _, w := range NormalizedWords(a) {
		setA[w] = true
	}
	setB := make(map[string]bool)
	for _, w := range NormalizedWords(b) {
		setB[w] = true
	}
	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}
	if smaller == 0 {
		return 0
	}
	inter := 0
	for w := range setA {
		if setB[w] {
			inter++
		}
	}
	return float64(inter) / float64(smaller)
}

// CountSyllables estimates syllables in a word by vowel-group counting with
// a silent-e adjustment. Always returns at least 1 for non-empty words.
func CountSyllables(word string) int {
	w := NormalizeWord(word)
	if w == "" {
		return 0
	}
	isVowel := func(r byte) bool {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return true
		}
		return false
	}
	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := isVowel(w[i])
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// HasDigit reports whether the text contains a decimal digit.
func HasDigit(text string) bool {
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// ContainsWord reports a whole-word, case-insensitive match of word in text.
func ContainsWord(text, word string) bool {
	target := strings.ToLower(word)
	for _, w := range NormalizedWords(text) {
		if w == target {
			return true
		}
	}
	return false
}

// CountAnyWord counts occurrences of any of the marker words in text,
// matching whole normalized words.
func CountAnyWord(text string, markers []string) int {
	set := make(map[string]bool, len(markers))
	for _, m := range markers {
		set[strings.ToLower(m)] = true
	}
	count := 0
	for _, w := range NormalizedWords(text) {
		if set[w] {
			count++
		}
	}
	return count
}

// CountAnyPhrase counts case-insensitive substring occurrences of the given
// phrases in text. Multi-word markers need substring matching.
func CountAnyPhrase(text string, phrases []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, p := range phrases {
		count += strings.Count(lower, strings.ToLower(p))
	}
	return count
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp clamps v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
