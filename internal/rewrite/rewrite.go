// Package rewrite shifts a text's tone through iterative, table-driven
// lexical substitution.
package rewrite

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/textutil"
	"github.com/dgallion1/doclens/internal/tone"
)

// ChangeType identifies the strategy that produced a change.
type ChangeType string

const (
	ChangeToneAdjustment  ChangeType = "tone_adjustment"
	ChangeClarity         ChangeType = "clarity"
	ChangeConciseness     ChangeType = "conciseness"
	ChangeJargonReduction ChangeType = "jargon_reduction"
)

// Change records one applied substitution.
type Change struct {
	Type             ChangeType `json:"type"`
	OriginalSegment  string     `json:"original_segment"`
	RewrittenSegment string     `json:"rewritten_segment"`
	Explanation      string     `json:"explanation"`
	Impact           string     `json:"impact"`
}

// Result is the outcome of a rewrite run.
type Result struct {
	RewrittenText          string        `json:"rewritten_text"`
	Changes                []Change      `json:"changes,omitempty"`
	WordCountChangePercent float64       `json:"word_count_change_percent"`
	SentenceCountDelta     int           `json:"sentence_count_delta"`
	AvgSentenceLengthDelta float64       `json:"avg_sentence_length_delta"`
	ToneBefore             document.Tone `json:"tone_before"`
	ToneAfter              document.Tone `json:"tone_after"`
	Confidence             float64       `json:"confidence"`
}

// Rule-based substitution is predictable, so confidence is fixed.
const rewriteConfidence = 0.8

// strategy transforms text and reports the changes it made.
type strategy func(text string) (string, []Change)

// Rewrite applies the tone-adjustment, clarity, conciseness, and
// jargon-reduction strategies in order, iterating up to the configured
// maximum and stopping early once an iteration changes nothing.
func Rewrite(text string, target document.Tone, opts document.Options, lex *lexicon.Lexicon) Result {
	opts = opts.Normalize()

	strategies := []strategy{
		toneStrategy(target, lex),
		clarityStrategy(),
		concisenessStrategy(),
		jargonStrategy(),
	}

	current := text
	var changes []Change
	for i := 0; i < opts.MaxRewriteIterations; i++ {
		iterationChanged := false
		for _, apply := range strategies {
			next, applied := apply(current)
			if len(applied) > 0 {
				iterationChanged = true
				current = next
				changes = append(changes, applied...)
			}
		}
		if !iterationChanged {
			break
		}
	}

	return buildResult(text, current, changes, lex)
}

// toneStrategy substitutes whole words from the target tone's table,
// case-insensitively, preserving a leading capital.
func toneStrategy(target document.Tone, lex *lexicon.Lexicon) strategy {
	table := lex.Substitutions[string(target)]
	// Longest key first so multi-word entries win over their prefixes;
	// alphabetical within a length for deterministic change ordering.
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	return func(text string) (string, []Change) {
		var changes []Change
		for _, from := range keys {
			to := table[from]
			pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(from) + `\b`)
			text = pattern.ReplaceAllStringFunc(text, func(match string) string {
				replacement := matchCase(match, to)
				changes = append(changes, Change{
					Type:             ChangeToneAdjustment,
					OriginalSegment:  match,
					RewrittenSegment: replacement,
					Explanation:      fmt.Sprintf("%q reads better as %q in a %s register", match, replacement, target),
					Impact:           "low",
				})
				return replacement
			})
		}
		return text, changes
	}
}

// clarityStrategy is contractually defined but intentionally empty in the
// reference behavior.
func clarityStrategy() strategy {
	return func(text string) (string, []Change) { return text, nil }
}

// concisenessStrategy is intentionally empty, matching the reference.
func concisenessStrategy() strategy {
	return func(text string) (string, []Change) { return text, nil }
}

// jargonStrategy is intentionally empty, matching the reference.
func jargonStrategy() strategy {
	return func(text string) (string, []Change) { return text, nil }
}

// matchCase copies the original's leading capitalization onto the
// replacement.
func matchCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	first := []rune(original)[0]
	if unicode.IsUpper(first) {
		r := []rune(replacement)
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	}
	return replacement
}

func buildResult(before, after string, changes []Change, lex *lexicon.Lexicon) Result {
	beforeWords := textutil.WordCount(before)
	afterWords := textutil.WordCount(after)
	wordChange := 0.0
	if beforeWords > 0 {
		wordChange = (float64(afterWords) - float64(beforeWords)) / float64(beforeWords) * 100
	}

	beforeSentences := textutil.Sentences(before)
	afterSentences := textutil.Sentences(after)

	return Result{
		RewrittenText:          after,
		Changes:                changes,
		WordCountChangePercent: wordChange,
		SentenceCountDelta:     len(afterSentences) - len(beforeSentences),
		AvgSentenceLengthDelta: avgSentenceLength(afterSentences) - avgSentenceLength(beforeSentences),
		ToneBefore:             tone.Classify(before, lex).PrimaryTone,
		ToneAfter:              tone.Classify(after, lex).PrimaryTone,
		Confidence:             rewriteConfidence,
	}
}

func avgSentenceLength(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(sentences))
}
