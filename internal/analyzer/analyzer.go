// Package analyzer sequences the analysis engines over one document and
// aggregates their results into a single report with a holistic assessment.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgallion1/doclens/internal/consistency"
	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/extractor"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/readability"
	"github.com/dgallion1/doclens/internal/structure"
	"github.com/dgallion1/doclens/internal/summary"
	"github.com/dgallion1/doclens/internal/textutil"
	"github.com/dgallion1/doclens/internal/tone"
)

// Severity grades issues and suggestions.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Issue is one structural problem found in the document.
type Issue struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	SectionID   string   `json:"section_id,omitempty"`
}

// Suggestion is one recommended action.
type Suggestion struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Priority    Severity `json:"priority"`
}

// Statistics are the basic document counts reported in metadata.
type Statistics struct {
	WordCount      int     `json:"word_count"`
	SentenceCount  int     `json:"sentence_count"`
	ParagraphCount int     `json:"paragraph_count"`
	SectionCount   int     `json:"section_count"`
	AvgSectionSize float64 `json:"avg_section_size"`
}

// Metadata describes one analysis run.
type Metadata struct {
	Timestamp      time.Time     `json:"timestamp"`
	Scope          string        `json:"scope"`
	Depth          string        `json:"depth"`
	ProcessingTime time.Duration `json:"processing_time"`
	Statistics     Statistics    `json:"statistics"`
}

// Assessment is the holistic verdict over the whole report.
type Assessment struct {
	OverallScore float64 `json:"overall_score"`
	Confidence   float64 `json:"confidence"`
	Urgency      string  `json:"urgency"`
	Summary      string  `json:"summary"`
}

// Report is the aggregated output of a full analysis.
type Report struct {
	Metadata Metadata `json:"metadata"`

	Sections  []document.Section `json:"sections"`
	Hierarchy document.Hierarchy `json:"hierarchy"`

	Readability readability.Scores      `json:"readability"`
	Consistency []consistency.Check     `json:"consistency"`
	Tone        tone.Result             `json:"tone"`
	Flow        structure.FlowAnalysis  `json:"flow"`
	Structure   structure.Result        `json:"structure"`
	Summary     summary.DocumentSummary `json:"summary"`

	Themes      []string `json:"themes,omitempty"`
	Arguments   []string `json:"arguments,omitempty"`
	Evidence    []string `json:"evidence,omitempty"`
	LogicalFlow string   `json:"logical_flow"`
	Audience    string   `json:"audience"`

	// Clarity and redundancy sub-checks keep the empty-result contract.
	ClarityIssues    []Issue `json:"clarity_issues"`
	RedundancyIssues []Issue `json:"redundancy_issues"`

	Issues      []Issue      `json:"issues,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Assessment  Assessment   `json:"assessment"`
}

// Engine runs full-document analysis with an injected lexicon.
type Engine struct {
	lex    *lexicon.Lexicon
	optCfg structure.Config
}

// New returns an engine using the given lexicon, which must not be modified
// afterwards.
func New(lex *lexicon.Lexicon) *Engine {
	return &Engine{lex: lex, optCfg: structure.DefaultConfig()}
}

// Analyze runs every pass synchronously and aggregates the report. It is
// pure and deterministic: identical input and options yield an identical
// report apart from the timestamp and timing metadata.
func (e *Engine) Analyze(text string, opts document.Options) *Report {
	start := time.Now()
	opts = opts.Normalize()

	sections, hierarchy := extractor.Extract(text)

	r := &Report{
		Sections:    sections,
		Hierarchy:   hierarchy,
		Readability: readability.Analyze(text, e.lex),
		Consistency: consistency.RunAll(sections, e.lex),
		Tone:        tone.Analyze(sections, opts, e.lex),
		Flow:        structure.AnalyzeFlow(sections, e.lex),
		Summary:     summary.SummarizeDocument(sections, opts, e.lex),

		ClarityIssues:    []Issue{},
		RedundancyIssues: []Issue{},
	}
	r.Structure = structure.Optimize(sections, opts, e.optCfg, e.lex)

	r.Issues = structuralIssues(sections)
	r.Themes = textutil.TopTerms(text, 5)
	r.Arguments = extractArguments(sections, e.lex)
	r.Evidence = extractEvidence(sections)
	r.LogicalFlow = r.Flow.LogicalProgression
	r.Audience = inferAudience(r.Readability)

	if opts.GenerateSuggestions {
		r.Suggestions = suggest(r)
	}
	r.Assessment = assess(r)

	r.Metadata = Metadata{
		Timestamp:      start,
		Scope:          "document",
		Depth:          string(opts.DetailLevel),
		ProcessingTime: time.Since(start),
		Statistics:     statistics(text, sections),
	}
	return r
}

// Outcome is the deferred result of an asynchronous analysis.
type Outcome struct {
	Report *Report
	Err    error
}

// AnalyzeAsync is the deferred-result wrapper around Analyze. No pass
// performs I/O today, but this is the boundary where a future I/O-bound pass
// could suspend; cancellation surfaces as a context error.
func (e *Engine) AnalyzeAsync(ctx context.Context, text string, opts document.Options) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		if err := ctx.Err(); err != nil {
			out <- Outcome{Err: err}
			return
		}
		out <- Outcome{Report: e.Analyze(text, opts)}
	}()
	return out
}

// statistics computes the basic document counts over the raw text and the
// extracted sections.
func statistics(text string, sections []document.Section) Statistics {
	var sizes []float64
	for _, s := range sections {
		sizes = append(sizes, float64(textutil.WordCount(s.Content)))
	}
	return Statistics{
		WordCount:      textutil.WordCount(text),
		SentenceCount:  len(textutil.Sentences(text)),
		ParagraphCount: len(textutil.Paragraphs(text)),
		SectionCount:   len(sections),
		AvgSectionSize: textutil.Mean(sizes),
	}
}

// structuralIssues reports missing intro/conclusion (only for multi-section
// documents) and section length outliers against the mean.
func structuralIssues(sections []document.Section) []Issue {
	var issues []Issue
	if len(sections) > 1 {
		for _, role := range []string{"introduction", "conclusion"} {
			found := false
			for _, s := range sections {
				if strings.Contains(strings.ToLower(s.Title), role) {
					found = true
					break
				}
			}
			if !found {
				issues = append(issues, Issue{
					Type:        "missing_" + role,
					Description: fmt.Sprintf("document has no %s section", role),
					Severity:    SeverityMedium,
				})
			}
		}
	}

	var counts []float64
	for _, s := range sections {
		counts = append(counts, float64(textutil.WordCount(s.Content)))
	}
	mean := textutil.Mean(counts)
	if mean > 0 {
		for i, s := range sections {
			switch {
			case counts[i] > 3*mean:
				issues = append(issues, Issue{
					Type:        "oversized_section",
					Description: fmt.Sprintf("%q is over three times the average section length", s.Title),
					Severity:    SeverityMedium,
					SectionID:   s.ID,
				})
			case counts[i] < 0.1*mean && len(sections) > 1:
				issues = append(issues, Issue{
					Type:        "undersized_section",
					Description: fmt.Sprintf("%q is under a tenth of the average section length", s.Title),
					Severity:    SeverityLow,
					SectionID:   s.ID,
				})
			}
		}
	}
	return issues
}

// extractArguments picks sentences carrying persuasive or connective
// reasoning markers, capped at five.
func extractArguments(sections []document.Section, lex *lexicon.Lexicon) []string {
	var args []string
	for _, sec := range sections {
		for _, sent := range textutil.Sentences(sec.Content) {
			if textutil.CountAnyWord(sent, lex.PersuasiveMarkers) > 0 &&
				textutil.CountAnyWord(sent, lex.ConnectiveWords) > 0 {
				args = append(args, sent)
				if len(args) == 5 {
					return args
				}
			}
		}
	}
	return args
}

// extractEvidence picks sentences containing figures, capped at five.
func extractEvidence(sections []document.Section) []string {
	var ev []string
	for _, sec := range sections {
		for _, sent := range textutil.Sentences(sec.Content) {
			if textutil.HasDigit(sent) {
				ev = append(ev, sent)
				if len(ev) == 5 {
					return ev
				}
			}
		}
	}
	return ev
}

// inferAudience maps formality and reading grade onto a coarse audience
// label.
func inferAudience(scores readability.Scores) string {
	switch {
	case scores.Formality > 7 && scores.FleschKincaidGrade >= 12:
		return "specialist readers"
	case scores.Formality > 7:
		return "professional readers"
	case scores.Formality < 3:
		return "casual readers"
	default:
		return "general readers"
	}
}

// suggest converts the report's remaining problems into prioritized actions.
func suggest(r *Report) []Suggestion {
	var suggestions []Suggestion
	for _, issue := range r.Issues {
		suggestions = append(suggestions, Suggestion{
			Type:        issue.Type,
			Description: issue.Description,
			Priority:    issue.Severity,
		})
	}
	for _, rec := range r.Tone.Recommendations {
		suggestions = append(suggestions, Suggestion{
			Type:        "tone",
			Description: rec,
			Priority:    SeverityMedium,
		})
	}
	for _, rec := range r.Structure.Recommendations {
		suggestions = append(suggestions, Suggestion{
			Type:        "structure",
			Description: rec,
			Priority:    SeverityMedium,
		})
	}
	for _, check := range r.Consistency {
		if check.Result == consistency.ResultConsistent {
			continue
		}
		priority := SeverityLow
		switch check.Impact {
		case consistency.ImpactHigh:
			priority = SeverityHigh
		case consistency.ImpactMedium:
			priority = SeverityMedium
		}
		suggestions = append(suggestions, Suggestion{
			Type:        "consistency_" + string(check.Type),
			Description: fmt.Sprintf("%d %s inconsistencies found", len(check.Inconsistencies), check.Type),
			Priority:    priority,
		})
	}
	return suggestions
}

// assess computes the holistic score, confidence, and urgency.
func assess(r *Report) Assessment {
	issueCount := len(r.Issues)

	score := textutil.Clamp(80-5*float64(issueCount), 0, 100)

	var confidence float64
	switch {
	case issueCount == 0:
		confidence = 0.9
	case issueCount < 3:
		confidence = 0.8
	case issueCount < 6:
		confidence = 0.7
	default:
		confidence = 0.6
	}

	return Assessment{
		OverallScore: score,
		Confidence:   confidence,
		Urgency:      urgency(r),
		Summary: fmt.Sprintf("%d issues and %d suggestions across %d sections",
			issueCount, len(r.Suggestions), len(r.Sections)),
	}
}

// urgency picks the highest applicable tier: critical, high, medium, low.
func urgency(r *Report) string {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			return "critical"
		}
	}
	for _, issue := range r.Issues {
		if issue.Severity == SeverityHigh {
			return "high"
		}
	}
	for _, s := range r.Suggestions {
		if s.Priority == SeverityHigh {
			return "high"
		}
	}
	for _, s := range r.Suggestions {
		if s.Priority == SeverityMedium {
			return "medium"
		}
	}
	if len(r.Issues)+len(r.Suggestions) > 5 {
		return "medium"
	}
	return "low"
}
