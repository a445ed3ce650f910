// Package tone classifies per-section tone, detects tone shifts between
// adjacent sections, and recommends corrections.
package tone

import (
	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/readability"
	"github.com/dgallion1/doclens/internal/textutil"
)

// Appropriateness grades how well a section's tone fits its role.
type Appropriateness string

const (
	AppropriatenessGood     Appropriateness = "good"
	AppropriatenessAdequate Appropriateness = "adequate"
	AppropriatenessPoor     Appropriateness = "poor"
)

// EmotionalTone is the emotional profile of one text.
type EmotionalTone struct {
	Valence          document.Valence `json:"valence"`
	Intensity        float64          `json:"intensity"`
	DominantEmotions []string         `json:"dominant_emotions,omitempty"`
	Consistency      float64          `json:"consistency"`
}

// Analysis is the tone classification of one text.
type Analysis struct {
	PrimaryTone      document.Tone   `json:"primary_tone"`
	SecondaryTones   []document.Tone `json:"secondary_tones,omitempty"`
	ConsistencyScore float64         `json:"consistency_score"`
	Appropriateness  Appropriateness `json:"appropriateness"`
	Emotional        *EmotionalTone  `json:"emotional,omitempty"`
}

// sectionConsistency is the reference's fixed per-section consistency score.
const sectionConsistency = 0.8

// Classify determines the primary and secondary tones of one text.
//
// The primary tone is decided in fixed order: academic, persuasive, formal,
// informal, conversational, then neutral. Secondary tones are every other
// matched marker category plus the valence-derived register.
func Classify(text string, lex *lexicon.Lexicon) Analysis {
	formality := readability.Formality(text, lex)
	academic := textutil.CountAnyWord(text, lex.AcademicMarkers)
	persuasive := textutil.CountAnyWord(text, lex.PersuasiveMarkers)
	conversational := textutil.CountAnyWord(text, lex.ConversationalMarkers)
	formal := textutil.CountAnyWord(text, lex.FormalMarkers)
	informal := textutil.CountAnyWord(text, lex.InformalMarkers)

	var primary document.Tone
	switch {
	case academic > 0 && formality > 7:
		primary = document.ToneAcademic
	case persuasive > 0:
		primary = document.TonePersuasive
	case formality > 7:
		primary = document.ToneFormal
	case formality < 3:
		primary = document.ToneInformal
	case formality >= 5 && formality <= 7 && conversational > 0:
		primary = document.ToneConversational
	default:
		primary = document.ToneNeutral
	}

	valence, intensity := readability.Emotion(text, lex)

	// Secondary tones: every matched category except the primary, in a
	// fixed order so output is deterministic.
	var secondary []document.Tone
	addSecondary := func(t document.Tone, matched bool) {
		if matched && t != primary {
			secondary = append(secondary, t)
		}
	}
	addSecondary(document.ToneAcademic, academic > 0)
	addSecondary(document.TonePersuasive, persuasive > 0)
	addSecondary(document.ToneFormal, formal > 0)
	addSecondary(document.ToneInformal, informal > 0)
	addSecondary(document.ToneConversational, conversational > 0)
	addSecondary(document.ToneOptimistic, valence == document.ValencePositive)
	addSecondary(document.TonePessimistic, valence == document.ValenceNegative)

	return Analysis{
		PrimaryTone:      primary,
		SecondaryTones:   secondary,
		ConsistencyScore: sectionConsistency,
		Appropriateness:  AppropriatenessAdequate,
		Emotional: &EmotionalTone{
			Valence:          valence,
			Intensity:        intensity,
			DominantEmotions: readability.DominantEmotions(text, lex),
			Consistency:      sectionConsistency,
		},
	}
}
