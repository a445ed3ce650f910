package lexicon

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Load reads a YAML lexicon file and merges it over the defaults. Only the
// tables present in the file are replaced; absent tables keep their
// compiled-in values. An empty path returns the defaults unchanged.
func Load(path string) (*Lexicon, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}

	var override Lexicon
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse lexicon file: %w", err)
	}

	merge(base, &override)
	return base, nil
}

func merge(base, override *Lexicon) {
	if len(override.FormalMarkers) > 0 {
		base.FormalMarkers = override.FormalMarkers
	}
	if len(override.InformalMarkers) > 0 {
		base.InformalMarkers = override.InformalMarkers
	}
	if len(override.AcademicMarkers) > 0 {
		base.AcademicMarkers = override.AcademicMarkers
	}
	if len(override.ConversationalMarkers) > 0 {
		base.ConversationalMarkers = override.ConversationalMarkers
	}
	if len(override.PersuasiveMarkers) > 0 {
		base.PersuasiveMarkers = override.PersuasiveMarkers
	}
	if len(override.PositiveMarkers) > 0 {
		base.PositiveMarkers = override.PositiveMarkers
	}
	if len(override.NegativeMarkers) > 0 {
		base.NegativeMarkers = override.NegativeMarkers
	}
	if len(override.EmotionCategories) > 0 {
		base.EmotionCategories = override.EmotionCategories
	}
	if len(override.ConnectiveWords) > 0 {
		base.ConnectiveWords = override.ConnectiveWords
	}
	if len(override.TransitionalPhrases) > 0 {
		base.TransitionalPhrases = override.TransitionalPhrases
	}
	if len(override.ConclusionMarkers) > 0 {
		base.ConclusionMarkers = override.ConclusionMarkers
	}
	if len(override.ImportanceMarkers) > 0 {
		base.ImportanceMarkers = override.ImportanceMarkers
	}
	if len(override.StrongVerbs) > 0 {
		base.StrongVerbs = override.StrongVerbs
	}
	if len(override.ComplexWords) > 0 {
		base.ComplexWords = override.ComplexWords
	}
	if override.ContinuitySentence != "" {
		base.ContinuitySentence = override.ContinuitySentence
	}
	if len(override.Substitutions) > 0 {
		base.Substitutions = override.Substitutions
	}
}
