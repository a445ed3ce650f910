package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_TablesPopulated(t *testing.T) {
	lex := Default()

	tables := map[string]int{
		"formal markers":       len(lex.FormalMarkers),
		"informal markers":     len(lex.InformalMarkers),
		"academic markers":     len(lex.AcademicMarkers),
		"persuasive markers":   len(lex.PersuasiveMarkers),
		"positive markers":     len(lex.PositiveMarkers),
		"negative markers":     len(lex.NegativeMarkers),
		"emotion categories":   len(lex.EmotionCategories),
		"connective words":     len(lex.ConnectiveWords),
		"transitional phrases": len(lex.TransitionalPhrases),
		"conclusion markers":   len(lex.ConclusionMarkers),
		"importance markers":   len(lex.ImportanceMarkers),
		"substitutions":        len(lex.Substitutions),
	}
	for name, n := range tables {
		if n == 0 {
			t.Errorf("expected %s to be non-empty", name)
		}
	}
	if lex.ContinuitySentence == "" {
		t.Error("expected a continuity sentence")
	}
}

func TestDefault_SubstitutionTonesSymmetric(t *testing.T) {
	lex := Default()
	for _, tone := range []string{"formal", "informal", "academic", "persuasive"} {
		if len(lex.Substitutions[tone]) == 0 {
			t.Errorf("expected a %q substitution table", tone)
		}
	}
	if lex.Substitutions["formal"]["don't"] != "do not" {
		t.Error("expected the formal table to expand contractions")
	}
	if lex.Substitutions["informal"]["do not"] != "don't" {
		t.Error("expected the informal table to contract phrases")
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	lex, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lex.FormalMarkers) != len(Default().FormalMarkers) {
		t.Error("expected the compiled-in defaults")
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := "formal_markers:\n  - henceforth\ncontinuity_sentence: \"See the appendix.\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lex.FormalMarkers) != 1 || lex.FormalMarkers[0] != "henceforth" {
		t.Errorf("expected the file to replace formal markers, got %v", lex.FormalMarkers)
	}
	if lex.ContinuitySentence != "See the appendix." {
		t.Errorf("expected the overridden continuity sentence, got %q", lex.ContinuitySentence)
	}
	if len(lex.InformalMarkers) == 0 {
		t.Error("expected untouched tables to keep their defaults")
	}
	if len(lex.Substitutions) == 0 {
		t.Error("expected untouched substitutions to keep their defaults")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("formal_markers: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
