package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/doclens/internal/analyzer"
	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/parser"
)

var (
	analyzeTone    string
	analyzeDetail  string
	analyzeSuggest bool
	analyzeCompact bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single document and print the report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTone, "tone", "", "target tone (formal, informal, academic, conversational, persuasive, neutral)")
	analyzeCmd.Flags().StringVar(&analyzeDetail, "detail", "", "summary detail level (brief, standard, detailed, comprehensive)")
	analyzeCmd.Flags().BoolVar(&analyzeSuggest, "suggestions", true, "include improvement suggestions")
	analyzeCmd.Flags().BoolVar(&analyzeCompact, "compact", false, "print compact JSON instead of indented")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(path string) error {
	cfg := config.Load()

	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		loaded, err := lexicon.Load(cfg.LexiconPath)
		if err != nil {
			return fmt.Errorf("load lexicon: %w", err)
		}
		lex = loaded
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := parser.ForFile(path)
	if err != nil {
		return err
	}
	doc, err := p.Parse(f, path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	opts := document.DefaultOptions()
	if analyzeTone != "" {
		opts.TargetTone = document.Tone(analyzeTone)
	}
	if analyzeDetail != "" {
		opts.DetailLevel = document.DetailLevel(analyzeDetail)
	}
	opts.GenerateSuggestions = analyzeSuggest
	opts = opts.Normalize()

	report := analyzer.New(lex).Analyze(doc.Text, opts)

	enc := json.NewEncoder(os.Stdout)
	if !analyzeCompact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
