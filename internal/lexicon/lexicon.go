// Package lexicon holds the fixed word and phrase tables driving the
// rule-based analysis passes. A Lexicon is loaded once, treated as immutable,
// and injected into every engine so the passes stay pure functions.
package lexicon

// Lexicon is the complete marker-word configuration.
type Lexicon struct {
	FormalMarkers         []string `yaml:"formal_markers"`
	InformalMarkers       []string `yaml:"informal_markers"`
	AcademicMarkers       []string `yaml:"academic_markers"`
	ConversationalMarkers []string `yaml:"conversational_markers"`
	PersuasiveMarkers     []string `yaml:"persuasive_markers"`

	PositiveMarkers []string `yaml:"positive_markers"`
	NegativeMarkers []string `yaml:"negative_markers"`

	// EmotionCategories maps an emotion name to its marker words.
	EmotionCategories map[string][]string `yaml:"emotion_categories"`

	ConnectiveWords     []string `yaml:"connective_words"`
	TransitionalPhrases []string `yaml:"transitional_phrases"`

	ConclusionMarkers  []string `yaml:"conclusion_markers"`
	ImportanceMarkers  []string `yaml:"importance_markers"`
	StrongVerbs        []string `yaml:"strong_verbs"`
	ComplexWords       []string `yaml:"complex_words"`
	ContinuitySentence string   `yaml:"continuity_sentence"`

	// Substitutions maps a target tone to its whole-word replacement table.
	Substitutions map[string]map[string]string `yaml:"substitutions"`
}

// Default returns the compiled-in lexicon.
func Default() *Lexicon {
	return &Lexicon{
		FormalMarkers: []string{
			"therefore", "consequently", "furthermore", "moreover",
			"nevertheless", "accordingly", "henceforth", "notwithstanding",
			"pursuant", "herein", "thereby", "whereas", "hereby", "thus",
			"shall", "regarding", "subsequent", "prior",
		},
		InformalMarkers: []string{
			"gonna", "wanna", "gotta", "kinda", "sorta", "yeah", "nope",
			"okay", "ok", "cool", "awesome", "stuff", "things", "guys",
			"pretty", "really", "basically", "totally", "anyway",
		},
		AcademicMarkers: []string{
			"hypothesis", "methodology", "empirical", "theoretical",
			"paradigm", "framework", "analysis", "correlation", "variable",
			"literature", "findings", "significant", "phenomenon", "criteria",
			"qualitative", "quantitative", "systematic",
		},
		ConversationalMarkers: []string{
			"you", "your", "we", "our", "let's", "imagine", "think",
			"wonder", "guess", "suppose", "feel", "maybe", "perhaps",
		},
		PersuasiveMarkers: []string{
			"should", "must", "essential", "crucial", "critical", "vital",
			"imperative", "undoubtedly", "clearly", "obviously", "certainly",
			"proven", "guarantee", "urge", "compelling",
		},
		PositiveMarkers: []string{
			"good", "great", "excellent", "positive", "success", "successful",
			"improve", "improved", "benefit", "beneficial", "effective",
			"strong", "growth", "opportunity", "achieve", "achieved",
			"advantage", "progress", "win", "best", "better",
		},
		NegativeMarkers: []string{
			"bad", "poor", "negative", "failure", "failed", "problem",
			"issue", "risk", "weak", "decline", "loss", "concern",
			"difficult", "worse", "worst", "threat", "crisis", "damage",
			"obstacle", "drawback",
		},
		EmotionCategories: map[string][]string{
			"confidence":  {"confident", "certain", "assured", "proven", "reliable"},
			"concern":     {"worried", "concerned", "anxious", "risk", "uncertain"},
			"enthusiasm":  {"excited", "thrilled", "eager", "delighted", "passionate"},
			"urgency":     {"urgent", "immediately", "critical", "deadline", "asap"},
			"frustration": {"frustrated", "annoyed", "disappointing", "unacceptable"},
			"optimism":    {"hopeful", "promising", "bright", "opportunity", "growth"},
		},
		ConnectiveWords: []string{
			"therefore", "because", "since", "thus", "hence", "consequently",
			"accordingly", "so", "then", "furthermore", "moreover",
			"additionally", "however", "although", "whereas",
		},
		TransitionalPhrases: []string{
			"in addition", "as a result", "on the other hand", "for example",
			"for instance", "in contrast", "in conclusion", "to summarize",
			"building on", "as discussed", "as mentioned", "turning to",
			"with this in mind", "in this context", "following this",
		},
		ConclusionMarkers: []string{
			"conclusion", "conclude", "summary", "summarize", "therefore",
			"finally", "overall", "in short", "ultimately", "result",
		},
		ImportanceMarkers: []string{
			"important", "significant", "key", "critical", "essential",
			"major", "primary", "fundamental", "notable", "crucial",
		},
		StrongVerbs: []string{
			"is", "are", "was", "were", "will", "must", "always", "never",
			"increased", "decreased", "grew", "declined", "rose", "fell",
		},
		ComplexWords: []string{
			"utilize", "facilitate", "implementation", "methodology",
			"notwithstanding", "approximately", "subsequently",
		},
		ContinuitySentence: "Additional details are covered in the full document.",
		Substitutions: map[string]map[string]string{
			"formal": {
				"don't":    "do not",
				"won't":    "will not",
				"can't":    "cannot",
				"isn't":    "is not",
				"aren't":   "are not",
				"wasn't":   "was not",
				"weren't":  "were not",
				"doesn't":  "does not",
				"didn't":   "did not",
				"couldn't": "could not",
				"wouldn't": "would not",
				"that's":   "that is",
				"it's":     "it is",
				"there's":  "there is",
				"we're":    "we are",
				"they're":  "they are",
				"you're":   "you are",
				"i'm":      "I am",
				"let's":    "let us",
				"kids":     "children",
				"get":      "obtain",
				"got":      "obtained",
				"buy":      "purchase",
				"need":     "require",
				"show":     "demonstrate",
				"help":     "assist",
				"a lot of": "a considerable amount of",
			},
			"informal": {
				"do not":      "don't",
				"will not":    "won't",
				"cannot":      "can't",
				"is not":      "isn't",
				"it is":       "it's",
				"that is":     "that's",
				"obtain":      "get",
				"purchase":    "buy",
				"require":     "need",
				"demonstrate": "show",
				"assist":      "help",
				"utilize":     "use",
			},
			"academic": {
				"show":    "demonstrate",
				"showed":  "demonstrated",
				"use":     "employ",
				"used":    "employed",
				"look at": "examine",
				"find":    "ascertain",
				"found":   "ascertained",
				"big":     "substantial",
				"small":   "marginal",
				"idea":    "concept",
				"check":   "verify",
				"about":   "approximately",
				"start":   "commence",
			},
			"persuasive": {
				"good":      "excellent",
				"useful":    "invaluable",
				"important": "essential",
				"can":       "will",
				"might":     "will",
				"may":       "will",
				"problem":   "critical challenge",
				"improve":   "transform",
			},
		},
	}
}
