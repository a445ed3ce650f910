// Package document defines the section model shared by every analysis engine.
package document

// Section is a contiguous, non-overlapping span of the document. Sections are
// created once per analysis and treated as immutable by every read-only pass;
// only structural optimization produces new section lists (copy-on-write).
type Section struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	StartIndex int      `json:"start_index"`
	EndIndex   int      `json:"end_index"`
	Level      int      `json:"level"`
	ParentID   string   `json:"parent_id,omitempty"`
	ChildIDs   []string `json:"child_ids,omitempty"`
	KeyTopics  []string `json:"key_topics,omitempty"`

	// Cached per-section results, populated lazily by the orchestrator.
	Summary     string  `json:"summary,omitempty"`
	Tone        Tone    `json:"tone,omitempty"`
	Readability float64 `json:"readability,omitempty"`
}

// Clone returns a deep copy so optimization passes never mutate the caller's
// sections.
func (s Section) Clone() Section {
	c := s
	c.ChildIDs = append([]string(nil), s.ChildIDs...)
	c.KeyTopics = append([]string(nil), s.KeyTopics...)
	return c
}

// Hierarchy is the parent/child tree built from heading-level adjacency.
type Hierarchy struct {
	RootSectionIDs []string `json:"root_section_ids"`
	MaxDepth       int      `json:"max_depth"`
	IsBalanced     bool     `json:"is_balanced"`
	Issues         []string `json:"issues,omitempty"`
}

// DetailLevel controls how many key sentences a summary keeps.
type DetailLevel string

const (
	DetailBrief         DetailLevel = "brief"
	DetailStandard      DetailLevel = "standard"
	DetailDetailed      DetailLevel = "detailed"
	DetailComprehensive DetailLevel = "comprehensive"
)

// Options is the per-request analysis configuration record.
type Options struct {
	TargetTone           Tone        `json:"target_tone,omitempty"`
	TargetAudience       string      `json:"target_audience,omitempty"`
	DetailLevel          DetailLevel `json:"detail_level,omitempty"`
	ClarityLevel         string      `json:"clarity_level,omitempty"`
	MinSections          int         `json:"min_sections,omitempty"`
	MaxSections          int         `json:"max_sections,omitempty"`
	TargetSectionLength  int         `json:"target_section_length,omitempty"`
	EnforceLogicalFlow   bool        `json:"enforce_logical_flow"`
	MaxToneShifts        int         `json:"max_tone_shifts,omitempty"`
	AllowMixedTones      bool        `json:"allow_mixed_tones"`
	MaxRewriteIterations int         `json:"max_rewrite_iterations,omitempty"`
	GenerateSuggestions  bool        `json:"generate_suggestions"`
}

// DefaultOptions returns the defaults applied when a request omits a field.
func DefaultOptions() Options {
	return Options{
		TargetTone:           ToneNeutral,
		DetailLevel:          DetailStandard,
		MinSections:          2,
		MaxSections:          20,
		TargetSectionLength:  300,
		EnforceLogicalFlow:   true,
		MaxToneShifts:        3,
		AllowMixedTones:      false,
		MaxRewriteIterations: 3,
		GenerateSuggestions:  true,
	}
}

// Normalize fills zero values with defaults so every engine sees a usable
// configuration. Out-of-range values are clamped rather than rejected.
func (o Options) Normalize() Options {
	def := DefaultOptions()
	if o.TargetTone == "" {
		o.TargetTone = def.TargetTone
	}
	switch o.DetailLevel {
	case DetailBrief, DetailStandard, DetailDetailed, DetailComprehensive:
	default:
		o.DetailLevel = def.DetailLevel
	}
	if o.MinSections <= 0 {
		o.MinSections = def.MinSections
	}
	if o.MaxSections <= 0 {
		o.MaxSections = def.MaxSections
	}
	if o.MaxSections < o.MinSections {
		o.MaxSections = o.MinSections
	}
	if o.TargetSectionLength <= 0 {
		o.TargetSectionLength = def.TargetSectionLength
	}
	if o.MaxToneShifts <= 0 {
		o.MaxToneShifts = def.MaxToneShifts
	}
	if o.MaxRewriteIterations <= 0 {
		o.MaxRewriteIterations = def.MaxRewriteIterations
	}
	return o
}
