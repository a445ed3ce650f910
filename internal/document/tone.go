package document

// Tone is a categorical register classification.
type Tone string

const (
	ToneFormal         Tone = "formal"
	ToneInformal       Tone = "informal"
	ToneAcademic       Tone = "academic"
	ToneConversational Tone = "conversational"
	TonePersuasive     Tone = "persuasive"
	ToneNeutral        Tone = "neutral"
	ToneOptimistic     Tone = "optimistic"
	TonePessimistic    Tone = "pessimistic"
	ToneConfident      Tone = "confident"
	ToneTentative      Tone = "tentative"
	ToneFriendly       Tone = "friendly"
	ToneAuthoritative  Tone = "authoritative"
)

// toneOrdinal places the six primary tones on a fixed formality scale.
// Tones outside the scale map to neutral's position.
var toneOrdinal = map[Tone]int{
	ToneInformal:       0,
	ToneConversational: 1,
	TonePersuasive:     2,
	ToneNeutral:        3,
	ToneAcademic:       4,
	ToneFormal:         5,
}

// Ordinal returns the tone's position on the formality scale.
func (t Tone) Ordinal() int {
	if ord, ok := toneOrdinal[t]; ok {
		return ord
	}
	return toneOrdinal[ToneNeutral]
}

// ShiftMagnitude measures the distance between two tones on the formality
// scale, normalized to [0, 1]. Symmetric by construction.
func ShiftMagnitude(from, to Tone) float64 {
	d := from.Ordinal() - to.Ordinal()
	if d < 0 {
		d = -d
	}
	return float64(d) / 5.0
}

// Valence is the emotional direction of a text.
type Valence string

const (
	ValencePositive Valence = "positive"
	ValenceNegative Valence = "negative"
	ValenceMixed    Valence = "mixed"
	ValenceNeutral  Valence = "neutral"
)
