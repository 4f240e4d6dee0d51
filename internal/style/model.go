// Package style holds the tone templates and the adaptive weighted policy that
// decides which tone a generated comment uses. A Policy owns the weight table;
// success reports nudge it toward the tone that performed best.
package style

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

var (
	ErrInvalidWeights = errors.New("invalid weight table")
	ErrInvalidReport  = errors.New("invalid success report")
)

// Tone is one of the fixed comment styles.
type Tone string

const (
	ToneComedic         Tone = "comedic"
	ToneFlirty          Tone = "flirty"
	ToneStraightforward Tone = "straightforward"
)

// Tones lists every tone in the stable order used for selection and tie-breaking.
var Tones = []Tone{ToneComedic, ToneFlirty, ToneStraightforward}

// KeywordSlot is replaced with the chosen keyword when a template is rendered.
const KeywordSlot = "{keyword}"

const (
	ComedicTemplate = "The profile mentions '" + KeywordSlot + "'. That's hilarious! " +
		"Please create a short, witty comment referencing that."
	FlirtyTemplate = "This person loves '" + KeywordSlot + "'. Write a playful invitation " +
		"asking them about it in a flirty, friendly way."
	StraightforwardTemplate = "They mentioned '" + KeywordSlot + "'. Generate a direct, polite invitation " +
		"to discuss that topic over coffee."

	// GenericGreeting is used instead of a tone template when no keywords were found.
	GenericGreeting = "Write a short, friendly greeting without referencing specific keywords."
)

const (
	BaselineWeight = 1.0
	BoostedWeight  = 1.5
)

var templates = map[Tone]string{
	ToneComedic:         ComedicTemplate,
	ToneFlirty:          FlirtyTemplate,
	ToneStraightforward: StraightforwardTemplate,
}

// Template returns the template for t, or "" for an unknown tone.
func Template(t Tone) string {
	return templates[t]
}

// Valid reports whether t is one of the defined tones.
func (t Tone) Valid() bool {
	_, ok := templates[t]
	return ok
}

// ParseTone converts a name such as "comedic" into a Tone.
func ParseTone(s string) (Tone, bool) {
	t := Tone(s)
	return t, t.Valid()
}

// WeightTable maps every tone to its strictly positive selection weight.
type WeightTable map[Tone]float64

// UniformWeights returns a table with every tone at the baseline weight.
func UniformWeights() WeightTable {
	w := make(WeightTable, len(Tones))
	for _, t := range Tones {
		w[t] = BaselineWeight
	}
	return w
}

// Clone returns an independent copy of the table.
func (w WeightTable) Clone() WeightTable {
	c := make(WeightTable, len(w))
	for k, v := range w {
		c[k] = v
	}
	return c
}

// Total sums the weights in Tones order.
func (w WeightTable) Total() float64 {
	total := 0.0
	for _, t := range Tones {
		total += w[t]
	}
	return total
}

// Probability returns the chance that t is selected under this table.
func (w WeightTable) Probability(t Tone) float64 {
	total := w.Total()
	if total <= 0 {
		return 0
	}
	return w[t] / total
}

// Rand is the random source used for selection and keyword picking.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewSeededRand returns a deterministic source for the given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalRand draws from the math/rand/v2 top-level source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// DefaultRand returns the process-wide random source.
func DefaultRand() Rand {
	return globalRand{}
}

// ParseWeights reads a table written as "comedic=2,flirty=1". Tones that are
// not named keep the baseline weight.
func ParseWeights(s string) (WeightTable, error) {
	w := UniformWeights()
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected tone=weight, got %q", ErrInvalidWeights, part)
		}
		t, ok := ParseTone(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("%w: unknown tone %q", ErrInvalidWeights, name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: weight for %q: %w", ErrInvalidWeights, t, err)
		}
		w[t] = v
	}
	if err := validateWeights(w); err != nil {
		return nil, err
	}
	return w, nil
}
