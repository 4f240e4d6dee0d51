package style

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
)

// Policy owns a weight table and the random source used to sample from it.
// It is safe for concurrent use.
type Policy struct {
	mu      sync.Mutex
	weights WeightTable
	rng     Rand
}

// NewPolicy creates a policy with uniform weights. A nil rng uses DefaultRand.
func NewPolicy(rng Rand) *Policy {
	if rng == nil {
		rng = DefaultRand()
	}
	return &Policy{
		weights: UniformWeights(),
		rng:     rng,
	}
}

// Weights returns a copy of the current table.
func (p *Policy) Weights() WeightTable {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.weights.Clone()
}

// SetWeights replaces the table. Every tone must be present with a finite,
// strictly positive weight, and no other keys are allowed.
func (p *Policy) SetWeights(w WeightTable) error {
	if err := validateWeights(w); err != nil {
		return err
	}
	p.mu.Lock()
	p.weights = w.Clone()
	p.mu.Unlock()
	return nil
}

// Reset puts every tone back at the baseline weight.
func (p *Policy) Reset() {
	p.mu.Lock()
	p.weights = UniformWeights()
	p.mu.Unlock()
}

func validateWeights(w WeightTable) error {
	for t := range w {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown tone %q", ErrInvalidWeights, t)
		}
	}
	for _, t := range Tones {
		v, ok := w[t]
		if !ok {
			return fmt.Errorf("%w: missing tone %q", ErrInvalidWeights, t)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: weight for %q must be positive, got %v", ErrInvalidWeights, t, v)
		}
	}
	return nil
}

// ClassifyLabel maps a success-report label to the tone whose template it
// names. Labels are expected to be the literal template strings, so the match
// is on the distinguishing word of each template.
func ClassifyLabel(label string) (Tone, bool) {
	switch {
	case strings.Contains(label, "hilarious"):
		return ToneComedic, true
	case strings.Contains(label, "flirty"):
		return ToneFlirty, true
	case strings.Contains(label, "coffee"):
		return ToneStraightforward, true
	default:
		return "", false
	}
}

// UpdateWeights resets the table to baseline and boosts the tone named by the
// best-scoring label in report. Ties go to the earliest entry. An empty report
// leaves the table untouched; a winning label that names no tone leaves it
// uniform.
func (p *Policy) UpdateWeights(report SuccessReport) {
	best, ok := report.Best()
	if !ok {
		return
	}

	tone, matched := ClassifyLabel(best.Label)
	p.apply(tone, matched)

	if matched {
		slog.Info("tone weights updated", "winner", tone, "rate", best.Rate)
	} else {
		slog.Debug("winning label names no tone; weights reset to uniform", "label", best.Label, "rate", best.Rate)
	}
}

// UpdateWeightsByTone is UpdateWeights for rates keyed directly by tone.
// Ties go to the tone that comes first in Tones and unknown keys are ignored.
func (p *Policy) UpdateWeightsByTone(rates map[Tone]float64) {
	if len(rates) == 0 {
		return
	}

	var (
		winner Tone
		bestR  float64
		found  bool
	)
	for _, t := range Tones {
		r, ok := rates[t]
		if !ok {
			continue
		}
		if !found || r > bestR {
			winner, bestR, found = t, r, true
		}
	}

	p.apply(winner, found)
	if found {
		slog.Info("tone weights updated", "winner", winner, "rate", bestR)
	}
}

func (p *Policy) apply(winner Tone, boost bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, t := range Tones {
		p.weights[t] = BaselineWeight
	}
	if boost {
		p.weights[winner] = BoostedWeight
	}
}
