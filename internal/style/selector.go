package style

// Choice is the outcome of choosing a template for a set of keywords.
type Choice struct {
	// Tone is empty when Selected is false.
	Tone Tone

	// Template is the tone template, or GenericGreeting.
	Template string

	// Selected is false when the keyword list was empty and no tone was drawn.
	Selected bool
}

// SelectTone draws a tone from weights with probability proportional to its
// weight. Weights must be strictly positive.
func SelectTone(weights WeightTable, rng Rand) Tone {
	total := weights.Total()
	r := rng.Float64() * total

	cum := 0.0
	for _, t := range Tones {
		cum += weights[t]
		if r < cum {
			return t
		}
	}

	// r landed on or past the accumulated total.
	return Tones[rng.IntN(len(Tones))]
}

// SelectTone draws a tone using the policy's current weights.
func (p *Policy) SelectTone() Tone {
	p.mu.Lock()
	defer p.mu.Unlock()
	return SelectTone(p.weights, p.rng)
}

// Choose picks the template for keywords. With no keywords the generic
// greeting is returned and no tone is drawn.
func (p *Policy) Choose(keywords []string) Choice {
	if len(keywords) == 0 {
		return Choice{Template: GenericGreeting}
	}

	t := p.SelectTone()
	return Choice{
		Tone:     t,
		Template: Template(t),
		Selected: true,
	}
}
