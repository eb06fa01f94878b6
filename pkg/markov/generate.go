package markov

import (
	"fmt"
	"log/slog"
)

const maxPrealloc = 1 << 16

// SampleNext returns a random byte following kgram, chosen with probability
// proportional to how often it followed kgram in the source text.
func (g *Generator) SampleNext(kgram string) (byte, error) {
	if err := g.model.checkKgram(kgram); err != nil {
		return 0, err
	}
	s, ok := g.model.table[kgram]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoSuchKgram, kgram)
	}
	return g.chooseNext(s), nil
}

// Generate produces a string of exactly length bytes by simulating a walk
// through the chain. The first Order bytes of the result are seed; each
// following byte is sampled using the previous Order bytes as context.
func (g *Generator) Generate(seed string, length int) (string, error) {
	order := g.model.order
	if err := g.model.checkKgram(seed); err != nil {
		return "", err
	}
	if length < order {
		return "", fmt.Errorf("%w: got %d, order is %d", ErrLengthTooShort, length, order)
	}

	// length comes from the caller, so only a bounded capacity is reserved up front.
	out := make([]byte, order, max(order, min(length, maxPrealloc)))
	copy(out, seed)

	for len(out) < length {
		window := out[len(out)-order:]
		s, ok := g.model.table[string(window)]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrNoSuchKgram, window)
		}
		out = append(out, g.chooseNext(s))
	}

	g.logger.Debug("Generation completed",
		slog.Int("order", order),
		slog.String("seed", seed),
		slog.Int("generated_length", len(out)),
	)

	return string(out), nil
}

// chooseNext draws r uniformly from [0, total) and walks the successors in
// first-occurrence order, subtracting each count until r goes negative.
func (g *Generator) chooseNext(s *successors) byte {
	r := g.rng.IntN(s.total)
	for _, c := range s.chars {
		r -= s.counts[c]
		if r < 0 {
			return c
		}
	}
	// Unreachable while total equals the sum of counts.
	return s.chars[len(s.chars)-1]
}
