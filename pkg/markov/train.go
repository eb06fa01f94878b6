package markov

import (
	"fmt"
)

// NewModel builds a Markov model of the given order from text. The text is
// treated as circular: the k-gram starting at position i wraps around to the
// beginning when it runs past the end, so every position contributes exactly
// one (k-gram, successor) observation.
//
// The text must be at least order bytes long, and order must not be negative.
func NewModel(text string, order int) (*Model, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: negative order %d", ErrInvalidArgument, order)
	}
	if len(text) < order {
		return nil, fmt.Errorf("%w: text has %d bytes, order is %d", ErrInvalidArgument, len(text), order)
	}

	m := &Model{
		order: order,
		table: make(map[string]*successors),
		size:  len(text),
	}

	// Appending the first k bytes gives every window its wrapped tail and
	// puts the wrapped successor of the last window at circular[i+order].
	circular := text + text[:order]

	var seen [256]bool
	for i := 0; i < len(text); i++ {
		kgram := circular[i : i+order]
		next := circular[i+order]

		s, ok := m.table[kgram]
		if !ok {
			s = &successors{counts: make(map[byte]int)}
			m.table[kgram] = s
		}
		s.add(next)
		seen[text[i]] = true
	}

	for c, ok := range seen {
		if ok {
			m.alphabet = append(m.alphabet, byte(c))
		}
	}

	return m, nil
}
