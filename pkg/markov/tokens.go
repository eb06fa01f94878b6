package markov

import (
	"sort"
)

// Successor is one possible next byte after a k-gram, with the number of
// times it was observed there.
type Successor struct {
	Char byte
	Freq int
}

// Successors returns every byte observed after kgram, in the order each was
// first seen, along with the sum of their frequencies. If kgram never
// occurred it returns a nil slice and a total of 0.
func (m *Model) Successors(kgram string) ([]Successor, int, error) {
	if err := m.checkKgram(kgram); err != nil {
		return nil, 0, err
	}
	s, ok := m.table[kgram]
	if !ok {
		return nil, 0, nil
	}

	out := make([]Successor, 0, len(s.chars))
	for _, c := range s.chars {
		out = append(out, Successor{Char: c, Freq: s.counts[c]})
	}
	return out, s.total, nil
}

// KGrams returns every distinct k-gram in the model, sorted.
func (m *Model) KGrams() []string {
	kgrams := make([]string, 0, len(m.table))
	for kgram := range m.table {
		kgrams = append(kgrams, kgram)
	}
	sort.Strings(kgrams)
	return kgrams
}

// Alphabet returns the distinct bytes of the source text in ascending order.
func (m *Model) Alphabet() []byte {
	return append([]byte(nil), m.alphabet...)
}
