package markov

import (
	"bufio"
	"fmt"
	"io"
)

// ModelStats holds aggregated statistics for a single Markov model.
type ModelStats struct {
	Order          int `json:"order"`           // The order k of the model.
	KGrams         int `json:"kgrams"`          // The number of distinct k-grams.
	Transitions    int `json:"transitions"`     // The number of unique kgram->next links.
	TotalFrequency int `json:"total_frequency"` // The sum of all counts; equal to the source length.
	AlphabetSize   int `json:"alphabet_size"`   // The number of distinct bytes in the source.
}

// Stats returns a snapshot of the model's statistics.
func (m *Model) Stats() ModelStats {
	stats := ModelStats{
		Order:        m.order,
		KGrams:       len(m.table),
		AlphabetSize: len(m.alphabet),
	}
	for _, s := range m.table {
		stats.Transitions += len(s.counts)
		stats.TotalFrequency += s.total
	}
	return stats
}

// WriteTo writes a human-readable dump of the model to w: the order, the
// alphabet, then every k-gram in sorted order with its frequency, each
// followed by its k+1-grams (the k-gram plus one successor) and their counts.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	_, _ = fmt.Fprintf(bw, "order: %d\n", m.order)
	_, _ = fmt.Fprintf(bw, "alphabet: %q\n", m.alphabet)
	for _, kgram := range m.KGrams() {
		s := m.table[kgram]
		_, _ = fmt.Fprintf(bw, "%q %d\n", kgram, s.total)
		for _, c := range s.chars {
			_, _ = fmt.Fprintf(bw, "  %q %d\n", kgram+string([]byte{c}), s.counts[c])
		}
	}

	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
