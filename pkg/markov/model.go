package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by every validation error returned from
	// this package, so callers can match any of them with errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrKgramLength is returned when a k-gram does not have exactly Order bytes.
	ErrKgramLength = fmt.Errorf("%w: kgram is not of length k", ErrInvalidArgument)
	// ErrNoSuchKgram is returned when a successor is requested for a k-gram
	// that never occurred in the source text.
	ErrNoSuchKgram = fmt.Errorf("%w: no such kgram", ErrInvalidArgument)
	// ErrLengthTooShort is returned when a requested output is shorter than the order.
	ErrLengthTooShort = fmt.Errorf("%w: length is less than k", ErrInvalidArgument)
)

// successors holds the observed followers of one k-gram.
type successors struct {
	chars  []byte // first-occurrence order, drives the cumulative walk in sampling
	counts map[byte]int
	total  int
}

func (s *successors) add(c byte) {
	if _, ok := s.counts[c]; !ok {
		s.chars = append(s.chars, c)
	}
	s.counts[c]++
	s.total++
}

// Model is a k-order Markov model over the bytes of a source text. It is
// read-only once NewModel returns.
type Model struct {
	order    int
	table    map[string]*successors
	alphabet []byte
	size     int
}

// Order returns k, the number of preceding bytes the model conditions on.
func (m *Model) Order() int {
	return m.order
}

// Len returns the length of the text the model was built from, which is
// also the total number of observations in the table.
func (m *Model) Len() int {
	return m.size
}

// Frequency returns the number of times kgram occurs in the circularized
// source text. An unseen k-gram has frequency 0.
func (m *Model) Frequency(kgram string) (int, error) {
	if err := m.checkKgram(kgram); err != nil {
		return 0, err
	}
	s, ok := m.table[kgram]
	if !ok {
		return 0, nil
	}
	return s.total, nil
}

// FrequencyOf returns the number of times c follows kgram. It is 0 when
// kgram was never seen or c never followed it. With order 0 this is the
// number of times c appears in the text.
func (m *Model) FrequencyOf(kgram string, c byte) (int, error) {
	if err := m.checkKgram(kgram); err != nil {
		return 0, err
	}
	s, ok := m.table[kgram]
	if !ok {
		return 0, nil
	}
	return s.counts[c], nil
}

func (m *Model) checkKgram(kgram string) error {
	if len(kgram) != m.order {
		return fmt.Errorf("%w: got %q (%d bytes), want %d", ErrKgramLength, kgram, len(kgram), m.order)
	}
	return nil
}
