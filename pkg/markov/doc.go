/*
Package markov provides a small, in-memory toolkit for building k-order
character Markov models from text and walking them to produce new text.

A Model is built once from a source text and an order k. It records, for
every k-gram of the text (read circularly, so the end wraps to the start),
how often each byte follows it. The Model is immutable after construction
and may be shared between goroutines.

A Generator pairs a Model with its own random source and samples successors
in proportion to their observed frequency. Generators are cheap; create one
per goroutine.

	model, err := markov.NewModel(text, 3)
	if err != nil {
		return err
	}
	out, err := markov.NewGenerator(model).Generate(text[:3], 500)
*/
package markov
