// Package textio holds the plain-text plumbing around a markov model:
// reading a source file into one string, wrapping generated output into
// fixed-width lines, and writing it to disk atomically.
package textio
