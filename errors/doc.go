// Package errors provides structured error handling for seqkit.
// It implements an error type with machine-readable codes so callers can
// tell "cannot seed an accumulator from an empty sequence" apart from
// ordinary misuse without matching message text.
package errors
