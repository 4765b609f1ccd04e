// Package combine provides pairwise spectrum arithmetic: addition,
// subtraction, weighted merging, and pointwise multiplication.
//
// Grid mismatch between operands is handled by internal rebinning.
// [Add] and [Subtract] regrid onto the finer operand's sampling over
// the coverage overlap; [Merge] and [Multiply] take an explicit target
// range and resolution and put both operands on a logarithmic grid
// there. Operands are never mutated; every combinator returns a fresh
// spectrum.
package combine
