// Package stats provides pure numerical helpers over one-dimensional
// sequences of real numbers.
//
// Every function validates its arguments before computing and fails
// fast with a structured invalid-value error; no partial result is ever
// returned alongside an error. Inputs are never modified and results
// are always freshly allocated, so the helpers are safe to call from
// multiple goroutines.
//
// # Conventions
//
//   - Standard deviation is the POPULATION standard deviation (divisor
//     n) unless a function says otherwise. ZScore in particular
//     standardizes against the population deviation.
//   - Quantiles use linear interpolation between closest ranks, the
//     same convention numpy and pandas default to.
package stats
