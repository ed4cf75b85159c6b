// Package samples supplies matrices to exercise the matrix package: a fixed
// table of sample matrices, the row-echelon walkthrough input, and a random
// generator driven by a caller-owned *rand.Rand.
//
// Nothing here holds process-wide random state. Seeding is the caller's job,
// which keeps every run reproducible from its seed.
package samples
