// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for row reduction and the numeric
// policy of constructors. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Pivot tolerance: the default is exact comparison against zero. A positive
//     tolerance treats |v| <= tol as zero during pivot search and elimination,
//     which turns near-singular inputs into ErrSingular instead of a huge,
//     meaningless inverse.
//   - Numeric policy: validateNaNInf controls whether NewDenseFromRows,
//     FromGonum and Dense.Set reject NaN/±Inf.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the magnitude at or below which a value is
	// treated as zero while searching for pivots. Zero means exact comparison.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// PivotTolerance reports the resolved pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ValidateNaNInf reports whether the finite-value policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the zero threshold used by ReduceEchelon, Invert and Rank.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Inputs:
//   - tol: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - Values with |v| <= tol are never chosen as pivots and are flushed to
//     zero in pivot columns. Exact pivoting (tol == 0) reproduces textbook
//     Gauss-Jordan.
//
// AI-Hints:
//   - 1e-12 is a reasonable choice for well-scaled double-precision input.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithExactPivoting resets the pivot tolerance to exact comparison against zero.
func WithExactPivoting() Option {
	return func(o *Options) { o.pivotTol = 0 }
}

// WithValidateNaNInf enables strict finite-value validation.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on ingestion.
// Matrices built under this policy accept NaN/±Inf in Set as well.
//
// AI-Hints:
//   - Row reduction over non-finite data produces non-finite results; prefer
//     sanitizing upstream.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// isZero applies the pivot tolerance: exact comparison when tol == 0.
func isZero(v, tol float64) bool {
	if tol == 0 {
		return v == 0
	}

	return math.Abs(v) <= tol
}
