/*
 * scoring.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package scoring supplies the pairwise, distance-dependent nonbonded term
// the evaluator applies to intramolecular interacting pairs. The function
// itself is tabulated rather than computed in closed form on every call,
// following the precalculated-table approach this module's evaluator loop
// is modeled on: build the table once per xs-type pair, then do a plain
// array lookup per atom pair per evaluation.
package scoring

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PairIndex returns the index of the (a, b) unordered type pair into a
// triangular packing of n*(n+1)/2 entries, matching the flattening the
// tabulated function below uses for its backing matrix.
func PairIndex(a, b, n int) int {
	if a > b {
		a, b = b, a
	}
	return a*n - a*(a-1)/2 + (b - a)
}

// ScoringFunction evaluates the energy and its derivative-over-distance for
// one xs-type pair at squared distance r2. The derivative is returned divided by r rather than as a
// plain dE/dr so callers can multiply directly by the atom-to-atom
// displacement vector to get a force.
type ScoringFunction interface {
	Eval(typeA, typeB int, r2 float64) (e, dorE float64, ok bool)
}

// TabulatedFunction precomputes (e, e'/r) at evenly spaced squared-distance
// samples for every xs-type pair, backed by a gonum Dense matrix: one row
// per type pair, one column per sample. Samples beyond Cutoff are treated
// as zero energy, zero force.
type TabulatedFunction struct {
	NumTypes int
	Cutoff   float64
	Samples  int

	energy *mat.Dense // NumTypes*(NumTypes+1)/2 rows, Samples cols
	dor    *mat.Dense
	step   float64 // squared-distance spacing between samples
}

// NewTabulatedFunction builds a table by calling raw(typeA, typeB, r) at
// Samples values of r whose squares are evenly spaced over [0, cutoff^2],
// caching e(r) and e'(r)/r for every unordered type pair.
func NewTabulatedFunction(numTypes, samples int, cutoff float64, raw func(a, b int, r float64) (e, deriv float64)) *TabulatedFunction {
	pairs := numTypes * (numTypes + 1) / 2
	t := &TabulatedFunction{
		NumTypes: numTypes,
		Cutoff:   cutoff,
		Samples:  samples,
		energy:   mat.NewDense(pairs, samples, nil),
		dor:      mat.NewDense(pairs, samples, nil),
		step:     (cutoff * cutoff) / float64(samples-1),
	}
	for a := 0; a < numTypes; a++ {
		for b := a; b < numTypes; b++ {
			row := PairIndex(a, b, numTypes)
			for s := 0; s < samples; s++ {
				r2 := float64(s) * t.step
				r := math.Sqrt(r2)
				e, deriv := raw(a, b, r)
				dor := 0.0
				if r > 1e-6 {
					dor = deriv / r
				}
				t.energy.Set(row, s, e)
				t.dor.Set(row, s, dor)
			}
		}
	}
	return t
}

// Eval looks up the nearest precomputed sample at or below r2, per spec
// section 5's "nearest sample, no interpolation" table-lookup contract.
func (t *TabulatedFunction) Eval(typeA, typeB int, r2 float64) (e, dorE float64, ok bool) {
	if r2 > t.Cutoff*t.Cutoff {
		return 0, 0, false
	}
	row := PairIndex(typeA, typeB, t.NumTypes)
	s := int(r2 / t.step)
	if s >= t.Samples {
		s = t.Samples - 1
	}
	return t.energy.At(row, s), t.dor.At(row, s), true
}
