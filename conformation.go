/*
 * conformation.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package dock

import "github.com/dockchem/vinacore/kine"

// Conformation is one point in the ligand's degrees of freedom: the ROOT
// frame's position and orientation, plus one torsion angle per active
// rotatable bond. Torsions is packed: it holds exactly
// Ligand.NumActiveTorsions() entries, indexed by each frame's ActiveIndex,
// not by frame position, so an inactive branch consumes no slot.
type Conformation struct {
	Position    kine.Vec3
	Orientation kine.Quat
	Torsions    []float64 // radians, one per active frame, indexed by ActiveIndex
}

// NewConformation returns the all-zero, identity-orientation conformation
// with n active-torsion slots, ready to be filled in by a caller. n should
// be Ligand.NumActiveTorsions(), not NumTorsions().
func NewConformation(n int) Conformation {
	return Conformation{Orientation: kine.IdentityQuat, Torsions: make([]float64, n)}
}

// Change is the gradient of the energy with respect to a Conformation:
// a force conjugate to Position, a torque conjugate to Orientation, and one
// scalar per active torsion, packed the same way Conformation.Torsions is.
type Change struct {
	Force        kine.Vec3
	Torque       kine.Vec3
	TorsionGrads []float64
}

// NewChange returns a zeroed Change with n active-torsion slots.
func NewChange(n int) Change {
	return Change{TorsionGrads: make([]float64, n)}
}
