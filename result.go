/*
 * result.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package dock

import "github.com/dockchem/vinacore/kine"

// Pose is a fully resolved conformation: world coordinates for every heavy
// atom and every hydrogen, plus the energies reported for it. Energy is the
// total free energy Evaluate returned, scaled by the ligand's flexibility
// penalty for ranking and reporting; InterEnergy is the intermolecular-only
// energy captured right after the grid stage, unscaled. Evaluate only ever
// populates heavy-atom coordinates, since only they carry grid or pairwise
// terms; Compose fills in hydrogens too, so the pose can be written back
// out as a complete PDBQT model.
type Pose struct {
	Energy      float64
	InterEnergy float64
	HeavyAtoms  [][]kine.Vec3 // per frame, one entry per HeavyAtoms[i]
	Hydrogens   [][]kine.Vec3 // per frame, one entry per Hydrogens[i]
}

// Compose recomputes world coordinates for every atom (heavy and hydrogen)
// of conf, independent of any prior Evaluate call. It is the same forward
// walk Evaluate performs, minus the grid lookups and box test, since a
// composed pose is for writing out or displaying, not for scoring. energy
// and interEnergy are Evaluate's unscaled e and f return values; Compose
// applies the flexibility penalty to energy here, at reporting time, since
// Evaluate's e must stay consistent with its unscaled gradient.
func (l *Ligand) Compose(conf Conformation, energy, interEnergy float64) Pose {
	origins := make([]kine.Vec3, len(l.Frames))
	orientM := make([]kine.Mat3, len(l.Frames))
	orientQ := make([]kine.Quat, len(l.Frames))
	axisWorld := make([]kine.Vec3, len(l.Frames))

	pose := Pose{
		Energy:      energy * l.FlexibilityPenalty(),
		InterEnergy: interEnergy,
		HeavyAtoms:  make([][]kine.Vec3, len(l.Frames)),
		Hydrogens:   make([][]kine.Vec3, len(l.Frames)),
	}

	for i := range l.Frames {
		f := &l.Frames[i]
		if i == 0 {
			orientQ[0] = conf.Orientation
			orientM[0] = kine.QuatToMat3(conf.Orientation)
			origins[0] = kine.Add(conf.Position, orientM[0].MulVec(f.HeavyAtoms[0].Coordinate))
		} else {
			axisWorld[i] = kine.Unit(orientM[f.Parent].MulVec(f.RelativeAxis))
			if f.Active {
				incr := kine.AxisAngleToQuat(axisWorld[i], conf.Torsions[f.ActiveIndex])
				orientQ[i] = kine.MulQuat(incr, orientQ[f.Parent])
			} else {
				orientQ[i] = orientQ[f.Parent]
			}
			orientM[i] = kine.QuatToMat3(orientQ[i])
			origins[i] = kine.Add(origins[f.Parent], orientM[f.Parent].MulVec(f.RelativeOrigin))
		}

		heavy := make([]kine.Vec3, len(f.HeavyAtoms))
		for a := range f.HeavyAtoms {
			if a == 0 {
				heavy[a] = origins[i]
			} else {
				heavy[a] = kine.Add(origins[i], orientM[i].MulVec(f.HeavyAtoms[a].Coordinate))
			}
		}
		hyd := make([]kine.Vec3, len(f.Hydrogens))
		for h := range f.Hydrogens {
			hyd[h] = kine.Add(origins[i], orientM[i].MulVec(f.Hydrogens[h].Coordinate))
		}
		pose.HeavyAtoms[i] = heavy
		pose.Hydrogens[i] = hyd
	}
	return pose
}
