/*
 * evaluate.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package dock

import (
	"github.com/dockchem/vinacore/grid"
	"github.com/dockchem/vinacore/kine"
	"github.com/dockchem/vinacore/scoring"
)

// EnergyUpperBound aborts an evaluation early once the accumulated energy
// reaches it, the same short-circuit the forward pass this evaluator is
// modeled on uses to skip scoring a conformation that has already failed.
const EnergyUpperBound = 40.0

// Evaluate scores conf against box and grids, accumulating the
// intramolecular nonbonded term from fn over l.Pairs, and returns the total
// free energy, the intermolecular-only energy captured right after the grid
// stage (before the pairwise term is folded in), and the gradient of e
// with respect to conf. Neither return value carries the flexibility
// penalty: e and ch describe the same, unscaled function, so a caller
// finite-differencing e reproduces ch. The penalty is a ranking-time
// correction applied when a conformation is composed into a reported Pose
// (Ligand.Compose), not part of the scored function itself.
//
// The pass has three parts, run in this order every call: forward
// kinematics (root-to-leaf, building world coordinates, per-atom grid
// energy and derivative, and rejecting out-of-box atoms early); pairwise
// intramolecular scoring over l.Pairs; and a reverse pass (leaf-to-root)
// that folds each atom's derivative into its frame's force and torque and
// then propagates a child frame's accumulated force/torque onto its
// parent, finally reading off the torsional gradient as the torque
// component along the frame's rotor axis.
func (l *Ligand) Evaluate(conf Conformation, box grid.Box, grids [NumXSTypes]grid.GridMap, fn scoring.ScoringFunction) (e float64, f float64, ok bool, ch Change) {
	if len(conf.Torsions) != l.NumActiveTorsions() {
		return 0, 0, false, Change{}
	}
	l.resetScratch()
	ch = NewChange(l.NumActiveTorsions())

	if !l.forwardKinematics(conf, box, grids, &e) {
		return e, e, false, ch
	}
	if e >= EnergyUpperBound {
		return e, e, false, ch
	}
	f = e

	pairE := l.pairwiseIntramolecular(fn)
	e += pairE
	if e >= EnergyUpperBound {
		return e, f, false, ch
	}

	l.reversePass(conf, &ch)
	return e, f, true, ch
}

// forwardKinematics walks Frames in index order (parents always precede
// their children), computing each frame's world orientation and origin
// from conf, then each of its heavy atoms' world coordinate, grid energy
// and grid-derivative. It returns false as soon as any atom falls outside
// box, so the caller never scores a conformation that has already failed.
func (l *Ligand) forwardKinematics(conf Conformation, box grid.Box, grids [NumXSTypes]grid.GridMap, total *float64) bool {
	for i := range l.Frames {
		f := &l.Frames[i]
		if i == 0 {
			f.scratch.orientationQ = conf.Orientation
			f.scratch.orientationM = kine.QuatToMat3(conf.Orientation)
			f.scratch.worldCoords[0] = kine.Add(conf.Position, f.scratch.orientationM.MulVec(f.HeavyAtoms[0].Coordinate))
		} else {
			parent := &l.Frames[f.Parent]
			f.scratch.axisWorld = kine.Unit(parent.scratch.orientationM.MulVec(f.RelativeAxis))
			if f.Active {
				incr := kine.AxisAngleToQuat(f.scratch.axisWorld, conf.Torsions[f.ActiveIndex])
				f.scratch.orientationQ = kine.MulQuat(incr, parent.scratch.orientationQ)
			} else {
				f.scratch.orientationQ = parent.scratch.orientationQ
			}
			f.scratch.orientationM = kine.QuatToMat3(f.scratch.orientationQ)
			origin := kine.Add(parent.scratch.worldCoords[0], parent.scratch.orientationM.MulVec(f.RelativeOrigin))
			f.scratch.worldCoords[0] = origin
		}
		origin := f.scratch.worldCoords[0]
		for a := range f.HeavyAtoms {
			var world kine.Vec3
			if a == 0 {
				world = origin
			} else {
				world = kine.Add(origin, f.scratch.orientationM.MulVec(f.HeavyAtoms[a].Coordinate))
				f.scratch.worldCoords[a] = world
			}
			if !box.Contains(world) {
				return false
			}
			gm := grids[f.HeavyAtoms[a].XSType()]
			if gm == nil {
				continue
			}
			v, grad, inGrid := gm.Potential(world)
			if !inGrid {
				return false
			}
			*total += v
			f.scratch.derivative[a] = grad
		}
	}
	return true
}

// pairwiseIntramolecular sums the tabulated nonbonded term over every
// InteractingPair, adding each pair's force contribution into both atoms'
// derivative slots so the reverse pass folds it in along with the grid
// derivative.
func (l *Ligand) pairwiseIntramolecular(fn scoring.ScoringFunction) float64 {
	var total float64
	for _, p := range l.Pairs {
		fa, fb := &l.Frames[p.A.Frame], &l.Frames[p.B.Frame]
		wa := fa.scratch.worldCoords[p.A.Index]
		wb := fb.scratch.worldCoords[p.B.Index]
		diff := kine.Sub(wa, wb)
		r2 := kine.Norm2(diff)
		ta := int(fa.HeavyAtoms[p.A.Index].XSType())
		tb := int(fb.HeavyAtoms[p.B.Index].XSType())
		e, dor, ok := fn.Eval(ta, tb, r2)
		if !ok {
			continue
		}
		total += e
		force := kine.Scale(dor, diff)
		fa.scratch.derivative[p.A.Index] = kine.Add(fa.scratch.derivative[p.A.Index], force)
		fb.scratch.derivative[p.B.Index] = kine.Sub(fb.scratch.derivative[p.B.Index], force)
	}
	return total
}

// reversePass walks Frames from leaf to root, accumulating each frame's own
// atoms' derivatives into its force and torque about its own origin, then
// adding a child's already-accumulated force and torque onto its parent
// (torque additionally picking up the lever-arm cross product from the
// parent's origin to the child's). The root frame's totals become ch's
// position force and orientation torque; every active frame's torque
// resolved along its own rotor axis becomes its torsional gradient.
func (l *Ligand) reversePass(conf Conformation, ch *Change) {
	for i := len(l.Frames) - 1; i >= 0; i-- {
		f := &l.Frames[i]
		origin := f.scratch.worldCoords[0]
		for a := range f.HeavyAtoms {
			d := f.scratch.derivative[a]
			f.scratch.force = kine.Add(f.scratch.force, d)
			lever := kine.Sub(f.scratch.worldCoords[a], origin)
			f.scratch.torque = kine.Add(f.scratch.torque, kine.Cross(lever, d))
		}
		if i > 0 {
			if f.Active {
				ch.TorsionGrads[f.ActiveIndex] = kine.Dot(f.scratch.torque, f.scratch.axisWorld)
			}
			parent := &l.Frames[f.Parent]
			parent.scratch.force = kine.Add(parent.scratch.force, f.scratch.force)
			lever := kine.Sub(origin, parent.scratch.worldCoords[0])
			parent.scratch.torque = kine.Add(parent.scratch.torque,
				kine.Add(f.scratch.torque, kine.Cross(lever, f.scratch.force)))
		}
	}
	root := &l.Frames[0]
	ch.Force = root.scratch.force
	ch.Torque = root.scratch.torque
}
