/*
 * frame.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package dock

import "github.com/dockchem/vinacore/kine"

// Frame is a ROOT or BRANCH rigid sub-body of the ligand.
// Frames live in a flat, parent-before-child indexed slice on Ligand,
// deliberately preserving the arena layout of the system this module is
// modeled on: cross-references are indices, never pointers.
type Frame struct {
	Parent int // -1 for the ROOT frame, otherwise an index into Ligand.Frames
	RotorX int // index into Parent's HeavyAtoms
	Active bool

	// ActiveIndex is this frame's position in the packed, active-order
	// torsion vectors (Conformation.Torsions, Change.TorsionGrads): -1 for
	// the ROOT frame and for inactive branches, otherwise a dense index
	// counting only active frames in parent-before-child order. Set once by
	// Ligand.recount.
	ActiveIndex int

	HeavyAtoms []Atom
	Hydrogens  []Atom

	// Coordinates below are relative to the parent frame's local axes,
	// established once by the parser and never mutated afterwards.
	RelativeOrigin kine.Vec3 // parent's first heavy atom -> this frame's first heavy atom
	RelativeAxis   kine.Vec3 // unit vector along the rotor edge, in parent-local coordinates

	scratch frameScratch
}

// frameScratch is the mutable per-evaluation workspace for one frame:
// everything the evaluator writes and nothing the parser writes. Per spec
// section 9 ("Mutable scratch on a logically-immutable ligand"), this is
// kept as a distinct value, separate from the frame's parsed topology. It
// lives inside each Frame, so every Evaluate call writes into the Ligand's
// own frames; there is no separate workspace type.
type frameScratch struct {
	worldCoords []kine.Vec3 // one per heavy atom, world space
	derivative  []kine.Vec3 // one per heavy atom, dE/dcoordinate

	orientationQ kine.Quat
	orientationM kine.Mat3
	axisWorld    kine.Vec3 // this frame's rotor axis, in world space (BRANCH only)

	force  kine.Vec3
	torque kine.Vec3
}

// WorldOrigin returns the world-space position of the frame's first heavy
// atom, valid only after a forward-kinematics pass has run.
func (f *Frame) WorldOrigin() kine.Vec3 {
	return f.scratch.worldCoords[0]
}

func (f *Frame) resetScratch() {
	n := len(f.HeavyAtoms)
	if cap(f.scratch.worldCoords) < n {
		f.scratch.worldCoords = make([]kine.Vec3, n)
		f.scratch.derivative = make([]kine.Vec3, n)
	} else {
		f.scratch.worldCoords = f.scratch.worldCoords[:n]
		f.scratch.derivative = f.scratch.derivative[:n]
		for i := range f.scratch.derivative {
			f.scratch.derivative[i] = kine.Zero3
		}
	}
	f.scratch.force = kine.Zero3
	f.scratch.torque = kine.Zero3
}
