/*
 * atom.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package dock

import "github.com/dockchem/vinacore/kine"

// Atom is a single PDBQT atom record, reduced to what the kinematic and
// scoring subsystem needs.
type Atom struct {
	Coordinate kine.Vec3
	Serial     int // original PDB serial number, used to resolve BRANCH x/y
	adType     ADType

	hydrophobic bool // carbons only; starts true, cleared by Dehydrophobicize
	donor       bool // heteros only; starts false, set by Donorize
}

// newAtom builds an Atom from a parsed coordinate, serial and AD4 type,
// applying the type-dependent defaults (carbons start hydrophobic,
// heteroatoms start as non-donors).
func newAtom(coord kine.Vec3, serial int, t ADType) Atom {
	e := adTable[t]
	return Atom{
		Coordinate:  coord,
		Serial:      serial,
		adType:      t,
		hydrophobic: !e.hetero && !e.hydrogen, // plain/aromatic carbon starts hydrophobic
	}
}

// ADType returns the atom's AutoDock4 force-field type.
func (a *Atom) ADType() ADType { return a.adType }

// IsHydrogen reports whether the atom is a hydrogen (polar or apolar).
func (a *Atom) IsHydrogen() bool { return adTable[a.adType].hydrogen }

// IsPolarH reports whether the atom is a polar hydrogen (AD4 type HD).
func (a *Atom) IsPolarH() bool { return adTable[a.adType].polarH }

// IsHetero reports whether the atom is a non-carbon heavy atom.
func (a *Atom) IsHetero() bool { return adTable[a.adType].hetero }

// IsMetal reports whether the atom is one of the recognized metal types.
func (a *Atom) IsMetal() bool { return adTable[a.adType].metal }

// CovalentRadius returns the atom's covalent radius in angstroms.
func (a *Atom) CovalentRadius() float64 { return adTable[a.adType].covalentRad }

// VdwRadius returns the atom's van der Waals radius in angstroms.
func (a *Atom) VdwRadius() float64 { return adTable[a.adType].vdwRad }

// IsNeighbor reports whether a and b are close enough to be covalently
// bonded: farther apart than 0.1 angstrom (to reject coincident atoms) and
// no farther than the sum of their covalent radii plus bondTolerance.
func (a *Atom) IsNeighbor(b *Atom) bool {
	d := kine.Norm(kine.Sub(a.Coordinate, b.Coordinate))
	if d <= 0.1 {
		return false
	}
	return d <= a.CovalentRadius()+b.CovalentRadius()+bondTolerance
}

// Dehydrophobicize clears the hydrophobic flag. Only meaningful on carbons;
// a no-op otherwise.
func (a *Atom) Dehydrophobicize() { a.hydrophobic = false }

// Donorize sets the donor flag. Only meaningful on hetero atoms; a no-op
// otherwise, but callers are expected to only call it on atoms that
// IsHetero() reports true for (see parser.go).
func (a *Atom) Donorize() {
	if adTable[a.adType].hetero {
		a.donor = true
	}
}

// IsDonor reports whether the atom has been marked as a hydrogen-bond
// donor by Donorize.
func (a *Atom) IsDonor() bool { return a.donor }

// XSType computes the coarse atom-type bucket used to index grid maps and
// the intramolecular scoring-function table.
// It is derived, not stored, because the hydrophobic/donor flags it depends
// on can still change up until the final parser pass.
func (a *Atom) XSType() XSType {
	e := adTable[a.adType]
	switch a.adType {
	case AD_C, AD_A:
		if a.hydrophobic {
			return XS_C_H
		}
		return XS_C_P
	case AD_N, AD_NS:
		if a.donor {
			return XS_N_D
		}
		return XS_N_P
	case AD_NA:
		if a.donor {
			return XS_N_DA
		}
		return XS_N_A
	case AD_OA:
		if a.donor {
			return XS_O_DA
		}
		return XS_O_A
	case AD_OS:
		if a.donor {
			return XS_O_D
		}
		return XS_O_P
	case AD_S, AD_SA:
		return XS_S_P
	case AD_P:
		return XS_P_P
	case AD_F:
		return XS_F_H
	case AD_Cl:
		return XS_Cl_H
	case AD_Br:
		return XS_Br_H
	case AD_I:
		return XS_I_H
	default:
		if e.metal {
			return XS_Met_D
		}
		return XS_C_P
	}
}
