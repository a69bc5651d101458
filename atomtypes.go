/*
 * atomtypes.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * vinacore is a from-scratch rework of gochem's atomic-data tables
 * (atomicdata.go) for AutoDock4 force-field types instead of plain
 * elements, plus the XScore coarse-type bucketing the scoring function
 * indexes by.
 */

package dock

// ADType is an AutoDock4 force-field atom type, the closed set the parser
// recognizes in the atom record's columns 77-79.
type ADType int

const (
	AD_C ADType = iota
	AD_A        // aromatic carbon
	AD_N
	AD_NA
	AD_OA
	AD_S
	AD_SA
	AD_H
	AD_HD // polar hydrogen
	AD_F
	AD_I
	AD_P
	AD_Cl
	AD_Br
	AD_Mg
	AD_Ca
	AD_Mn
	AD_Fe
	AD_Zn
	AD_NS
	AD_OS
	adTypeCount
)

// XSType is the coarse atom-type bucket the scoring function and grid maps
// are indexed by.
type XSType int

const (
	XS_C_H XSType = iota // hydrophobic carbon
	XS_C_P                // polar (non-hydrophobic) carbon
	XS_N_P
	XS_N_D
	XS_N_A
	XS_N_DA
	XS_O_P
	XS_O_D
	XS_O_A
	XS_O_DA
	XS_S_P
	XS_P_P
	XS_Met_D
	XS_F_H
	XS_Cl_H
	XS_Br_H
	XS_I_H
	xsTypeCount
)

// NumXSTypes is the number of coarse types grid maps and the scoring
// function table are indexed by.
const NumXSTypes = int(xsTypeCount)

type adEntry struct {
	symbol       string
	covalentRad  float64
	vdwRad       float64
	hydrogen     bool
	polarH       bool
	hetero       bool // heavy, non-carbon
	acceptor     bool // set for NA, OA, SA and the metal types
	metal        bool
}

// adTable is the closed set of recognized AutoDock4 atom types. Values from
// Cordero et al. 2008 (covalent) and Bondi (van der Waals), the same
// sources cited in gochem's atomicdata.go.
var adTable = [adTypeCount]adEntry{
	AD_C:  {symbol: "C", covalentRad: 0.76, vdwRad: 1.70},
	AD_A:  {symbol: "C", covalentRad: 0.76, vdwRad: 1.70},
	AD_N:  {symbol: "N", covalentRad: 0.71, vdwRad: 1.55, hetero: true},
	AD_NA: {symbol: "N", covalentRad: 0.71, vdwRad: 1.55, hetero: true, acceptor: true},
	AD_OA: {symbol: "O", covalentRad: 0.66, vdwRad: 1.52, hetero: true, acceptor: true},
	AD_S:  {symbol: "S", covalentRad: 1.05, vdwRad: 1.80, hetero: true},
	AD_SA: {symbol: "S", covalentRad: 1.05, vdwRad: 1.80, hetero: true, acceptor: true},
	AD_H:  {symbol: "H", covalentRad: 0.4, vdwRad: 1.10, hydrogen: true},
	AD_HD: {symbol: "H", covalentRad: 0.4, vdwRad: 1.10, hydrogen: true, polarH: true},
	AD_F:  {symbol: "F", covalentRad: 0.57, vdwRad: 1.47, hetero: true},
	AD_I:  {symbol: "I", covalentRad: 1.39, vdwRad: 1.98, hetero: true},
	AD_P:  {symbol: "P", covalentRad: 1.07, vdwRad: 1.80, hetero: true},
	AD_Cl: {symbol: "Cl", covalentRad: 1.02, vdwRad: 1.75, hetero: true},
	AD_Br: {symbol: "Br", covalentRad: 1.20, vdwRad: 1.83, hetero: true},
	AD_Mg: {symbol: "Mg", covalentRad: 1.41, vdwRad: 1.73, hetero: true, metal: true, acceptor: true},
	AD_Ca: {symbol: "Ca", covalentRad: 1.76, vdwRad: 2.31, hetero: true, metal: true, acceptor: true},
	AD_Mn: {symbol: "Mn", covalentRad: 1.61, vdwRad: 1.96, hetero: true, metal: true, acceptor: true},
	AD_Fe: {symbol: "Fe", covalentRad: 1.52, vdwRad: 1.96, hetero: true, metal: true, acceptor: true},
	AD_Zn: {symbol: "Zn", covalentRad: 1.22, vdwRad: 2.02, hetero: true, metal: true, acceptor: true},
	AD_NS: {symbol: "N", covalentRad: 0.71, vdwRad: 1.55, hetero: true},
	AD_OS: {symbol: "O", covalentRad: 0.66, vdwRad: 1.52, hetero: true},
}

// bondTolerance is added to the sum of covalent radii when testing whether
// two atoms are bonded.
const bondTolerance = 0.45

// parseADType maps a trimmed AutoDock4 type string to its ADType, and
// reports whether the string was recognized. Unrecognized strings are a
// parsing error.
func parseADType(s string) (ADType, bool) {
	switch s {
	case "C":
		return AD_C, true
	case "A":
		return AD_A, true
	case "N":
		return AD_N, true
	case "NA":
		return AD_NA, true
	case "OA":
		return AD_OA, true
	case "S":
		return AD_S, true
	case "SA":
		return AD_SA, true
	case "H":
		return AD_H, true
	case "HD":
		return AD_HD, true
	case "F":
		return AD_F, true
	case "I":
		return AD_I, true
	case "P":
		return AD_P, true
	case "Cl":
		return AD_Cl, true
	case "Br":
		return AD_Br, true
	case "Mg":
		return AD_Mg, true
	case "Ca":
		return AD_Ca, true
	case "Mn":
		return AD_Mn, true
	case "Fe":
		return AD_Fe, true
	case "Zn":
		return AD_Zn, true
	case "NS":
		return AD_NS, true
	case "OS":
		return AD_OS, true
	default:
		return 0, false
	}
}
