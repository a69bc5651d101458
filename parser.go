/*
 * parser.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package dock

import (
	"strconv"
	"strings"

	"github.com/dockchem/vinacore/dockerr"
	"github.com/dockchem/vinacore/kine"
)

// field reads columns [start,end) of line (0-based, end exclusive), trimmed,
// returning "" if the line is too short. PDBQT, like the PDB format it
// extends, packs data into fixed columns rather than delimiting it, so
// slicing rather than splitting is the right way to pull a value out of it.
func field(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

type parser struct {
	file  string
	lig   *Ligand
	stack []int // frame index stack; top is the frame new ATOMs belong to

	origin  []kine.Vec3    // raw (input-file) coordinate of frame i's local origin atom
	serials []map[int]int  // per frame, PDBQT serial -> index into that frame's HeavyAtoms

	torsdof    int
	sawTorsdof bool
}

// ParseLigand parses a PDBQT ligand file into a Ligand ready for
// BuildTopology, following the ROOT/BRANCH/ENDBRANCH/TORSDOF grammar.
// file is used only to decorate error messages.
func ParseLigand(file string, lines []string) (*Ligand, error) {
	p := &parser{file: file, lig: &Ligand{}}
	p.lig.InputLines = lines

	for i, raw := range lines {
		lineNo := i + 1
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		var err error
		switch fields[0] {
		case "ROOT":
			err = p.beginRoot(lineNo)
		case "ENDROOT":
			err = p.endRoot(lineNo)
		case "BRANCH":
			err = p.beginBranch(lineNo, fields)
		case "ENDBRANCH":
			err = p.endBranch(lineNo, fields)
		case "TORSDOF":
			err = p.torsDOF(lineNo, fields)
		case "ATOM", "HETATM":
			err = p.atom(lineNo, raw)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(p.stack) > 1 {
		return nil, dockerr.NewParseError(p.file, len(lines), "unclosed BRANCH: %d frame(s) never reached ENDBRANCH", len(p.stack)-1)
	}
	if len(p.lig.Frames) == 0 {
		return nil, dockerr.NewParseError(p.file, len(lines), "no ROOT frame found")
	}
	for i := range p.lig.Frames {
		if len(p.lig.Frames[i].HeavyAtoms) == 0 {
			return nil, dockerr.NewParseError(p.file, 0, "frame %d has no heavy atoms", i)
		}
	}
	// Frames are indexed parent-before-child, so every parent is already in
	// local coordinates when a child computes its rotor axis against it.
	for i := range p.lig.Frames {
		p.finalizeFrame(i)
	}

	p.dehydrophobicize()
	p.lig.recount()
	return p.lig, nil
}

func (p *parser) beginRoot(lineNo int) error {
	if len(p.stack) != 0 {
		return dockerr.NewParseError(p.file, lineNo, "ROOT nested inside a BRANCH")
	}
	p.lig.Frames = append(p.lig.Frames, Frame{Parent: -1, Active: true})
	p.origin = append(p.origin, kine.Zero3)
	p.serials = append(p.serials, map[int]int{})
	p.stack = append(p.stack, 0)
	return nil
}

func (p *parser) endRoot(lineNo int) error {
	if len(p.stack) != 1 {
		return dockerr.NewParseError(p.file, lineNo, "ENDROOT without matching ROOT")
	}
	return nil
}

func (p *parser) beginBranch(lineNo int, fields []string) error {
	if len(fields) < 3 {
		return dockerr.NewParseError(p.file, lineNo, "BRANCH needs two serial numbers")
	}
	if len(p.stack) == 0 {
		return dockerr.NewParseError(p.file, lineNo, "BRANCH outside ROOT")
	}
	xSerial, err := strconv.Atoi(fields[1])
	if err != nil {
		return dockerr.NewParseError(p.file, lineNo, "malformed BRANCH rotor-x serial %q", fields[1])
	}
	parent := p.stack[len(p.stack)-1]
	rotorX, ok := p.serials[parent][xSerial]
	if !ok {
		return dockerr.NewParseError(p.file, lineNo, "BRANCH rotor-x serial %d not seen in current frame", xSerial)
	}
	child := Frame{Parent: parent, RotorX: rotorX, Active: true}
	idx := len(p.lig.Frames)
	p.lig.Frames = append(p.lig.Frames, child)
	p.origin = append(p.origin, kine.Zero3)
	p.serials = append(p.serials, map[int]int{})
	p.stack = append(p.stack, idx)
	return nil
}

func (p *parser) endBranch(lineNo int, fields []string) error {
	if len(fields) < 3 {
		return dockerr.NewParseError(p.file, lineNo, "ENDBRANCH needs two serial numbers")
	}
	if len(p.stack) < 2 {
		return dockerr.NewParseError(p.file, lineNo, "ENDBRANCH without matching BRANCH")
	}
	idx := p.stack[len(p.stack)-1]
	if len(p.lig.Frames[idx].HeavyAtoms) == 0 {
		return dockerr.NewParseError(p.file, lineNo, "frame %d closed by ENDBRANCH has no heavy atoms", idx)
	}
	// A frame contributing exactly one heavy atom (its own rotor pivot) and
	// no children rotates a lone point about an axis through itself: it can
	// never change the ligand's heavy-atom geometry, so it is inactivated.
	if len(p.lig.Frames[idx].HeavyAtoms) == 1 && !p.hasChild(idx) {
		p.lig.Frames[idx].Active = false
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

func (p *parser) hasChild(frameIdx int) bool {
	for i := frameIdx + 1; i < len(p.lig.Frames); i++ {
		if p.lig.Frames[i].Parent == frameIdx {
			return true
		}
	}
	return false
}

func (p *parser) torsDOF(lineNo int, fields []string) error {
	if len(fields) < 2 {
		return dockerr.NewParseError(p.file, lineNo, "TORSDOF needs a count")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return dockerr.NewParseError(p.file, lineNo, "malformed TORSDOF count %q", fields[1])
	}
	p.torsdof, p.sawTorsdof = n, true
	return nil
}

func (p *parser) atom(lineNo int, raw string) error {
	if len(p.stack) == 0 {
		return dockerr.NewParseError(p.file, lineNo, "ATOM record outside ROOT/BRANCH")
	}
	serialStr := field(raw, 6, 11)
	serial, err := strconv.Atoi(serialStr)
	if err != nil {
		return dockerr.NewParseError(p.file, lineNo, "malformed atom serial %q", serialStr)
	}
	x, err := strconv.ParseFloat(field(raw, 30, 38), 64)
	if err != nil {
		return dockerr.NewParseError(p.file, lineNo, "malformed x coordinate")
	}
	y, err := strconv.ParseFloat(field(raw, 38, 46), 64)
	if err != nil {
		return dockerr.NewParseError(p.file, lineNo, "malformed y coordinate")
	}
	z, err := strconv.ParseFloat(field(raw, 46, 54), 64)
	if err != nil {
		return dockerr.NewParseError(p.file, lineNo, "malformed z coordinate")
	}
	typeStr := field(raw, 76, 79)
	if typeStr == "" {
		fs := strings.Fields(raw)
		typeStr = fs[len(fs)-1]
	}
	adType, ok := parseADType(typeStr)
	if !ok {
		return dockerr.NewParseError(p.file, lineNo, "unrecognized AutoDock atom type %q", typeStr)
	}

	coord := kine.Vec3{X: x, Y: y, Z: z}
	frameIdx := p.stack[len(p.stack)-1]
	f := &p.lig.Frames[frameIdx]
	a := newAtom(coord, serial, adType)

	if a.IsHydrogen() {
		f.Hydrogens = append(f.Hydrogens, a)
		if a.IsPolarH() {
			p.bondDonor(frameIdx, coord)
		}
		return nil
	}
	if len(f.HeavyAtoms) == 0 {
		p.origin[frameIdx] = coord
	}
	p.serials[frameIdx][serial] = len(f.HeavyAtoms)
	f.HeavyAtoms = append(f.HeavyAtoms, a)
	return nil
}

// bondDonor marks the nearest hetero heavy atom in frameIdx within bonding
// distance of a just-parsed polar hydrogen as a donor.
func (p *parser) bondDonor(frameIdx int, hCoord kine.Vec3) {
	f := &p.lig.Frames[frameIdx]
	best := -1
	bestD := 0.0
	for i := range f.HeavyAtoms {
		if !f.HeavyAtoms[i].IsHetero() {
			continue
		}
		d := kine.Norm(kine.Sub(f.HeavyAtoms[i].Coordinate, hCoord))
		if d <= f.HeavyAtoms[i].CovalentRadius()+adTable[AD_HD].covalentRad+bondTolerance {
			if best < 0 || d < bestD {
				best, bestD = i, d
			}
		}
	}
	if best >= 0 {
		f.HeavyAtoms[best].Donorize()
	}
}

// finalizeFrame converts frame idx's atom coordinates from the raw,
// absolute coordinates read off the input file into coordinates local to
// the frame (relative to its own origin atom), and computes RelativeOrigin
// and RelativeAxis against its parent. Local coordinates are what Evaluate
// rotates and translates on every subsequent call; the raw input geometry
// is only needed once, here.
func (p *parser) finalizeFrame(idx int) {
	f := &p.lig.Frames[idx]
	origin := p.origin[idx]
	for i := range f.HeavyAtoms {
		f.HeavyAtoms[i].Coordinate = kine.Sub(f.HeavyAtoms[i].Coordinate, origin)
	}
	for i := range f.Hydrogens {
		f.Hydrogens[i].Coordinate = kine.Sub(f.Hydrogens[i].Coordinate, origin)
	}
	if f.Parent < 0 {
		return
	}
	parent := &p.lig.Frames[f.Parent]
	rotorXRaw := kine.Add(parent.HeavyAtoms[f.RotorX].Coordinate, p.origin[f.Parent])
	f.RelativeOrigin = kine.Sub(origin, p.origin[f.Parent])
	axis := kine.Sub(origin, rotorXRaw)
	if kine.Norm(axis) > 1e-9 {
		f.RelativeAxis = kine.Unit(axis)
	} else {
		f.RelativeAxis = kine.Vec3{Z: 1}
	}
}

// dehydrophobicize clears the hydrophobic flag on every carbon that is
// covalently bonded to a hetero atom, run once after the whole tree is
// parsed since a carbon's neighbors may span frame boundaries.
func (p *parser) dehydrophobicize() {
	for fi := range p.lig.Frames {
		f := &p.lig.Frames[fi]
		for i := range f.HeavyAtoms {
			if f.HeavyAtoms[i].IsHetero() {
				continue
			}
			if p.hasHeteroNeighbor(fi, i) {
				f.HeavyAtoms[i].Dehydrophobicize()
			}
		}
	}
}

func (p *parser) hasHeteroNeighbor(frameIdx, atomIdx int) bool {
	f := &p.lig.Frames[frameIdx]
	a := f.HeavyAtoms[atomIdx]
	for j := range f.HeavyAtoms {
		if j == atomIdx || !f.HeavyAtoms[j].IsHetero() {
			continue
		}
		if a.IsNeighbor(&f.HeavyAtoms[j]) {
			return true
		}
	}
	if f.Parent >= 0 && atomIdx == 0 {
		// The rotor bond itself: frame idx's own first heavy atom is always
		// bonded to its parent's rotor atom, by construction of the frame
		// tree, no distance check needed.
		parent := &p.lig.Frames[f.Parent]
		if parent.HeavyAtoms[f.RotorX].IsHetero() {
			return true
		}
	}
	for ci := range p.lig.Frames {
		c := &p.lig.Frames[ci]
		if c.Parent != frameIdx || c.RotorX != atomIdx {
			continue
		}
		if len(c.HeavyAtoms) > 0 && c.HeavyAtoms[0].IsHetero() {
			return true
		}
	}
	return false
}

// frameOriginWorld returns frame idx's origin in the coordinate system of
// the original input file: the raw coordinate of its first heavy atom.
func (p *parser) frameOriginWorld(idx int) kine.Vec3 {
	return p.origin[idx]
}
