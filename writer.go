/*
 * writer.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package dock

import (
	"fmt"
	"strings"

	"github.com/dockchem/vinacore/dockerr"
)

// WriteModel renders pose as one PDBQT MODEL block: a REMARK line carrying
// the energy, the ligand's input lines with coordinate columns substituted
// for pose's, and a closing ENDMDL. model
// is the 1-based model number AutoDock-family tools number MODEL records
// with.
func (l *Ligand) WriteModel(model int, pose Pose) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "MODEL %d\n", model)
	fmt.Fprintf(&b, "REMARK FREE ENERGY: %10.4f KCAL/MOL\n", pose.Energy)

	w := &writerCursor{lig: l, pose: pose}
	opened := 0 // frames are indexed in the order their BRANCH records appear
	for _, raw := range l.InputLines {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "ROOT":
			w.frame = 0
			b.WriteString(raw)
			b.WriteByte('\n')
		case "BRANCH":
			opened++
			w.frame = opened
			b.WriteString(raw)
			b.WriteByte('\n')
		case "ENDBRANCH":
			w.frame = l.Frames[w.frame].Parent
			b.WriteString(raw)
			b.WriteByte('\n')
		case "ATOM", "HETATM":
			line, err := w.substitute(raw)
			if err != nil {
				return "", err
			}
			b.WriteString(line)
			b.WriteByte('\n')
		default:
			b.WriteString(raw)
			b.WriteByte('\n')
		}
	}
	b.WriteString("ENDMDL\n")
	return b.String(), nil
}

// writerCursor walks Ligand.InputLines in lockstep with WriteModel,
// tracking which frame the current ATOM record belongs to and how far into
// that frame's heavy-atom and hydrogen lists it has advanced. It mirrors
// the frame-stack bookkeeping the parser does, in reverse.
type writerCursor struct {
	lig   *Ligand
	pose  Pose
	frame int
	heavy int
	hyd   int

	lastFrame int
	started   bool
}

func (w *writerCursor) substitute(raw string) (string, error) {
	if !w.started || w.lastFrame != w.frame {
		w.heavy, w.hyd = 0, 0
		w.lastFrame, w.started = w.frame, true
	}
	f := &w.lig.Frames[w.frame]
	var coord = struct{ X, Y, Z float64 }{}
	if len(field(raw, 76, 79)) > 0 {
		if t, ok := parseADType(field(raw, 76, 79)); ok && adTable[t].hydrogen {
			if w.hyd >= len(w.pose.Hydrogens[w.frame]) {
				return "", dockerr.Newf("frame %d: too few written hydrogen coordinates", w.frame)
			}
			c := w.pose.Hydrogens[w.frame][w.hyd]
			coord.X, coord.Y, coord.Z = c.X, c.Y, c.Z
			w.hyd++
			return spliceCoords(raw, coord.X, coord.Y, coord.Z), nil
		}
	}
	if w.heavy >= len(f.HeavyAtoms) {
		return "", dockerr.Newf("frame %d: too many ATOM records for its heavy atom count", w.frame)
	}
	c := w.pose.HeavyAtoms[w.frame][w.heavy]
	w.heavy++
	return spliceCoords(raw, c.X, c.Y, c.Z), nil
}

// spliceCoords replaces columns 31-54 of raw (the x, y, z fields) with the
// given coordinates, each formatted %8.3f as PDB and PDBQT both require,
// leaving every other column untouched.
func spliceCoords(raw string, x, y, z float64) string {
	if len(raw) < 54 {
		return raw
	}
	return raw[:30] + fmt.Sprintf("%8.3f%8.3f%8.3f", x, y, z) + raw[54:]
}
