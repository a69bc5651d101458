/*
 * doc.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package dock provides the ligand-side kinematics and scoring machinery
// behind a molecular docking evaluator: parsing PDBQT ligand files into a
// flexible tree of rigid frames, building the topology a nonbonded scoring
// function needs, and evaluating a conformation's energy and gradient
// against a receptor grid and an intramolecular scoring table.
//
// A typical caller parses a ligand, builds its topology once, then
// evaluates many conformations against it:
//
//	lig, err := dock.ParseLigand("ligand.pdbqt", lines)
//	if err != nil { ... }
//	if err := dock.BuildTopology(lig); err != nil { ... }
//	e, f, ok, ch := lig.Evaluate(conf, box, grids, scoringFn)
package dock
