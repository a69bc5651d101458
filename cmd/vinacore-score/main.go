/*
 * main.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Command vinacore-score evaluates a single ligand conformation and prints
// its energies and torsional gradients as JSON. It reads no receptor grid
// and scores intramolecular pairs with zeroScoring, which returns zero for
// every pair, so the reported energies and gradients are always zero; the
// report shows whether a ligand parses and builds a topology, and how many
// frames and active torsions it has.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"

	dock "github.com/dockchem/vinacore"
	"github.com/dockchem/vinacore/grid"
	"github.com/dockchem/vinacore/kine"
	"github.com/dockchem/vinacore/scoring"
)

type report struct {
	Energy            float64   `json:"energy"`
	InterEnergy       float64   `json:"inter_energy"`
	NumFrames         int       `json:"num_frames"`
	NumActiveTorsions int       `json:"num_active_torsions"`
	TorsionGradients  []float64 `json:"torsion_gradients"`
	InBounds          bool      `json:"in_bounds"`
}

func main() {
	ligPath := flag.String("ligand", "", "path to a PDBQT ligand file")
	seed := flag.Int64("seed", 1, "seed for the reference conformation's torsion angles")
	flag.Parse()

	if *ligPath == "" {
		log.Fatal("vinacore-score: -ligand is required")
	}
	data, err := os.ReadFile(*ligPath)
	if err != nil {
		log.Fatalf("vinacore-score: %v", err)
	}
	lig, err := dock.ParseLigand(*ligPath, splitLines(string(data)))
	if err != nil {
		log.Fatalf("vinacore-score: %v", err)
	}
	if err := dock.BuildTopology(lig); err != nil {
		log.Fatalf("vinacore-score: %v", err)
	}

	conf := dock.NewConformation(lig.NumActiveTorsions())
	rng := rand.New(rand.NewSource(*seed))
	for i := range conf.Torsions {
		conf.Torsions[i] = (rng.Float64()*2 - 1) * 3.14159265
	}

	box := grid.UniformBox{
		Corner1: kine.Vec3{X: -1e6, Y: -1e6, Z: -1e6},
		Corner2: kine.Vec3{X: 1e6, Y: 1e6, Z: 1e6},
	}
	var grids [dock.NumXSTypes]grid.GridMap
	fn := zeroScoring{}

	e, f, ok, ch := lig.Evaluate(conf, box, grids, fn)

	out := report{
		Energy:            e,
		InterEnergy:       f,
		NumFrames:         lig.NumFrames(),
		NumActiveTorsions: lig.NumActiveTorsions(),
		TorsionGradients:  ch.TorsionGrads,
		InBounds:          ok,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("vinacore-score: %v", err)
	}
}

// zeroScoring is a placeholder ScoringFunction for callers that only want
// to exercise the kinematic and topology machinery without a real
// intramolecular potential.
type zeroScoring struct{}

func (zeroScoring) Eval(a, b int, r2 float64) (float64, float64, bool) { return 0, 0, true }

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

var _ scoring.ScoringFunction = zeroScoring{}
