/*
 * topology.go, part of vinacore.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

package dock

import "github.com/dockchem/vinacore/dockerr"

// AtomRef locates a heavy atom by frame index and its position within that
// frame's HeavyAtoms slice.
type AtomRef struct {
	Frame int
	Index int
}

// InteractingPair is one heavy-atom pair that contributes an intramolecular
// nonbonded term to Evaluate. Pairs
// within the same rigid frame are never generated: their distance never
// changes, so they carry no gradient information worth scoring.
type InteractingPair struct {
	A, B AtomRef
}

// bfsExcludeDepth is how many bonds apart two atoms may be and still be
// excluded from nonbonded scoring, mirroring the 1-4 exclusion window this
// module's pair enumeration is modeled on.
const bfsExcludeDepth = 3

// BuildTopology derives the covalent bond graph and the interacting-pair
// list for l. It must run once, after the parser has populated l.Frames and
// before any call to Evaluate.
//
// The bond graph has two kinds of edges: intra-frame edges, found by the
// same covalent-radius neighbor test the parser uses (frames are rigid, so
// this only needs to run once), and one inter-frame edge per non-ROOT
// frame, connecting its parent's rotor atom to its own first heavy atom.
// A breadth-first search of depth bfsExcludeDepth from every atom then
// gives the exclusion set.
//
// A second, distance-independent exclusion applies on top of the BFS set:
// for a direct parent/child frame pair, every atom in the parent paired
// with the child's own first heavy atom (the child sits on the rotation
// axis, so that distance never changes), and the parent's rotor atom
// paired with any atom in the child (a rotation about an axis through the
// rotor atom never changes its distance to a point it carries with it).
// Both pairs would otherwise contribute a spurious constant to the
// nonbonded sum. Every remaining cross-frame pair becomes an
// InteractingPair.
func BuildTopology(l *Ligand) error {
	type loc struct{ frame, idx int }

	var atoms []loc
	start := make([]int, len(l.Frames))
	for fi := range l.Frames {
		start[fi] = len(atoms)
		for ai := range l.Frames[fi].HeavyAtoms {
			atoms = append(atoms, loc{fi, ai})
		}
	}
	n := len(atoms)
	adj := make([][]int, n)
	addEdge := func(a, b int) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	for fi := range l.Frames {
		f := &l.Frames[fi]
		for i := 0; i < len(f.HeavyAtoms); i++ {
			for j := i + 1; j < len(f.HeavyAtoms); j++ {
				if f.HeavyAtoms[i].IsNeighbor(&f.HeavyAtoms[j]) {
					addEdge(start[fi]+i, start[fi]+j)
				}
			}
		}
	}
	for fi := 1; fi < len(l.Frames); fi++ {
		f := &l.Frames[fi]
		if f.Parent < 0 || f.RotorX >= len(l.Frames[f.Parent].HeavyAtoms) {
			return dockerr.Newf("frame %d: rotor-x index %d out of range on parent %d", fi, f.RotorX, f.Parent)
		}
		addEdge(start[f.Parent]+f.RotorX, start[fi]+0)
	}

	l.Pairs = l.Pairs[:0]
	for i := 0; i < n; i++ {
		excluded := bfsWithinDepth(adj, i, bfsExcludeDepth)
		fi := atoms[i].frame
		for j := i + 1; j < n; j++ {
			fj := atoms[j].frame
			if fi == fj || excluded[j] {
				continue
			}
			if l.Frames[fj].Parent == fi && (atoms[j].idx == 0 || atoms[i].idx == l.Frames[fj].RotorX) {
				continue
			}
			l.Pairs = append(l.Pairs, InteractingPair{
				A: AtomRef{Frame: fi, Index: atoms[i].idx},
				B: AtomRef{Frame: fj, Index: atoms[j].idx},
			})
		}
	}
	return nil
}

// bfsWithinDepth returns the set of nodes reachable from root in at most
// depth hops, root included.
func bfsWithinDepth(adj [][]int, root, depth int) map[int]bool {
	visited := map[int]int{root: 0}
	queue := []int{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := visited[cur]
		if d >= depth {
			continue
		}
		for _, nb := range adj[cur] {
			if _, ok := visited[nb]; !ok {
				visited[nb] = d + 1
				queue = append(queue, nb)
			}
		}
	}
	set := make(map[int]bool, len(visited))
	for k := range visited {
		set[k] = true
	}
	return set
}
