package dock

import (
	"testing"

	"github.com/dockchem/vinacore/kine"
)

func TestBuildTopologyExcludesRotorNeighbors(t *testing.T) {
	lig, err := ParseLigand("test.pdbqt", testLigandLines())
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	if err := BuildTopology(lig); err != nil {
		t.Fatalf("BuildTopology: %v", err)
	}
	// Every heavy atom in this three-heavy-atom ligand is within 3 bonds of
	// every other (root atom1 - root atom2 - branch atom3, a chain of
	// length 2), so no cross-frame pair should survive exclusion.
	for _, p := range lig.Pairs {
		t.Fatalf("expected no interacting pairs in a short bonded chain, got %+v", p)
	}
}

func TestBuildTopologyBadRotorX(t *testing.T) {
	lig := &Ligand{Frames: []Frame{
		{Parent: -1, HeavyAtoms: []Atom{newAtom(kine.Vec3{}, 1, AD_C)}},
		{Parent: 0, RotorX: 5, HeavyAtoms: []Atom{newAtom(kine.Vec3{}, 2, AD_C)}},
	}}
	if err := BuildTopology(lig); err == nil {
		t.Fatal("expected an error for an out-of-range rotor-x index")
	}
}

// chainWithDistantBranchLines lays out a rigid ROOT chain A-B-C-D with a
// single BRANCH off D holding two atoms E, F, so the rotor-parent exclusion
// can be tested independently of the bonded-neighbor BFS: A is 4 bonds from
// E, one beyond bfsExcludeDepth, so only the distance-independent
// rotor-child rule can exclude the (A, E) pair. (D, F) is 2 bonds apart, so
// both the BFS and the rotor-x rule exclude it.
func chainWithDistantBranchLines() []string {
	return []string{
		"ROOT",
		pdbqtAtomLine("HETATM", 1, 0.0, 0, 0, "C"),
		pdbqtAtomLine("HETATM", 2, 1.4, 0, 0, "C"),
		pdbqtAtomLine("HETATM", 3, 2.8, 0, 0, "C"),
		pdbqtAtomLine("HETATM", 4, 4.2, 0, 0, "C"),
		"ENDROOT",
		"BRANCH 4 5",
		pdbqtAtomLine("HETATM", 5, 5.6, 0, 0, "C"),
		pdbqtAtomLine("HETATM", 6, 7.0, 0, 0, "C"),
		"ENDBRANCH 4 5",
		"TORSDOF 1",
	}
}

func TestBuildTopologyExcludesRotorParentBeyondBFSDepth(t *testing.T) {
	lig, err := ParseLigand("chain.pdbqt", chainWithDistantBranchLines())
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	if err := BuildTopology(lig); err != nil {
		t.Fatalf("BuildTopology: %v", err)
	}
	hasPair := func(fa, ia, fb, ib int) bool {
		for _, p := range lig.Pairs {
			if (p.A.Frame == fa && p.A.Index == ia && p.B.Frame == fb && p.B.Index == ib) ||
				(p.B.Frame == fa && p.B.Index == ia && p.A.Frame == fb && p.A.Index == ib) {
				return true
			}
		}
		return false
	}
	// A (frame 0, index 0) is 4 bonds from E (frame 1, index 0): beyond
	// bfsExcludeDepth, so only the rotor-parent rule excludes it.
	if hasPair(0, 0, 1, 0) {
		t.Fatal("an atom paired with the child frame's own first heavy atom must always be excluded")
	}
	// D (frame 0, index 3, the rotor-x atom) paired with the child's second
	// atom F (frame 1, index 1) must also be excluded, regardless of
	// distance.
	if hasPair(0, 3, 1, 1) {
		t.Fatal("the rotor-x atom paired with any child-frame atom must always be excluded")
	}
	// A and F (frame 1, index 1) are not covered by either exclusion rule
	// (F is not the child's first atom, A is not the rotor-x atom): this
	// pair should still be scored.
	if !hasPair(0, 0, 1, 1) {
		t.Fatal("a genuinely unrelated cross-frame pair should still be scored")
	}
}
