package dock

import (
	"math"
	"testing"

	"github.com/dockchem/vinacore/grid"
)

// mixedActivityLigandLines builds a ligand with one active branch (two heavy
// atoms) and one inactive, single-heavy-atom-leaf branch, both hanging off
// the root, so ActiveIndex packing can be exercised end to end.
func mixedActivityLigandLines() []string {
	return []string{
		"ROOT",
		pdbqtAtomLine("HETATM", 1, 0, 0, 0, "C"),
		pdbqtAtomLine("HETATM", 2, 1.4, 0, 0, "C"),
		"ENDROOT",
		"BRANCH 2 3",
		pdbqtAtomLine("HETATM", 3, 2.7, 0, 0, "C"),
		pdbqtAtomLine("HETATM", 4, 4.1, 0, 0, "C"),
		"ENDBRANCH 2 3",
		"BRANCH 2 5",
		pdbqtAtomLine("HETATM", 5, 2.7, 1.4, 0, "F"),
		"ENDBRANCH 2 5",
		"TORSDOF 2",
	}
}

func TestActiveIndexPacking(t *testing.T) {
	lig, err := ParseLigand("mixed.pdbqt", mixedActivityLigandLines())
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	if err := BuildTopology(lig); err != nil {
		t.Fatalf("BuildTopology: %v", err)
	}
	if lig.NumTorsions() != 2 {
		t.Fatalf("expected 2 torsions, got %d", lig.NumTorsions())
	}
	if lig.NumActiveTorsions() != 1 {
		t.Fatalf("expected 1 active torsion, got %d", lig.NumActiveTorsions())
	}
	if !lig.Frames[1].Active || lig.Frames[1].ActiveIndex != 0 {
		t.Fatalf("frame 1 should be the sole active torsion at index 0, got active=%v index=%d",
			lig.Frames[1].Active, lig.Frames[1].ActiveIndex)
	}
	if lig.Frames[2].Active || lig.Frames[2].ActiveIndex != -1 {
		t.Fatalf("frame 2 should be inactive with ActiveIndex -1, got active=%v index=%d",
			lig.Frames[2].Active, lig.Frames[2].ActiveIndex)
	}
}

func TestEvaluateAppliesTorsionByActiveIndex(t *testing.T) {
	lig, err := ParseLigand("mixed.pdbqt", mixedActivityLigandLines())
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	if err := BuildTopology(lig); err != nil {
		t.Fatalf("BuildTopology: %v", err)
	}
	var grids [NumXSTypes]grid.GridMap
	conf := NewConformation(lig.NumActiveTorsions())
	if len(conf.Torsions) != 1 {
		t.Fatalf("expected exactly one packed torsion slot, got %d", len(conf.Torsions))
	}
	conf.Torsions[0] = math.Pi / 2

	if _, _, ok, _ := lig.Evaluate(conf, unboundedBox(), grids, zeroFn{}); !ok {
		t.Fatal("evaluation should succeed")
	}
}
