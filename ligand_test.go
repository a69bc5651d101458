package dock

import (
	"math"
	"testing"
)

func rigidLigandLines() []string {
	return []string{
		"ROOT",
		pdbqtAtomLine("HETATM", 1, 0, 0, 0, "C"),
		"ENDROOT",
	}
}

func TestFlexibilityPenaltyRigidLigandIsOne(t *testing.T) {
	lig, err := ParseLigand("rigid.pdbqt", rigidLigandLines())
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	if lig.NumTorsions() != 0 {
		t.Fatalf("expected 0 torsions, got %d", lig.NumTorsions())
	}
	if p := lig.FlexibilityPenalty(); math.Abs(p-1.0) > 1e-12 {
		t.Fatalf("a rigid ligand should have no flexibility penalty, got %v", p)
	}
}

func TestFlexibilityPenaltyRedundantTorsionHalfWeighted(t *testing.T) {
	// The branch here is a single-heavy-atom leaf, so ParseLigand marks it
	// inactive: one redundant torsion, zero active ones.
	lig, err := ParseLigand("test.pdbqt", testLigandLines())
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	if lig.NumTorsions() == 0 {
		t.Fatal("expected at least one torsion for this test to be meaningful")
	}
	if lig.NumActiveTorsions() != 0 {
		t.Fatalf("expected the leaf branch to be inactive, got %d active torsions", lig.NumActiveTorsions())
	}
	want := 1.0 / (1.0 + flexPenaltyWeight*0.5)
	if got := lig.FlexibilityPenalty(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("FlexibilityPenalty() = %v, want %v (one redundant torsion at half weight)", got, want)
	}
	if lig.FlexibilityPenalty() == 1.0 {
		t.Fatal("a ligand with a redundant torsion must not score as if it had none")
	}
}

func TestFlexibilityPenaltyEqualsOneIffNoTorsions(t *testing.T) {
	rigid, err := ParseLigand("rigid.pdbqt", rigidLigandLines())
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	flexible, err := ParseLigand("test.pdbqt", testLigandLines())
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	if rigid.NumTorsions() != 0 {
		t.Fatal("rigid fixture should have no torsions")
	}
	if flexible.NumTorsions() == 0 {
		t.Fatal("flexible fixture should have at least one torsion")
	}
	if rigid.FlexibilityPenalty() != 1.0 {
		t.Fatal("zero torsions must give exactly a 1.0 penalty")
	}
	if flexible.FlexibilityPenalty() == 1.0 {
		t.Fatal("a nonzero torsion count, even fully inactive, must not give a 1.0 penalty")
	}
}
