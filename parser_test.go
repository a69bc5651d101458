package dock

import (
	"fmt"
	"strings"
	"testing"
)

func pdbqtAtomLine(record string, serial int, x, y, z float64, adtype string) string {
	b := []byte(strings.Repeat(" ", 79))
	copy(b[0:len(record)], record)
	copy(b[6:11], fmt.Sprintf("%5d", serial))
	copy(b[30:38], fmt.Sprintf("%8.3f", x))
	copy(b[38:46], fmt.Sprintf("%8.3f", y))
	copy(b[46:54], fmt.Sprintf("%8.3f", z))
	copy(b[76:79], fmt.Sprintf("%-3s", adtype))
	return string(b)
}

func testLigandLines() []string {
	return []string{
		"ROOT",
		pdbqtAtomLine("HETATM", 1, 0, 0, 0, "C"),
		pdbqtAtomLine("HETATM", 2, 1.4, 0, 0, "C"),
		"ENDROOT",
		"BRANCH 2 3",
		pdbqtAtomLine("HETATM", 3, 2.7, 0, 0, "N"),
		pdbqtAtomLine("HETATM", 4, 2.7, 1.0, 0, "HD"),
		"ENDBRANCH 2 3",
		"TORSDOF 1",
	}
}

func TestParseLigandBasic(t *testing.T) {
	lig, err := ParseLigand("test.pdbqt", testLigandLines())
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	if lig.NumFrames() != 2 {
		t.Fatalf("expected 2 frames, got %d", lig.NumFrames())
	}
	if lig.NumHeavyAtoms() != 3 {
		t.Fatalf("expected 3 heavy atoms, got %d", lig.NumHeavyAtoms())
	}
	if lig.NumHydrogens() != 1 {
		t.Fatalf("expected 1 hydrogen, got %d", lig.NumHydrogens())
	}
	if lig.NumTorsions() != 1 {
		t.Fatalf("expected 1 torsion slot, got %d", lig.NumTorsions())
	}
	if lig.Frames[1].Active {
		t.Fatal("a single-heavy-atom leaf frame should be inactivated")
	}
	n := lig.Frames[1].HeavyAtoms[0]
	if !n.IsDonor() {
		t.Fatal("nitrogen bonded to a polar hydrogen should be marked a donor")
	}
}

func TestParseLigandUnclosedBranch(t *testing.T) {
	lines := []string{
		"ROOT",
		pdbqtAtomLine("HETATM", 1, 0, 0, 0, "C"),
		"ENDROOT",
		"BRANCH 1 2",
		pdbqtAtomLine("HETATM", 2, 1.4, 0, 0, "C"),
	}
	if _, err := ParseLigand("bad.pdbqt", lines); err == nil {
		t.Fatal("expected an error for an unclosed BRANCH")
	}
}

func TestParseLigandUnknownType(t *testing.T) {
	lines := []string{
		"ROOT",
		pdbqtAtomLine("HETATM", 1, 0, 0, 0, "Xx"),
		"ENDROOT",
	}
	if _, err := ParseLigand("bad.pdbqt", lines); err == nil {
		t.Fatal("expected an error for an unrecognized atom type")
	}
}

func TestParseLigandEmptyFrame(t *testing.T) {
	lines := []string{
		"ROOT",
		pdbqtAtomLine("HETATM", 1, 0, 0, 0, "C"),
		"ENDROOT",
		"BRANCH 1 2",
		"ENDBRANCH 1 2",
	}
	if _, err := ParseLigand("bad.pdbqt", lines); err == nil {
		t.Fatal("expected an error for an empty branch")
	}
}

func TestSingleAtomLeafInactivated(t *testing.T) {
	lines := []string{
		"ROOT",
		pdbqtAtomLine("HETATM", 1, 0, 0, 0, "C"),
		pdbqtAtomLine("HETATM", 2, 1.4, 0, 0, "C"),
		"ENDROOT",
		"BRANCH 2 3",
		pdbqtAtomLine("HETATM", 3, 2.7, 0, 0, "F"),
		"ENDBRANCH 2 3",
	}
	lig, err := ParseLigand("leaf.pdbqt", lines)
	if err != nil {
		t.Fatalf("ParseLigand: %v", err)
	}
	if lig.Frames[1].Active {
		t.Fatal("a single-heavy-atom leaf frame should be inactivated")
	}
}
