package record_test

import (
	"strings"
	"testing"

	. "github.com/SuperXiang/pdb2cif-1/pkg/record"
)

func sampleAtom() Atom {
	return Atom{
		Serial:    NewNumber(1),
		Name:      NewAtomName("C3'"),
		Res:       NewResName("DA"),
		ResNum:    NewNumber(2),
		Chain:     NewChainID(1),
		X:         1.5,
		Y:         -2.25,
		Z:         3.0,
		Occupancy: 1.0,
		TempFac:   0.0,
	}
}

func TestAtomAsPDB(t *testing.T) {
	want := "ATOM  00001  C3' ADE C0002       1.500  -2.250   3.000  1.00  0.00          C"
	got, err := sampleAtom().AsPDB()
	if err != nil {
		t.Fatal("unexpected error", err)
	}
	if got != want {
		t.Errorf("pdb line\nwanted %q\ngot    %q", want, got)
	}
	if len(got) != 78 {
		t.Error("pdb line length", len(got), "wanted 78")
	}
}

func TestAtomAsNAMD(t *testing.T) {
	got, err := sampleAtom().AsNAMD()
	if err != nil {
		t.Fatal("unexpected error", err)
	}
	if !strings.Contains(got, "      0001 C") {
		t.Errorf("namd line missing segment name, got %q", got)
	}
}

// A serial number past the decimal range must come out hybrid, and
// one past the whole representable range must abort the rendering.
func TestAtomWideSerial(t *testing.T) {
	a := sampleAtom()
	a.Serial = NewNumber(100000)
	got, err := a.AsPDB()
	if err != nil {
		t.Fatal("unexpected error", err)
	}
	if !strings.HasPrefix(got, "ATOM  A0000 ") {
		t.Errorf("wide serial not hybrid encoded: %q", got)
	}

	a.Serial = NewNumber(100000 + 2*26*36*36*36*36)
	if _, err := a.AsPDB(); err == nil {
		t.Error("expected a range error, got none")
	}
}

func TestAtomAsCif(t *testing.T) {
	want := `ATOM 1 C "C3'" . DA  A 1 2 ? 1.500 -2.250 3.000 1.00 0.00 ? 2 DA  A "C3'" 1`
	got, err := sampleAtom().AsCif()
	if err != nil {
		t.Fatal("unexpected error", err)
	}
	if got != want {
		t.Errorf("cif line\nwanted %q\ngot    %q", want, got)
	}
}

func TestAtomBadResidueAborts(t *testing.T) {
	a := sampleAtom()
	a.Res = NewResName("UNK")
	if _, err := a.AsPDB(); err == nil {
		t.Error("expected a lookup error for a residue with no legacy name")
	}
}
