package record

import (
	"fmt"
)

// Column widths of the legacy format. These belong to the format,
// not to the data.
const (
	serialWidth  = 5
	nameWidth    = 4
	resWidth     = 3
	resNumWidth  = 4
	segNameWidth = 4
)

// Atom is one physical atom. The converter only ever reads it.
type Atom struct {
	Serial    Number
	Name      AtomName
	Res       ResName
	ResNum    Number
	Chain     ChainID
	X, Y, Z   float64
	Occupancy float64
	TempFac   float64
}

// Structure is a named, ordered list of atoms, handed in by whoever
// did the parsing.
type Structure struct {
	Name  string
	Atoms []Atom
}

// asLegacy builds one fixed-column ATOM line. With segName the
// segment-name columns carry the zero-padded chain number, which is
// what the simulation-tool variant wants; without it they stay blank.
func (a Atom) asLegacy(segName bool) (string, error) {
	serial, err := a.Serial.AsH36(serialWidth)
	if err != nil {
		return "", err
	}
	res, err := a.Res.AsPDB(resWidth)
	if err != nil {
		return "", err
	}
	resNum, err := a.ResNum.AsH36(resNumWidth)
	if err != nil {
		return "", err
	}
	seg := "    "
	if segName {
		seg = a.Chain.AsSegName(segNameWidth)
	}
	return fmt.Sprintf("ATOM  %s %s %s %s%s    %8.3f%8.3f%8.3f%6.2f%6.2f      %s%2s",
		serial, a.Name.AsPDB(nameWidth), res, a.Chain.AsChainChar(), resNum,
		a.X, a.Y, a.Z, a.Occupancy, a.TempFac, seg, a.Name.Element()), nil
}

// AsPDB renders the atom as a plain legacy-format line.
func (a Atom) AsPDB() (string, error) { return a.asLegacy(false) }

// AsNAMD renders the simulation-tool variant of the legacy line.
func (a Atom) AsNAMD() (string, error) { return a.asLegacy(true) }

// AsCif renders the atom as one space-delimited _atom_site row in
// the column order of the atom block template.
func (a Atom) AsCif() (string, error) {
	strand, err := a.Chain.AsCif()
	if err != nil {
		return "", err
	}
	name := a.Name.AsCif()
	return fmt.Sprintf("ATOM %d %s %s . %s %s %d %d ? %.3f %.3f %.3f %.2f %.2f ? %d %s %s %s 1",
		a.Serial.Int(), a.Name.Element(), name, a.Res, strand,
		a.Chain.Int(), a.ResNum.Int(),
		a.X, a.Y, a.Z, a.Occupancy, a.TempFac,
		a.ResNum.Int(), a.Res, strand, name), nil
}
