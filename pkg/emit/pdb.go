// Package emit assembles complete output documents from a structure.
// Each writer renders every line first and only then touches the
// sink, so a rendering error never leaves a truncated file behind.
package emit

import (
	"bufio"
	"io"

	"github.com/SuperXiang/pdb2cif-1/pkg/record"
)

// The unit cell written to CRYST1. A computed per-structure box is
// deliberately not attempted; the placeholder cube is part of the
// format contract.
const (
	boxDims    = "1000.000 1000.000 1000.000"
	boxAngles  = "90.00  90.00  90.00"
	spaceGroup = "P 1"
	zValue     = "1"
)

// Flavour selects the legacy output variant.
type Flavour byte

const (
	// PlainPDB is the classic fixed-column format.
	PlainPDB Flavour = iota
	// NamdPDB adds the segment-name column the simulation tool reads.
	NamdPDB
)

// PDB writes a structure in the legacy fixed-column format.
type PDB struct {
	Struct  *record.Structure
	Flavour Flavour
}

func (p *PDB) atomLines() ([]string, error) {
	lines := make([]string, 0, len(p.Struct.Atoms))
	for _, a := range p.Struct.Atoms {
		var line string
		var err error
		if p.Flavour == NamdPDB {
			line, err = a.AsNAMD()
		} else {
			line, err = a.AsPDB()
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteTo emits the whole document in one pass: minimal header,
// author and remark lines, the fixed unit cell, then the atoms.
func (p *PDB) WriteTo(w io.Writer) error {
	atoms, err := p.atomLines()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("HEADER   \n")
	bw.WriteString("AUTHOR   \n")
	bw.WriteString("REMARK   \n")
	bw.WriteString("CRYST1 " + boxDims + "  " + boxAngles + " " +
		spaceGroup + "           " + zValue + "\n")
	for _, line := range atoms {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
