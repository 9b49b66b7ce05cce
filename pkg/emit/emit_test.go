package emit_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SuperXiang/pdb2cif-1/pkg/emit"
	"github.com/SuperXiang/pdb2cif-1/pkg/record"
)

// twoChainStructure builds a small design: one staple of three
// residues on chain 1 and one scaffold residue with a number past
// the classification threshold on chain 2.
func twoChainStructure() *record.Structure {
	s := &record.Structure{Name: "mydesign"}
	serial := 1
	addRes := func(chain, resNum int, res string) {
		for _, nm := range []string{"P", "C3'"} {
			s.Atoms = append(s.Atoms, record.Atom{
				Serial:    record.NewNumber(serial),
				Name:      record.NewAtomName(nm),
				Res:       record.NewResName(res),
				ResNum:    record.NewNumber(resNum),
				Chain:     record.NewChainID(chain),
				X:         float64(serial),
				Y:         0.5,
				Z:         -0.5,
				Occupancy: 1.0,
			})
			serial++
		}
	}
	addRes(1, 1, "DA")
	addRes(1, 2, "DC")
	addRes(1, 3, "DT")
	addRes(2, record.ScaffoldMinResidues+100, "DG")
	return s
}

func TestPDBWriteTo(t *testing.T) {
	var buf bytes.Buffer
	p := emit.PDB{Struct: twoChainStructure()}
	require.NoError(t, p.WriteTo(&buf))

	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "HEADER   ", lines[0])
	require.Equal(t, "AUTHOR   ", lines[1])
	require.Equal(t, "REMARK   ", lines[2])
	require.Equal(t,
		"CRYST1 1000.000 1000.000 1000.000  90.00  90.00  90.00 P 1           1",
		lines[3])
	require.Len(t, lines, 4+8+1) // sections, atoms, trailing newline
	for _, l := range lines[4 : len(lines)-1] {
		require.True(t, strings.HasPrefix(l, "ATOM  "), l)
	}
	// plain flavour keeps the segment columns blank
	require.Equal(t, "    ", lines[4][72:76])
}

func TestPDBNamdFlavour(t *testing.T) {
	var buf bytes.Buffer
	p := emit.PDB{Struct: twoChainStructure(), Flavour: emit.NamdPDB}
	require.NoError(t, p.WriteTo(&buf))
	require.Contains(t, buf.String(), "      0001 ")
	require.Contains(t, buf.String(), "      0002 ")
}

func TestCIFWriteTo(t *testing.T) {
	var buf bytes.Buffer
	c := emit.CIF{Struct: twoChainStructure()}
	require.NoError(t, c.WriteTo(&buf))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "data_mydesign\n"))
	// the chain count placeholder is substituted, never emitted
	require.NotContains(t, out, "NCHAINS")
	require.Contains(t, out, "_pdbx_struct_assembly.oligomeric_count     2")
	require.Contains(t, out, "_atom_site.Cartn_x")

	// chain 1 is a staple from a synthetic source
	require.Contains(t, out, "1    polymer syn 'STAPLE STRAND'  ")
	require.Contains(t, out, "'synthetic construct'")
	require.Contains(t, out, "32630")
	// chain 2 is the scaffold with unknown source
	require.Contains(t, out, "2    polymer ?   'SCAFFOLD STRAND'")

	// entity_poly carries both sequence spellings and the label
	require.Contains(t, out, ";(DA)(DC)(DT)\n;\nACT A ?\n")
	require.Contains(t, out, ";(DG)\n;\nG B ?\n")
}

func TestCIFQuotesPrimedNames(t *testing.T) {
	var buf bytes.Buffer
	c := emit.CIF{Struct: twoChainStructure()}
	require.NoError(t, c.WriteTo(&buf))
	require.Contains(t, buf.String(), `"C3'"`)
}

// A value no column can hold must abort the document, not truncate.
func TestEmitAbortsOnRangeError(t *testing.T) {
	s := twoChainStructure()
	s.Atoms[0].ResNum = record.NewNumber(10000 + 2*26*36*36*36)
	var buf bytes.Buffer
	p := emit.PDB{Struct: s}
	require.Error(t, p.WriteTo(&buf))
	require.Zero(t, buf.Len(), "nothing may be written after a rendering error")
}
