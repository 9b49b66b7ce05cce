package emit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SuperXiang/pdb2cif-1/pkg/record"
	"github.com/SuperXiang/pdb2cif-1/pkg/tmpl"
)

// Taxonomy written for synthetic staple strands. Scaffolds get
// unknown source fields instead.
const (
	synOrganism = "'synthetic construct'"
	synTaxonomy = "32630"
)

// CIF writes a structure in the document format: data declaration,
// boilerplate header, assembly block with the chain count filled in,
// atom block, then the three per-chain entity blocks.
type CIF struct {
	Struct *record.Structure
}

func (c *CIF) atomLines() ([]string, error) {
	lines := make([]string, 0, len(c.Struct.Atoms))
	for _, a := range c.Struct.Atoms {
		line, err := a.AsCif()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func writeEntity(bw *bufio.Writer, chains []record.ChainSummary) error {
	block, err := tmpl.Get("entity")
	if err != nil {
		return err
	}
	bw.WriteString(block)
	for _, ch := range chains {
		src, typ := "syn", "'STAPLE STRAND'  "
		if !ch.IsStaple() {
			src, typ = "?  ", "'SCAFFOLD STRAND'"
		}
		fmt.Fprintf(bw, "%-4d polymer %s %s ?   1 ? ? ? ?\n", ch.ID.Int(), src, typ)
	}
	return nil
}

func writeEntitySrc(bw *bufio.Writer, chains []record.ChainSummary) error {
	block, err := tmpl.Get("entity_src")
	if err != nil {
		return err
	}
	bw.WriteString(block)
	for _, ch := range chains {
		org, tax := synOrganism, synTaxonomy
		if !ch.IsStaple() {
			org = fmt.Sprintf("%-21s", "?")
			tax = fmt.Sprintf("%-5s", "?")
		}
		fmt.Fprintf(bw, "%-4d   1 sample 1 %-5d %s ? %s ?\n",
			ch.ID.Int(), ch.MaxRes, org, tax)
	}
	return nil
}

func writeEntityPoly(bw *bufio.Writer, chains []record.ChainSummary) error {
	block, err := tmpl.Get("entity_poly")
	if err != nil {
		return err
	}
	bw.WriteString(block)
	for _, ch := range chains {
		label, err := ch.ID.Label()
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%-4d polydeoxyribonucleotide no no\n;%s\n;\n%s %s ?\n",
			ch.ID.Int(), ch.SeqParen(), ch.SeqX(), label)
	}
	return nil
}

// WriteTo emits the whole document in one deterministic pass.
func (c *CIF) WriteTo(w io.Writer) error {
	atoms, err := c.atomLines()
	if err != nil {
		return err
	}
	chains := c.Struct.ChainSummaries()

	header, err := tmpl.Get("header")
	if err != nil {
		return err
	}
	assembly, err := tmpl.Get("pdbx_struct")
	if err != nil {
		return err
	}
	assembly = strings.ReplaceAll(assembly, "NCHAINS", strconv.Itoa(len(chains)))
	atomHeader, err := tmpl.Get("atom_header")
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "data_%s\n", c.Struct.Name)
	bw.WriteString(header)
	bw.WriteString(assembly)
	bw.WriteString(atomHeader)
	for _, line := range atoms {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if err := writeEntity(bw, chains); err != nil {
		return err
	}
	if err := writeEntitySrc(bw, chains); err != nil {
		return err
	}
	if err := writeEntityPoly(bw, chains); err != nil {
		return err
	}
	return bw.Flush()
}
