package record

import "strings"

// anchorAtom is the atom used to count residues. The C3' backbone
// carbon occurs exactly once per nucleotide, so scanning it never
// counts a residue twice.
const anchorAtom = "C3'"

// ScaffoldMinResidues splits staple from scaffold chains. A chain
// whose largest residue number reaches this is a scaffold. The value
// silently steers the source and organism metadata downstream, so it
// lives here as the one named constant rather than inline.
const ScaffoldMinResidues = 500

// ChainSummary is the per-chain data derived from an atom scan. It
// is recomputed on each emission, never stored.
type ChainSummary struct {
	ID     ChainID
	MaxRes int
	Seq    []ResName
}

// IsStaple classifies the chain by length.
func (c ChainSummary) IsStaple() bool { return c.MaxRes < ScaffoldMinResidues }

// SeqParen is the sequence with each residue parenthesized,
// (DA)(DC)... as the document format wants it.
func (c ChainSummary) SeqParen() string {
	var b strings.Builder
	for _, r := range c.Seq {
		b.WriteByte('(')
		b.WriteString(r.String())
		b.WriteByte(')')
	}
	return b.String()
}

// SeqX is the compact one-letter sequence.
func (c ChainSummary) SeqX() string {
	var b strings.Builder
	for _, r := range c.Seq {
		b.WriteString(r.AsX())
	}
	return b.String()
}

// ChainSummaries scans the anchor atoms in document order and
// collects, per chain, the largest residue number and the ordered
// residue sequence. Chains appear in the order their first anchor
// atom appears.
func (s *Structure) ChainSummaries() []ChainSummary {
	index := make(map[int]int)
	var out []ChainSummary
	for _, a := range s.Atoms {
		if a.Name.String() != anchorAtom {
			continue
		}
		ci := a.Chain.Int()
		i, ok := index[ci]
		if !ok {
			i = len(out)
			index[ci] = i
			out = append(out, ChainSummary{ID: a.Chain, MaxRes: a.ResNum.Int()})
		} else if rn := a.ResNum.Int(); rn > out[i].MaxRes {
			out[i].MaxRes = rn
		}
		out[i].Seq = append(out[i].Seq, a.Res)
	}
	return out
}
