// Package record holds the typed fields of one atom record and the
// structure model built from them. Field values are normalized once,
// when a record is built, and every rendering method after that is a
// pure function. Nothing in here mutates a structure.
package record

import (
	"fmt"
	"strconv"

	"github.com/SuperXiang/pdb2cif-1/pkg/hy36"
)

// Number is a serial or residue number. It is never negative and it
// never wraps: if a value does not fit the requested column the
// rendering fails instead.
type Number struct {
	n int
}

// NewNumber wraps an integer.
func NewNumber(n int) Number { return Number{n: n} }

// ParseNumber reads a decimal or hybrid-36 field as it appears in a
// fixed-width record.
func ParseNumber(s string) (Number, error) {
	n, err := hy36.Decode(s)
	if err != nil {
		return Number{}, err
	}
	return Number{n: n}, nil
}

func (n Number) Int() int { return n.n }

func (n Number) String() string { return strconv.Itoa(n.n) }

// AsH36 renders the number into a column of the given width.
func (n Number) AsH36(width int) (string, error) {
	return hy36.Encode(n.n, width)
}

// ChainID is the chain number with its derived label renderings.
type ChainID struct {
	n int
}

// NewChainID wraps an integer chain number.
func NewChainID(n int) ChainID { return ChainID{n: n} }

// ParseChainID reads a decimal or hybrid-36 chain field. The single
// character chain column of the legacy format is a width-1 hybrid-36
// field, so "A" comes back as 10.
func ParseChainID(s string) (ChainID, error) {
	n, err := hy36.Decode(s)
	if err != nil {
		return ChainID{}, err
	}
	return ChainID{n: n}, nil
}

func (c ChainID) Int() int { return c.n }

func (c ChainID) String() string { return strconv.Itoa(c.n) }

// AsChainChar is the one-character display hint for tools whose
// chain column cannot hold more. Lossy, display only.
func (c ChainID) AsChainChar() string {
	return string(hy36.ChainChar(c.n))
}

// Label is the compact uppercase chain label used by the document
// format, built from the zero-indexed chain number.
func (c ChainID) Label() (string, error) {
	return hy36.TwoLetter(c.n - 1)
}

// AsCif is Label right-justified into the two-character strand field.
func (c ChainID) AsCif() (string, error) {
	lbl, err := c.Label()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%2s", lbl), nil
}

// AsSegName is the zero-padded chain number for the segment-name
// column of the simulation-tool PDB variant.
func (c ChainID) AsSegName(width int) string {
	return fmt.Sprintf("%0*d", width, c.n)
}
