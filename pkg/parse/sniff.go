// Decide what format an input file is in. Maybe the file name says
// it, maybe we have to peek inside.

package parse

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Format is what the sniffer thinks a file is.
type Format byte

const (
	FmtUnknown Format = iota
	FmtPDB
	FmtCIF
)

// prefixEq says if two words agree over the length of the shorter.
func prefixEq(s, t string) bool {
	l := len(s)
	if len(t) < l {
		l = len(t)
	}
	return s[:l] == t[:l]
}

// lookInFile opens a file and guesses its format from the leading
// keywords. We cannot trust more than the first few thousand lines
// to contain one.
func lookInFile(fname string) (Format, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "CRYST1", "SEQRES", "HETATM", "ATOM"}
	cifWords := []string{"data_", "_entry.id", "loop_"}
	fp, err := os.Open(fname)
	if err != nil {
		return FmtUnknown, err
	}
	defer fp.Close()

	rdr, err := wrapMaybe(fp)
	if err != nil {
		return FmtUnknown, errors.New("reading " + fname + " " + err.Error())
	}

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(bufio.NewReader(rdr))
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range cifWords {
			if prefixEq(s, w) {
				return FmtCIF, nil
			}
		}
		for _, w := range pdbWords {
			if prefixEq(s, w) {
				return FmtPDB, nil
			}
		}
	}
	return FmtUnknown, errors.New(fname + ": cannot recognise format")
}

// SniffFormat decides the format of a file, by name if the suffix is
// informative, otherwise by peeking inside. We cannot use the
// library to get the suffix since it would return .gz for a.pdb.gz.
func SniffFormat(fname string) (Format, error) {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:])
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return FmtPDB, nil
		} else if strings.Contains(s, "cif") {
			return FmtCIF, nil
		}
	}
	return lookInFile(fname)
}
