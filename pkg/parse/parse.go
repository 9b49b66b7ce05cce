// Package parse reads a legacy-format coordinate file and builds the
// structure model the emitters work from. It is the one place that
// touches raw bytes; everything downstream sees typed records.
package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/SuperXiang/pdb2cif-1/pkg/record"
)

// parseAtomLine picks one ATOM or HETATM record apart by its fixed
// columns. Serial and residue numbers may be hybrid-36; the chain
// comes from the segment-name columns when they are filled in, else
// from the single chain column.
func parseAtomLine(line string) (record.Atom, error) {
	var a record.Atom
	if len(line) < 54 {
		return a, errors.New("record too short for coordinates")
	}
	if len(line) < 80 {
		line = line + strings.Repeat(" ", 80-len(line))
	}

	var err error
	if a.Serial, err = record.ParseNumber(line[6:11]); err != nil {
		return a, err
	}
	a.Name = record.NewAtomName(line[12:16])
	a.Res = record.NewResName(line[17:20])
	if a.ResNum, err = record.ParseNumber(line[22:26]); err != nil {
		return a, err
	}

	switch {
	case strings.TrimSpace(line[72:76]) != "":
		a.Chain, err = record.ParseChainID(line[72:76])
	case strings.TrimSpace(line[21:22]) != "":
		a.Chain, err = record.ParseChainID(line[21:22])
	default:
		err = errors.New("no chain identifier in segment or chain column")
	}
	if err != nil {
		return a, err
	}

	coord := func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}
	if a.X, err = coord(line[30:38]); err != nil {
		return a, err
	}
	if a.Y, err = coord(line[38:46]); err != nil {
		return a, err
	}
	if a.Z, err = coord(line[46:54]); err != nil {
		return a, err
	}

	a.Occupancy = 1.0
	if s := strings.TrimSpace(line[54:60]); s != "" {
		if a.Occupancy, err = strconv.ParseFloat(s, 64); err != nil {
			return a, err
		}
	}
	if s := strings.TrimSpace(line[60:66]); s != "" {
		if a.TempFac, err = strconv.ParseFloat(s, 64); err != nil {
			return a, err
		}
	}
	return a, nil
}

// structName is the default structure name: the file base with the
// compression and format suffixes removed.
func structName(fname string) string {
	s := filepath.Base(fname)
	s = strings.TrimSuffix(s, ".gz")
	if ext := filepath.Ext(s); ext != "" {
		s = strings.TrimSuffix(s, ext)
	}
	return s
}

// ReadStructure reads fname and returns the structure model.
// Uninteresting records are skipped and accounted for on the log;
// outinfo says where that log goes (see logWhere). A document-format
// input is recognised and refused, since conversion runs one way.
func ReadStructure(fname, outinfo string) (*record.Structure, error) {
	outlog, err := logWhere(outinfo)
	if err != nil {
		return nil, errors.New(err.Error() + " creating log file")
	}

	typ, err := SniffFormat(fname)
	if err != nil {
		return nil, err
	}
	if typ == FmtCIF {
		return nil, errors.New(fname + ": document-format input, conversion runs legacy to document only")
	}

	data, giveBack, err := slurp(fname)
	if err != nil {
		return nil, err
	}
	defer giveBack()

	s := &record.Structure{Name: structName(fname)}
	nskip := 0
	scnnr := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scnnr.Scan(); n++ {
		line := scnnr.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		head := line
		if len(head) > 6 {
			head = head[:6]
		}
		switch strings.TrimSpace(head) {
		case "ATOM", "HETATM":
			a, e2 := parseAtomLine(line)
			if e2 != nil {
				return nil, &lineError{fname: fname, n: n, inline: line, err: e2}
			}
			s.Atoms = append(s.Atoms, a)
		case "TER", "END", "ENDMDL", "MODEL":
			// structural punctuation, nothing to keep
		default:
			nskip++
		}
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	if len(s.Atoms) == 0 {
		return nil, fmt.Errorf("%s: no atom records found", fname)
	}
	outlog.Println(fname, len(s.Atoms), "atoms,", nskip, "records skipped")
	return s, nil
}
