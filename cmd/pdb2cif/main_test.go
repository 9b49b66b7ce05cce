package main

import "testing"

var outNameCases = []struct {
	input  string
	format string
	want   string
}{
	{"design.pdb", "cif", "design.cif"},
	{"design.pdb.gz", "cif", "design.cif"},
	{"a/b/design.ent", "pdb", "a/b/design.pdb"},
	{"design.pdb", "namd", "design_namd.pdb"},
	{"noext", "cif", "noext.cif"},
	{"a.dir/noext", "cif", "a.dir/noext.cif"},
}

func TestOutName(t *testing.T) {
	for _, c := range outNameCases {
		if got := outName(c.input, c.format); got != c.want {
			t.Errorf("outName(%q, %q) wanted %q got %q",
				c.input, c.format, c.want, got)
		}
	}
}
