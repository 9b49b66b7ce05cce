// pdb2cif converts a legacy-format coordinate file of a nucleic acid
// design into mmCIF, or rewrites it as a cleaned-up legacy file,
// including the simulation-tool variant.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SuperXiang/pdb2cif-1/pkg/config"
	"github.com/SuperXiang/pdb2cif-1/pkg/emit"
	"github.com/SuperXiang/pdb2cif-1/pkg/parse"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

var rootCmd = &cobra.Command{
	Use:   "pdb2cif [flags] input",
	Short: "Convert legacy PDB coordinate files of nucleic acid designs to mmCIF",
	Long: `pdb2cif reads an atomic coordinate file in the legacy fixed-column
format (plain or gzipped, hybrid-36 numbering understood) and writes
it out as mmCIF, as a plain legacy file, or as the simulation-tool
variant with segment names.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("format", "f", "cif", "output format: cif, pdb or namd")
	flags.StringP("output", "o", "", "output file (default: input name with the format's suffix)")
	flags.StringP("name", "n", "", "structure name (default: input base name)")
	flags.String("loginfo", "", `reader log destination: "stdout" or a file`)
	viper.BindPFlag("format", flags.Lookup("format"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("name", flags.Lookup("name"))
	viper.BindPFlag("loginfo", flags.Lookup("loginfo"))
}

// outName derives the output path from the input when none is given.
func outName(input, format string) string {
	base := strings.TrimSuffix(input, ".gz")
	if i := strings.LastIndexByte(base, '.'); i > strings.LastIndexByte(base, '/') {
		base = base[:i]
	}
	suffix := map[string]string{"cif": ".cif", "pdb": ".pdb", "namd": "_namd.pdb"}[format]
	return base + suffix
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	input := args[0]

	s, err := parse.ReadStructure(input, cfg.LogInfo)
	if err != nil {
		return err
	}
	if cfg.Name != "" {
		s.Name = cfg.Name
	}

	out := cfg.Output
	if out == "" {
		out = outName(input, cfg.Format)
	}
	fp, err := os.Create(out)
	if err != nil {
		return err
	}
	defer fp.Close()

	switch cfg.Format {
	case "cif":
		c := emit.CIF{Struct: s}
		err = c.WriteTo(fp)
	case "pdb":
		p := emit.PDB{Struct: s}
		err = p.WriteTo(fp)
	case "namd":
		p := emit.PDB{Struct: s, Flavour: emit.NamdPDB}
		err = p.WriteTo(fp)
	default:
		err = fmt.Errorf("unknown output format %q, want cif, pdb or namd", cfg.Format)
	}
	if err != nil {
		// a half-written document is not a valid one
		os.Remove(out)
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
