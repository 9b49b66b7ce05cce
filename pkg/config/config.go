// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd). Flags bound by the command line take
// precedence, then an optional settings file, then the defaults.
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of settings from
// .pdb2cif.yaml and those bound from the command line.
type Config struct {
	// output format: cif, pdb or namd
	Format string `mapstructure:"format"`

	// output path; empty means derive it from the input name
	Output string `mapstructure:"output"`

	// structure name override; empty means the input base name
	Name string `mapstructure:"name"`

	// where the reader log goes: "", "stdout" or a file path
	LogInfo string `mapstructure:"loginfo"`
}

func setDefaults() {
	viper.SetDefault("format", "cif")
	viper.SetDefault("output", "")
	viper.SetDefault("name", "")
	viper.SetDefault("loginfo", "")
}

// New reads the settings into a Config. A missing settings file is
// fine; a file that cannot be unmarshalled is not.
func New() *Config {
	setDefaults()
	viper.SetConfigName(".pdb2cif")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
	viper.SetEnvPrefix("PDB2CIF")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}
	return c
}
