package main

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings of a qtest session.
type Config struct {
	File         string  `yaml:"file"`
	Echo         bool    `yaml:"echo"`
	Verbose      bool    `yaml:"verbose"`
	Descend      bool    `yaml:"descend"`
	FailRate     float64 `yaml:"fail-rate"`
	StringLength int     `yaml:"string-length"`
	Seed         uint64  `yaml:"seed"`
}

func (c Config) validate() error {
	if c.FailRate < 0 || c.FailRate > 100 {
		return fmt.Errorf("fail-rate must be between 0 and 100, got %v", c.FailRate)
	}
	if c.StringLength < 1 {
		return fmt.Errorf("string-length must be positive, got %v", c.StringLength)
	}
	return nil
}

// bindFlags defines the qtest flags on flagSet and binds each of them
// to v. Every flag can also be set with a QTEST_ environment variable
// or from a config file.
func bindFlags(v *viper.Viper, flagSet *pflag.FlagSet) error {
	flagSet.StringP("file", "f", "", "Read commands from this file instead of standard input.")
	flagSet.BoolP("echo", "e", false, "Echo each command before running it.")
	flagSet.BoolP("verbose", "v", false, "Log debugging information to standard error.")
	flagSet.Bool("descend", false, "Sort and merge in descending order.")
	flagSet.Float64("fail-rate", 0, "Percentage of allocations that fail, from 0 to 100.")
	flagSet.Int("string-length", 1024, "Maximum number of bytes copied out of a removed element.")
	flagSet.Uint64("seed", 1, "Seed for random strings and simulated allocation failures.")

	var err error
	flagSet.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}
		if bindErr := v.BindPFlag(f.Name, f); bindErr != nil {
			err = fmt.Errorf("bind flag %q: %w", f.Name, bindErr)
		}
	})
	if err != nil {
		return err
	}

	v.SetEnvPrefix("qtest")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// loadConfig reads the optional config file and decodes the merged
// flag, environment, and file settings.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
