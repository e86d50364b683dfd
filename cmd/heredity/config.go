package main

import (
	"os"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment defaults for flags that are not given on the
// command line.
type Config struct {
	Format    string `envconfig:"HEREDITY_FORMAT" default:"text"`
	TablePath string `envconfig:"HEREDITY_TABLE"`
	MaxPeople int    `envconfig:"HEREDITY_MAX_PEOPLE" default:"20"`
	Parallel  int    `envconfig:"HEREDITY_PARALLEL" default:"1"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, pfx.Err(err)
	}
	return cfg, nil
}

// loadTable returns the default table, or the YAML table at path if one is
// given.
func loadTable(path string) (heredity.Table, error) {
	if path == "" {
		return heredity.DefaultTable(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return heredity.Table{}, pfx.Err(err)
	}
	defer f.Close()

	return heredity.LoadTable(f)
}
