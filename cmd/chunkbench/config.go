package main

import (
	"os"

	"github.com/naoina/toml"
)

// benchConfig is the on-disk shape of a chunkbench run, loadable via
// --config so a workload can be reproduced without retyping every flag
// (the same toml-config convention geth's own config file loading
// follows for its much larger configuration surface).
type benchConfig struct {
	Items     int    `toml:"items"`
	ItemCap   int    `toml:"item_cap"`
	BranchCap int    `toml:"branch_cap"`
	Workload  string `toml:"workload"`
}

func defaultConfig() benchConfig {
	return benchConfig{
		Items:     100000,
		ItemCap:   32,
		BranchCap: 32,
		Workload:  "pushback",
	}
}

func loadConfig(path string) (benchConfig, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
