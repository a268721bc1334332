// Package config loads engine configuration from YAML: datatype aliases,
// the aggregate-function allowlist, and target-reasoner selection.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig configures a ruleforge engine instance. The zero value is a
// legal, fully functional default.
type EngineConfig struct {
	// TargetReasoner names the pluggable backend to construct. Only
	// cmd/ruleforge-cli reads it, and it accepts "" or "noop" (both select
	// the noop backend); any other name makes the CLI exit.
	TargetReasoner string `yaml:"targetReasoner"`

	// DatatypeAliases maps additional lexical names to the canonical
	// datatype names the value package understands (e.g. "int32" -> "int").
	DatatypeAliases map[string]string `yaml:"datatypeAliases"`

	// AggregateFunctions lists aggregate-function names read from the
	// config file. Nothing in this module consults it: sqwrl.Result always
	// validates against its fixed set (min, max, sum, avg, count,
	// count-distinct).
	AggregateFunctions []string `yaml:"aggregateFunctions"`
}

// Loader reads engine configuration from a YAML file on disk.
type Loader struct {
	Path string
}

// Load reads and parses the configured YAML file. A blank Path yields the
// zero-value EngineConfig without touching the filesystem, mirroring
// korel's Loader defaulting to empty components when paths are blank.
func (l Loader) Load() (EngineConfig, error) {
	if l.Path == "" {
		return EngineConfig{}, nil
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return EngineConfig{}, err
	}

	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, err
	}

	return cfg, nil
}
