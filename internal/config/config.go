// Package config resolves process-wide defaults for pptxswap. The resolved
// Config is passed explicitly into the batch driver; nothing here is read as
// ambient state once a run starts.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when --config is not
// given.
const DefaultFile = ".pptxswap.yaml"

// Config carries run defaults. Flags override PPTXSWAP_* environment
// variables, which override config file values, which override the
// built-in defaults.
type Config struct {
	// BackupSuffix is appended to an original's filename for the
	// pre-replacement copy.
	BackupSuffix string `yaml:"backup_suffix"`
	// MatchBy is the default criterion for replace.
	MatchBy string `yaml:"match_by"`
	// Recursive controls whether directory walks descend into
	// subdirectories.
	Recursive bool `yaml:"recursive"`
	// Verbose enables structured diagnostics on stderr.
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BackupSuffix: ".backup",
		MatchBy:      "hash",
		Recursive:    true,
	}
}

// Load resolves configuration from the optional YAML file at path (or
// DefaultFile when path is empty) and PPTXSWAP_* environment overrides.
// A missing default file is not an error; a missing explicit --config path
// is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file, defaults apply.
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PPTXSWAP_BACKUP_SUFFIX"); v != "" {
		cfg.BackupSuffix = v
	}
	if v := os.Getenv("PPTXSWAP_MATCH_BY"); v != "" {
		cfg.MatchBy = v
	}
	if v := os.Getenv("PPTXSWAP_RECURSIVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Recursive = b
		}
	}
	if v := os.Getenv("PPTXSWAP_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}
