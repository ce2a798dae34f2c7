package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/coolbeans/lexcite/internal/reporterdb"
)

// cliConfig holds the defaults every subcommand falls back to when its own
// flags are left unset. Loaded once by the root command via viper, the way
// production Cobra CLIs layer a config file and environment variables
// underneath explicit flags.
type cliConfig struct {
	CurrentYear         int     `mapstructure:"current_year"`
	ReporterDBPath      string  `mapstructure:"reporter_db_path"`
	ResolveScope        string  `mapstructure:"resolve_scope"`
	PartyMatchThreshold float64 `mapstructure:"party_match_threshold"`
}

// loadConfig reads lexcite.yaml (or the file named by configPath) plus any
// LEXCITE_-prefixed environment variables, layered under hardcoded
// defaults. A missing config file is not an error: CLI flags and built-in
// defaults remain valid on a bare checkout.
func loadConfig(configPath string) (cliConfig, error) {
	v := viper.New()

	v.SetDefault("current_year", 0)
	v.SetDefault("reporter_db_path", "")
	v.SetDefault("resolve_scope", "paragraph")
	v.SetDefault("party_match_threshold", 0.8)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("lexcite")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("LEXCITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cliConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cliConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// reporterDBFromConfig returns nil when the config names no reporter
// database, which leaves Options.ReporterDB unset and the extractor falls
// back to its built-in confidence rules.
func reporterDBFromConfig(cfg cliConfig) reporterdb.ReporterDB {
	if cfg.ReporterDBPath == "" {
		return nil
	}
	return reporterdb.NewJSONReporterDB(cfg.ReporterDBPath)
}

// validateFromConfig reports whether Options.Validate should be set: the
// extractor only consults a ReporterDB when Validate is true, so a
// configured path must flip both.
func validateFromConfig(cfg cliConfig) bool {
	return cfg.ReporterDBPath != ""
}
