package app

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.InputPath == "" {
		cfg.InputPath = os.Getenv("SUMMARY_INPUT")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("SUMMARY_OUTPUT")
	}
	if cfg.Method == "" {
		cfg.Method = strings.ToLower(strings.TrimSpace(os.Getenv("SUMMARY_METHOD")))
	}
	if cfg.Sentences == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("SUMMARY_SENTENCES"))); err == nil && n > 0 {
			cfg.Sentences = n
		}
	}
	if cfg.TargetWords == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("SUMMARY_WORDS"))); err == nil && n > 0 {
			cfg.TargetWords = n
		}
	}
}
