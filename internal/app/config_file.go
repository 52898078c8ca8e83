package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Every field is
// optional; explicit flags take precedence over file values.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`

	Method    string `yaml:"method" json:"method"`
	Sentences int    `yaml:"sentences" json:"sentences"`
	Words     int    `yaml:"words" json:"words"`

	Report    bool `yaml:"report" json:"report"`
	EnablePDF bool `yaml:"enablePDF" json:"enablePDF"`
	Simple    bool `yaml:"simple" json:"simple"`
	Verbose   bool `yaml:"verbose" json:"verbose"`
}

// LoadFileConfig reads a YAML or JSON configuration file. Format is
// chosen by extension; anything that is not .json parses as YAML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &fc); err != nil {
			return fc, fmt.Errorf("parse config %s: %w", path, err)
		}
		return fc, nil
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// MergeFileConfig fills unset cfg fields from fc. Boolean file values
// can only switch features on; flags already set stay set.
func MergeFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.Method == "" {
		cfg.Method = fc.Method
	}
	if cfg.Sentences == 0 {
		cfg.Sentences = fc.Sentences
	}
	if cfg.TargetWords == 0 {
		cfg.TargetWords = fc.Words
	}
	cfg.WriteReport = cfg.WriteReport || fc.Report
	cfg.EnablePDF = cfg.EnablePDF || fc.EnablePDF
	cfg.ForceSimple = cfg.ForceSimple || fc.Simple
	cfg.Verbose = cfg.Verbose || fc.Verbose
}
