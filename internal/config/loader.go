package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// Load loads the Neon Dodge configuration and reports where it came from.
// Search order: customPath -> ~/.neondodge/config.{yaml,toml} ->
// ./configs/neondodge.{yaml,toml} -> embedded default.
// Files are decoded over the defaults, so partial files are fine.
// A custom path that cannot be read or parsed is an error; discovered files
// that fail to parse are skipped.
func Load(customPath string) (NeonConfig, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	return Embedded(), SourceEmbedded, nil
}

// LoadFile decodes a single YAML or TOML file over the defaults and validates it.
// The format is chosen by file extension; anything but .toml is read as YAML.
func LoadFile(path string) (NeonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NeonConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}

	cfg, err := Decode(data, format)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format ("yaml" or "toml") over the embedded defaults.
// Weight tables present in data replace the default tables rather than merging with them.
func Decode(data []byte, format string) (NeonConfig, error) {
	base := Embedded()
	cfg := base
	cfg.Spawn.Categories = nil
	cfg.Spawn.Orbs = nil

	var err error
	switch format {
	case "toml":
		_, err = toml.Decode(string(data), &cfg)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return base, err
	}

	if cfg.Spawn.Categories == nil {
		cfg.Spawn.Categories = base.Spawn.Categories
	}
	if cfg.Spawn.Orbs == nil {
		cfg.Spawn.Orbs = base.Spawn.Orbs
	}
	return cfg, nil
}

// Embedded returns the configuration stored in defaults/neondodge.yaml.
func Embedded() NeonConfig {
	var cfg NeonConfig
	if err := yaml.Unmarshal(defaultNeonYAML, &cfg); err != nil {
		return DefaultNeonConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg NeonConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".neondodge")
		paths = append(paths, filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.toml"))
	}
	return append(paths,
		filepath.Join("configs", "neondodge.yaml"),
		filepath.Join("configs", "neondodge.toml"),
	)
}
