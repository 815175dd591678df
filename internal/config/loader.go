package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// SourceEmbedded names the configuration compiled into the binary.
const SourceEmbedded = "embedded"

// ParseFormat maps a user supplied name ("yaml", "yml", "toml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown config format %q (want yaml or toml)", name)
	}
}

// FormatForPath picks the decoder from a file extension; YAML is the default.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.subkiller/config.{yaml,toml} ->
// ./configs/subkiller.{yaml,toml} -> embedded default.
// Files only need to set the fields they change; the rest keep defaults.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), "", err
		}
		return cfg, customPath, nil
	}

	candidates := make([]string, 0, 4)
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	candidates = append(candidates,
		filepath.Join("configs", "subkiller.yaml"),
		filepath.Join("configs", "subkiller.toml"),
	)

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return Default(), "", err
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultYAML, FormatYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads, decodes and validates one configuration file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatForPath(path))
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a configuration document on top of the defaults and validates it.
func Decode(data []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), err
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Default(), err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Encode writes the configuration in the requested format.
func Encode(w io.Writer, cfg Config, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	}
	return nil
}

// userConfigDir returns ~/.subkiller, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".subkiller")
}
