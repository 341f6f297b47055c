package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
const (
	SourceEmbedded  = "embedded"
	SourceHardcoded = "hardcoded"
)

// LoadOrbit loads Orbit configuration.
// Search order: customPath -> ~/.orbit/configs/orbit.yaml -> ./configs/orbit.yaml -> embedded default
func LoadOrbit(customPath string) (OrbitConfig, error) {
	cfg, _, err := ResolveOrbit(customPath)
	return cfg, err
}

// ResolveOrbit is LoadOrbit that also reports which source won: a file path,
// SourceEmbedded or SourceHardcoded.
// Values missing from a file keep their defaults.
func ResolveOrbit(customPath string) (OrbitConfig, string, error) {
	// Try custom path first. Unlike the search path, a bad custom file is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return OrbitConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseOrbit(data)
		if err != nil {
			return OrbitConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath("orbit.yaml"),
		filepath.Join("configs", "orbit.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseOrbit(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseOrbit(defaultOrbitYAML)
	if err != nil {
		return DefaultOrbitConfig(), SourceHardcoded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseOrbit decodes YAML over the hardcoded defaults. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func parseOrbit(data []byte) (OrbitConfig, error) {
	cfg := DefaultOrbitConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return OrbitConfig{}, err
	}
	return cfg, nil
}

// MarshalOrbit renders a config as YAML.
func MarshalOrbit(cfg OrbitConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbit", "configs", filename)
}

// ApplyOrbitPreset modifies the config based on a difficulty preset.
func ApplyOrbitPreset(cfg *OrbitConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives += 2
		cfg.Bird.HitRadius *= 0.8
	case DifficultyHard:
		cfg.Rules.Lives = max(1, cfg.Rules.Lives-1)
		cfg.Bird.HitRadius *= 1.2
	}
}
