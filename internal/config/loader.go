package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "night.yaml"

// LoadNight loads the night configuration.
// Search order: customPath -> ~/.nightwatch/night.yaml -> ./configs/night.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file may set only the keys
// it wants to change. The result is validated before it is returned.
func LoadNight(customPath string) (NightConfig, error) {
	cfg, _, err := LoadNightWithSource(customPath)
	return cfg, err
}

// LoadNightWithSource is LoadNight that also reports where the config came
// from ("embedded" for the built-in default).
func LoadNightWithSource(customPath string) (NightConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return NightConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return NightConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory, then local configs directory.
	// Unreadable or malformed files there are skipped, like a missing file.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return validated(cfg, path)
		}
	}

	cfg, err := decodeEmbedded()
	if err != nil {
		return DefaultNightConfig(), "builtin", nil
	}
	return validated(cfg, "embedded")
}

// Marshal renders a config as YAML.
func Marshal(cfg NightConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

func decode(data []byte) (NightConfig, error) {
	cfg, err := decodeEmbedded()
	if err != nil {
		cfg = DefaultNightConfig()
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NightConfig{}, err
	}
	return cfg, nil
}

func decodeEmbedded() (NightConfig, error) {
	var cfg NightConfig
	if err := yaml.Unmarshal(defaultNightYAML, &cfg); err != nil {
		return NightConfig{}, err
	}
	return cfg, nil
}

func validated(cfg NightConfig, source string) (NightConfig, string, error) {
	if err := cfg.Validate(); err != nil {
		return NightConfig{}, "", fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, source, nil
}

// userConfigPath returns ~/.nightwatch/<name>, or "" if home is unknown.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nightwatch", name)
}
