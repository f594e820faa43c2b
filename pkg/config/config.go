/*
Package config manages TOML configuration for the bindict server and CLI.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire configuration structure.
type Config struct {
	Server ServerConfig `toml:"server"`
	Edits  EditsConfig  `toml:"edits"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has server-related limits.
type ServerConfig struct {
	MaxPredictions int `toml:"max_predictions"`
	MaxCorrections int `toml:"max_corrections"`
	MaxWordLength  int `toml:"max_word_length"`
}

// EditsConfig holds the alphabet setting for the edit-distance-1
// corrector. It is loaded and saved with the rest of the config;
// bindict.Dictionary.Corrections does not read it and always uses
// edits.DefaultAlphabet.
type EditsConfig struct {
	Alphabet string `toml:"alphabet"`
}

// CliConfig holds CLI defaults.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// DefaultConfig returns a Config populated with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxPredictions: 8,
			MaxCorrections: 8,
			MaxWordLength:  48,
		},
		Edits: EditsConfig{
			Alphabet: "abcdefghijklmnopqrstuvwxyz",
		},
		CLI: CliConfig{
			DefaultLimit: 8,
		},
	}
}

// GetDefaultConfigPath returns ~/.config/bindict/config.toml, falling back
// to the current directory if the home directory can't be determined.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return "bindict-config.toml", nil
	}
	return filepath.Join(homeDir, ".config", "bindict", "config.toml"), nil
}

// InitConfig loads config from configPath, creating it with defaults if it
// doesn't exist yet. Any failure along the way falls back to built-in
// defaults rather than propagating an error: a missing or broken config
// file should never keep the dictionary from answering queries.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig parses a TOML file into a Config seeded with defaults, so
// that a file which only overrides a few fields still yields a complete
// Config. If decoding into Config fails, it falls back to a partial
// recovery pass that keeps each recognized field whose value has the
// expected type.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return tryPartialParse(configPath)
	}
	return cfg, nil
}

// tryPartialParse re-reads the whole file as a generic map and layers each
// recognized field whose value has the expected type over the defaults. If
// the file is not valid TOML at all, every field keeps its default.
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, nil
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg, nil
	}

	if section, ok := sectionOf(raw, "server"); ok {
		extractServerConfig(section, &cfg.Server)
	}
	if section, ok := sectionOf(raw, "edits"); ok {
		extractEditsConfig(section, &cfg.Edits)
	}
	if section, ok := sectionOf(raw, "cli"); ok {
		extractCliConfig(section, &cfg.CLI)
	}
	return cfg, nil
}

func sectionOf(raw map[string]any, name string) (map[string]any, bool) {
	v, ok := raw[name]
	if !ok {
		return nil, false
	}
	section, ok := v.(map[string]any)
	return section, ok
}

func extractInt(data map[string]any, key string) (int, bool) {
	v, ok := data[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func extractString(data map[string]any, key string) (string, bool) {
	v, ok := data[key].(string)
	return v, ok
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if v, ok := extractInt(data, "max_predictions"); ok {
		server.MaxPredictions = v
	}
	if v, ok := extractInt(data, "max_corrections"); ok {
		server.MaxCorrections = v
	}
	if v, ok := extractInt(data, "max_word_length"); ok {
		server.MaxWordLength = v
	}
}

func extractEditsConfig(data map[string]any, edits *EditsConfig) {
	if v, ok := extractString(data, "alphabet"); ok {
		edits.Alphabet = v
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if v, ok := extractInt(data, "default_limit"); ok {
		cli.DefaultLimit = v
	}
}

// SaveConfig writes cfg to configPath as TOML.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(cfg)
}
