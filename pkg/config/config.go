/*
Package config manages TOML config for dotserve services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/sixdot/dotserve/internal/utils"
	"github.com/sixdot/dotserve/pkg/suggest"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Match  MatchConfig  `toml:"match"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit      int `toml:"max_limit"`
	MinPrefix     int `toml:"min_prefix"`
	MaxPrefix     int `toml:"max_prefix"`
	MaxQueryCells int `toml:"max_query_cells"`
}

// MatchConfig holds pattern matching options.
type MatchConfig struct {
	DeletionCost int `toml:"deletion_cost"`
	DefaultLimit int `toml:"default_limit"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	Noisy        bool `toml:"noisy"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "dotserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "dotserve")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/dotserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:      64,
			MinPrefix:     1,
			MaxPrefix:     60,
			MaxQueryCells: 24,
		},
		Match: MatchConfig{
			DeletionCost: suggest.DefaultDeletionCost,
			DefaultLimit: suggest.DefaultLimit,
		},
		Dict: DictConfig{
			Path: "",
		},
		CLI: CliConfig{
			DefaultLimit: suggest.DefaultLimit,
			Noisy:        false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Parse failures fall back to the
// builtin defaults with a warning rather than aborting startup.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		log.Warnf("Failed to parse config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	config.Normalize()
	return config, nil
}

// Normalize clamps out-of-range values back to the defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()
	if c.Match.DeletionCost < 1 {
		log.Warnf("deletion_cost %d out of range, using %d", c.Match.DeletionCost, defaults.Match.DeletionCost)
		c.Match.DeletionCost = defaults.Match.DeletionCost
	}
	if c.Match.DefaultLimit < 1 {
		c.Match.DefaultLimit = defaults.Match.DefaultLimit
	}
	if c.Server.MaxLimit < 1 {
		c.Server.MaxLimit = defaults.Server.MaxLimit
	}
	if c.Server.MaxQueryCells < 1 {
		c.Server.MaxQueryCells = defaults.Server.MaxQueryCells
	}
	if c.Server.MinPrefix < 1 {
		c.Server.MinPrefix = defaults.Server.MinPrefix
	}
	if c.Server.MaxPrefix < c.Server.MinPrefix {
		c.Server.MaxPrefix = defaults.Server.MaxPrefix
	}
	if c.CLI.DefaultLimit < 1 {
		c.CLI.DefaultLimit = defaults.CLI.DefaultLimit
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the config values and saves to file
func (c *Config) Update(configPath string, maxLimit, deletionCost, maxQueryCells *int) error {
	if maxLimit != nil {
		c.Server.MaxLimit = *maxLimit
	}
	if deletionCost != nil {
		c.Match.DeletionCost = *deletionCost
	}
	if maxQueryCells != nil {
		c.Server.MaxQueryCells = *maxQueryCells
	}
	c.Normalize()
	return SaveConfig(c, configPath)
}
