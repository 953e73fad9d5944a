package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvBoardSize      = "T2048_BOARD_SIZE"
	EnvStartTiles     = "T2048_START_TILES"
	EnvWinValue       = "T2048_WIN_VALUE"
	EnvTwoProbability = "T2048_TWO_PROBABILITY"
)

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.arcade/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default.
// Environment overrides (optionally from ./.env) are applied last.
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, err := loadT2048File(customPath)
	if err != nil {
		return cfg, err
	}

	if err := LoadDotEnv(".env"); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadT2048File(customPath string) (T2048Config, error) {
	// Unspecified keys keep their defaults.
	cfg := DefaultT2048Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("t2048.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			fileCfg := DefaultT2048Config()
			if err := yaml.Unmarshal(data, &fileCfg); err == nil {
				return fileCfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/t2048.yaml"); err == nil {
		fileCfg := DefaultT2048Config()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadDotEnv loads variables from path into the environment.
// A missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with T2048_* environment variables.
func ApplyEnv(cfg *T2048Config) error {
	if err := envInt(EnvBoardSize, &cfg.Board.Size); err != nil {
		return err
	}
	if err := envInt(EnvStartTiles, &cfg.Board.StartTiles); err != nil {
		return err
	}
	if err := envInt(EnvWinValue, &cfg.Rules.WinValue); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvTwoProbability); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvTwoProbability, v, err)
		}
		cfg.Rules.TwoProbability = f
	}
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s=%q: %w", name, v, err)
	}
	*dst = n
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
