// SPDX-License-Identifier: MIT

// Package config resolves CLI defaults from the environment, optionally
// seeded from a .env file found in the working directory or its parents.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/matriks/csvload"
)

// Environment variable names.
const (
	EnvDelimiter       = "MATRIKS_DELIMITER"
	EnvImpute          = "MATRIKS_IMPUTE"
	EnvNormalize       = "MATRIKS_NORMALIZE"
	EnvSparseThreshold = "MATRIKS_SPARSE_THRESHOLD"
	EnvOutputDir       = "MATRIKS_OUTPUT_DIR"
	EnvLogLevel        = "MATRIKS_LOG_LEVEL"
)

// EnvFileDepth bounds the upward search for .env.
const EnvFileDepth = 5

// Config holds the CLI defaults. Flags override every field.
type Config struct {
	Delimiter       rune
	Impute          csvload.Impute
	Normalize       csvload.Normalize
	SparseThreshold float64
	OutputDir       string
	LogLevel        slog.Level
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Delimiter:       csvload.DefaultDelimiter,
		Impute:          csvload.DefaultImpute,
		Normalize:       csvload.DefaultNormalize,
		SparseThreshold: csvload.DefaultSparseThreshold,
		OutputDir:       ".",
		LogLevel:        slog.LevelInfo,
	}
}

// Load reads a .env file if one exists, then the environment.
// Variables already set in the environment win over the .env file.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv; unset variables keep their defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	c := Default()

	if v := getenv(EnvDelimiter); v != "" {
		r, err := csvload.ParseDelimiter(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvDelimiter, err)
		}
		c.Delimiter = r
	}
	if v := getenv(EnvImpute); v != "" {
		s, err := csvload.ParseImpute(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvImpute, err)
		}
		c.Impute = s
	}
	if v := getenv(EnvNormalize); v != "" {
		n, err := csvload.ParseNormalize(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvNormalize, err)
		}
		c.Normalize = n
	}
	if v := getenv(EnvSparseThreshold); v != "" {
		t, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(t) || t < 0 || t > 1 {
			return nil, fmt.Errorf("config: %s=%q: want a number in [0,1]", EnvSparseThreshold, v)
		}
		c.SparseThreshold = t
	}
	if v := getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
	}

	return c, nil
}

// loadEnvFile walks up from the working directory looking for .env.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < EnvFileDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
