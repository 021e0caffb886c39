// Package config resolves the generator's settings from the environment and
// an optional .env file.
//
// Precedence, highest first: process environment, the .env file, defaults.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/ellers/render"
	"github.com/sirupsen/logrus"
)

// Environment keys.
const (
	EnvSeed     = "ELLERS_SEED"
	EnvStyle    = "ELLERS_STYLE"
	EnvVerify   = "ELLERS_VERIFY"
	EnvLogLevel = "ELLERS_LOG_LEVEL"
)

// ErrInvalidConfig indicates an unreadable .env file or a malformed value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Seed     int64        // random seed; meaningful only when SeedSet
	SeedSet  bool         // whether a seed was configured
	Style    render.Style // output layout
	Verify   bool         // audit every maze while it streams
	LogLevel logrus.Level // diagnostics level on stderr
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Style:    render.StyleSets,
		LogLevel: logrus.WarnLevel,
	}
}

// Load resolves a Config. envFile names a .env file to read; "" skips it.
// The file never overrides variables already set in the process, and it is
// read without modifying the process environment.
func Load(envFile string) (Config, error) {
	var file map[string]string
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, envFile, err)
		}
		file = m
	}
	env := source{file: file}

	cfg := Default()
	var err error
	if v, ok := env.lookup(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, invalid(EnvSeed, v, err)
		}
		cfg.SeedSet = true
	}
	if cfg.Style, err = render.ParseStyle(env.getWithDefault(EnvStyle, cfg.Style.String())); err != nil {
		return Config{}, invalid(EnvStyle, env.getWithDefault(EnvStyle, ""), err)
	}
	if v, ok := env.lookup(EnvVerify); ok {
		if cfg.Verify, err = strconv.ParseBool(v); err != nil {
			return Config{}, invalid(EnvVerify, v, err)
		}
	}
	if cfg.LogLevel, err = logrus.ParseLevel(env.getWithDefault(EnvLogLevel, cfg.LogLevel.String())); err != nil {
		return Config{}, invalid(EnvLogLevel, env.getWithDefault(EnvLogLevel, ""), err)
	}

	return cfg, nil
}

// Fields returns the settings as log fields.
func (c Config) Fields() logrus.Fields {
	f := logrus.Fields{
		"style":     c.Style.String(),
		"verify":    c.Verify,
		"log_level": c.LogLevel.String(),
	}
	if c.SeedSet {
		f["seed"] = c.Seed
	}
	return f
}

// source looks keys up in the process environment, then in the .env values.
type source struct {
	file map[string]string
}

func (s source) lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	v, ok := s.file[key]
	return v, ok
}

// getWithDefault returns the value of key or def when it is not set.
func (s source) getWithDefault(key, def string) string {
	if v, ok := s.lookup(key); ok {
		return v
	}
	return def
}

func invalid(key, value string, err error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, value, err)
}
