// Package config loads fsmgen.yaml (or .yml/.json) settings for the CLI and servers.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/fsmgen/pkg/verilog"
	"gopkg.in/yaml.v3"
)

// DefaultFiles are searched, in order, when no explicit path is given.
var DefaultFiles = []string{"fsmgen.yaml", "fsmgen.yml", "fsmgen.json"}

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config is the full settings tree.
type Config struct {
	LogLevel  string          `yaml:"log_level" json:"log_level"`
	Store     StoreConfig     `yaml:"store" json:"store"`
	Server    ServerConfig    `yaml:"server" json:"server"`
	Graphviz  GraphvizConfig  `yaml:"graphviz" json:"graphviz"`
	Generator GeneratorConfig `yaml:"generator" json:"generator"`
}

// StoreConfig selects where named projects live.
type StoreConfig struct {
	Backend       string `yaml:"backend" json:"backend"`
	Dir           string `yaml:"dir" json:"dir"`
	RedisAddr     string `yaml:"redis_addr" json:"redis_addr"`
	RedisPassword string `yaml:"redis_password" json:"redis_password"`
	RedisDB       int    `yaml:"redis_db" json:"redis_db"`
	Prefix        string `yaml:"prefix" json:"prefix"`
	// TTL is a Go duration ("24h"); empty means projects never expire.
	TTL string `yaml:"ttl" json:"ttl"`
}

// ServerConfig configures `fsmgen serve`.
type ServerConfig struct {
	Port string `yaml:"port" json:"port"`
}

// GraphvizConfig configures image rendering.
type GraphvizConfig struct {
	Binary  string `yaml:"binary" json:"binary"`
	Format  string `yaml:"format" json:"format"`
	Timeout string `yaml:"timeout" json:"timeout"`
}

// GeneratorConfig renames the identifiers of the generated module.
type GeneratorConfig struct {
	Clock    string `yaml:"clock" json:"clock"`
	Reset    string `yaml:"reset" json:"reset"`
	Register string `yaml:"register" json:"register"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		LogLevel: "info",
		Store: StoreConfig{
			Backend:   BackendFile,
			Dir:       filepath.Join(".fsmgen", "projects"),
			RedisAddr: "localhost:6379",
			Prefix:    "fsmgen:project:",
		},
		Server:   ServerConfig{Port: "8080"},
		Graphviz: GraphvizConfig{Binary: "dot", Format: "svg", Timeout: "30s"},
		Generator: GeneratorConfig{
			Clock:    verilog.DefaultClock,
			Reset:    verilog.DefaultReset,
			Register: verilog.DefaultRegister,
		},
	}
}

// Load reads settings from path. With an empty path the DefaultFiles are
// searched in the working directory and a missing file yields Default().
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		for _, name := range DefaultFiles {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerations and durations.
func (c Config) Validate() error {
	var errs []error
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown store backend %q", c.Store.Backend))
	}
	if _, err := c.Store.TTLDuration(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Graphviz.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// TTLDuration parses TTL.
func (s StoreConfig) TTLDuration() (time.Duration, error) {
	return parseDuration("store.ttl", s.TTL)
}

// TimeoutDuration parses Timeout.
func (g GraphvizConfig) TimeoutDuration() (time.Duration, error) {
	return parseDuration("graphviz.timeout", g.Timeout)
}

func parseDuration(key, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// Options converts the generator section into generator options.
// Empty names keep the generator defaults.
func (g GeneratorConfig) Options() []verilog.Option {
	return []verilog.Option{
		verilog.WithClock(g.Clock),
		verilog.WithReset(g.Reset),
		verilog.WithRegister(g.Register),
	}
}
