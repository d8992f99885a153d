// Package config loads runtime settings from .env, LUNCH_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/selector"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/source"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LUNCH"

// Keys shared by viper, cobra flags and environment variables
// (LUNCH_ + upper-cased key with '-' and '.' turned into '_').
const (
	KeySource      = "source"
	KeyStrict      = "strict"
	KeyAddr        = "addr"
	KeyLogLevel    = "log-level"
	KeyLogJSON     = "log-json"
	KeyReload      = "reload"
	KeyLoadTimeout = "load-timeout"
	KeyCORSOrigins = "cors-origins"
	KeyDrawSize    = "draw-size"
	KeyS3Endpoint  = "s3.endpoint"
	KeyS3Region    = "s3.region"
	KeyS3AccessKey = "s3.access-key"
	KeyS3SecretKey = "s3.secret-key"
)

// Config keeps runtime settings.
type Config struct {
	// Source is the workbook location: a path, an http(s) URL or s3://bucket/key.
	Source string
	Strict bool

	Addr        string
	CORSOrigins []string
	// ReloadSpec is a cron spec for reloading the workbook; empty disables reloads.
	ReloadSpec  string
	LoadTimeout time.Duration
	DrawSize    int

	LogLevel string
	LogJSON  bool

	S3 source.S3Config
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySource, source.DefaultLocation)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyReload, "")
	v.SetDefault(KeyLoadTimeout, 30*time.Second)
	v.SetDefault(KeyCORSOrigins, "http://localhost:3000,http://localhost:5173")
	v.SetDefault(KeyDrawSize, selector.DefaultSize)
	v.SetDefault(KeyS3Endpoint, "")
	v.SetDefault(KeyS3Region, "")
	v.SetDefault(KeyS3AccessKey, "")
	v.SetDefault(KeyS3SecretKey, "")
	return v
}

// LoadEnvFile loads variables from a .env file into the process environment.
// A missing default file is fine; a missing explicitly named one is not.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Load reads and validates the configuration from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Source:      strings.TrimSpace(v.GetString(KeySource)),
		Strict:      v.GetBool(KeyStrict),
		Addr:        strings.TrimSpace(v.GetString(KeyAddr)),
		CORSOrigins: splitList(v.GetString(KeyCORSOrigins)),
		ReloadSpec:  strings.TrimSpace(v.GetString(KeyReload)),
		LoadTimeout: v.GetDuration(KeyLoadTimeout),
		DrawSize:    v.GetInt(KeyDrawSize),
		LogLevel:    strings.TrimSpace(v.GetString(KeyLogLevel)),
		LogJSON:     v.GetBool(KeyLogJSON),
		S3: source.S3Config{
			Endpoint:  strings.TrimSpace(v.GetString(KeyS3Endpoint)),
			Region:    strings.TrimSpace(v.GetString(KeyS3Region)),
			AccessKey: strings.TrimSpace(v.GetString(KeyS3AccessKey)),
			SecretKey: strings.TrimSpace(v.GetString(KeyS3SecretKey)),
		},
	}

	if cfg.Source == "" {
		cfg.Source = source.DefaultLocation
	}
	if cfg.LoadTimeout <= 0 {
		return cfg, fmt.Errorf("%s must be positive, got %s", KeyLoadTimeout, cfg.LoadTimeout)
	}
	if cfg.DrawSize < 1 {
		return cfg, fmt.Errorf("%s must be at least 1, got %d", KeyDrawSize, cfg.DrawSize)
	}
	if cfg.ReloadSpec != "" {
		if _, err := cron.ParseStandard(cfg.ReloadSpec); err != nil {
			return cfg, fmt.Errorf("invalid %s spec %q: %w", KeyReload, cfg.ReloadSpec, err)
		}
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey == "" {
		return cfg, fmt.Errorf("%s is set but %s is empty", KeyS3AccessKey, KeyS3SecretKey)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
