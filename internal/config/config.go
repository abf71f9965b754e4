// Package config loads the storefront's runtime configuration from a .env
// file, the process environment and explicit overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

const (
	defaultEnvFile      = ".env"
	defaultPort         = "8080"
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 120 * time.Second
	defaultSiteURL      = "https://www.megjoni.pl"
	defaultLocale       = "pl-PL"
	defaultStylesheet   = "/style.css"
	defaultPublicDir    = "public"
	defaultLogLevel     = "info"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server   ServerConfig
	Site     SiteConfig
	Assets   AssetsConfig
	Catalog  CatalogConfig
	Metrics  MetricsConfig
	LogLevel string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Addr is the listen address for net/http.
func (s ServerConfig) Addr() string { return ":" + s.Port }

// SiteConfig holds the values rendered into every document.
type SiteConfig struct {
	URL           string
	Locale        string
	Stylesheet    string
	CopyrightYear int
}

// AssetsConfig points at the static files served next to the pages.
type AssetsConfig struct {
	PublicDir string
}

// CatalogConfig selects the placeholder product listings. An empty File
// means the bundled listings.
type CatalogConfig struct {
	File string
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
	now          func() time.Time
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// WithClock sets the clock used for the default copyright year.
func WithClock(now func() time.Time) Option {
	return func(o *loaderOptions) {
		o.now = now
	}
}

// Load assembles the configuration with precedence .env < OS env < explicit map.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	port := stringWithDefault(lookup, "MEGJONI_WEB_PORT", "")
	if port == "" {
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  durationWithDefault(lookup, "MEGJONI_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "MEGJONI_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "MEGJONI_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Site: SiteConfig{
			URL:           strings.TrimRight(stringWithDefault(lookup, "MEGJONI_SITE_URL", defaultSiteURL), "/"),
			Locale:        stringWithDefault(lookup, "MEGJONI_SITE_LOCALE", defaultLocale),
			Stylesheet:    stringWithDefault(lookup, "MEGJONI_STYLESHEET", defaultStylesheet),
			CopyrightYear: intWithDefault(lookup, "MEGJONI_COPYRIGHT_YEAR", options.now().Year()),
		},
		Assets: AssetsConfig{
			PublicDir: stringWithDefault(lookup, "MEGJONI_PUBLIC_DIR", defaultPublicDir),
		},
		Catalog: CatalogConfig{
			File: stringWithDefault(lookup, "MEGJONI_CATALOG_FILE", ""),
		},
		Metrics: MetricsConfig{
			Enabled: boolWithDefault(lookup, "MEGJONI_METRICS_ENABLED", true),
		},
		LogLevel: strings.ToLower(stringWithDefault(lookup, "MEGJONI_LOG_LEVEL", defaultLogLevel)),
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var invalid []string

	if n, err := strconv.Atoi(cfg.Server.Port); err != nil || n <= 0 || n > 65535 {
		invalid = append(invalid, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		invalid = append(invalid, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		invalid = append(invalid, "Server.WriteTimeout")
	}
	if !strings.HasPrefix(cfg.Site.URL, "http://") && !strings.HasPrefix(cfg.Site.URL, "https://") {
		invalid = append(invalid, "Site.URL")
	}
	if _, err := language.Parse(cfg.Site.Locale); err != nil {
		invalid = append(invalid, "Site.Locale")
	}
	if cfg.Site.CopyrightYear <= 0 {
		invalid = append(invalid, "Site.CopyrightYear")
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		invalid = append(invalid, "LogLevel")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	if _, err := os.Stat(absPath); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	values, err := godotenv.Read(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
