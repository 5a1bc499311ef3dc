// Package config loads the converter's settings from the environment and an
// optional .env file. Command-line flags override what is loaded here.
package config

import (
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "RPG_CONVERTER_"

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the full application configuration
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// OutputDir receives one folder per adversary
	OutputDir string `env:"OUTPUT_DIR" envDefault:"daggerheart_import_files"`
	// Workers bounds concurrent conversions in a batch
	Workers int `env:"WORKERS" envDefault:"4"`
	// UserID is the Foundry user written to lastModifiedBy
	UserID string `env:"USER_ID"`

	Redis RedisConfig `envPrefix:"REDIS_"`
	OCR   OCRConfig   `envPrefix:"OCR_"`
	DND5E DND5EConfig `envPrefix:"DND5E_"`

	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`
	// GRPCAddr is where the client subcommand dials
	GRPCAddr string `env:"GRPC_ADDR" envDefault:"localhost:50051"`
}

// RedisConfig configures the OCR text cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB"        envDefault:"0"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"168h"`
}

// OCRConfig configures the tesseract engine
type OCRConfig struct {
	Binary   string `env:"BINARY"   envDefault:"tesseract"`
	Language string `env:"LANGUAGE" envDefault:"eng"`
}

// DND5EConfig configures the SRD monster API client
type DND5EConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"30s"`
}

// Load reads the given .env files, or ./.env when none are named, then parses
// the process environment. Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	return Parse(nil)
}

// Parse builds a Config from environ, or from the process environment when
// environ is nil.
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, err := c.Level(); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		vb.Fieldf("LogFormat", "must be %s or %s, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}
	if c.OutputDir == "" {
		vb.RequiredField("OutputDir")
	}
	if c.Workers < 0 {
		vb.Fieldf("Workers", "must not be negative, got %d", c.Workers)
	}
	if c.Redis.CacheTTL < 0 {
		vb.Field("Redis.CacheTTL", "must not be negative")
	}
	if c.DND5E.Timeout < 0 {
		vb.Field("DND5E.Timeout", "must not be negative")
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "out of range: %d", c.GRPCPort)
	}

	return vb.Build()
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid log level")
	}
	return level, nil
}

// NewLogger builds the slog logger described by LogLevel and LogFormat
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
