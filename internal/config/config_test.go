package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-converter/internal/config"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Parse(map[string]string{})
	s.Require().NoError(err)

	s.Equal("info", cfg.LogLevel)
	s.Equal(config.LogFormatText, cfg.LogFormat)
	s.Equal("daggerheart_import_files", cfg.OutputDir)
	s.Equal(4, cfg.Workers)
	s.Empty(cfg.UserID)
	s.Empty(cfg.Redis.Addr)
	s.Equal(7*24*time.Hour, cfg.Redis.CacheTTL)
	s.Equal("tesseract", cfg.OCR.Binary)
	s.Equal("eng", cfg.OCR.Language)
	s.Equal(30*time.Second, cfg.DND5E.Timeout)
	s.Equal(50051, cfg.GRPCPort)
	s.Equal("localhost:50051", cfg.GRPCAddr)
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := config.Parse(map[string]string{
		"RPG_CONVERTER_LOG_LEVEL":       "debug",
		"RPG_CONVERTER_LOG_FORMAT":      "json",
		"RPG_CONVERTER_WORKERS":         "8",
		"RPG_CONVERTER_USER_ID":         "feedfacecafebeef",
		"RPG_CONVERTER_REDIS_ADDR":      "localhost:6379",
		"RPG_CONVERTER_REDIS_DB":        "2",
		"RPG_CONVERTER_REDIS_CACHE_TTL": "1h",
		"RPG_CONVERTER_OCR_LANGUAGE":    "deu",
		"RPG_CONVERTER_DND5E_TIMEOUT":   "5s",
		"RPG_CONVERTER_GRPC_PORT":       "6000",
		"LOG_LEVEL":                     "error",
	})
	s.Require().NoError(err)

	s.Equal("debug", cfg.LogLevel)
	s.Equal(config.LogFormatJSON, cfg.LogFormat)
	s.Equal(8, cfg.Workers)
	s.Equal("feedfacecafebeef", cfg.UserID)
	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal(time.Hour, cfg.Redis.CacheTTL)
	s.Equal("deu", cfg.OCR.Language)
	s.Equal(5*time.Second, cfg.DND5E.Timeout)
	s.Equal(6000, cfg.GRPCPort)
}

func (s *ConfigTestSuite) TestInvalidValues() {
	testCases := []struct {
		name   string
		env    map[string]string
		errMsg string
	}{
		{name: "unparseable workers", env: map[string]string{"RPG_CONVERTER_WORKERS": "many"}, errMsg: "failed to parse environment"},
		{name: "negative workers", env: map[string]string{"RPG_CONVERTER_WORKERS": "-1"}, errMsg: "Workers"},
		{name: "unknown level", env: map[string]string{"RPG_CONVERTER_LOG_LEVEL": "loud"}, errMsg: "LogLevel"},
		{name: "unknown format", env: map[string]string{"RPG_CONVERTER_LOG_FORMAT": "xml"}, errMsg: "LogFormat"},
		{name: "port out of range", env: map[string]string{"RPG_CONVERTER_GRPC_PORT": "70000"}, errMsg: "GRPCPort"},
		{name: "negative ttl", env: map[string]string{"RPG_CONVERTER_REDIS_CACHE_TTL": "-1h"}, errMsg: "Redis.CacheTTL"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Parse(tc.env)
			s.Nil(cfg)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *ConfigTestSuite) TestLoadDotEnv() {
	path := filepath.Join(s.T().TempDir(), "test.env")
	s.Require().NoError(os.WriteFile(path, []byte("RPG_CONVERTER_OCR_BINARY=/opt/tesseract\n"), 0o600))
	s.T().Cleanup(func() { _ = os.Unsetenv("RPG_CONVERTER_OCR_BINARY") })

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal("/opt/tesseract", cfg.OCR.Binary)
}

func (s *ConfigTestSuite) TestLoadMissingDotEnv() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.NoError(err)
}

func (s *ConfigTestSuite) TestNewLogger() {
	cfg, err := config.Parse(map[string]string{
		"RPG_CONVERTER_LOG_LEVEL":  "warn",
		"RPG_CONVERTER_LOG_FORMAT": "json",
	})
	s.Require().NoError(err)

	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	s.Require().NoError(err)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("image", "brute.png"))

	s.NotContains(buf.String(), "hidden")
	s.Contains(buf.String(), `"msg":"shown"`)
	s.Contains(buf.String(), `"image":"brute.png"`)
}
