package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"mnsreestr/cmd/internal/infrastructure/mnsra"
)

const (
	DefaultPort      = "8987"
	DefaultSSMRegion = "us-east-2"
)

type Config struct {
	Port     string
	LogLevel log.Lvl
	Registry mnsra.Options
}

// Load reads the configuration from the process environment, which by then
// already holds whatever .env or Parameter Store provided.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", DefaultPort),
		Registry: mnsra.Options{
			BaseURL:   getEnv("MNS_BASE_URL", mnsra.DefaultBaseURL),
			UserAgent: getEnv("MNS_USER_AGENT", mnsra.DefaultUserAgent),
			Timeout:   mnsra.DefaultTimeout,
		},
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if raw := os.Getenv("MNS_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid MNS_TIMEOUT %q: %w", raw, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("MNS_TIMEOUT must be positive, got %s", timeout)
		}
		cfg.Registry.Timeout = timeout
	}

	base, err := url.Parse(cfg.Registry.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("MNS_BASE_URL must be an absolute URL, got %q", cfg.Registry.BaseURL)
	}
	return cfg, nil
}

// SSMRegion is read on its own since the production environment has to be
// fetched from Parameter Store before Load runs.
func SSMRegion() string {
	return getEnv("AWS_SSM_REGION", DefaultSSMRegion)
}

func (c *Config) Address() string {
	return ":" + c.Port
}

func parseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return 0, fmt.Errorf("unknown LOG_LEVEL %q", s)
	}
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
