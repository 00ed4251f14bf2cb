package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config contains runtime configuration values. It is built once at startup
// and passed by value, so nothing can change it afterwards.
type Config struct {
	DiscordWebhookURL string        `yaml:"discord_webhook_url"`
	ListenHost        string        `yaml:"listen_host"`
	Port              int           `yaml:"port"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	MaxConnections    int           `yaml:"max_connections"`
	LogLevel          string        `yaml:"log_level"`
	LogFormat         string        `yaml:"log_format"`
}

const (
	defaultListenHost     = "0.0.0.0"
	defaultPort           = 8080
	defaultTimeout        = 10 * time.Second
	defaultUserAgent      = "ProxmoxDiscordBot/1.0"
	defaultMaxBodyBytes   = 1 << 20
	defaultMaxConnections = 64
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
)

// FileEnv names the environment variable pointing at an optional YAML config file.
const FileEnv = "RELAY_CONFIG_FILE"

// Load builds a Config from an optional .env file, an optional YAML file and
// environment variables, in increasing order of precedence.
func Load() (Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv(FileEnv); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.DiscordWebhookURL = getenvDefault("DISCORD_WEBHOOK_URL", cfg.DiscordWebhookURL)
	cfg.ListenHost = getenvDefault("LISTEN_HOST", cfg.ListenHost)
	cfg.Port = parseIntDefault("PORT", cfg.Port)
	cfg.RequestTimeout = parseDurationDefault("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.UserAgent = getenvDefault("USER_AGENT", cfg.UserAgent)
	cfg.MaxBodyBytes = int64(parseIntDefault("MAX_BODY_BYTES", int(cfg.MaxBodyBytes)))
	cfg.MaxConnections = parseIntDefault("MAX_CONNECTIONS", cfg.MaxConnections)
	cfg.LogLevel = getenvDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenvDefault("LOG_FORMAT", cfg.LogFormat)

	if err := validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr is the host:port the relay listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.ListenHost, strconv.Itoa(c.Port))
}

func defaults() Config {
	return Config{
		ListenHost:     defaultListenHost,
		Port:           defaultPort,
		RequestTimeout: defaultTimeout,
		UserAgent:      defaultUserAgent,
		MaxBodyBytes:   defaultMaxBodyBytes,
		MaxConnections: defaultMaxConnections,
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
	}
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse yaml %q: %w", path, err)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.DiscordWebhookURL == "" {
		return fmt.Errorf("DISCORD_WEBHOOK_URL is required")
	}
	u, err := url.Parse(cfg.DiscordWebhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("DISCORD_WEBHOOK_URL must be an absolute http(s) URL")
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT %d is out of range [1, 65535]", cfg.Port)
	}

	if strings.TrimSpace(cfg.ListenHost) == "" {
		cfg.ListenHost = defaultListenHost
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = defaultMaxConnections
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
