package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Poll defaults. A non-positive configured value falls back to these; absence of the
// whole poll section is not an error.
const (
	DefaultLiveIntervalSeconds  = 5
	DefaultIdleIntervalSeconds  = 300
	DefaultSessionRecycleCycles = 50
	DefaultTimezone             = "America/New_York"
)

// Config is the full application configuration, matching config/config.yaml.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Source   SourceConfig   `mapstructure:"source"`
	Poll     PollConfig     `mapstructure:"poll"`
}

// ServerConfig configures the read API.
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug/release/test
}

// DatabaseConfig configures the PostgreSQL connection.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// SourceConfig configures the NHL data source client.
type SourceConfig struct {
	BaseURL      string `mapstructure:"base_url"`       // NHL web API, e.g. https://api-web.nhle.com/v1
	StatsBaseURL string `mapstructure:"stats_base_url"` // NHL stats REST API, e.g. https://api.nhle.com/stats/rest
	Timeout      int    `mapstructure:"timeout"`        // per-request timeout, seconds
	Proxy        string `mapstructure:"proxy"`
}

// PollConfig configures the live watch loop.
type PollConfig struct {
	LiveIntervalSeconds  int    `mapstructure:"live_interval_seconds"`  // sleep while games are live
	IdleIntervalSeconds  int    `mapstructure:"idle_interval_seconds"`  // sleep while no games are live
	SessionRecycleCycles int    `mapstructure:"session_recycle_cycles"` // rebuild the HTTP session every N cycles
	Timezone             string `mapstructure:"timezone"`               // IANA zone defining "today"
}

// LoadConfig reads config/config.yaml; values from .env override the yaml for
// deploy-sensitive settings. Missing required settings fail here, never inside the
// poll loop.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	viper.SetTypeByDefaultValue(true)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	overrideFromEnv(&cfg)
	applyPollDefaults(&cfg.Poll)

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required (set it in config.yaml or DATABASE_DSN)")
	}
	if cfg.Source.BaseURL == "" {
		return nil, fmt.Errorf("source.base_url is required")
	}
	return &cfg, nil
}

// overrideFromEnv lets the environment override deploy-sensitive values.
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("NHL_PROXY"); v != "" {
		cfg.Source.Proxy = v
	}
}

// applyPollDefaults replaces absent or non-positive poll settings with the defaults.
func applyPollDefaults(p *PollConfig) {
	if p.LiveIntervalSeconds <= 0 {
		p.LiveIntervalSeconds = DefaultLiveIntervalSeconds
	}
	if p.IdleIntervalSeconds <= 0 {
		p.IdleIntervalSeconds = DefaultIdleIntervalSeconds
	}
	if p.SessionRecycleCycles <= 0 {
		p.SessionRecycleCycles = DefaultSessionRecycleCycles
	}
	if p.Timezone == "" {
		p.Timezone = DefaultTimezone
	}
}

// LiveInterval returns the live-games sleep, floored at one second.
func (p *PollConfig) LiveInterval() time.Duration {
	secs := p.LiveIntervalSeconds
	if secs < 1 {
		secs = 1
	}
	return time.Duration(secs) * time.Second
}

// IdleInterval returns the no-games sleep.
func (p *PollConfig) IdleInterval() time.Duration {
	secs := p.IdleIntervalSeconds
	if secs < 1 {
		secs = DefaultIdleIntervalSeconds
	}
	return time.Duration(secs) * time.Second
}
