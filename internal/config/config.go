package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

// Configuration is the root configuration for the personnel agent.
type Configuration struct {
	Server    Server         `mapstructure:"server"`
	Database  Database       `mapstructure:"database"`
	Auth      Authentication `mapstructure:"auth"`
	Jobs      Jobs           `mapstructure:"jobs"`
	LogFormat string         `mapstructure:"log_format" default:"console"`
	LogLevel  string         `mapstructure:"log_level" default:"info"`
}

type Server struct {
	ServerMode    string `mapstructure:"mode" default:"dev"`
	HTTPPort      int    `mapstructure:"http_port" default:"8000"`
	StaticsFolder string `mapstructure:"statics_folder"`
}

type Database struct {
	// Path to the SQLite database file. ":memory:" keeps everything
	// in-process, useful for tests.
	Path string `mapstructure:"path" default:"personnel.db"`
}

type Authentication struct {
	// JWTSecret signs session tokens. Required outside dev mode.
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" default:"12h"`
}

type Jobs struct {
	NumWorkers int `mapstructure:"num_workers" default:"3"`
	// SyncInterval is how often the medical-record reconciler runs.
	// Zero disables the schedule.
	SyncInterval time.Duration `mapstructure:"sync_interval" default:"1h"`
	// AccrualInterval is how often leave accrual is evaluated.
	AccrualInterval time.Duration `mapstructure:"accrual_interval" default:"24h"`
}

// Load reads configuration from the given file (optional), environment
// variables prefixed with FIREHALL_, and struct defaults, in that
// order of precedence.
func Load(path string) (*Configuration, error) {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("setting configuration defaults: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/personnel-agent")
	}

	v.SetEnvPrefix("FIREHALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading configuration file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings the agent cannot run without.
func (c *Configuration) Validate() error {
	if c.Server.ServerMode != "dev" && c.Server.ServerMode != "prod" {
		return fmt.Errorf("server.mode must be \"dev\" or \"prod\", got %q", c.Server.ServerMode)
	}
	if c.Server.ServerMode == "prod" && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required in prod mode")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Jobs.NumWorkers < 1 {
		return fmt.Errorf("jobs.num_workers must be at least 1")
	}
	return nil
}
