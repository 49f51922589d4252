// Package config loads service configuration from YAML with environment
// variable overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultServerPort      = 8060
	defaultServerTimeout   = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMongoURI        = "mongodb://localhost:27017"
	defaultMongoDatabase   = "seo_articles"
	defaultMongoPing       = 2 * time.Second
	defaultOpenAIEndpoint  = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel     = "gpt-4o"
)

type Config struct {
	Debug  bool         `env:"APP_DEBUG"  yaml:"debug"`
	Server ServerConfig `yaml:"server"`
	Mongo  MongoConfig  `yaml:"mongo"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" yaml:"host"`
	Port            int           `env:"SERVER_PORT" yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" yaml:"cors_origins"`
}

// MongoConfig holds connection settings for the durable article store.
// Connectivity is probed per request; an unreachable Mongo is not fatal.
type MongoConfig struct {
	URI         string        `env:"MONGODB_URI"      yaml:"uri"`
	Database    string        `env:"MONGODB_DATABASE" yaml:"database"`
	PingTimeout time.Duration `yaml:"ping_timeout"`
}

// OpenAIConfig holds settings for the text-generation API.
type OpenAIConfig struct {
	Endpoint string `env:"OPENAI_ENDPOINT" yaml:"endpoint"`
	APIKey   string `env:"OPENAI_API_KEY"  yaml:"api_key"`
	Model    string `env:"OPENAI_MODEL"    yaml:"model"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("server.port is required and must be positive")
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo.database is required")
	}
	if c.OpenAI.Endpoint == "" {
		return errors.New("openai.endpoint is required")
	}
	if c.OpenAI.Model == "" {
		return errors.New("openai.model is required")
	}
	return nil
}

func Load(path string) (*Config, error) {
	cfg, err := loadWithDefaults(path, setDefaults)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultServerTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultServerTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = defaultMongoURI
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultMongoDatabase
	}
	if cfg.Mongo.PingTimeout == 0 {
		cfg.Mongo.PingTimeout = defaultMongoPing
	}
	if cfg.OpenAI.Endpoint == "" {
		cfg.OpenAI.Endpoint = defaultOpenAIEndpoint
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = defaultOpenAIModel
	}
}
