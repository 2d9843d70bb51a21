package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting for the application.
type Config struct {
	Server   ServerConfig
	Groq     GroqConfig
	YouTube  YouTubeConfig
	Redis    RedisConfig
	Database DatabaseConfig
	CacheTTL CacheTTLConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// GroqConfig configures the LLM gateway. Model and temperature are policy:
// they are fixed here and callers cannot override them per request.
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type YouTubeConfig struct {
	APIKey string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Path string
}

type CacheTTLConfig struct {
	Evaluation string
}

type LoggerConfig struct {
	Level string
	Env   string
}

const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "meta-llama/llama-4-scout-17b-16e-instruct"
)

// LoadConfig reads config.yaml (if present) and applies environment overrides.
// A missing config file is not fatal; env-only deployments are supported.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("groq.base_url", DefaultGroqBaseURL)
	viper.SetDefault("groq.model", DefaultGroqModel)
	viper.SetDefault("groq.timeout", 60)
	viper.SetDefault("database.path", "learnsphere.db")
	viper.SetDefault("cache_ttl.evaluation", "24h")
	viper.SetDefault("logger.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Groq: GroqConfig{
			APIKey:  viper.GetString("groq.api_key"),
			BaseURL: viper.GetString("groq.base_url"),
			Model:   viper.GetString("groq.model"),
			Timeout: viper.GetDuration("groq.timeout") * time.Second,
		},
		YouTube: YouTubeConfig{
			APIKey: viper.GetString("youtube.api_key"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("database.path"),
		},
		CacheTTL: CacheTTLConfig{
			Evaluation: viper.GetString("cache_ttl.evaluation"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Secrets and addresses come from the environment in deployed setups.
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		config.Groq.APIKey = key
	}
	if url := os.Getenv("GROQ_BASE_URL"); url != "" {
		config.Groq.BaseURL = url
	}
	if model := os.Getenv("GROQ_MODEL"); model != "" {
		config.Groq.Model = model
	}
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		config.YouTube.APIKey = key
	}
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		config.Redis.Address = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		config.Database.Path = path
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config, nil
}

// ParseTTLStringOrDefault parses a duration string, falling back to def when
// the value is empty or malformed.
func (c *Config) ParseTTLStringOrDefault(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return d
}
