package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
// Backend credentials are optional: without database settings the app runs
// in demo mode (in-memory only), and without an AI key the chat assistant
// answers with a static fallback instead of crashing.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AI       AIConfig       `mapstructure:"ai"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// Configured reports whether remote persistence is available. An empty URI
// means demo mode.
func (c DatabaseConfig) Configured() bool { return c.URI != "" }

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Configured reports whether avatar storage is available.
func (c S3Config) Configured() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// AIConfig defines the chat assistant backend.
type AIConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
}

// Configured reports whether the chat assistant is available.
func (c AIConfig) Configured() bool { return c.APIKey != "" }

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override file values:
	// server.address -> SERVER_ADDRESS, ai.api_key -> AI_API_KEY, ...
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.name", "liftlog")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.secret", "liftlog-demo-secret")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("ai.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("ai.model", "gemini-1.5-flash")
	viper.SetDefault("ai.temperature", 0.7)

	err = viper.ReadInConfig()
	// Config file is optional; demo mode needs no file at all.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
