package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Token store backends understood by the CLI.
const (
	TokenStoreFile   = "file"
	TokenStoreRedis  = "redis"
	TokenStoreMemory = "memory"
)

// ClientConfig configures the devmarks CLI and anything else embedding the SDK.
type ClientConfig struct {
	APIURL         string        `mapstructure:"DEVMARKS_API_URL" validate:"required,url"`
	TokenStore     string        `mapstructure:"DEVMARKS_TOKEN_STORE" validate:"required,oneof=file redis memory"`
	TokenFile      string        `mapstructure:"DEVMARKS_TOKEN_FILE" validate:"required_if=TokenStore file"`
	RedisAddr      string        `mapstructure:"DEVMARKS_REDIS_ADDR" validate:"required_if=TokenStore redis"`
	RedisPassword  string        `mapstructure:"DEVMARKS_REDIS_PASSWORD"`
	RequestTimeout time.Duration `mapstructure:"DEVMARKS_REQUEST_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`
}

// LoadClient reads the client configuration from the environment, an optional
// devmarks.yaml in the working or user config directory, and .env files.
func LoadClient() (*ClientConfig, error) {
	loadDotEnv()

	v := viper.New()
	v.SetConfigName("devmarks")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "devmarks"))
	}
	v.AutomaticEnv()

	v.SetDefault("DEVMARKS_API_URL", "http://localhost:8080")
	v.SetDefault("DEVMARKS_TOKEN_STORE", TokenStoreFile)
	v.SetDefault("DEVMARKS_TOKEN_FILE", defaultTokenFile())
	v.SetDefault("DEVMARKS_REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")

	_ = v.ReadInConfig()

	for _, key := range []string{
		"DEVMARKS_API_URL",
		"DEVMARKS_TOKEN_STORE",
		"DEVMARKS_TOKEN_FILE",
		"DEVMARKS_REDIS_ADDR",
		"DEVMARKS_REDIS_PASSWORD",
		"DEVMARKS_REQUEST_TIMEOUT",
		"LOG_LEVEL",
		"LOG_FORMAT",
	} {
		_ = v.BindEnv(key)
	}

	var c ClientConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("client config unmarshal error: %w", err)
	}
	d, err := parseDuration(v, "DEVMARKS_REQUEST_TIMEOUT")
	if err != nil {
		return nil, err
	}
	c.RequestTimeout = d

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}
	return &c, nil
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "devmarks-token.json")
	}
	return filepath.Join(dir, "devmarks", "token.json")
}
