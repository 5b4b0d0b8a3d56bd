package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task Store backend
	TaskStore TaskStoreConfig

	// Chat pipeline
	Chat ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TaskStoreConfig points at the external Task Store REST API.
type TaskStoreConfig struct {
	URL         string
	AccessToken string
	Timeout     time.Duration
}

// ChatConfig tunes the conversation store and rate limiting.
type ChatConfig struct {
	ConversationTTL  time.Duration
	MaxConversations int
	RateLimitPerMin  int
	Timezone         string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Task Store
	cfg.TaskStore.URL = viper.GetString("taskstore.url")
	cfg.TaskStore.AccessToken = viper.GetString("taskstore.access_token")
	cfg.TaskStore.Timeout = viper.GetDuration("taskstore.timeout")
	if storeURL := viper.GetString("taskstore_url"); storeURL != "" {
		cfg.TaskStore.URL = storeURL
	}
	if storeToken := viper.GetString("taskstore_access_token"); storeToken != "" {
		cfg.TaskStore.AccessToken = storeToken
	}

	if cfg.TaskStore.URL == "" {
		return nil, fmt.Errorf("taskstore.url is required")
	}

	// Chat pipeline
	cfg.Chat.ConversationTTL = viper.GetDuration("chat.conversation_ttl")
	cfg.Chat.MaxConversations = viper.GetInt("chat.max_conversations")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.Timezone = viper.GetString("chat.timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("taskstore.timeout", "10s")

	viper.SetDefault("chat.conversation_ttl", "30m")
	viper.SetDefault("chat.max_conversations", 1000)
	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("chat.timezone", "UTC")
}
