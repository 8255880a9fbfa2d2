package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret          string `yaml:"jwt_secret"`
		TokenTTLSeconds    int64  `yaml:"token_ttl_seconds"`
		RecoveryTTLSeconds int64  `yaml:"recovery_ttl_seconds"`

		// Derived from the *_seconds fields after decoding.
		TokenTTL    time.Duration `yaml:"-"`
		RecoveryTTL time.Duration `yaml:"-"`
	} `yaml:"auth"`
	Mail struct {
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
		From        string `yaml:"from"`
		FrontendURL string `yaml:"frontend_url"`
	} `yaml:"mail"`
	Cloudinary struct {
		CloudName string `yaml:"cloud_name"`
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
	} `yaml:"cloudinary"`
	Notify struct {
		Enabled          bool   `yaml:"enabled"`
		TelegramBotToken string `yaml:"telegram_bot_token"`
		TelegramChatID   int64  `yaml:"telegram_chat_id"`
	} `yaml:"notify"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

// LoadConfig reads configuration from the specified YAML file. Secrets can be
// overridden by environment variables so the file itself stays committable.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.Database.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("MAIL_PASSWORD"); v != "" {
		config.Mail.Password = v
	}
	if v := os.Getenv("CLOUDINARY_API_SECRET"); v != "" {
		config.Cloudinary.APISecret = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		config.Notify.TelegramBotToken = v
	}

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTLSeconds) * time.Second
	if config.Auth.TokenTTL == 0 {
		config.Auth.TokenTTL = 24 * time.Hour
	}
	config.Auth.RecoveryTTL = time.Duration(config.Auth.RecoveryTTLSeconds) * time.Second
	if config.Auth.RecoveryTTL == 0 {
		config.Auth.RecoveryTTL = time.Hour
	}
	if config.Server.Port == "" {
		config.Server.Port = ":8080"
	}

	return config, nil
}
