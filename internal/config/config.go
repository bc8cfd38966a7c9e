package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App      AppConfig      `toml:"app"`
	Admin    AdminConfig    `toml:"admin"`
	Database DatabaseConfig `toml:"database"`
	Mail     MailConfig     `toml:"mail"`
	LLM      LLMConfig      `toml:"llm"`
	Redis    RedisConfig    `toml:"redis"`
	Log      LogConfig      `toml:"log"`
}

type AppConfig struct {
	Name         string `toml:"name"`
	Env          string `toml:"env"`
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	GinMode      string `toml:"gin_mode"`
	SecretKey    string `toml:"secret_key"`
	UploadDir    string `toml:"upload_dir"`
	TemplatesDir string `toml:"templates_dir"`
}

type AdminConfig struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"` // hex SHA-256 digest, see portfolioctl hash-password
	Realm        string `toml:"realm"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type MailConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Sender    string `toml:"sender"`
	Recipient string `toml:"recipient"`
}

type LLMConfig struct {
	BaseURL     string  `toml:"base_url"`
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float64 `toml:"temperature"`
}

type RedisConfig struct {
	Addr              string `toml:"addr"` // empty disables the chat history cache
	Password          string `toml:"password"`
	DB                int    `toml:"db"`
	HistoryTTLSeconds int    `toml:"history_ttl_seconds"`
}

type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "portfolio",
			Env:          "dev",
			Host:         "0.0.0.0",
			Port:         5000,
			GinMode:      "debug",
			SecretKey:    "default-secret-key",
			UploadDir:    "data/uploads",
			TemplatesDir: "web/templates",
		},
		Admin: AdminConfig{
			Username:     "admin",
			PasswordHash: "",
			Realm:        "Login Required",
		},
		Database: DatabaseConfig{
			Path: "data/portfolio.db",
		},
		Mail: MailConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		LLM: LLMConfig{
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-3.5-turbo",
			MaxTokens:   500,
			Temperature: 0.7,
		},
		Redis: RedisConfig{
			Addr:              "",
			DB:                0,
			HistoryTTLSeconds: 60,
		},
		Log: LogConfig{
			File:       "logs/portfolio.log",
			MaxSizeMB:  10,
			MaxBackups: 10,
			MaxAgeDays: 0,
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)
	cfg.App.SecretKey = getEnv("SECRET_KEY", cfg.App.SecretKey)
	cfg.App.UploadDir = getEnv("UPLOAD_DIR", cfg.App.UploadDir)
	cfg.App.TemplatesDir = getEnv("TEMPLATES_DIR", cfg.App.TemplatesDir)

	cfg.Admin.Username = getEnv("ADMIN_USERNAME", cfg.Admin.Username)
	cfg.Admin.PasswordHash = getEnv("ADMIN_PASSWORD_HASH", cfg.Admin.PasswordHash)
	cfg.Admin.Realm = getEnv("ADMIN_REALM", cfg.Admin.Realm)

	cfg.Database.Path = getEnv("DATABASE_PATH", cfg.Database.Path)

	cfg.Mail.Host = getEnv("MAIL_HOST", cfg.Mail.Host)
	cfg.Mail.Port = getEnvAsInt("MAIL_PORT", cfg.Mail.Port)
	cfg.Mail.Username = getEnv("MAIL_USERNAME", cfg.Mail.Username)
	cfg.Mail.Password = getEnv("MAIL_PASSWORD", cfg.Mail.Password)
	cfg.Mail.Sender = getEnv("MAIL_SENDER", cfg.Mail.Sender)
	cfg.Mail.Recipient = getEnv("MAIL_RECIPIENT", cfg.Mail.Recipient)

	cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.APIKey = getEnv("LLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.Model = getEnv("LLM_MODEL", cfg.LLM.Model)
	cfg.LLM.MaxTokens = getEnvAsInt("LLM_MAX_TOKENS", cfg.LLM.MaxTokens)
	cfg.LLM.Temperature = getEnvAsFloat("LLM_TEMPERATURE", cfg.LLM.Temperature)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.HistoryTTLSeconds = getEnvAsInt("REDIS_HISTORY_TTL_SECONDS", cfg.Redis.HistoryTTLSeconds)

	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)
	cfg.Log.MaxSizeMB = getEnvAsInt("LOG_MAX_SIZE_MB", cfg.Log.MaxSizeMB)
	cfg.Log.MaxBackups = getEnvAsInt("LOG_MAX_BACKUPS", cfg.Log.MaxBackups)
	cfg.Log.MaxAgeDays = getEnvAsInt("LOG_MAX_AGE_DAYS", cfg.Log.MaxAgeDays)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
