package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Queue struct {
		// DueSoonWindow is how long before dueAt an item stops being
		// early and becomes due.
		DueSoonWindow time.Duration `mapstructure:"due_soon_window"`
		// LateGrace is how long past dueAt an item stays due before
		// it turns late.
		LateGrace time.Duration `mapstructure:"late_grace"`
	} `mapstructure:"queue"`

	Specs struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"specs"`

	Monitoring struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"monitoring"`

	App struct {
		DefaultLanguage string `mapstructure:"default_language"`
		RequestLogSize  int    `mapstructure:"request_log_size"`
	} `mapstructure:"app"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Content-Type"})
	v.SetDefault("queue.due_soon_window", "10m")
	v.SetDefault("queue.late_grace", "0s")
	v.SetDefault("specs.path", "configs/specs.yaml")
	v.SetDefault("monitoring.enabled", true)
	v.SetDefault("monitoring.port", 9091)
	v.SetDefault("app.default_language", "en")
	v.SetDefault("app.request_log_size", 1000)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override server port from PORT environment variable
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}
	if path := os.Getenv("SPECS_PATH"); path != "" {
		cfg.Specs.Path = path
	}

	if cfg.Queue.DueSoonWindow < 0 {
		cfg.Queue.DueSoonWindow = 0
	}
	if cfg.Queue.LateGrace < 0 {
		cfg.Queue.LateGrace = 0
	}

	return &cfg
}
