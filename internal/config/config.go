// Package config loads server configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Addr is the listen address, e.g. ":8082".
	Addr string `yaml:"addr"`
	// DataFile is the path of the JSON data file.
	DataFile string `yaml:"data_file"`
	// RedisAddr, when set, stores carts in Redis instead of the data file.
	RedisAddr string `yaml:"redis_addr"`

	// MenuServiceURL and MenuServiceKey point at the hosted data service
	// for the menu. When empty the local database serves the menu.
	MenuServiceURL string `yaml:"menu_service_url"`
	MenuServiceKey string `yaml:"menu_service_key"`

	// AdminPasswordHash is the bcrypt hash checked at /admin/login.
	AdminPasswordHash string `yaml:"admin_password_hash"`

	// SMTP settings for order and reservation notifications. Email is
	// disabled when SMTPUser or SMTPPass is empty.
	SMTPHost  string `yaml:"smtp_host"`
	SMTPPort  int    `yaml:"smtp_port"`
	SMTPUser  string `yaml:"smtp_user"`
	SMTPPass  string `yaml:"smtp_pass"`
	NotifyTo  string `yaml:"notify_to"`
	EmailFrom string `yaml:"email_from"`
}

// defaults returns the configuration used when nothing is set.
func defaults() Config {
	return Config{
		Addr:      ":8082",
		DataFile:  "./data.json",
		SMTPHost:  "smtp.gmail.com",
		SMTPPort:  587,
		EmailFrom: "noreply@dragondore.fr",
	}
}

// Load reads the YAML file at path (skipped when path is empty or the
// file does not exist), then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config parse failed: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	setString(&cfg.DataFile, "DATA_FILE")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.MenuServiceURL, "MENU_SERVICE_URL")
	setString(&cfg.MenuServiceKey, "MENU_SERVICE_KEY")
	setString(&cfg.AdminPasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&cfg.SMTPHost, "SMTP_HOST")
	setString(&cfg.SMTPUser, "SMTP_USER")
	setString(&cfg.SMTPPass, "SMTP_PASS")
	setString(&cfg.NotifyTo, "NOTIFY_TO")
	setString(&cfg.EmailFrom, "EMAIL_FROM")
	if port := os.Getenv("SMTP_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.SMTPPort = n
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
