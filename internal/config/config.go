package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	RedisURL         string
	TelegramBotToken string

	SnapshotTTLSecs int

	SSHPort        int
	SSHHostKeyPath string
}

func Load() *Config {
	cfg := &Config{
		RedisURL:         os.Getenv("REDIS_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, shared snapshot cache disabled")
	}
	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set, Telegram bot disabled")
	}

	cfg.SnapshotTTLSecs = 300
	if v := os.Getenv("SNAPSHOT_TTL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SnapshotTTLSecs = n
		}
	}

	cfg.SSHPort = 2222
	if v := os.Getenv("SSH_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSHPort = n
		}
	}

	cfg.SSHHostKeyPath = os.Getenv("SSH_HOST_KEY_PATH")
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/market_mood_ed25519"
	}

	return cfg
}
