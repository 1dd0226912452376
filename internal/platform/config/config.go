package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// BotURL is the dialogue backend REST webhook the relay forwards chat
	// messages to.
	BotURL     string
	BotTimeout time.Duration

	// RecordsCSVPath points at the case record store. When empty the loader
	// walks its candidate paths.
	RecordsCSVPath string

	// RecordsDSN selects the PostgreSQL record backend when set; the CSV
	// loader is used otherwise.
	RecordsDSN string

	Redis RedisConfig

	// ChatRateLimit / ChatRateWindow bound per-client traffic on /chat.
	ChatRateLimit  int
	ChatRateWindow time.Duration
}

// RedisConfig captures connection settings for the optional session store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("DEFENSORIA_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	botURL := os.Getenv("BOT_URL")
	if botURL == "" {
		botURL = "http://localhost:5005/webhooks/rest/webhook"
	}

	return Server{
		Addr:           addr,
		BotURL:         botURL,
		BotTimeout:     envDuration("BOT_TIMEOUT", 8*time.Second),
		RecordsCSVPath: os.Getenv("RECORDS_CSV_PATH"),
		RecordsDSN:     os.Getenv("RECORDS_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		ChatRateLimit:  envInt("CHAT_RATE_LIMIT", 30),
		ChatRateWindow: envDuration("CHAT_RATE_WINDOW", time.Minute),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
