package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	DataURL      string
	DataFile     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	FetchRPS     int
	AuditWorkers int
	CacheTTL     time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		DataURL:      env("DATA_URL", "https://anatolt.ru/data/regions.json"),
		DataFile:     env("DATA_FILE", ""),
		RedisAddr:    env("REDIS_ADDR", ""),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		FetchRPS:     atoi("FETCH_RPS", 2),
		AuditWorkers: atoi("AUDIT_WORKERS", 8),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR is empty; view caching disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
