package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// config holds server settings read from the environment (after .env).
type config struct {
	Addr           string
	AccessKeyHash  string // bcrypt hash; empty disables auth
	CORSOrigins    []string
	RateLimitRPS   int
	RateLimitBurst int
	SessionTTL     time.Duration
	OpenBrowser    bool
}

func loadConfig() config {
	cfg := config{
		Addr:           getEnv("ADDR", "localhost:3000"),
		AccessKeyHash:  strings.TrimSpace(os.Getenv("ACCESS_KEY_HASH")),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 0),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 0),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MINUTES", 720)) * time.Minute,
		OpenBrowser:    getEnvBool("OPEN_BROWSER", false),
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 720 * time.Minute
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// getEnvInt falls back to def (and logs) when the value does not parse.
func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] %s=%q is not a boolean, using %t", key, v, def)
		return def
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
