package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr       string
	WebDir         string
	GinMode        string
	WSAllowAnyHost bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Load reads XIANGQI_* environment variables, falling back to defaults.
func Load() Config {
	return Config{
		HTTPAddr:       getenv("XIANGQI_HTTP_ADDR", ":2888"),
		WebDir:         getenv("XIANGQI_WEB_DIR", ""),
		GinMode:        getenv("XIANGQI_GIN_MODE", "release"),
		WSAllowAnyHost: getenvBool("XIANGQI_WS_ORIGIN_ANY", true),
	}
}
