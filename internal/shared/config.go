package shared

import (
	"os"
)

type Config struct {
	AppEnv      string
	MetricsAddr string
}

func Load() Config {
	return Config{
		AppEnv:      env("APP_ENV", "dev"),
		MetricsAddr: env("METRICS_ADDR", ""),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
