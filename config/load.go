package config

import (
	"log/slog"
	"os"
	"strings"
)

func Load() App {
	return App{
		Port:         getenv("APP_PORT", "9090"),
		DatabaseURL:  must("DATABASE_URL"),
		Env:          getenv("APP_ENV", "dev"),
		OverlapGuard: getbool("BOOKING_OVERLAP_GUARD", true),
	}
}

func LoadGateway() Gateway {
	return Gateway{
		Port:      getenv("GATEWAY_PORT", "8080"),
		ServerURL: getenv("SHAREIT_SERVER_URL", "http://localhost:9090"),
		Env:       getenv("APP_ENV", "dev"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := strings.ToLower(os.Getenv(k))
	if v == "" {
		return def
	}
	switch v {
	case "1", "t", "true", "yes", "on":
		return true
	case "0", "f", "false", "no", "off":
		return false
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
