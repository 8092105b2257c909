// Package hostapi is the glue shared by every external collaborator of the
// engine (spec.md §1): env configuration, structured logging, and
// per-connection session tracking. Nothing here is on the engine's hot
// path — internal/engine never imports this package.
package hostapi

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is host-level configuration, read once at startup.
type Config struct {
	DBusServiceName string
	DBusObjectPath  string
	HTTPAddr        string
	LogLevel        string
	RateLimitRPS    int
}

// Load reads a .env file if one is present — its absence is not an error,
// the teacher's own daemon ships with none — then overlays the process
// environment, falling back to defaults matching the teacher's
// serviceName/objectPath constants.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DBusServiceName: "com.github.goviet.ime",
		DBusObjectPath:  "/Engine",
		HTTPAddr:        ":8787",
		LogLevel:        "info",
		RateLimitRPS:    50,
	}

	if v := os.Getenv("GOVIET_DBUS_SERVICE"); v != "" {
		cfg.DBusServiceName = v
	}
	if v := os.Getenv("GOVIET_DBUS_OBJECT_PATH"); v != "" {
		cfg.DBusObjectPath = v
	}
	if v := os.Getenv("GOVIET_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("GOVIET_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GOVIET_RATE_LIMIT_RPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimitRPS = n
		}
	}
	return cfg
}
