// Package config reads service settings from the environment, optionally on
// top of a YAML file named by CURSOAPP_CONFIG. Environment variables win.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode      Mode
	HTTPAddr  string
	PublicURL string
	LogMode   string // dev|prod

	DBDriver string // sqlite|postgres, empty keeps the ledger in memory
	DBDSN    string

	BlobDriver   string // fs|redis
	BlobBasePath string // for fs
	RedisURL     string // for redis

	DownloadSecret string
	DownloadTTL    time.Duration

	PackageLanguage string // BCP 47, written into SCORM/H5P packages
	CORSOrigins     []string

	ArchiverEnabled  bool
	CompressionLevel int
}

const devSecret = "dev-download-secret"

func Defaults() Config {
	return Config{
		Mode:             ModeOffline,
		HTTPAddr:         ":8080",
		LogMode:          "dev",
		DBDriver:         "sqlite",
		BlobDriver:       "fs",
		BlobBasePath:     "./data/exports",
		DownloadSecret:   devSecret,
		DownloadTTL:      5 * time.Minute,
		PackageLanguage:  "es",
		CORSOrigins:      []string{"http://localhost:3000", "http://localhost:5173"},
		ArchiverEnabled:  true,
		CompressionLevel: -1,
	}
}

// FromEnv applies the environment over Defaults.
func FromEnv() Config { return fromEnv(Defaults()) }

// Load is FromEnv with the optional CURSOAPP_CONFIG file underneath, and
// validation.
func Load() (Config, error) {
	base := Defaults()
	if p := os.Getenv("CURSOAPP_CONFIG"); p != "" {
		fc, err := LoadFile(p, base)
		if err != nil {
			return Config{}, err
		}
		base = fc
	}
	cfg := fromEnv(base)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromEnv(d Config) Config {
	mode := Mode(envOr("MODE", string(d.Mode)))
	logMode := d.LogMode
	if mode == ModeOnline && os.Getenv("LOG_MODE") == "" && d.LogMode == "dev" {
		logMode = "prod"
	}
	return Config{
		Mode:             mode,
		HTTPAddr:         envOr("HTTP_ADDR", d.HTTPAddr),
		PublicURL:        strings.TrimSuffix(envOr("PUBLIC_URL", d.PublicURL), "/"),
		LogMode:          envOr("LOG_MODE", logMode),
		DBDriver:         envOr("DB_DRIVER", d.DBDriver),
		DBDSN:            envOr("DB_DSN", d.DBDSN),
		BlobDriver:       envOr("BLOB_DRIVER", d.BlobDriver),
		BlobBasePath:     envOr("BLOB_BASE_PATH", d.BlobBasePath),
		RedisURL:         envOr("REDIS_URL", d.RedisURL),
		DownloadSecret:   envOr("DOWNLOAD_SECRET", d.DownloadSecret),
		DownloadTTL:      envDuration("DOWNLOAD_TTL", d.DownloadTTL),
		PackageLanguage:  envOr("PACKAGE_LANGUAGE", d.PackageLanguage),
		CORSOrigins:      csvOr("CORS_ORIGINS", d.CORSOrigins),
		ArchiverEnabled:  envBool("ARCHIVER_ENABLED", d.ArchiverEnabled),
		CompressionLevel: envInt("COMPRESSION_LEVEL", d.CompressionLevel),
	}
}

// Validate checks enumerations and canonicalises PackageLanguage.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeOffline, ModeOnline:
	default:
		return fmt.Errorf("config: MODE must be offline or online, got %q", c.Mode)
	}
	switch c.DBDriver {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.BlobDriver {
	case "fs":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("config: BLOB_DRIVER=redis needs REDIS_URL")
		}
	default:
		return fmt.Errorf("config: unsupported BLOB_DRIVER %q", c.BlobDriver)
	}
	if c.CompressionLevel < -2 || c.CompressionLevel > 9 {
		return fmt.Errorf("config: COMPRESSION_LEVEL must be between -2 and 9, got %d", c.CompressionLevel)
	}
	if c.Mode == ModeOnline && (c.DownloadSecret == "" || c.DownloadSecret == devSecret) {
		return fmt.Errorf("config: DOWNLOAD_SECRET must be set in online mode")
	}
	tag, err := language.Parse(c.PackageLanguage)
	if err != nil {
		return fmt.Errorf("config: PACKAGE_LANGUAGE: %w", err)
	}
	c.PackageLanguage = tag.String()
	return nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return n
}
func envDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
func csvOr(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return splitCSV(v)
}
func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
