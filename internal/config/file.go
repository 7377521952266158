package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML layout. Absent keys keep the base value.
type fileConfig struct {
	Mode      string `yaml:"mode"`
	HTTPAddr  string `yaml:"http_addr"`
	PublicURL string `yaml:"public_url"`
	LogMode   string `yaml:"log_mode"`

	DB struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"db"`

	Blob struct {
		Driver   string `yaml:"driver"`
		BasePath string `yaml:"base_path"`
		RedisURL string `yaml:"redis_url"`
	} `yaml:"blob"`

	Download struct {
		Secret string `yaml:"secret"`
		TTL    string `yaml:"ttl"`
	} `yaml:"download"`

	Package struct {
		Language         string `yaml:"language"`
		ArchiverEnabled  *bool  `yaml:"archiver_enabled"`
		CompressionLevel *int   `yaml:"compression_level"`
	} `yaml:"package"`

	CORSOrigins []string `yaml:"cors_origins"`
}

// LoadFile overlays the YAML file at path onto base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	c := base
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	if fc.Mode != "" {
		c.Mode = Mode(fc.Mode)
	}
	set(&c.HTTPAddr, fc.HTTPAddr)
	set(&c.PublicURL, fc.PublicURL)
	set(&c.LogMode, fc.LogMode)
	set(&c.DBDriver, fc.DB.Driver)
	set(&c.DBDSN, fc.DB.DSN)
	set(&c.BlobDriver, fc.Blob.Driver)
	set(&c.BlobBasePath, fc.Blob.BasePath)
	set(&c.RedisURL, fc.Blob.RedisURL)
	set(&c.DownloadSecret, fc.Download.Secret)
	set(&c.PackageLanguage, fc.Package.Language)
	if fc.Download.TTL != "" {
		d, err := time.ParseDuration(fc.Download.TTL)
		if err != nil {
			return Config{}, fmt.Errorf("config: download.ttl: %w", err)
		}
		c.DownloadTTL = d
	}
	if fc.Package.ArchiverEnabled != nil {
		c.ArchiverEnabled = *fc.Package.ArchiverEnabled
	}
	if fc.Package.CompressionLevel != nil {
		c.CompressionLevel = *fc.Package.CompressionLevel
	}
	if len(fc.CORSOrigins) > 0 {
		c.CORSOrigins = fc.CORSOrigins
	}
	return c, nil
}
