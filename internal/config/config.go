// Package config resolves the migration's runtime configuration from
// environment variables, with documented defaults for local development.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables:
//
//	EDUMIGRATE_SOURCE_DRIVER: sqlite|postgres (default sqlite)
//	EDUMIGRATE_SOURCE_DSN: source DSN or sqlite path (default ./legacy.db)
//	EDUMIGRATE_REPORT_DSN: destination postgres DSN
//	EDUMIGRATE_API_BASE_URL: content API base URL
//	EDUMIGRATE_API_SESSION_COOKIE: fixed session cookie sent on API calls
//	EDUMIGRATE_FIELD_STATE / _DISTRICT / _BLOCK / _VILLAGE: attribute-store
//	  field ids for location lookups (defaults are the legacy literals)
//	EDUMIGRATE_ARCHIVE_DRIVER: fs|s3|memory ("" disables archiving)
//	EDUMIGRATE_ARCHIVE_FS_ROOT: directory root when driver=fs
//	EDUMIGRATE_LOG_LEVEL: logrus level name (default info)
//
// S3 archive variables are documented in the archive package.

// Legacy attribute-store field identifiers for the four location levels.
// They were hardcoded in the old pipeline; here they are only defaults and
// every resolver receives the mapping by injection.
const (
	DefaultStateField    = "b0b1c2d3-1f41-4f72-a2c5-6a1df350f412"
	DefaultDistrictField = "f0e1d2c3-9c5b-4a7e-8b16-2d94c8a11e27"
	DefaultBlockField    = "9a8b7c6d-3e2f-4d01-b5a9-7c63e90d4f18"
	DefaultVillageField  = "4d5e6f70-8a9b-4c2d-93e1-0f12a34b56c7"
)

// Source configures the legacy database connection.
type Source struct {
	Driver string
	DSN    string
}

// Report configures the destination reporting database.
type Report struct {
	DSN string
}

// API configures the remote content-hierarchy endpoints.
type API struct {
	BaseURL       string
	SessionCookie string
}

// Fields maps location levels to attribute-store field identifiers.
type Fields struct {
	State    string
	District string
	Block    string
	Village  string
}

// Archive configures the optional raw-payload archive.
type Archive struct {
	Driver      string
	FSRoot      string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PathStyle bool
}

// Config is the full resolved runtime configuration.
type Config struct {
	Source   Source
	Report   Report
	API      API
	Fields   Fields
	Archive  Archive
	LogLevel string
}

// FromEnv builds a Config from process environment, applying defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		Source: Source{
			Driver: envOr("EDUMIGRATE_SOURCE_DRIVER", "sqlite"),
			DSN:    envOr("EDUMIGRATE_SOURCE_DSN", "legacy.db"),
		},
		Report: Report{
			DSN: os.Getenv("EDUMIGRATE_REPORT_DSN"),
		},
		API: API{
			BaseURL:       strings.TrimRight(os.Getenv("EDUMIGRATE_API_BASE_URL"), "/"),
			SessionCookie: os.Getenv("EDUMIGRATE_API_SESSION_COOKIE"),
		},
		Fields: Fields{
			State:    envOr("EDUMIGRATE_FIELD_STATE", DefaultStateField),
			District: envOr("EDUMIGRATE_FIELD_DISTRICT", DefaultDistrictField),
			Block:    envOr("EDUMIGRATE_FIELD_BLOCK", DefaultBlockField),
			Village:  envOr("EDUMIGRATE_FIELD_VILLAGE", DefaultVillageField),
		},
		Archive: Archive{
			Driver:      os.Getenv("EDUMIGRATE_ARCHIVE_DRIVER"),
			FSRoot:      os.Getenv("EDUMIGRATE_ARCHIVE_FS_ROOT"),
			S3Bucket:    os.Getenv("EDUMIGRATE_ARCHIVE_S3_BUCKET"),
			S3Region:    os.Getenv("EDUMIGRATE_ARCHIVE_S3_REGION"),
			S3Endpoint:  os.Getenv("EDUMIGRATE_ARCHIVE_S3_ENDPOINT"),
			S3AccessKey: os.Getenv("EDUMIGRATE_ARCHIVE_S3_ACCESS_KEY"),
			S3SecretKey: os.Getenv("EDUMIGRATE_ARCHIVE_S3_SECRET_KEY"),
			S3PathStyle: strings.EqualFold(os.Getenv("EDUMIGRATE_ARCHIVE_S3_PATH_STYLE"), "true"),
		},
		LogLevel: envOr("EDUMIGRATE_LOG_LEVEL", "info"),
	}
	switch cfg.Source.Driver {
	case "sqlite", "postgres":
	default:
		return Config{}, fmt.Errorf("unknown source driver %s", cfg.Source.Driver)
	}
	if cfg.Report.DSN == "" {
		return Config{}, fmt.Errorf("EDUMIGRATE_REPORT_DSN required")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
