// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Record store backends.
const (
	RecordsBackendFile     = "file"
	RecordsBackendSQLite   = "sqlite"
	RecordsBackendPostgres = "postgres"
)

// Image store backends.
const (
	ImagesBackendLocal = "local"
	ImagesBackendS3    = "s3"
)

// StructuredConfig is the top-level configuration of the acervo binaries.
// It is populated by merging environment variables, command-line flags and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session token parameters, the admin bootstrap password and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the shared configuration document, record store and
	// image store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the TUI client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey overrides the session signing key. When empty the cookie
	// key of the configuration document is used.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration overrides the session lifetime. When zero the cookie
	// expiry_days of the configuration document is used.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminPassword bootstraps the "admin" account on startup when it does
	// not exist yet. Empty disables the bootstrap.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the TUI client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// InvitePollInterval is how often the TUI client checks for new group
	// invites. Env: APP_INVITE_POLL_INTERVAL
	InvitePollInterval time.Duration `env:"INVITE_POLL_INTERVAL"`
}

// Storage groups the persistence settings.
type Storage struct {
	// Document is the shared YAML document holding credentials, groups,
	// invites and cookie settings.
	Document Document `envPrefix:"DOCUMENT_"`

	// Records selects and configures the per-user record store.
	Records Records `envPrefix:"RECORDS_"`

	// Images selects and configures the image store.
	Images Images `envPrefix:"IMAGES_"`
}

// Document locates the shared configuration document.
type Document struct {
	// Path of the YAML document. Env: STORAGE_DOCUMENT_PATH
	Path string `env:"PATH"`
}

// Records configures the record store.
type Records struct {
	// Backend is one of "file", "sqlite", "postgres".
	// Env: STORAGE_RECORDS_BACKEND
	Backend string `env:"BACKEND"`

	// Dir holds one dados_{username}.json file per user for the file
	// backend. Env: STORAGE_RECORDS_DIR
	Dir string `env:"DIR"`

	// DSN is the database connection string for the SQL backends.
	// Env: STORAGE_RECORDS_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Images configures the image store.
type Images struct {
	// Backend is one of "local", "s3". Env: STORAGE_IMAGES_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the image directory of the local backend.
	// Env: STORAGE_IMAGES_DIR
	Dir string `env:"DIR"`

	// S3 holds the object storage settings of the s3 backend.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds object storage settings for the s3 image backend.
type S3 struct {
	Bucket       string `env:"BUCKET"`
	Region       string `env:"REGION"`
	Endpoint     string `env:"ENDPOINT"`
	AccessKey    string `env:"ACCESS_KEY"`
	SecretKey    string `env:"SECRET_KEY"`
	Prefix       string `env:"PREFIX"`
	UsePathStyle bool   `env:"USE_PATH_STYLE"`
}

// Server holds settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize limits image uploads, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the server address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, defaults and validates the
// configuration in the following priority order (later sources win for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetCLIConfig assembles the configuration for commands that own their
// flag parsing. Environment variables come first, then the JSON file named
// by overrides.JSONFilePath (or CONFIG), then the non-zero fields of
// overrides.
func GetCLIConfig(overrides StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withConfig(&StructuredConfig{JSONFilePath: overrides.JSONFilePath}).
		withJSON().
		withConfig(&overrides).
		build()
}
