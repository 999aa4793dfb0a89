package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for tabsync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token signing parameters
	// and the account secret hash key.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backends: the
	// server-side PostgreSQL record store and the agent's local SQLite
	// mirror.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the agent's outbound connection to the
	// remote sync server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and account secret hashing.
type App struct {
	// SecretHashKey is the key used when hashing account secrets with
	// HMAC-SHA256. Must be kept confidential.
	// Env: APP_SECRET_HASH_KEY
	SecretHashKey string `env:"SECRET_HASH_KEY"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the issuer (iss) claim value for issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long issued tokens remain valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server-side PostgreSQL connection settings.
	DB DB `envPrefix:"DB_"`

	// LocalDB holds the agent-side SQLite settings.
	LocalDB LocalDB `envPrefix:"LOCAL_DB_"`
}

// DB contains relational database connection settings for the server.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// LocalDB contains the agent's local SQLite settings.
type LocalDB struct {
	// Path is the SQLite database file path holding the mirrored category
	// payloads, the device identifier, and the sync metadata record.
	// Env: STORAGE_LOCAL_DB_PATH
	Path string `env:"PATH"`
}

// Server holds network settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the agent's outbound transport settings.
type Adapter struct {
	// BaseURL is the sync server endpoint the agent talks to.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token produced by the external authentication
	// subsystem. The engine treats it as a precondition; it never obtains
	// or refreshes tokens itself.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds configuration for the background sync job.
type Workers struct {
	// SyncInterval defines how often the background job triggers a
	// reconciliation run.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(defaultFlagSet(), argsFromProcess()).
		withJSON().
		build()
}
