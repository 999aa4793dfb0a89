package config

import (
	"time"
)

// flagSet abstracts the subset of the standard flag package used by
// parseFlagSet so that the builder and the tests can parse an arbitrary
// argument slice without touching the process-global flag.CommandLine.
type flagSet interface {
	StringVar(p *string, name string, value string, usage string)
	DurationVar(p *time.Duration, name string, value time.Duration, usage string)
	Parse(arguments []string) error
}

// parseFlagSet parses all configuration flags from args into one
// configuration layer.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d server database DSN
//	-local-db agent local SQLite file path
//	-base-url sync server endpoint for the agent
//	-token bearer token for the agent (normally via ADAPTER_TOKEN)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-secret-hash-key account secret hash key
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-sync-interval background sync interval (e.g., "5m")
func parseFlagSet(fs flagSet, args []string) *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var localDBPath string
	var baseURL string
	var token string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var secretHashKey string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var syncInterval time.Duration

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&localDBPath, "local-db", "", "Local SQLite file path")
	fs.StringVar(&baseURL, "base-url", "", "Sync server base URL")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&secretHashKey, "secret-hash-key", "", "Account secret hash key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			SecretHashKey: secretHashKey,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			LocalDB: LocalDB{Path: localDBPath},
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
