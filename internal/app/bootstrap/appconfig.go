// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request timeouts. AppConfig is
// where everything specific to ClubHub lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// CORS allow-list for the SPA frontend, comma-separated origins.
	CORSOrigins string

	// Rate limiting applied uniformly to /api/*.
	RateLimitRequests int           // requests allowed per window per client
	RateLimitWindow   time.Duration // window length (e.g., 15m)

	// SeedDefaultMembers controls whether the fallback roster is served
	// when the members collection is empty and the listing is unfiltered.
	SeedDefaultMembers bool
}
