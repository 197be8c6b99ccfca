// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers framework-level settings (ports, TLS, log
// level, CORS); AppConfig is everything specific to ClubHub. Values are
// loaded in LoadConfig from env vars (CLUBHUB_*), config files, or flags.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: clubhub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Google identity configuration. GoogleClientID is required for id
	// token verification; the secret only for the browser OAuth flow.
	GoogleClientID     string
	GoogleClientSecret string

	// Base URL for OAuth callbacks (e.g., "https://clubhub.example.com")
	BaseURL string

	// SuperAdmin bootstrap: email promoted to super_admin on startup.
	SuperAdminEmail string
}
