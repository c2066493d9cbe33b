package config

// Config holds all application configuration.
// It is resolved exactly once at process startup and passed by reference
// into the components that need it; request handlers never consult the
// environment directly.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Platform PlatformConfig `mapstructure:"platform" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Env selects deployment behavior such as the Secure cookie attribute.
	Env string `mapstructure:"env" validate:"required,oneof=development production"`
}

// IsProduction reports whether the server runs in a production deployment.
func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseConfig contains the connection settings for the platform's
// Postgres database, which holds the profiles table.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// PlatformConfig contains the settings for the hosted backend platform.
// The identity service and the object store share one project base URL
// and key pair.
type PlatformConfig struct {
	// URL is the platform project base URL, e.g. https://abc.supabase.co.
	URL string `mapstructure:"url" validate:"required,url"`

	// AnonKey authorizes public-scope calls such as password grants.
	AnonKey string `mapstructure:"anon_key" validate:"required"`

	// ServiceRoleKey authorizes admin-scope calls such as deleting an
	// account during signup compensation. Never sent to clients.
	ServiceRoleKey string `mapstructure:"service_role_key" validate:"required"`

	// JWTSecret verifies access tokens issued by the identity service.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// StorageBucket is the object-store bucket holding profile images.
	StorageBucket string `mapstructure:"storage_bucket" validate:"required"`
}

// AuthConfig contains authentication and session settings.
type AuthConfig struct {
	// SiteURL is the public site origin used for email-verification
	// redirects, e.g. https://example.com.
	SiteURL string `mapstructure:"site_url" validate:"required,url"`

	// ReservedEmailDomain maps bare login identifiers into the reserved
	// email namespace: "alice" logs in as "alice@<domain>".
	ReservedEmailDomain string `mapstructure:"reserved_email_domain" validate:"required,fqdn"`

	// RefreshTokenLifetimeDays is the Max-Age of the refresh cookie.
	RefreshTokenLifetimeDays int `mapstructure:"refresh_token_lifetime_days" validate:"required,gt=0"`
}
