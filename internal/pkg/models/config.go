package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	Session   SessionConfig
	Operator  OperatorConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration.
// An empty Host disables Redis-backed features (summary cache, rate limiting).
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration.
// An empty NSQDAddress disables event publication.
type NSQConfig struct {
	NSQDAddress string
}

// SessionConfig contains session cookie configuration
type SessionConfig struct {
	CookieName string
	MaxAge     int // in seconds
}

// OperatorConfig contains the credential guarding unscoped operations
type OperatorConfig struct {
	APIKey string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// RateLimitConfig contains the fixed-window limit applied to the create route
type RateLimitConfig struct {
	Limit  int
	Period int // in seconds
}
