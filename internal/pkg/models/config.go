package models

// Config holds every runtime setting for the dispatch engine, loaded from the
// environment by internal/pkg/config.
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	Booking     BookingConfig
	Negotiation NegotiationConfig
	Location    LocationConfig
	Logger      LoggerConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Debug       bool
}

type ServerConfig struct {
	Host             string
	Port             int
	ReadTimeoutSec   int
	WriteTimeoutSec  int
	ShutdownGraceSec int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type NATSConfig struct {
	URL string
}

type BookingConfig struct {
	// ExpiryMinutes is how long a pending booking stays acceptable.
	ExpiryMinutes int
	// ArrivalRadiusMeters is the destination radius that auto-completes an
	// in-progress ride.
	ArrivalRadiusMeters float64
}

type NegotiationConfig struct {
	ExpiryMinutes int
}

type LocationConfig struct {
	// MockMode replaces reported coordinates with the fixed pair below,
	// for development without a GPS feed.
	MockMode      bool
	MockLatitude  float64
	MockLongitude float64
}

type LoggerConfig struct {
	Level    string
	FilePath string
}
