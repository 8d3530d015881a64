package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Fleet    FleetConfig
	Booking  BookingConfig
	Logger   LoggerConfig
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
	Host       string
	Port       int
	Username   string
	Password   string
	Database   string
	SSLMode    string
	MaxConns   int
	IdleConns  int
	StmtTimeMS int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// FleetConfig contains fleet registry specific configuration
type FleetConfig struct {
	NearestLimit  int     // rows returned by the nearest-match query
	LiveRadiusKm  float64 // default radius for the live geo index
	GeoTTLSeconds int     // staleness bound for live index entries
}

// BookingConfig contains booking coordinator specific configuration
type BookingConfig struct {
	DefaultBaseFare float64
	MaxDiscountRate float64
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
