package models

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Stripe   StripeConfig
	Plaid    PlaidConfig
	Donation DonationConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string `json:"url"`
}

// StripeConfig holds payment processor configuration
type StripeConfig struct {
	SecretKey      string `json:"secret_key"`
	BaseURL        string `json:"base_url"`
	WebhookSecret  string `json:"webhook_secret"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// PlaidConfig holds transaction feed configuration
type PlaidConfig struct {
	ClientID       string `json:"client_id"`
	Secret         string `json:"secret"`
	BaseURL        string `json:"base_url"`
	Environment    string `json:"environment"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// DonationConfig holds donation engine configuration
type DonationConfig struct {
	Currency           string `json:"currency"`
	SweepLookbackHours int    `json:"sweep_lookback_hours"`
	OpportunityDays    int    `json:"opportunity_days"`
}

// NewRelicConfig holds New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string `json:"license_key"`
	AppName     string `json:"app_name"`
	Enabled     bool   `json:"enabled"`
	ForwardLogs bool   `json:"forward_logs"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}
