package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   secrets) and anything security-sensitive
// - default: Values common across all environments (timeouts, tolerances)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Payment     PaymentConfig
	Maintenance MaintenanceConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Tenant-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// PaymentConfig points at the hosted-checkout payment provider. The webhook
// secret signs every inbound event envelope; SignatureTolerance bounds
// acceptable clock skew on the envelope timestamp.
type PaymentConfig struct {
	BaseURL            string        `envconfig:"PAYMENT_BASE_URL" required:"true"`
	APIKey             string        `envconfig:"PAYMENT_API_KEY" required:"true"`
	WebhookSecret      string        `envconfig:"PAYMENT_WEBHOOK_SECRET" required:"true"`
	SignatureTolerance time.Duration `envconfig:"PAYMENT_SIGNATURE_TOLERANCE" default:"5m"`
	SuccessURL         string        `envconfig:"PAYMENT_SUCCESS_URL" default:"http://localhost:3000/orders/success"`
	CancelURL          string        `envconfig:"PAYMENT_CANCEL_URL" default:"http://localhost:3000/orders/cancelled"`
}

// MaintenanceConfig drives the background housekeeping sweeper that drains
// the notification outbox and drops expired idempotency keys.
type MaintenanceConfig struct {
	Interval      time.Duration `envconfig:"MAINTENANCE_INTERVAL" default:"1m"`
	DispatchBatch int32         `envconfig:"MAINTENANCE_DISPATCH_BATCH" default:"100"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Payment: PaymentConfig{
			BaseURL:            "http://localhost:12111",
			APIKey:             "sk_test",
			WebhookSecret:      "whsec_test",
			SignatureTolerance: 5 * time.Minute,
		},
		Maintenance: MaintenanceConfig{
			Interval:      time.Minute,
			DispatchBatch: 100,
		},
	}
}
