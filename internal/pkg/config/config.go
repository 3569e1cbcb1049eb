package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Auth     AuthConfig
	Razorpay RazorpayConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"5000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

type AuthConfig struct {
	// Shared secret for the identity provider's HS256 ID tokens.
	JWTSecret string `envconfig:"AUTH_JWT_SECRET" required:"true"`
}

type RazorpayConfig struct {
	// Left empty the payment subsystem degrades to "payment not configured"
	// responses instead of refusing to start.
	KeyID         string `envconfig:"RAZORPAY_KEY_ID"`
	KeySecret     string `envconfig:"RAZORPAY_KEY_SECRET"`
	WebhookSecret string `envconfig:"RAZORPAY_WEBHOOK_SECRET"`
}

type EmailConfig struct {
	SMTPHost    string   `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort    int      `envconfig:"SMTP_PORT" default:"587"`
	SenderName  string   `envconfig:"EMAIL_SENDER_NAME" default:"Tech Fiesta Team"`
	Addresses   []string `envconfig:"EMAIL_ADDRESSES"`
	Passwords   []string `envconfig:"EMAIL_PASSWORDS"`
	DailyLimit  int      `envconfig:"EMAIL_DAILY_LIMIT" default:"500"`
	FrontendURL string   `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	ContactAddr string   `envconfig:"EMAIL_CONTACT" default:"techfiesta@citchennai.net"`
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
			Port: "5050", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Auth: AuthConfig{
			JWTSecret: "test-secret",
		},
		Razorpay: RazorpayConfig{
			KeyID:         "rzp_test_key",
			KeySecret:     "rzp_test_secret",
			WebhookSecret: "rzp_test_webhook_secret",
		},
		Email: EmailConfig{
			SMTPHost:    "localhost",
			SMTPPort:    2525,
			SenderName:  "Tech Fiesta Team",
			DailyLimit:  500,
			FrontendURL: "http://localhost:3000",
			ContactAddr: "techfiesta@citchennai.net",
		},
	}
}
