package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes caps request bodies on API routes; cards arrive as base64 PNGs
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"10485760" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// SMTP contains the outgoing mail server settings used by the relay
	SMTP struct {
		// Host is the SMTP server hostname
		Host string `env:"SMTP_HOST" env-default:"smtp.gmail.com" yaml:"host"`
		// Port is the SMTP server port
		Port int `env:"SMTP_PORT" env-default:"587" yaml:"port"`
		// Username authenticates against the SMTP server and doubles as the sender address
		Username string `env:"SMTP_USERNAME" yaml:"username"`
		// Password authenticates against the SMTP server
		Password string `env:"SMTP_PASSWORD" yaml:"password"`
		// SenderName is the display name on the From header
		SenderName string `env:"SMTP_SENDER_NAME" env-default:"The Dabhade Family" yaml:"senderName"`
	} `yaml:"smtp"`

	// Renderer contains the headless-browser capture settings
	Renderer struct {
		// Scale is the device scale factor of the capture
		Scale float64 `env:"RENDERER_SCALE" env-default:"3" yaml:"scale"`
		// SettleDelay is how long to wait after layout overrides before the screenshot
		SettleDelay time.Duration `env:"RENDERER_SETTLE_DELAY" env-default:"100ms" yaml:"settleDelay"`
		// CaptureTimeout bounds a single render from navigation to screenshot
		CaptureTimeout time.Duration `env:"RENDERER_CAPTURE_TIMEOUT" env-default:"30s" yaml:"captureTimeout"`
		// Background is the page background color behind the card
		Background string `env:"RENDERER_BACKGROUND" env-default:"#fffcf5" yaml:"background"`
		// ExecPath optionally points at a specific Chrome binary
		ExecPath string `env:"RENDERER_EXEC_PATH" yaml:"execPath"`
	} `yaml:"renderer"`

	// AI contains the name generation backend settings
	AI struct {
		// APIKey is the Gemini API key; when empty, curated static lists are served instead
		APIKey string `env:"AI_API_KEY" yaml:"apiKey"`
		// Model is the Gemini model used for name generation
		Model string `env:"AI_MODEL" env-default:"gemini-3-flash-preview" yaml:"model"`
	} `yaml:"ai"`

	// Relay contains the dispatch settings used by the CLI when emailing invitations
	Relay struct {
		// Endpoint is the full URL of the send-invite route
		Endpoint string `env:"RELAY_ENDPOINT" env-default:"http://localhost:8080/api/send-invite" yaml:"endpoint"`
	} `yaml:"relay"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"naamkaran" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
