package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   broker addresses, secrets)
// - default: Values common across all environments (timeouts, formats, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Kafka   KafkaConfig
	Connect ConnectConfig
	SMTP    SMTPConfig
	App     AppConfig
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

	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
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
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZone       string `envconfig:"LOG_TIME_ZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIME_ZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// KafkaConfig maps environment ids to broker bootstrap addresses. The
// offset-reset executor resolves the target cluster for a request's
// environment from this mapping.
type KafkaConfig struct {
	// Format: "DEV=localhost:9092;TST=tst-broker-1:9092,tst-broker-2:9092"
	ClusterBootstrap string        `envconfig:"KAFKA_CLUSTER_BOOTSTRAP" required:"true"`
	DialTimeout      time.Duration `envconfig:"KAFKA_DIAL_TIMEOUT" default:"10s"`
	ClientID         string        `envconfig:"KAFKA_CLIENT_ID" default:"klaw-governance"`
}

// ConnectConfig maps environment ids to Kafka Connect REST endpoints.
type ConnectConfig struct {
	// Format: "DEV=http://localhost:8083;TST=http://tst-connect:8083"
	RestEndpoints  string        `envconfig:"CONNECT_REST_ENDPOINTS" default:""`
	RequestTimeout time.Duration `envconfig:"CONNECT_REQUEST_TIMEOUT" default:"30s"`
}

type SMTPConfig struct {
	Enabled  bool   `envconfig:"SMTP_ENABLED" default:"false"`
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     string `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"klaw@localhost"`
}

type AppConfig struct {
	LoginURL string `envconfig:"APP_LOGIN_URL" default:"http://localhost:3000/login"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// BootstrapServers parses ClusterBootstrap into env id -> broker list.
func (c *KafkaConfig) BootstrapServers() map[string][]string {
	out := map[string][]string{}
	for env, value := range parseEnvMapping(c.ClusterBootstrap) {
		out[env] = strings.Split(value, ",")
	}
	return out
}

// Endpoints parses RestEndpoints into env id -> base URL.
func (c *ConnectConfig) Endpoints() map[string]string {
	return parseEnvMapping(c.RestEndpoints)
}

func parseEnvMapping(raw string) map[string]string {
	out := map[string]string{}
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		env, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(env)] = strings.TrimSpace(value)
	}
	return out
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
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Kafka: KafkaConfig{
			ClusterBootstrap: "DEV=localhost:9092",
			DialTimeout:      10 * time.Second,
			ClientID:         "klaw-test",
		},
		App: AppConfig{
			LoginURL: "http://localhost:3000/login",
		},
	}
}
