package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ModeAPI = "api"
	ModeWeb = "web"

	DefaultConfigPath = "config.yaml"
)

// Config holds every setting of the server. Values come from config.yaml
// (optional) and are overridden by environment variables.
type Config struct {
	RunMode string `yaml:"-"`
	Port    string `yaml:"port"`

	DatabaseURL string `yaml:"databaseURL"`
	DBHost      string `yaml:"dbHost"`
	DBPort      string `yaml:"dbPort"`
	DBUser      string `yaml:"dbUser"`
	DBPassword  string `yaml:"dbPassword"`
	DBName      string `yaml:"dbName"`
	DBSSLMode   string `yaml:"dbSSLMode"`
	DBTimeZone  string `yaml:"dbTimeZone"`

	SessionSecret       string        `yaml:"sessionSecret"`
	SessionTTL          time.Duration `yaml:"-"`
	SessionTTLHours     int           `yaml:"sessionTTLHours"`
	SessionCookieName   string        `yaml:"sessionCookieName"`
	SessionCookieSecure bool          `yaml:"sessionCookieSecure"`
	SessionCookieDomain string        `yaml:"sessionCookieDomain"`

	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`

	SupabaseURL    string `yaml:"supabaseURL"`
	SupabaseKey    string `yaml:"supabaseKey"`
	SupabaseBucket string `yaml:"supabaseBucket"`

	APIBaseURL        string        `yaml:"apiBaseURL"`
	APITimeout        time.Duration `yaml:"-"`
	APITimeoutSeconds int           `yaml:"apiTimeoutSeconds"`

	AllowedOrigins []string `yaml:"allowedOrigins"`

	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`

	IntakeRatePerMin int `yaml:"intakeRatePerMin"`
	LoginRatePerMin  int `yaml:"loginRatePerMin"`

	SeedAdminName     string `yaml:"seedAdminName"`
	SeedAdminEmail    string `yaml:"seedAdminEmail"`
	SeedAdminPassword string `yaml:"seedAdminPassword"`
}

func defaults() Config {
	return Config{
		RunMode:           ModeAPI,
		Port:              "8080",
		DBHost:            "localhost",
		DBPort:            "5432",
		DBSSLMode:         "disable",
		DBTimeZone:        "Asia/Kolkata",
		SessionTTLHours:   24 * 7,
		SessionCookieName: "admin_session",
		SupabaseBucket:    "pg-media",
		APITimeoutSeconds: 15,
		AllowedOrigins:    []string{"http://localhost:3000"},
		LogLevel:          "info",
		LogFormat:         "json",
		IntakeRatePerMin:  10,
		LoginRatePerMin:   5,
		SeedAdminName:     "Super Admin",
	}
}

// Load reads .env (if present), then the YAML file at path (if present),
// then environment variables. runMode selects which settings are required.
func Load(path, runMode string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if path == "" {
		path = DefaultConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if runMode != "" {
		cfg.RunMode = runMode
	}
	if cfg.RunMode != ModeAPI && cfg.RunMode != ModeWeb {
		return nil, fmt.Errorf("unknown run mode %q", cfg.RunMode)
	}

	setString(&cfg.Port, "PORT")
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSLMODE")
	setString(&cfg.DBTimeZone, "DB_TIMEZONE")
	setString(&cfg.SessionSecret, "SESSION_SECRET")
	setString(&cfg.SessionCookieName, "SESSION_COOKIE_NAME")
	setString(&cfg.SessionCookieDomain, "SESSION_COOKIE_DOMAIN")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.SupabaseURL, "SUPABASE_URL")
	setString(&cfg.SupabaseKey, "SUPABASE_KEY")
	setString(&cfg.SupabaseBucket, "SUPABASE_BUCKET")
	setString(&cfg.APIBaseURL, "API_BASE_URL")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")
	setString(&cfg.SeedAdminName, "SEED_ADMIN_NAME")
	setString(&cfg.SeedAdminEmail, "SEED_ADMIN_EMAIL")
	setString(&cfg.SeedAdminPassword, "SEED_ADMIN_PASSWORD")

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}

	if err := setBool(&cfg.SessionCookieSecure, "SESSION_COOKIE_SECURE"); err != nil {
		return nil, err
	}
	for key, dst := range map[string]*int{
		"SESSION_TTL_HOURS":         &cfg.SessionTTLHours,
		"REDIS_DB":                  &cfg.RedisDB,
		"API_TIMEOUT_SECONDS":       &cfg.APITimeoutSeconds,
		"RATE_LIMIT_INTAKE_PER_MIN": &cfg.IntakeRatePerMin,
		"RATE_LIMIT_LOGIN_PER_MIN":  &cfg.LoginRatePerMin,
	} {
		if err := setInt(dst, key); err != nil {
			return nil, err
		}
	}

	if cfg.SessionTTLHours <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %d", cfg.SessionTTLHours)
	}
	if cfg.APITimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid API_TIMEOUT_SECONDS: %d", cfg.APITimeoutSeconds)
	}
	cfg.SessionTTL = time.Duration(cfg.SessionTTLHours) * time.Hour
	cfg.APITimeout = time.Duration(cfg.APITimeoutSeconds) * time.Second
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	switch cfg.RunMode {
	case ModeAPI:
		if cfg.SessionSecret == "" {
			return nil, errors.New("missing required environment variable: SESSION_SECRET")
		}
	case ModeWeb:
		if cfg.APIBaseURL == "" {
			return nil, errors.New("missing required environment variable: API_BASE_URL")
		}
	}

	return &cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimeZone)
}

// StorageEnabled reports whether media uploads can be served.
func (c *Config) StorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
