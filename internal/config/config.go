package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

type Config struct {
	AppEnv string
	Port   string

	DB          DBConfig
	RedisAddr   string
	KafkaBroker string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	StorageDir string
	SMTP       SMTPConfig

	ProbationCron      string
	OutboxPollInterval time.Duration
	CORSOrigins        []string
}

// Load reads configuration from the environment. godotenv is expected to have
// populated it already in cmd/*.
func Load() Config {
	return Config{
		AppEnv: GetEnv("APP_ENV", "development"),
		Port:   GetEnv("PORT", "3000"),
		DB: DBConfig{
			Host:     GetEnv("DB_HOST", "localhost"),
			User:     GetEnv("DB_USER", "postgres"),
			Password: GetEnv("DB_PASSWORD", ""),
			Name:     GetEnv("DB_NAME", "hrms"),
			Port:     GetEnv("DB_PORT", "5432"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:       GetEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:     GetEnv("KAFKA_BROKER", "localhost:9092"),
		JWTSecret:       GetEnv("JWT_SECRET", ""),
		AccessTokenTTL:  GetEnvAsDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: GetEnvAsDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		StorageDir:      GetEnv("STORAGE_DIR", "storage"),
		SMTP: SMTPConfig{
			Host:     GetEnv("SMTP_HOST", ""),
			Port:     GetEnvAsInt("SMTP_PORT", 587),
			User:     GetEnv("SMTP_USER", ""),
			Password: GetEnv("SMTP_PASSWORD", ""),
			From:     GetEnv("MAIL_FROM", "no-reply@hrms.local"),
		},
		ProbationCron:      GetEnv("PROBATION_CRON", "0 1 * * *"),
		OutboxPollInterval: GetEnvAsDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		CORSOrigins:        GetEnvAsSlice("CORS_ORIGINS", []string{"*"}),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetEnv returns the value of key or fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsDuration accepts Go duration strings ("15m", "168h").
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return fallback
}

func GetEnvAsSlice(key string, fallback []string) []string {
	valueStr := strings.TrimSpace(GetEnv(key, ""))
	if valueStr == "" {
		return fallback
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
