package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSeverityTable - таблица серьезности по умолчанию (тип угрозы -> уровень алерта)
const DefaultSeverityTable = "UAV=High,Aircraft=Medium,Bird=Low,Birds=Low"

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Postgres pool Config
	DBMaxConns       int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMaxConnIdle    time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`

	// Redis Config
	RedisAddr        string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass        string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize    int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisDialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"3s"`
	IncidentCacheTTL time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"5m"`

	// Detection gateway Config
	DetectionURL     string        `env:"DETECTION_URL" envDefault:"http://localhost:5000/predict"`
	DetectionTimeout time.Duration `env:"DETECTION_TIMEOUT" envDefault:"15s"`
	// SeverityTable - разобранная таблица SEVERITY_TABLE
	SeverityTable map[string]string `env:"SEVERITY_TABLE"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		DBMaxConns:             int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		DBMaxConnIdle:          getEnvAsDuration("DB_MAX_CONN_IDLE", 5*time.Minute),
		DBConnectTimeout:       getEnvAsDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:          getEnvAsInt("REDIS_POOL_SIZE", 10),
		RedisDialTimeout:       getEnvAsDuration("REDIS_DIAL_TIMEOUT", 3*time.Second),
		IncidentCacheTTL:       getEnvAsDuration("INCIDENT_CACHE_TTL", 5*time.Minute),
		DetectionURL:           getEnv("DETECTION_URL", "http://localhost:5000/predict"),
		DetectionTimeout:       getEnvAsDuration("DETECTION_TIMEOUT", 15*time.Second),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		APIKeys:                getEnvAsList("API_KEYS"),
		CORSAllowedOrigins:     getEnvAsList("CORS_ALLOWED_ORIGINS"),
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	table, err := ParseSeverityTable(getEnv("SEVERITY_TABLE", DefaultSeverityTable))
	if err != nil {
		return nil, err
	}
	cfg.SeverityTable = table

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// ParseSeverityTable разбирает строку вида "UAV=High,Aircraft=Medium".
// Ключи чувствительны к регистру, значения проверяются позже в сервисе алертов.
func ParseSeverityTable(raw string) (map[string]string, error) {
	table := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("invalid SEVERITY_TABLE entry %q: expected Type=Severity", pair)
		}
		table[key] = value
	}
	return table, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList возвращает список значений, разделенных запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var values []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			values = append(values, item)
		}
	}
	return values
}
