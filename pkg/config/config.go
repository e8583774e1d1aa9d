package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Supported store drivers.
const (
	StoreSheets   = "sheets"
	StoreWorkbook = "workbook"
	StorePostgres = "postgres"
)

type Config struct {
	Env  string
	Host string
	Port int

	Store    StoreConfig
	Google   GoogleConfig
	Workbook WorkbookConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	CORS     CORSConfig
	Log      LogConfig
}

// StoreConfig selects the tabular backend and the layout shared by every driver.
type StoreConfig struct {
	Driver        string
	StudentTab    string
	ScanLogTab    string
	ScanLogColumn int
	Timeout       time.Duration
}

// GoogleConfig carries the service-account payload and spreadsheet location.
type GoogleConfig struct {
	Credentials     string
	SpreadsheetName string
	SpreadsheetID   string
}

type WorkbookConfig struct {
	Path string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig governs the optional roster cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Host = v.GetString("HOST")
	cfg.Port = v.GetInt("PORT")

	column := v.GetInt("SCAN_LOG_COLUMN")
	if column <= 0 {
		column = 2
	}
	cfg.Store = StoreConfig{
		Driver:        strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		StudentTab:    v.GetString("STUDENT_TAB"),
		ScanLogTab:    v.GetString("SCAN_LOG_TAB"),
		ScanLogColumn: column,
		Timeout:       parseDuration(v.GetString("STORE_TIMEOUT"), 30*time.Second),
	}

	cfg.Google = GoogleConfig{
		Credentials:     v.GetString("GOOGLE_CREDS"),
		SpreadsheetName: v.GetString("SPREADSHEET_NAME"),
		SpreadsheetID:   strings.TrimSpace(v.GetString("SPREADSHEET_ID")),
	}

	cfg.Workbook = WorkbookConfig{Path: v.GetString("WORKBOOK_PATH")}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_ROSTER_CACHE"),
		TTL:     parseDuration(v.GetString("ROSTER_CACHE_TTL"), time.Minute),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 10000)

	v.SetDefault("STORE_DRIVER", StoreSheets)
	v.SetDefault("STUDENT_TAB", "Lanyard_Data")
	v.SetDefault("SCAN_LOG_TAB", "lanyard_log")
	v.SetDefault("SCAN_LOG_COLUMN", 2)
	v.SetDefault("STORE_TIMEOUT", "30s")

	v.SetDefault("GOOGLE_CREDS", "")
	v.SetDefault("SPREADSHEET_NAME", "Lanyard_Data")
	v.SetDefault("SPREADSHEET_ID", "")

	v.SetDefault("WORKBOOK_PATH", "./lanyard.xlsx")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "lanyard")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ENABLE_ROSTER_CACHE", false)
	v.SetDefault("ROSTER_CACHE_TTL", "1m")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
