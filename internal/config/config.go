package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Redis      RedisConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// AttendanceConfig holds the attendance policy knobs. The defaults mirror
// a 09:00 office start with a 15 minute grace window.
type AttendanceConfig struct {
	OfficeStartHour      int
	LateThresholdMinutes int
	MinFullDayHours      float64
	MinHalfDayHours      float64
}

func Load() (*Config, error) {
	// Missing .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Redis configuration
	redisPort, err := strconv.Atoi(getEnv("REDIS_PORT", "6379"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     redisPort,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance policy configuration
	officeStartHour, err := strconv.Atoi(getEnv("OFFICE_START_HOUR", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_START_HOUR: %w", err)
	}

	lateThreshold, err := strconv.Atoi(getEnv("LATE_THRESHOLD_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_THRESHOLD_MINUTES: %w", err)
	}

	minFullDay, err := strconv.ParseFloat(getEnv("MIN_FULL_DAY_HOURS", "6"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MIN_FULL_DAY_HOURS: %w", err)
	}

	minHalfDay, err := strconv.ParseFloat(getEnv("MIN_HALF_DAY_HOURS", "4"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MIN_HALF_DAY_HOURS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		OfficeStartHour:      officeStartHour,
		LateThresholdMinutes: lateThreshold,
		MinFullDayHours:      minFullDay,
		MinHalfDayHours:      minHalfDay,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.OfficeStartHour < 0 || c.Attendance.OfficeStartHour > 23 {
		return fmt.Errorf("OFFICE_START_HOUR must be between 0 and 23")
	}
	if c.Attendance.LateThresholdMinutes < 0 || c.Attendance.LateThresholdMinutes > 59 {
		return fmt.Errorf("LATE_THRESHOLD_MINUTES must be between 0 and 59")
	}
	if c.Attendance.MinHalfDayHours <= 0 || c.Attendance.MinFullDayHours < c.Attendance.MinHalfDayHours {
		return fmt.Errorf("MIN_FULL_DAY_HOURS must be greater than or equal to MIN_HALF_DAY_HOURS")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
