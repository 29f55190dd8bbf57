package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	Redis      RedisConfig
	App        AppConfig
	Payroll    PayrollConfig
	Attendance AttendanceConfig
	Cron       CronConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig holds the attendance cache connection. Host empty disables the cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	CompanyName    string
	AllowedOrigins []string
}

type PayrollConfig struct {
	StandardWorkingDays int
	ProcessingWorkers   int
}

type AttendanceConfig struct {
	Source       string // log | simulated
	CacheTTL     time.Duration
	MaxRangeDays int
}

type CronConfig struct {
	Enabled               bool
	PayrollAutoProcessDay int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

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
		Name:     getEnv("DB_NAME", "cmlabs-fms"),
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
		Host:     getEnv("REDIS_HOST", ""),
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
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CompanyName:    getEnv("COMPANY_NAME", "CMLabs Facility Services"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{"http://localhost:3000"}
	}

	// Payroll configuration
	workingDays, err := strconv.Atoi(getEnv("PAYROLL_STANDARD_WORKING_DAYS", "22"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_STANDARD_WORKING_DAYS: %w", err)
	}
	workers, err := strconv.Atoi(getEnv("PAYROLL_PROCESSING_WORKERS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_PROCESSING_WORKERS: %w", err)
	}

	config.Payroll = PayrollConfig{
		StandardWorkingDays: workingDays,
		ProcessingWorkers:   workers,
	}

	// Attendance configuration
	cacheTTL, err := time.ParseDuration(getEnv("ATTENDANCE_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_CACHE_TTL: %w", err)
	}
	maxRangeDays, err := strconv.Atoi(getEnv("ATTENDANCE_MAX_RANGE_DAYS", "366"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_MAX_RANGE_DAYS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		Source:       getEnv("ATTENDANCE_SOURCE", "log"),
		CacheTTL:     cacheTTL,
		MaxRangeDays: maxRangeDays,
	}

	// Cron configuration
	cronEnabled, err := strconv.ParseBool(getEnv("CRON_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_ENABLED: %w", err)
	}
	processDay, err := strconv.Atoi(getEnv("PAYROLL_AUTO_PROCESS_DAY", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_AUTO_PROCESS_DAY: %w", err)
	}

	config.Cron = CronConfig{
		Enabled:               cronEnabled,
		PayrollAutoProcessDay: processDay,
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
	if c.Payroll.StandardWorkingDays <= 0 {
		return fmt.Errorf("PAYROLL_STANDARD_WORKING_DAYS must be positive")
	}
	if c.Payroll.ProcessingWorkers <= 0 {
		return fmt.Errorf("PAYROLL_PROCESSING_WORKERS must be positive")
	}
	if c.Attendance.Source != "log" && c.Attendance.Source != "simulated" {
		return fmt.Errorf("ATTENDANCE_SOURCE must be 'log' or 'simulated'")
	}
	if c.Attendance.MaxRangeDays <= 0 {
		return fmt.Errorf("ATTENDANCE_MAX_RANGE_DAYS must be positive")
	}
	if c.Cron.PayrollAutoProcessDay < 1 || c.Cron.PayrollAutoProcessDay > 28 {
		return fmt.Errorf("PAYROLL_AUTO_PROCESS_DAY must be between 1 and 28")
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

// RedisEnabled reports whether a Redis host is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// RedisAddr returns host:port of the Redis server
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
